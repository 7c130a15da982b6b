package numeric

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp01_Bounds(t *testing.T) {
	assert.Equal(t, 0.0, Clamp01(-3))
	assert.Equal(t, 1.0, Clamp01(7))
	assert.Equal(t, 0.42, Clamp01(0.42))
}

func TestClamp01_NonFinite(t *testing.T) {
	assert.Equal(t, 0.0, Clamp01(math.NaN()))
	assert.Equal(t, 0.0, Clamp01(math.Inf(-1)))
	assert.Equal(t, 1.0, Clamp01(math.Inf(1)))
}

func TestClamp0To5(t *testing.T) {
	assert.Equal(t, 5.0, Clamp0To5(9.3))
	assert.Equal(t, 0.0, Clamp0To5(-0.1))
	assert.Equal(t, 3.3, Clamp0To5(3.3))
}

func TestSafeDiv_FlooredDenominator(t *testing.T) {
	// 10 / max(1, 0) = 10, not +Inf.
	assert.Equal(t, 10.0, SafeDiv(10, 0))
	// 10 / max(1, 0.2) = 10 — fractional denominators floor to 1 too.
	assert.Equal(t, 10.0, SafeDiv(10, 0.2))
	assert.Equal(t, 2.5, SafeDiv(10, 4))
	assert.Equal(t, 0.0, SafeDiv(math.NaN(), 4))
}

func TestSat(t *testing.T) {
	// k is the half-saturation point: Sat(k, k) = 0.5.
	assert.InDelta(t, 0.5, Sat(0.3, 0.3), 1e-12)
	assert.Equal(t, 0.0, Sat(0, 0.3))
	assert.Equal(t, 0.0, Sat(-5, 0.3))
	assert.Equal(t, 0.0, Sat(math.NaN(), 0.3))
	// Monotonic, bounded below 1.
	assert.Less(t, Sat(100, 0.3), 1.0)
	assert.Greater(t, Sat(2, 0.3), Sat(1, 0.3))
}

func TestPeak01(t *testing.T) {
	assert.Equal(t, 1.0, Peak01(0.15, 0.15, 0.1))
	assert.InDelta(t, 0.5, Peak01(0.20, 0.15, 0.1), 1e-12)
	assert.Equal(t, 0.0, Peak01(0.30, 0.15, 0.1))
	assert.Equal(t, 0.0, Peak01(0.0, 0.15, 0.15))
	assert.Equal(t, 0.0, Peak01(math.NaN(), 0.15, 0.1))
}

func TestEntropy01_Degenerate(t *testing.T) {
	assert.Equal(t, 0.0, Entropy01(nil))
	assert.Equal(t, 0.0, Entropy01([]float64{}))
	// Fully concentrated mass carries zero balance.
	assert.Equal(t, 0.0, Entropy01([]float64{5, 0, 0, 0}))
	assert.Equal(t, 0.0, Entropy01([]float64{0, 0, 0}))
	assert.Equal(t, 0.0, Entropy01([]float64{7}))
}

func TestEntropy01_Uniform(t *testing.T) {
	assert.InDelta(t, 1.0, Entropy01([]float64{3, 3, 3, 3}), 1e-12)
}

func TestEntropy01_Mixed(t *testing.T) {
	// [4,4,4,2]: H = 1.3518 nats, Hmax = ln 4 = 1.3863 → ≈0.975.
	assert.InDelta(t, 0.975, Entropy01([]float64{4, 4, 4, 2}), 0.001)
	// Negative buckets are ignored, but still count toward cardinality:
	// H = ln 2, Hmax = ln 3 → ≈0.631.
	assert.InDelta(t, 0.631, Entropy01([]float64{3, -1, 3}), 0.001)
}

func TestStd(t *testing.T) {
	assert.Equal(t, 0.0, Std(nil))
	assert.Equal(t, 0.0, Std([]float64{4}))
	// Population std of [2,4,4,4,5,5,7,9] = 2.
	assert.InDelta(t, 2.0, Std([]float64{2, 4, 4, 4, 5, 5, 7, 9}), 1e-12)
}

func TestCV(t *testing.T) {
	assert.Equal(t, 0.0, CV([]float64{0, 0}))
	// mean 5, std 2 → CV 0.4.
	assert.InDelta(t, 0.4, CV([]float64{2, 4, 4, 4, 5, 5, 7, 9}), 1e-12)
}

func TestPercentile01_EmptyCohort(t *testing.T) {
	assert.Equal(t, 0.5, Percentile01(3.2, nil))
	assert.Equal(t, 0.5, Percentile01(3.2, []float64{}))
}

func TestPercentile01_StrictlyBelow(t *testing.T) {
	peers := []float64{1, 2, 3, 4}
	// 3 is strictly above two peers.
	assert.Equal(t, 0.5, Percentile01(3, peers))
	assert.Equal(t, 1.0, Percentile01(10, peers))
	assert.Equal(t, 0.0, Percentile01(0.5, peers))
}

func TestSigmoid(t *testing.T) {
	assert.InDelta(t, 0.5, Sigmoid(0), 1e-12)
	assert.Greater(t, Sigmoid(2), 0.85)
	assert.Less(t, Sigmoid(-2), 0.15)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 3.46, Round2(3.456))
	assert.Equal(t, 0.0, Round2(0.004))
}
