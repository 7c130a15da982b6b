package rc

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/veracify/analysis-cli/internal/cff"
	"github.com/veracify/analysis-cli/internal/model"
)

func TestComputeDistribution_ZeroIndicatorsReadAI(t *testing.T) {
	// z = beta0 = -1.2 → p ≈ 0.23 < 0.45.
	got := ComputeDistribution(DistIndicators{})
	assert.Equal(t, "ai", got.Determination)
	assert.InDelta(t, 0.23, got.PHuman, 0.005)
	assert.InDelta(t, 0.77, got.PAI, 0.005)
	assert.Equal(t, 100, got.HumanPct+got.HybridPct+got.AIPct)
	assert.Greater(t, got.AIPct, got.HumanPct)
}

func TestComputeDistribution_StrongIndicatorsReadHuman(t *testing.T) {
	// z = -1.2 + 0.6+0.3+0.2+1.1+0.8+1.0+0.7 = 3.5 → p ≈ 0.97.
	got := ComputeDistribution(DistIndicators{
		AAS: 1, CTF: 1, RMD: 1, RDX: 1, EDS: 1, IFD: 0, HIL: 1, NSV: 1,
	})
	assert.Equal(t, "human", got.Determination)
	assert.Greater(t, got.PHuman, 0.95)
	assert.Equal(t, 100, got.HumanPct+got.HybridPct+got.AIPct)
	assert.Greater(t, got.HumanPct, 90)
}

func TestComputeDistribution_HybridConfirmed(t *testing.T) {
	// z ≈ 0.44 → p ≈ 0.61, mid band; auxiliary conjunction holds
	// (rdx 0.3 ≤ 0.55, hil 0.6 ≥ 0.5, aas 0.5 ≥ 0.5, eds 0.5 ≥ 0.45).
	di := DistIndicators{AAS: 0.5, RDX: 0.3, EDS: 0.5, IFD: 0.5, HIL: 0.6, NSV: 0.3}
	got := ComputeDistribution(di)

	assert.Equal(t, "hybrid", got.Determination)
	assert.Equal(t, 46, got.HybridPct)
	assert.Equal(t, 100, got.HumanPct+got.HybridPct+got.AIPct)
}

func TestComputeDistribution_HybridReclassifiedWithoutConfirmation(t *testing.T) {
	// Same mid-band probability but hil fails the conjunction: the call
	// reverts to the likelier pole.
	di := DistIndicators{AAS: 0.5, RDX: 0.3, EDS: 0.5, IFD: 0.5, HIL: 0.6, NSV: 0.3}
	diNoIntent := di
	diNoIntent.HIL = 0.0

	confirmed := ComputeDistribution(di)
	reverted := ComputeDistribution(diNoIntent)

	assert.Equal(t, "hybrid", confirmed.Determination)
	assert.NotEqual(t, "hybrid", reverted.Determination)
	assert.Contains(t, []string{"human", "ai"}, reverted.Determination)
}

func TestDetermine_MidBandPoles(t *testing.T) {
	failing := DistIndicators{} // conjunction fails
	assert.Equal(t, "human", determine(0.6, failing))
	assert.Equal(t, "ai", determine(0.46, failing))
}

func TestToPercentages_LargestRemainder(t *testing.T) {
	a, b, c := toPercentages(1, 1, 1)
	assert.Equal(t, 100, a+b+c)

	a, b, c = toPercentages(0, 0, 0)
	assert.Equal(t, 100, a+b+c)

	a, b, c = toPercentages(0.5, 0.3, 0.2)
	assert.Equal(t, 50, a)
	assert.Equal(t, 30, b)
	assert.Equal(t, 20, c)
}

func TestDeriveDistIndicators(t *testing.T) {
	rf := model.RawFeatures{
		Units:                 10,
		IntentMarkers:         3,
		SelfRegulationSignals: 2,
		Evidence:              4,
	}.Sanitize()
	ind := cff.Indicators{AAS: 0.6, CTF: 0.5, RMD: 0.5, RDX: 0.4, EDS: 0.55, IFD: 0.2}

	di := DeriveDistIndicators(ind, rf)
	assert.Equal(t, 0.6, di.AAS)
	assert.Equal(t, 0.2, di.IFD)
	// hil = 0.6*(0.3/0.45) + 0.4*(0.2/0.35) ≈ 0.629.
	assert.InDelta(t, 0.629, di.HIL, 0.005)
	// nsv = 0.5*(0.4/0.65) + 0.5*1 ≈ 0.808.
	assert.InDelta(t, 0.808, di.NSV, 0.005)
}
