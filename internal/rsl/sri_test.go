package rsl

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/veracify/analysis-cli/internal/model"
)

func TestComputeSRI_DegenerateVector(t *testing.T) {
	got := ComputeSRI([]float64{0.8}, model.RawFeatures{}.Sanitize())
	assert.Equal(t, 0.5, got.SRI)
	assert.Equal(t, "MODERATE", got.Band)
	assert.NotEmpty(t, got.Note)

	got = ComputeSRI(nil, model.RawFeatures{}.Sanitize())
	assert.Equal(t, 0.5, got.SRI)
}

func TestComputeSRI_StableWellFormedInput(t *testing.T) {
	rf := wellFormed()
	rubric := DeriveRubric(rf)

	got := ComputeSRI(rubric.Vector(), rf)
	// Tight rubric, clean transitions, balanced layers: little instability.
	assert.Greater(t, got.SRI, 0.65)
	assert.Empty(t, got.Note)
}

func TestComputeSRI_VolatileInputScoresLower(t *testing.T) {
	stable := wellFormed()
	volatile := wellFormed()
	volatile.DriftSegments = 5
	volatile.Hedges = 8
	volatile.UnitDepths = []float64{1, 9, 1, 8, 1, 9, 2, 8, 1, 9}
	volatile.UnitLengths = []float64{5, 90, 4, 80, 6, 95, 3, 85, 5, 92}

	rubric := DeriveRubric(stable).Vector()
	assert.Greater(t, ComputeSRI(rubric, stable).SRI, ComputeSRI(rubric, volatile).SRI)
}

func TestComputeSRI_SpreadRubricRaisesInstability(t *testing.T) {
	rf := wellFormed()
	tight := []float64{0.8, 0.8, 0.8, 0.8}
	spread := []float64{0.2, 0.9, 0.3, 0.95}

	assert.Greater(t, ComputeSRI(tight, rf).SRI, ComputeSRI(spread, rf).SRI)
}

func TestComputeSRI_Bounded(t *testing.T) {
	rf := model.RawFeatures{
		Units:         1,
		DriftSegments: 1e9,
		Hedges:        1e9,
	}.Sanitize()
	got := ComputeSRI([]float64{0, 1, 0, 1}, rf)
	assert.GreaterOrEqual(t, got.SRI, 0.0)
	assert.LessOrEqual(t, got.SRI, 1.0)
	assert.Equal(t, "LOW", got.Band)
}

func TestClassifySRIBands(t *testing.T) {
	assert.Equal(t, "HIGH", classifySRI(0.85).Band)
	assert.Equal(t, "HIGH", classifySRI(0.8).Band)
	assert.Equal(t, "MODERATE", classifySRI(0.7).Band)
	assert.Equal(t, "LOW", classifySRI(0.6).Band)
}
