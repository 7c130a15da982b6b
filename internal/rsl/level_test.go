package rsl

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/veracify/analysis-cli/internal/model"
)

func TestClassifyLevel_WellFormedReachesL4(t *testing.T) {
	rf := wellFormed()
	rubric := DeriveRubric(rf)

	lvl := ClassifyLevel(rubric, rf, Policy{})
	assert.GreaterOrEqual(t, lvl.Ordinal, 4, "expected at least L4, got %s", lvl.Code)
}

func TestClassifyLevel_EmptyInputIsL1(t *testing.T) {
	rf := model.RawFeatures{}.Sanitize()
	lvl := ClassifyLevel(DeriveRubric(rf), rf, Policy{})
	assert.Equal(t, "L1", lvl.Code)
	assert.Equal(t, 1, lvl.Ordinal)
}

func TestClassifyLevel_EvidenceGateBlocksL4(t *testing.T) {
	// High rubric but only 2 evidence items: L4's sufficiency check fails.
	rf := model.RawFeatures{Units: 10, Evidence: 2, Warrants: 2}.Sanitize()
	rubric := Rubric{Coherence: 4.5, Structure: 4.5, Evaluation: 4.5, Integration: 4.5}

	lvl := ClassifyLevel(rubric, rf, Policy{})
	assert.Equal(t, 3, lvl.Ordinal)
}

func TestClassifyLevel_LinkRateGateBlocksL4(t *testing.T) {
	// Plenty of evidence but almost no warrants: link rate 1/10 < 0.4.
	rf := model.RawFeatures{Units: 10, Evidence: 10, Warrants: 1}.Sanitize()
	rubric := Rubric{Coherence: 4.5, Structure: 4.5, Evaluation: 4.5, Integration: 4.5}

	lvl := ClassifyLevel(rubric, rf, Policy{})
	assert.Equal(t, 3, lvl.Ordinal)
}

func TestClassifyLevel_StrictModeRaisesBar(t *testing.T) {
	rf := model.RawFeatures{Units: 10, Evidence: 4, Warrants: 2}.Sanitize()
	// Min 3.3 passes L4 (3.2) only when not strict (strict bar is 3.4).
	rubric := Rubric{Coherence: 3.3, Structure: 3.5, Evaluation: 3.5, Integration: 3.5}

	assert.Equal(t, 4, ClassifyLevel(rubric, rf, Policy{}).Ordinal)
	assert.Equal(t, 3, ClassifyLevel(rubric, rf, Policy{Strict: true}).Ordinal)
}

func TestClassifyLevel_StrictL5NeedsCounterSignal(t *testing.T) {
	rubric := Rubric{Coherence: 4.3, Structure: 4.3, Evaluation: 4.3, Integration: 4.3}
	noCounter := model.RawFeatures{Units: 10, Evidence: 4, Warrants: 2}.Sanitize()
	withCounter := noCounter
	withCounter.Counterpoints = 1

	assert.Equal(t, 4, ClassifyLevel(rubric, noCounter, Policy{Strict: true}).Ordinal)
	assert.Equal(t, 5, ClassifyLevel(rubric, withCounter, Policy{Strict: true}).Ordinal)
}

func TestClassifyLevel_L6NeedsFlagAndIntegration(t *testing.T) {
	rf := model.RawFeatures{Units: 10, Evidence: 5, Warrants: 3, Counterpoints: 2}.Sanitize()
	rubric := Rubric{Coherence: 4.8, Structure: 4.8, Evaluation: 4.8, Integration: 4.8}

	assert.Equal(t, 5, ClassifyLevel(rubric, rf, Policy{}).Ordinal)
	assert.Equal(t, 6, ClassifyLevel(rubric, rf, Policy{AllowL6: true}).Ordinal)

	lowIntegration := Rubric{Coherence: 4.8, Structure: 4.8, Evaluation: 4.8, Integration: 4.4}
	assert.Equal(t, 5, ClassifyLevel(lowIntegration, rf, Policy{AllowL6: true}).Ordinal)
}

func TestClassifyLevel_MonotonicInRubric(t *testing.T) {
	rf := model.RawFeatures{Units: 10, Evidence: 5, Warrants: 3, Counterpoints: 1}.Sanitize()
	pol := Policy{AllowL6: true}

	base := Rubric{Coherence: 2.0, Structure: 3.0, Evaluation: 3.5, Integration: 4.0}
	prev := ClassifyLevel(base, rf, pol).Ordinal

	// Raising coherence (the minimum) step by step never lowers the level.
	for c := 2.0; c <= 5.0; c += 0.25 {
		r := base
		r.Coherence = c
		cur := ClassifyLevel(r, rf, pol).Ordinal
		assert.GreaterOrEqual(t, cur, prev, "coherence %.2f", c)
		prev = cur
	}
}
