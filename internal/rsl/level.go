package rsl

import (
	"github.com/veracify/analysis-cli/internal/library"
	"github.com/veracify/analysis-cli/internal/model"
	"github.com/veracify/analysis-cli/internal/numeric"
)

// Policy holds the level-classification flags.
type Policy struct {
	// Strict bumps every gate threshold by strictBump and adds the L5
	// counter-signal requirement.
	Strict bool
	// AllowL6 permits the L6 gate; without it L5 is the ceiling.
	AllowL6 bool
}

const (
	strictBump = 0.2

	// Evidence sufficiency for L4 and above.
	minEvidenceCount    = 3.0
	minEvidenceLinkRate = 0.4

	// L6 additionally requires this much integration.
	l6IntegrationMin = 4.5
)

// LevelResult is the outcome of the gate ladder.
type LevelResult struct {
	Code        string  `json:"code"`
	Ordinal     int     `json:"ordinal"`
	Label       string  `json:"label"`
	Description string  `json:"description"`
	RubricMin   float64 `json:"rubric_min"`
}

// ClassifyLevel walks the gate ladder and returns the highest gate the
// rubric passes. Gates are evaluated independently; the ladder is
// well-defined because the shipped thresholds increase monotonically.
func ClassifyLevel(rubric Rubric, rf model.RawFeatures, pol Policy) LevelResult {
	min := rubric.Min()
	levels := library.Levels()

	passed := levels[0]
	for _, lv := range levels {
		if passesGate(lv, min, rubric, rf, pol) {
			passed = lv
		}
	}

	return LevelResult{
		Code:        passed.Code,
		Ordinal:     passed.Ordinal,
		Label:       passed.Label,
		Description: passed.Description,
		RubricMin:   numeric.Round2(min),
	}
}

func passesGate(lv library.Level, rubricMin float64, rubric Rubric, rf model.RawFeatures, pol Policy) bool {
	threshold := lv.Threshold
	if pol.Strict && lv.Ordinal > 1 {
		threshold += strictBump
	}
	if rubricMin < threshold {
		return false
	}

	if lv.Ordinal >= 4 && !evidenceSufficient(rf) {
		return false
	}
	if lv.Ordinal >= 5 && pol.Strict && rf.Counterpoints+rf.Refutations < 1 {
		return false
	}
	if lv.Ordinal >= 6 {
		if !pol.AllowL6 {
			return false
		}
		if rubric.Integration < l6IntegrationMin {
			return false
		}
	}
	return true
}

func evidenceSufficient(rf model.RawFeatures) bool {
	linkRate := numeric.Clamp01(numeric.SafeDiv(rf.Warrants, rf.Evidence))
	return rf.Evidence >= minEvidenceCount && linkRate >= minEvidenceLinkRate
}
