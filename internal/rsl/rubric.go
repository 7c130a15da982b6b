// Package rsl derives the structural-level section of the report: the
// four-dimension rubric, the L1-L6 level classification, the
// friction/reliability index, cohort positioning and the stability index.
package rsl

import (
	"github.com/veracify/analysis-cli/internal/model"
	"github.com/veracify/analysis-cli/internal/numeric"
)

// Rubric holds the four dimension scores on the 0-5 scale, rounded to
// two decimals.
type Rubric struct {
	Coherence   float64 `json:"coherence"`
	Structure   float64 `json:"structure"`
	Evaluation  float64 `json:"evaluation"`
	Integration float64 `json:"integration"`
}

// Min returns the lowest dimension score.
func (r Rubric) Min() float64 {
	m := r.Coherence
	for _, v := range []float64{r.Structure, r.Evaluation, r.Integration} {
		if v < m {
			m = v
		}
	}
	return m
}

// Vector returns the rubric renormalized to 0-1, in dimension order.
// Scaling each entry back by 5 reproduces the rubric values.
func (r Rubric) Vector() []float64 {
	return []float64{r.Coherence / 5, r.Structure / 5, r.Evaluation / 5, r.Integration / 5}
}

// rates are the shared count ratios the RSL formulas draw from.
type rates struct {
	tq              float64 // transition quality
	drift           float64
	adjacency       float64
	balance         float64 // layer-count entropy
	warrantCoverage float64
	revisionRate    float64
	counterRate     float64
	hedgeSat        float64
}

func deriveRates(rf model.RawFeatures) rates {
	return rates{
		tq:              numeric.Clamp01(numeric.SafeDiv(rf.TransitionOK, rf.Transitions)),
		drift:           numeric.Clamp01(rf.DriftSegments / rf.Units),
		adjacency:       numeric.Sat(rf.AdjacencyLinks/rf.Units, 0.8),
		balance:         numeric.Entropy01([]float64{rf.Claims, rf.Reasons, rf.Evidence, rf.Warrants}),
		warrantCoverage: numeric.Clamp01(numeric.SafeDiv(rf.Warrants, rf.Claims)),
		revisionRate:    rf.Revisions / rf.Units,
		counterRate:     (rf.Counterpoints + rf.Refutations) / rf.Units,
		hedgeSat:        numeric.Sat(rf.Hedges/rf.Units, 0.3),
	}
}

// DeriveRubric converts raw structural counts into the four rubric
// dimensions. Each dimension is an independently calibrated weighted sum
// of rate ratios on 0-1, scaled to 0-5.
func DeriveRubric(rf model.RawFeatures) Rubric {
	rt := deriveRates(rf)

	coherence := 0.5*rt.tq + 0.3*(1-rt.drift) + 0.2*rt.adjacency

	structure := 0.35*numeric.Sat(rf.Claims/rf.Units, 0.2) +
		0.35*numeric.Clamp01(numeric.SafeDiv(rf.Reasons, rf.Claims)) +
		0.30*rt.balance

	evaluation := 0.5*numeric.Sat(rf.Evidence/rf.Units, 0.12) +
		0.3*numeric.Sat(rf.Warrants/rf.Units, 0.08) +
		0.2*numeric.Clamp01(numeric.SafeDiv(rf.Evidence, rf.Claims))

	adapt := numeric.Clamp01(0.6*numeric.Peak01(rt.revisionRate, 0.15, 0.15) +
		0.4*numeric.Sat(rt.counterRate, 0.1))
	integration := 0.35*rt.balance + 0.30*rt.tq + 0.20*rt.warrantCoverage + 0.15*adapt

	return Rubric{
		Coherence:   scale(coherence),
		Structure:   scale(structure),
		Evaluation:  scale(evaluation),
		Integration: scale(integration),
	}
}

// RubricFromOverride maps caller-supplied dimension scores onto a
// sanitized rubric.
func RubricFromOverride(o model.RubricOverride) Rubric {
	return Rubric{
		Coherence:   numeric.Round2(numeric.Clamp0To5(o.Coherence)),
		Structure:   numeric.Round2(numeric.Clamp0To5(o.Structure)),
		Evaluation:  numeric.Round2(numeric.Clamp0To5(o.Evaluation)),
		Integration: numeric.Round2(numeric.Clamp0To5(o.Integration)),
	}
}

func scale(x float64) float64 {
	return numeric.Round2(numeric.Clamp0To5(numeric.Clamp01(x) * 5))
}
