package rsl

import (
	"github.com/veracify/analysis-cli/internal/model"
	"github.com/veracify/analysis-cli/internal/numeric"
)

// StabilityResult is the stability index with its band and note.
type StabilityResult struct {
	SRI            float64 `json:"sri"`
	Band           string  `json:"band"`
	Interpretation string  `json:"interpretation"`
	Note           string  `json:"note,omitempty"`
}

const (
	sriHighMin     = 0.8
	sriModerateMin = 0.65
)

// ComputeSRI derives the stability index from the normalized rubric
// vector and the raw features. Instability is a weighted blend of rubric
// variance, transition-jump volatility and meta-level imbalance;
// SRI = 1 - instability.
func ComputeSRI(vec []float64, rf model.RawFeatures) StabilityResult {
	if len(vec) < 2 {
		return StabilityResult{
			SRI:            0.5,
			Band:           "MODERATE",
			Interpretation: moderateText,
			Note:           "insufficient rubric data for a stability estimate",
		}
	}

	rt := deriveRates(rf)

	varianceScore := numeric.Clamp01(numeric.Std(vec) / 0.5)

	jumpScore := numeric.Clamp01(0.5*(1-rt.tq) +
		0.3*numeric.Clamp01(numeric.CV(rf.UnitDepths)) +
		0.2*numeric.Clamp01(numeric.CV(rf.UnitLengths)))

	imbalanceScore := numeric.Clamp01(0.4*(1-rt.balance) + 0.3*rt.drift + 0.3*rt.hedgeSat)

	instability := 0.4*varianceScore + 0.3*jumpScore + 0.3*imbalanceScore
	sri := numeric.Round2(numeric.Clamp01(1 - instability))

	return classifySRI(sri)
}

const (
	highText     = "Dimension scores and pacing hold steady across the text; conclusions generalize."
	moderateText = "Some unevenness across dimensions or pacing; read section-level results individually."
	lowText      = "Scores swing widely across the text; treat the aggregate view with caution."
)

func classifySRI(sri float64) StabilityResult {
	switch {
	case sri >= sriHighMin:
		return StabilityResult{SRI: sri, Band: "HIGH", Interpretation: highText}
	case sri >= sriModerateMin:
		return StabilityResult{SRI: sri, Band: "MODERATE", Interpretation: moderateText}
	default:
		return StabilityResult{SRI: sri, Band: "LOW", Interpretation: lowText}
	}
}
