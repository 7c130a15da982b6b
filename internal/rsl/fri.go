package rsl

import (
	"fmt"
	"math"

	"github.com/veracify/analysis-cli/internal/library"
	"github.com/veracify/analysis-cli/internal/numeric"
)

// FRIResult is the friction/reliability index with its interpretive band.
type FRIResult struct {
	Value          float64 `json:"value"`
	Band           string  `json:"band"`
	Interpretation string  `json:"interpretation"`
}

// CohortResult positions an FRI value inside a peer cohort.
type CohortResult struct {
	Percentile     float64 `json:"percentile"`
	TopPct         int     `json:"top_pct"`
	Label          string  `json:"label"`
	Interpretation string  `json:"interpretation"`
}

// ComputeFRI combines three rubric dimensions into a core reliability
// score and multiplies by an integration-driven factor:
// CRS = 0.3*coherence + 0.4*structure + 0.3*evaluation,
// RM = 0.85 + (integration/5)*0.3. The product is clamped to 0-5, so a
// perfect rubric (CRS 5, RM 1.15) exercises the ceiling.
func ComputeFRI(coherence, structure, evaluation, integration float64) float64 {
	crs := 0.3*coherence + 0.4*structure + 0.3*evaluation
	rm := 0.85 + (integration/5)*0.3
	return numeric.Round2(numeric.Clamp(crs*rm, 0, 5))
}

// ClassifyFRI wraps an FRI value with its band text.
func ClassifyFRI(fri float64) FRIResult {
	for _, band := range library.FRIBands() {
		if fri >= band.Min {
			return FRIResult{Value: fri, Band: band.Label, Interpretation: band.Interpretation}
		}
	}
	last := library.FRIBands()[len(library.FRIBands())-1]
	return FRIResult{Value: fri, Band: last.Label, Interpretation: last.Interpretation}
}

// PositionInCohort ranks an FRI value against peer FRI values. An empty
// cohort yields the neutral midpoint.
func PositionInCohort(fri float64, cohort []float64) CohortResult {
	p := numeric.Percentile01(fri, cohort)
	topPct := int(math.Round((1 - p) * 100))

	var label, interp string
	switch {
	case topPct <= 10:
		label = "Top 10%"
		interp = "Reliability sits in the cohort's top decile."
	case topPct <= 25:
		label = "Top 25%"
		interp = "Reliability is well above the cohort median."
	case topPct <= 50:
		label = "Top 50%"
		interp = "Reliability is at or above the cohort median."
	default:
		label = fmt.Sprintf("Top %d%%", topPct)
		interp = "Reliability trails the cohort median."
	}

	return CohortResult{
		Percentile:     numeric.Round2(p),
		TopPct:         topPct,
		Label:          label,
		Interpretation: interp,
	}
}
