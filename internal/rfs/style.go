// Package rfs maps the fingerprint profile onto a cognitive style and,
// when role configurations are supplied, ranks fixed job groups by fit.
package rfs

import (
	"github.com/veracify/analysis-cli/internal/cff"
	"github.com/veracify/analysis-cli/internal/library"
	"github.com/veracify/analysis-cli/internal/numeric"
	"github.com/veracify/analysis-cli/internal/rsl"
)

// Band cut points shared by both style dimensions.
const (
	highBandMin   = 0.67
	mediumBandMin = 0.45
)

// StyleResult is one cell of the structure/exploration grid with the
// scores that placed the profile there.
type StyleResult struct {
	Code            string  `json:"code"`
	Label           string  `json:"label"`
	Phrase          string  `json:"phrase"`
	Structure       float64 `json:"structure"`
	Exploration     float64 `json:"exploration"`
	StructureBand   string  `json:"structure_band"`
	ExplorationBand string  `json:"exploration_band"`
}

func band(x float64) string {
	switch {
	case x >= highBandMin:
		return "HIGH"
	case x >= mediumBandMin:
		return "MEDIUM"
	default:
		return "LOW"
	}
}

// DeriveStyle folds the fingerprint indicators and the 0-5 rubric into
// the two style dimensions and resolves the grid cell. A nil rubric
// contributes zero to the rubric terms.
func DeriveStyle(ind cff.Indicators, rubric *rsl.Rubric) StyleResult {
	var pCoh, pInt, pEval float64
	if rubric != nil {
		pCoh = rubric.Coherence / 5
		pInt = rubric.Integration / 5
		pEval = rubric.Evaluation / 5
	}

	structure := numeric.Clamp01(0.30*ind.AAS + 0.25*ind.EDS + 0.15*ind.RDX +
		0.10*(1-ind.IFD) + 0.10*pCoh + 0.10*pInt)
	exploration := numeric.Clamp01(0.30*ind.CTF + 0.25*ind.IFD + 0.15*ind.RMD +
		0.10*ind.RDX + 0.10*pCoh + 0.10*pEval)

	sBand, eBand := band(structure), band(exploration)
	style, _ := library.StyleFor(sBand, eBand)

	return StyleResult{
		Code:            style.Code,
		Label:           style.Label,
		Phrase:          style.Phrase,
		Structure:       numeric.Round2(structure),
		Exploration:     numeric.Round2(exploration),
		StructureBand:   sBand,
		ExplorationBand: eBand,
	}
}
