// Package rc derives the control-pattern section of the report: the
// three latent control axes, the nearest-centroid behavioral archetype,
// representative evidence lines, and the probabilistic
// human/hybrid/ai distribution.
package rc

import (
	"github.com/veracify/analysis-cli/internal/model"
	"github.com/veracify/analysis-cli/internal/numeric"
)

// ControlVector holds the three control axes, each 0-1.
type ControlVector struct {
	Agency     float64 `json:"agency"`
	Depth      float64 `json:"depth"`
	Reflection float64 `json:"reflection"`
}

// DeriveControlVector computes the A/D/R axes from raw feature rates.
// Each axis is a weighted sum of saturated ratios with small subtractive
// penalties, clamped to [0,1] at the end.
func DeriveControlVector(rf model.RawFeatures) ControlVector {
	units := rf.Units
	tq := numeric.Clamp01(numeric.SafeDiv(rf.TransitionOK, rf.Transitions))
	drift := numeric.Clamp01(rf.DriftSegments / units)

	agency := 0.40*numeric.Sat(rf.IntentMarkers/units, 0.15) +
		0.35*numeric.Sat(rf.Claims/units, 0.25) +
		0.25*tq -
		0.15*drift -
		0.10*numeric.Clamp01(rf.Transitions/units)*(1-tq)

	depth := 0.40*numeric.Sat(rf.RevisionDepthSum/units, 0.5) +
		0.30*numeric.Sat(rf.Warrants/units, 0.12) +
		0.30*numeric.Sat(rf.Evidence/units, 0.25) -
		0.10*numeric.Sat(rf.Loops/units, 0.2)

	reflection := 0.45*numeric.Sat(rf.SelfRegulationSignals/units, 0.15) +
		0.30*numeric.Sat(rf.Revisions/units, 0.2) +
		0.25*numeric.Sat(rf.Hedges/units, 0.25) -
		0.10*drift

	return ControlVector{
		Agency:     numeric.Clamp01(agency),
		Depth:      numeric.Clamp01(depth),
		Reflection: numeric.Clamp01(reflection),
	}
}
