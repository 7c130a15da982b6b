// Package cff derives the cognitive-fingerprint section of the report:
// six to eight normalized indicators, up to three observed pattern
// archetypes, and a final type classification with confidence.
package cff

import (
	"github.com/veracify/analysis-cli/internal/model"
	"github.com/veracify/analysis-cli/internal/numeric"
)

// Indicators are the normalized 0-1 fingerprint indicators. The two side
// signals are pass-throughs and stay nil when the input carries neither.
type Indicators struct {
	AAS float64 `json:"aas"` // argument architecture strength
	CTF float64 `json:"ctf"` // cognitive transition fluency
	RMD float64 `json:"rmd"` // reasoning momentum delta
	RDX float64 `json:"rdx"` // revision depth index
	EDS float64 `json:"eds"` // evidence discipline score
	IFD float64 `json:"ifd"` // intuitive free-drift

	KPFSim *float64 `json:"kpf_sim,omitempty"`
	TPSH   *float64 `json:"tps_h,omitempty"`
}

// structureTypeWeight maps the declared argument topology onto the AAS
// formula's third term.
func structureTypeWeight(structureType string) float64 {
	switch structureType {
	case model.StructureNetworked:
		return 1.0
	case model.StructureHierarchical:
		return 0.6
	default:
		return 0.3
	}
}

// DeriveIndicators computes the six required indicators from raw counts.
// Each is an independent fixed weighted formula; all are clamped to
// [0,1]. RMD is the exception in shape: it recenters around 0.5, so a
// progress surplus pushes above and friction pulls below.
func DeriveIndicators(rf model.RawFeatures) Indicators {
	units := rf.Units
	tq := numeric.Clamp01(numeric.SafeDiv(rf.TransitionOK, rf.Transitions))
	drift := numeric.Clamp01(rf.DriftSegments / units)

	aas := 0.4*numeric.Clamp01((rf.Reasons+rf.Warrants)/max1(2*rf.Claims)) +
		0.4*numeric.Clamp01(numeric.SafeDiv(rf.Warrants, rf.Reasons)) +
		0.2*structureTypeWeight(rf.StructureType)

	ctf := 0.5*tq + 0.3*(1-drift) + 0.2*numeric.Sat(rf.Transitions/units, 0.5)

	progress := 0.6*numeric.Clamp01(rf.TransitionOK/units) +
		0.4*numeric.Sat(rf.IntentMarkers/units, 0.2)
	friction := 0.6*drift + 0.4*numeric.Sat(rf.Loops/units, 0.2)
	rmd := numeric.Clamp01(0.5 + progress - friction)

	rdx := 0.5*numeric.Sat(rf.RevisionDepthSum/units, 0.5) +
		0.3*numeric.Sat(rf.Revisions/units, 0.25) +
		0.2*numeric.Sat(rf.SelfRegulationSignals/units, 0.2)

	eds := 0.5*numeric.Sat(rf.Evidence/units, 0.3) +
		0.3*numeric.Clamp01(numeric.SafeDiv(rf.Warrants, rf.Evidence)) +
		0.2*numeric.Sat((rf.Counterpoints+rf.Refutations)/units, 0.15)

	ifd := 0.4*numeric.Sat(rf.Hedges/units, 0.25) +
		0.3*drift +
		0.3*numeric.Sat(rf.Loops/units, 0.2)

	return Indicators{
		AAS:    numeric.Clamp01(aas),
		CTF:    numeric.Clamp01(ctf),
		RMD:    rmd,
		RDX:    numeric.Clamp01(rdx),
		EDS:    numeric.Clamp01(eds),
		IFD:    numeric.Clamp01(ifd),
		KPFSim: rf.KPFSim,
		TPSH:   rf.TPSH,
	}
}

// ApplyOverrides replaces individual indicators with caller-supplied
// values, clamped to [0,1]. Unknown keys are ignored.
func (ind Indicators) ApplyOverrides(overrides map[string]float64) Indicators {
	for k, v := range overrides {
		v = numeric.Clamp01(v)
		switch k {
		case "aas":
			ind.AAS = v
		case "ctf":
			ind.CTF = v
		case "rmd":
			ind.RMD = v
		case "rdx":
			ind.RDX = v
		case "eds":
			ind.EDS = v
		case "ifd":
			ind.IFD = v
		case "kpf_sim":
			vv := v
			ind.KPFSim = &vv
		case "tps_h":
			vv := v
			ind.TPSH = &vv
		}
	}
	return ind
}

// sideAvg returns the mean of the present side signals; ok is false when
// neither exists.
func (ind Indicators) sideAvg() (float64, bool) {
	switch {
	case ind.KPFSim != nil && ind.TPSH != nil:
		return (*ind.KPFSim + *ind.TPSH) / 2, true
	case ind.KPFSim != nil:
		return *ind.KPFSim, true
	case ind.TPSH != nil:
		return *ind.TPSH, true
	}
	return 0, false
}

func max1(x float64) float64 {
	if x < 1 {
		return 1
	}
	return x
}
