package cff

import (
	"math"

	"github.com/veracify/analysis-cli/internal/library"
	"github.com/veracify/analysis-cli/internal/numeric"
)

// Axes are the composite decision axes derived from the indicators. The
// authenticity pair stays nil without side signals.
type Axes struct {
	Analyticity float64 `json:"analyticity"`
	Flow        float64 `json:"flow"`
	Metacog     float64 `json:"metacog"`
	Regulation  float64 `json:"regulation"`

	Authenticity *float64 `json:"authenticity,omitempty"`
	MachineScore *float64 `json:"machine_score,omitempty"`
}

// DeriveAxes folds the indicators into the four decision axes plus the
// optional authenticity pair.
func DeriveAxes(ind Indicators) Axes {
	ax := Axes{
		Analyticity: (ind.AAS + ind.EDS) / 2,
		Flow:        (ind.CTF + ind.RMD) / 2,
		Metacog:     (ind.RDX + ind.IFD) / 2,
		Regulation:  (ind.RDX + (1 - ind.IFD)) / 2,
	}

	switch {
	case ind.KPFSim != nil && ind.TPSH != nil:
		auth := numeric.Clamp01(0.6*(1-*ind.TPSH) + 0.4**ind.KPFSim)
		machine := numeric.Clamp01(0.7**ind.TPSH + 0.3*(1-*ind.KPFSim))
		ax.Authenticity = &auth
		ax.MachineScore = &machine
	case ind.TPSH != nil:
		auth := numeric.Clamp01(1 - *ind.TPSH)
		machine := numeric.Clamp01(*ind.TPSH)
		ax.Authenticity = &auth
		ax.MachineScore = &machine
	case ind.KPFSim != nil:
		auth := numeric.Clamp01(*ind.KPFSim)
		machine := numeric.Clamp01(1 - *ind.KPFSim)
		ax.Authenticity = &auth
		ax.MachineScore = &machine
	}

	return ax
}

// Track cut points on MachineScore.
const (
	aiTrackMin     = 0.7
	hybridTrackMin = 0.4
)

// FinalType is the outcome of the priority-ordered decision tree.
type FinalType struct {
	Code       string  `json:"code"`
	Label      string  `json:"label"`
	Track      string  `json:"track"`
	Confidence float64 `json:"confidence"`
}

// classifyTrack picks the coarse human/hybrid/ai track. A nil machine
// score or the conservative lock forces the human track.
func classifyTrack(ax Axes, conservativeLock bool) string {
	if conservativeLock || ax.MachineScore == nil {
		return "human"
	}
	switch {
	case *ax.MachineScore >= aiTrackMin:
		return "ai"
	case *ax.MachineScore >= hybridTrackMin:
		return "hybrid"
	default:
		return "human"
	}
}

// axisValue resolves a condition key against the axes.
func axisValue(ax Axes, key string) float64 {
	switch key {
	case "analyticity":
		return ax.Analyticity
	case "flow":
		return ax.Flow
	case "metacog":
		return ax.Metacog
	case "regulation":
		return ax.Regulation
	}
	return 0
}

// ruleMargin returns the minimum slack across a rule's threshold
// conditions, or ok=false when any condition fails. A catch-all rule
// (no conditions) fires with zero margin.
func ruleMargin(ft library.FinalType, ax Axes) (float64, bool) {
	margin := math.Inf(1)
	for key, min := range ft.Conditions {
		slack := axisValue(ax, key) - min
		if slack < 0 {
			return 0, false
		}
		if slack < margin {
			margin = slack
		}
	}
	if math.IsInf(margin, 1) {
		margin = 0
	}
	return margin, true
}

// ClassifyFinalType runs the decision tree: pick the track, evaluate its
// candidate rules in priority order, choose by priority then margin, and
// fall back one track inward to the human rules when no track rule
// fires. Confidence derives from the winning rule's margin.
func ClassifyFinalType(ax Axes, conservativeLock bool) FinalType {
	track := classifyTrack(ax, conservativeLock)

	winner, margin, ok := bestRule(library.FinalTypesForTrack(track), ax)
	if !ok && track != "human" {
		winner, margin, ok = bestRule(library.FinalTypesForTrack("human"), ax)
		track = "human"
	}
	if !ok {
		// The human track carries a catch-all, so this is unreachable
		// with the shipped table; default to its last entry regardless.
		types := library.FinalTypesForTrack("human")
		winner = types[len(types)-1]
		margin = 0
	}

	confidence := numeric.Round2(numeric.Clamp(0.65+0.7*margin, 0.55, 0.92))

	return FinalType{
		Code:       winner.Code,
		Label:      winner.Label,
		Track:      track,
		Confidence: confidence,
	}
}

func bestRule(candidates []library.FinalType, ax Axes) (library.FinalType, float64, bool) {
	var (
		winner    library.FinalType
		bestM     float64
		bestPrio  int
		haveMatch bool
	)
	for _, ft := range candidates {
		m, ok := ruleMargin(ft, ax)
		if !ok {
			continue
		}
		if !haveMatch || ft.Priority < bestPrio || (ft.Priority == bestPrio && m > bestM) {
			winner, bestM, bestPrio, haveMatch = ft, m, ft.Priority, true
		}
	}
	return winner, bestM, haveMatch
}
