package cff

import (
	"sort"

	"github.com/veracify/analysis-cli/internal/library"
	"github.com/veracify/analysis-cli/internal/numeric"
)

// SelectionPolicy bounds the observed-pattern selection.
type SelectionPolicy struct {
	Threshold float64
	Min       int
	Max       int
}

// DefaultSelectionPolicy matches the shipped calibration.
func DefaultSelectionPolicy() SelectionPolicy {
	return SelectionPolicy{Threshold: 0.62, Min: 2, Max: 3}
}

// PatternScore is one scored archetype.
type PatternScore struct {
	Code  string  `json:"code"`
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// scorePattern computes one archetype's score from the indicators.
// HE and MD are not computable without a side signal; ok is false then.
func scorePattern(code string, ind Indicators) (float64, bool) {
	switch code {
	case "SA":
		return 0.5*ind.AAS + 0.3*ind.EDS + 0.2*ind.CTF, true
	case "EX":
		return 0.4*ind.IFD + 0.3*ind.CTF + 0.3*(1-ind.AAS), true
	case "CR":
		return 0.4*ind.EDS + 0.4*ind.RDX + 0.2*ind.AAS, true
	case "MM":
		return 0.5*ind.RMD + 0.3*ind.CTF + 0.2*(1-ind.IFD), true
	case "RF":
		return 0.6*ind.RDX + 0.2*ind.IFD + 0.2*ind.EDS, true
	case "EV":
		return 0.55*ind.EDS + 0.25*ind.AAS + 0.2*ind.RDX, true
	case "HE":
		side, ok := ind.sideAvg()
		if !ok {
			return 0, false
		}
		return 0.6*side + 0.4*ind.CTF, true
	case "MD":
		side, ok := ind.sideAvg()
		if !ok {
			return 0, false
		}
		return 0.7*side + 0.3*(1-ind.RDX), true
	}
	return 0, false
}

// ScorePatterns evaluates every computable archetype, ranked by
// descending score with the library order breaking ties.
func ScorePatterns(ind Indicators) []PatternScore {
	var out []PatternScore
	for _, p := range library.Patterns() {
		score, ok := scorePattern(p.Code, ind)
		if !ok {
			continue
		}
		out = append(out, PatternScore{
			Code:  p.Code,
			Label: p.Label,
			Score: numeric.Round2(numeric.Clamp01(score)),
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out
}

// SelectPatterns applies the threshold-and-ranking selection rule:
// everything at or above the threshold, trimmed to Max by score, then
// backfilled from the full ranked list up to Min when too few qualify.
func SelectPatterns(ranked []PatternScore, pol SelectionPolicy) []PatternScore {
	var selected []PatternScore
	for _, p := range ranked {
		if p.Score >= pol.Threshold {
			selected = append(selected, p)
		}
	}

	if len(selected) > pol.Max {
		selected = selected[:pol.Max]
	}

	for i := 0; len(selected) < pol.Min && i < len(ranked); i++ {
		if !containsCode(selected, ranked[i].Code) {
			selected = append(selected, ranked[i])
		}
	}

	return selected
}

// PrimarySecondary returns the top two selected pattern labels for the
// report, falling back to the top two computable archetypes when
// selection is degenerate.
func PrimarySecondary(selected, ranked []PatternScore) (primary, secondary string) {
	pool := selected
	if len(pool) < 2 {
		pool = ranked
	}
	if len(pool) > 0 {
		primary = pool[0].Code
	}
	if len(pool) > 1 {
		secondary = pool[1].Code
	}
	return primary, secondary
}

func containsCode(ps []PatternScore, code string) bool {
	for _, p := range ps {
		if p.Code == code {
			return true
		}
	}
	return false
}
