package cff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScorePatterns_NoSideSignalSkipsHEMD(t *testing.T) {
	ranked := ScorePatterns(Indicators{AAS: 0.5, CTF: 0.5, RMD: 0.5, RDX: 0.5, EDS: 0.5, IFD: 0.5})
	require.Len(t, ranked, 6)
	for _, p := range ranked {
		assert.NotContains(t, []string{"HE", "MD"}, p.Code)
	}
}

func TestScorePatterns_SideSignalEnablesHEMD(t *testing.T) {
	tps := 0.9
	ranked := ScorePatterns(Indicators{CTF: 0.5, TPSH: &tps})
	require.Len(t, ranked, 8)

	codes := map[string]float64{}
	for _, p := range ranked {
		codes[p.Code] = p.Score
	}
	// HE = 0.6*0.9 + 0.4*0.5 = 0.74; MD = 0.7*0.9 + 0.3*1 = 0.93.
	assert.InDelta(t, 0.74, codes["HE"], 0.005)
	assert.InDelta(t, 0.93, codes["MD"], 0.005)
}

func TestScorePatterns_RankedDescending(t *testing.T) {
	ranked := ScorePatterns(Indicators{AAS: 0.9, CTF: 0.7, RMD: 0.6, RDX: 0.2, EDS: 0.8, IFD: 0.1})
	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].Score, ranked[i].Score)
	}
}

func TestSelectPatterns_TrimsToMax(t *testing.T) {
	// Strong across the board: SA, CR, MM, EV all clear 0.62.
	ranked := ScorePatterns(Indicators{AAS: 0.9, CTF: 0.9, RMD: 0.9, RDX: 0.9, EDS: 0.9, IFD: 0.3})
	selected := SelectPatterns(ranked, DefaultSelectionPolicy())

	assert.Len(t, selected, 3)
	// Highest scorers kept.
	assert.Equal(t, ranked[0].Code, selected[0].Code)
}

func TestSelectPatterns_BackfillsToMin(t *testing.T) {
	// Weak input: nothing clears the threshold, so the top two ranked
	// archetypes are backfilled regardless.
	ranked := ScorePatterns(Indicators{AAS: 0.2, CTF: 0.2, RMD: 0.3, RDX: 0.1, EDS: 0.2, IFD: 0.2})
	selected := SelectPatterns(ranked, DefaultSelectionPolicy())

	require.Len(t, selected, 2)
	assert.Equal(t, ranked[0].Code, selected[0].Code)
	assert.Equal(t, ranked[1].Code, selected[1].Code)
}

func TestSelectPatterns_EmptyRanked(t *testing.T) {
	assert.Empty(t, SelectPatterns(nil, DefaultSelectionPolicy()))
}

func TestPrimarySecondary(t *testing.T) {
	ranked := []PatternScore{{Code: "SA", Score: 0.9}, {Code: "MM", Score: 0.8}, {Code: "EV", Score: 0.7}}

	p, s := PrimarySecondary(ranked[:2], ranked)
	assert.Equal(t, "SA", p)
	assert.Equal(t, "MM", s)

	// Degenerate selection falls back to the ranked list.
	p, s = PrimarySecondary(ranked[:1], ranked)
	assert.Equal(t, "SA", p)
	assert.Equal(t, "MM", s)

	p, s = PrimarySecondary(nil, nil)
	assert.Empty(t, p)
	assert.Empty(t, s)
}
