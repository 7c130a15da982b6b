package cff

import (
	"go.uber.org/zap"

	"github.com/veracify/analysis-cli/internal/model"
)

// Policy holds the fingerprint scorer's knobs.
type Policy struct {
	Selection SelectionPolicy
	// ConservativeLock forces the human track regardless of machine
	// score.
	ConservativeLock bool
}

// DefaultPolicy matches the shipped calibration.
func DefaultPolicy() Policy {
	return Policy{Selection: DefaultSelectionPolicy()}
}

// Result is the full cognitive-fingerprint section of the report.
type Result struct {
	Indicators Indicators     `json:"indicators"`
	Axes       Axes           `json:"axes"`
	Patterns   []PatternScore `json:"patterns"`
	Primary    string         `json:"primary_pattern,omitempty"`
	Secondary  string         `json:"secondary_pattern,omitempty"`
	FinalType  FinalType      `json:"final_type"`
}

// Derive runs the fingerprint scorer end to end. Caller-supplied
// indicator overrides are applied before pattern selection and the
// decision tree.
func Derive(in model.Input, pol Policy) Result {
	ind := DeriveIndicators(in.Raw).ApplyOverrides(in.Indicators)
	ax := DeriveAxes(ind)

	ranked := ScorePatterns(ind)
	selected := SelectPatterns(ranked, pol.Selection)
	primary, secondary := PrimarySecondary(selected, ranked)

	finalType := ClassifyFinalType(ax, pol.ConservativeLock)

	zap.L().Debug("cff derived",
		zap.String("final_type", finalType.Code),
		zap.String("track", finalType.Track),
		zap.Int("patterns", len(selected)),
	)

	return Result{
		Indicators: ind,
		Axes:       ax,
		Patterns:   selected,
		Primary:    primary,
		Secondary:  secondary,
		FinalType:  finalType,
	}
}
