// Package report orchestrates the four scorers over one extracted input
// and merges their sections into a single nested record.
package report

import (
	"encoding/json"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/veracify/analysis-cli/internal/cff"
	"github.com/veracify/analysis-cli/internal/model"
	"github.com/veracify/analysis-cli/internal/rc"
	"github.com/veracify/analysis-cli/internal/rfs"
	"github.com/veracify/analysis-cli/internal/rsl"
)

// Options carries the per-scorer policies resolved from configuration.
type Options struct {
	RSL rsl.Policy
	CFF cff.Policy
}

// Derive runs the full pipeline over one input and merges the sections.
// A role-config validation failure surfaces as an error leaf inside the
// rfs section; the other three sections are never withheld because of
// it.
func Derive(in model.Input, opts Options) map[string]any {
	start := time.Now()

	sl := rsl.Derive(in, opts.RSL)
	fp := cff.Derive(in, opts.CFF)
	ctl := rc.Derive(in, fp.Indicators)

	out := map[string]any{}
	DeepMerge(out, map[string]any{"rsl": toMap(sl)})
	DeepMerge(out, map[string]any{"cff": toMap(fp)})
	DeepMerge(out, map[string]any{"rc": toMap(ctl)})

	fit, err := rfs.Derive(in, fp, sl)
	if err != nil {
		DeepMerge(out, map[string]any{"rfs": map[string]any{"error": err.Error()}})
	} else {
		DeepMerge(out, map[string]any{"rfs": toMap(fit)})
	}

	zap.L().Info("report derived",
		zap.String("level", sl.Level.Code),
		zap.String("final_type", fp.FinalType.Code),
		zap.String("archetype", ctl.Archetype.Code),
		zap.Bool("rfs_error", err != nil),
		zap.Duration("duration", time.Since(start)),
	)

	return out
}

// DeriveJSON parses a raw request payload and derives the report.
func DeriveJSON(payload []byte, opts Options) (map[string]any, error) {
	in, err := model.ParseInput(payload)
	if err != nil {
		return nil, eris.Wrap(err, "report: parse input")
	}
	return Derive(in, opts), nil
}

// toMap flattens a typed result into the generic section shape the merge
// operates on.
func toMap(v any) map[string]any {
	data, err := json.Marshal(v)
	if err != nil {
		return map[string]any{}
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return map[string]any{}
	}
	return m
}
