package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/veracify/analysis-cli/internal/report"
)

var (
	analyzeInput  string
	analyzePretty bool
)

// sampleInput is a small built-in record for trying the pipeline without
// preparing a payload.
const sampleInput = `{
  "analysis_input": {
    "raw_features": {
      "units": 10,
      "claims": 4,
      "reasons": 4,
      "evidence": 4,
      "warrants": 2,
      "transitions": 5,
      "transition_ok": 5,
      "revisions": 2,
      "revision_depth_sum": 3,
      "intent_markers": 2,
      "self_regulation_signals": 1,
      "hedges": 1,
      "unit_lengths": [12, 15, 11, 14, 13, 12, 16, 13, 12, 14],
      "unit_depths": [1, 2, 1, 2, 2, 1, 2, 2, 1, 2]
    }
  }
}`

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Derive a full report from one analysis input record",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.Validate("analyze"); err != nil {
			return err
		}

		payload := []byte(sampleInput)
		if analyzeInput != "" {
			data, err := os.ReadFile(analyzeInput)
			if err != nil {
				return eris.Wrap(err, "analyze: read input file")
			}
			payload = data
		}

		out, err := report.DeriveJSON(payload, scoringOptions())
		if err != nil {
			return err
		}
		report.Stamp(out, report.NewMeta(cfg.Report.Language, cfg.Report.VerifyBaseURL))

		enc := json.NewEncoder(cmd.OutOrStdout())
		if analyzePretty {
			enc.SetIndent("", "  ")
		}
		if err := enc.Encode(out); err != nil {
			return fmt.Errorf("encode report: %w", err)
		}
		return nil
	},
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeInput, "input", "", "path to an input JSON record (default: built-in sample)")
	analyzeCmd.Flags().BoolVar(&analyzePretty, "pretty", false, "indent the report JSON")
	rootCmd.AddCommand(analyzeCmd)
}
