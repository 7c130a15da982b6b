package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/veracify/analysis-cli/internal/cff"
	"github.com/veracify/analysis-cli/internal/config"
	"github.com/veracify/analysis-cli/internal/report"
	"github.com/veracify/analysis-cli/internal/rsl"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "veracify",
	Short: "Deterministic text-analysis scoring pipeline",
	Long:  "Derives a structural-level, cognitive-fingerprint, control-pattern and role-fit report from a single analysis input record.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

// scoringOptions maps the loaded configuration onto the scorer policies.
func scoringOptions() report.Options {
	return report.Options{
		RSL: rsl.Policy{
			Strict:  cfg.Scoring.RSL.Strict,
			AllowL6: cfg.Scoring.RSL.AllowL6,
		},
		CFF: cff.Policy{
			Selection: cff.SelectionPolicy{
				Threshold: cfg.Scoring.CFF.PatternThreshold,
				Min:       cfg.Scoring.CFF.PatternMin,
				Max:       cfg.Scoring.CFF.PatternMax,
			},
			ConservativeLock: cfg.Scoring.CFF.ConservativeLock,
		},
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
