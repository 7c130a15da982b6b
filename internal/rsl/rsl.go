package rsl

import (
	"go.uber.org/zap"

	"github.com/veracify/analysis-cli/internal/model"
)

// Result is the full structural-level section of the report.
type Result struct {
	Rubric    Rubric          `json:"rubric"`
	Level     LevelResult     `json:"level"`
	FRI       FRIResult       `json:"fri"`
	Cohort    CohortResult    `json:"cohort"`
	Stability StabilityResult `json:"stability"`
}

// Derive runs the structural-level scorer end to end. A caller-supplied
// rubric override bypasses rubric derivation; the cohort list may be
// empty.
func Derive(in model.Input, pol Policy) Result {
	rubric := DeriveRubric(in.Raw)
	if in.Rubric != nil {
		rubric = RubricFromOverride(*in.Rubric)
	}

	level := ClassifyLevel(rubric, in.Raw, pol)
	fri := ClassifyFRI(ComputeFRI(rubric.Coherence, rubric.Structure, rubric.Evaluation, rubric.Integration))
	cohort := PositionInCohort(fri.Value, in.CohortFRIList)
	stability := ComputeSRI(rubric.Vector(), in.Raw)

	zap.L().Debug("rsl derived",
		zap.String("level", level.Code),
		zap.Float64("fri", fri.Value),
		zap.Float64("sri", stability.SRI),
	)

	return Result{
		Rubric:    rubric,
		Level:     level,
		FRI:       fri,
		Cohort:    cohort,
		Stability: stability,
	}
}
