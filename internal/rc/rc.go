package rc

import (
	"go.uber.org/zap"

	"github.com/veracify/analysis-cli/internal/cff"
	"github.com/veracify/analysis-cli/internal/model"
)

// Result is the full control-pattern section of the report.
type Result struct {
	Vector       ControlVector  `json:"vector"`
	Archetype    Archetype      `json:"archetype"`
	Evidence     []EvidenceLine `json:"evidence"`
	Distribution Distribution   `json:"distribution"`
}

// Derive runs the control-pattern scorer. The fingerprint indicators
// computed upstream feed the logistic distribution; the active evidence
// IDs are externally determined and only consumed here.
func Derive(in model.Input, ind cff.Indicators) Result {
	vec := DeriveControlVector(in.Raw)
	arch := Classify(vec)
	evidence := SelectEvidence(in.ActiveEvidence)
	dist := ComputeDistribution(DeriveDistIndicators(ind, in.Raw))

	zap.L().Debug("rc derived",
		zap.String("archetype", arch.Code),
		zap.String("determination", dist.Determination),
		zap.Float64("p_human", dist.PHuman),
	)

	return Result{
		Vector:       vec,
		Archetype:    arch,
		Evidence:     evidence,
		Distribution: dist,
	}
}
