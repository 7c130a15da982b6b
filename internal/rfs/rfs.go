package rfs

import (
	"go.uber.org/zap"

	"github.com/veracify/analysis-cli/internal/cff"
	"github.com/veracify/analysis-cli/internal/model"
	"github.com/veracify/analysis-cli/internal/rsl"
)

// Result is the full role-fit section of the report. Groups stays empty
// when the caller supplied no role configurations.
type Result struct {
	Style  StyleResult `json:"style"`
	Axes   UserAxes    `json:"axes"`
	Arc    int         `json:"arc_level"`
	Groups []GroupFit  `json:"groups,omitempty"`
}

// Derive runs the role-fit scorer. The arc level comes from the
// structural classification unless the caller pinned one. Role-config
// validation failures are the one hard error in the pipeline and are
// returned rather than papered over.
func Derive(in model.Input, fp cff.Result, sl rsl.Result) (Result, error) {
	ua := DeriveUserAxes(fp.Axes)
	arc := sl.Level.Ordinal
	if in.ArcLevel != nil {
		arc = *in.ArcLevel
	}

	res := Result{
		Style: DeriveStyle(fp.Indicators, &sl.Rubric),
		Axes:  ua,
		Arc:   arc,
	}

	if len(in.RoleConfigs) == 0 {
		zap.L().Debug("rfs derived", zap.String("style", res.Style.Code))
		return res, nil
	}

	if err := ValidateRoles(in.RoleConfigs); err != nil {
		return Result{}, err
	}
	res.Groups = RankGroups(in.RoleConfigs, ua, arc)

	zap.L().Debug("rfs derived",
		zap.String("style", res.Style.Code),
		zap.Int("groups", len(res.Groups)),
	)
	return res, nil
}
