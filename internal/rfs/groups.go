package rfs

import (
	"fmt"
	"math"
	"sort"

	"github.com/veracify/analysis-cli/internal/library"
	"github.com/veracify/analysis-cli/internal/model"
)

const topGroups = 3

// GroupFit is one ranked job group with its scoring role.
type GroupFit struct {
	Code        string   `json:"code"`
	Label       string   `json:"label"`
	Score       float64  `json:"score"`
	Percentage  int      `json:"percentage"`
	Roles       []string `json:"roles"`
	Recommended string   `json:"recommended_role"`
	Narrative   string   `json:"narrative,omitempty"`
}

// RankGroups scores the supplied roles against the user axes, takes the
// best role score per fixed job group, and returns the top three groups
// ordered by score with lexical group-key tie-break. Only the leading
// group carries a narrative. Roles naming an unknown group never rank.
func RankGroups(roles []model.RoleConfig, ua UserAxes, userArc int) []GroupFit {
	pool := filterRoles(roles, ua, userArc)

	type bestRole struct {
		name  string
		score float64
	}
	best := map[string]bestRole{}
	for _, r := range pool {
		s := ScoreRole(r, ua, userArc)
		cur, ok := best[r.Group]
		if !ok || s > cur.score || (s == cur.score && r.Name < cur.name) {
			best[r.Group] = bestRole{name: r.Name, score: s}
		}
	}

	narratives := map[string]string{}
	var fits []GroupFit
	for _, g := range library.JobGroups() {
		b, ok := best[g.Code]
		if !ok {
			continue
		}
		narratives[g.Code] = g.Narrative
		fits = append(fits, GroupFit{
			Code:        g.Code,
			Label:       g.Label,
			Score:       b.score,
			Percentage:  int(math.Round(b.score * 100)),
			Roles:       g.Roles,
			Recommended: b.name,
		})
	}

	sort.SliceStable(fits, func(i, j int) bool {
		if fits[i].Score != fits[j].Score {
			return fits[i].Score > fits[j].Score
		}
		return fits[i].Code < fits[j].Code
	})
	if len(fits) > topGroups {
		fits = fits[:topGroups]
	}
	if len(fits) > 0 {
		fits[0].Narrative = fmt.Sprintf(narratives[fits[0].Code], fits[0].Percentage)
	}

	return fits
}
