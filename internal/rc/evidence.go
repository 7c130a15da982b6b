package rc

import (
	"sort"

	"github.com/veracify/analysis-cli/internal/library"
)

// maxEvidenceLines bounds the selection; a shortfall yields fewer lines,
// never padding.
const maxEvidenceLines = 4

// coreGroups are tried first, in this order, one line each.
var coreGroups = []string{"revision", "transition", "counter", "non_auto"}

// fillGroups supply the remaining slots after the core pass.
var fillGroups = []string{"evidence", "specificity"}

// EvidenceLine is one selected template.
type EvidenceLine struct {
	ID    string `json:"id"`
	Group string `json:"group"`
	Text  string `json:"text"`
}

// SelectEvidence picks up to four representative lines from the active
// template IDs: the best (lowest priority rank) candidate of each core
// group in fixed order, then fills from the evidence and specificity
// groups, then from any still-unused active candidate by rank.
func SelectEvidence(activeIDs []string) []EvidenceLine {
	active := map[string]bool{}
	for _, id := range activeIDs {
		active[id] = true
	}

	byGroup := map[string][]library.EvidenceTemplate{}
	var allActive []library.EvidenceTemplate
	for _, tpl := range library.EvidenceTemplates() {
		if !active[tpl.ID] {
			continue
		}
		byGroup[tpl.Group] = append(byGroup[tpl.Group], tpl)
		allActive = append(allActive, tpl)
	}
	for g := range byGroup {
		sort.SliceStable(byGroup[g], func(i, j int) bool {
			return byGroup[g][i].Priority < byGroup[g][j].Priority
		})
	}
	sort.SliceStable(allActive, func(i, j int) bool {
		return allActive[i].Priority < allActive[j].Priority
	})

	used := map[string]bool{}
	var out []EvidenceLine

	take := func(tpl library.EvidenceTemplate) {
		if used[tpl.ID] || len(out) >= maxEvidenceLines {
			return
		}
		used[tpl.ID] = true
		out = append(out, EvidenceLine{ID: tpl.ID, Group: tpl.Group, Text: tpl.Text})
	}

	for _, g := range coreGroups {
		if cands := byGroup[g]; len(cands) > 0 {
			take(cands[0])
		}
	}
	for _, g := range fillGroups {
		for _, tpl := range byGroup[g] {
			take(tpl)
		}
	}
	for _, tpl := range allActive {
		take(tpl)
	}

	return out
}
