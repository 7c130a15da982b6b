// Package library ships the closed, versioned archetype tables consumed
// by the scorers: structural levels, fingerprint patterns, final
// determination types, control-pattern centroids, evidence templates,
// cognitive styles and job groups. The tables are embedded YAML, decoded
// once at startup, and never mutated.
package library

import (
	_ "embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed data/levels.yaml
var levelsYAML []byte

//go:embed data/patterns.yaml
var patternsYAML []byte

//go:embed data/final_types.yaml
var finalTypesYAML []byte

//go:embed data/control_patterns.yaml
var controlYAML []byte

//go:embed data/evidence_templates.yaml
var evidenceYAML []byte

//go:embed data/styles.yaml
var stylesYAML []byte

//go:embed data/job_groups.yaml
var jobGroupsYAML []byte

// Level is one rung of the structural level ladder. Gates are ordered by
// ascending Threshold; the highest passing gate wins.
type Level struct {
	Code        string  `yaml:"code"`
	Ordinal     int     `yaml:"ordinal"`
	Threshold   float64 `yaml:"threshold"`
	Label       string  `yaml:"label"`
	Description string  `yaml:"description"`
}

// FRIBand maps a friction/reliability index range to interpretive text.
type FRIBand struct {
	Min            float64 `yaml:"min"`
	Label          string  `yaml:"label"`
	Interpretation string  `yaml:"interpretation"`
}

// Pattern is one of the eight observed fingerprint archetypes. Its score
// formula lives in the cff package; the table carries identity and text.
type Pattern struct {
	Code            string `yaml:"code"`
	Label           string `yaml:"label"`
	Description     string `yaml:"description"`
	NeedsSideSignal bool   `yaml:"needs_side_signal"`
}

// FinalType is one of the fourteen final determination types. Conditions
// map axis name to minimum value; an empty map is a track catch-all.
type FinalType struct {
	Code       string             `yaml:"code"`
	Track      string             `yaml:"track"`
	Priority   int                `yaml:"priority"`
	Label      string             `yaml:"label"`
	Conditions map[string]float64 `yaml:"conditions"`
}

// ControlPattern is one of the nine behavioral control archetypes with
// its centroid in (A, D, R) space.
type ControlPattern struct {
	Code           string  `yaml:"code"`
	A              float64 `yaml:"a"`
	D              float64 `yaml:"d"`
	R              float64 `yaml:"r"`
	Description    string  `yaml:"description"`
	Interpretation string  `yaml:"interpretation"`
	Rationale      string  `yaml:"rationale"`
}

// EvidenceTemplate is one of the eighteen evidence lines, grouped by
// category with a globally unique priority rank (lower is stronger).
type EvidenceTemplate struct {
	ID       string `yaml:"id"`
	Group    string `yaml:"group"`
	Priority int    `yaml:"priority"`
	Text     string `yaml:"text"`
}

// Style is one cell of the 3x3 structure/exploration grid.
type Style struct {
	Code        string `yaml:"code"`
	Structure   string `yaml:"structure"`
	Exploration string `yaml:"exploration"`
	Label       string `yaml:"label"`
	Phrase      string `yaml:"phrase"`
}

// JobGroup is one of the fifteen fixed job groups with its member roles.
// Narrative is a fmt template taking the group percentage (%d).
type JobGroup struct {
	Code      string   `yaml:"code"`
	Label     string   `yaml:"label"`
	Roles     []string `yaml:"roles"`
	Narrative string   `yaml:"narrative"`
}

var (
	levels            []Level
	patterns          []Pattern
	finalTypes        []FinalType
	controlPatterns   []ControlPattern
	evidenceTemplates []EvidenceTemplate
	styles            []Style
	jobGroups         []JobGroup
)

func init() {
	mustLoad(levelsYAML, &levels, "levels")
	mustLoad(patternsYAML, &patterns, "patterns")
	mustLoad(finalTypesYAML, &finalTypes, "final_types")
	mustLoad(controlYAML, &controlPatterns, "control_patterns")
	mustLoad(evidenceYAML, &evidenceTemplates, "evidence_templates")
	mustLoad(stylesYAML, &styles, "styles")
	mustLoad(jobGroupsYAML, &jobGroups, "job_groups")

	sort.SliceStable(levels, func(i, j int) bool { return levels[i].Ordinal < levels[j].Ordinal })
}

func mustLoad(data []byte, dst any, name string) {
	if err := yaml.Unmarshal(data, dst); err != nil {
		panic(fmt.Sprintf("library: decode %s: %v", name, err))
	}
}

// Levels returns the level ladder ordered by ordinal.
func Levels() []Level { return levels }

// FRIBands returns the six friction/reliability bands ordered by
// descending Min.
func FRIBands() []FRIBand { return friBands }

// Patterns returns the eight observed-pattern archetypes.
func Patterns() []Pattern { return patterns }

// PatternByCode looks up a pattern archetype; ok is false for unknown
// codes.
func PatternByCode(code string) (Pattern, bool) {
	for _, p := range patterns {
		if p.Code == code {
			return p, true
		}
	}
	return Pattern{}, false
}

// FinalTypes returns the fourteen final determination types.
func FinalTypes() []FinalType { return finalTypes }

// FinalTypesForTrack returns the types of one track ordered by priority.
func FinalTypesForTrack(track string) []FinalType {
	var out []FinalType
	for _, ft := range finalTypes {
		if ft.Track == track {
			out = append(out, ft)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Priority < out[j].Priority })
	return out
}

// ControlPatterns returns the nine control archetypes in registration
// order, which also resolves exact centroid-distance ties.
func ControlPatterns() []ControlPattern { return controlPatterns }

// EvidenceTemplates returns the eighteen evidence templates.
func EvidenceTemplates() []EvidenceTemplate { return evidenceTemplates }

// Styles returns the nine cognitive styles of the 3x3 grid.
func Styles() []Style { return styles }

// StyleFor returns the style for a (structure, exploration) band pair.
func StyleFor(structureBand, explorationBand string) (Style, bool) {
	for _, s := range styles {
		if s.Structure == structureBand && s.Exploration == explorationBand {
			return s, true
		}
	}
	return Style{}, false
}

// JobGroups returns the fifteen fixed job groups.
func JobGroups() []JobGroup { return jobGroups }

// friBands stays in code: the band cut points are part of the FRI formula
// calibration, not presentation data.
var friBands = []FRIBand{
	{Min: 4.5, Label: "EXCEPTIONAL", Interpretation: "Reasoning holds together under pressure with consistently linked support; conclusions can be taken at face value."},
	{Min: 3.8, Label: "STRONG", Interpretation: "Support chains are mostly intact; occasional gaps do not threaten the overall argument."},
	{Min: 3.0, Label: "SOLID", Interpretation: "The core argument is reliable though some claims lean on thin or unlinked support."},
	{Min: 2.2, Label: "DEVELOPING", Interpretation: "Noticeable friction between claims and their support; conclusions need independent checking."},
	{Min: 1.2, Label: "FRAGILE", Interpretation: "Support is sparse or disconnected; the argument is easily destabilized."},
	{Min: 0.0, Label: "UNRELIABLE", Interpretation: "Claims float free of support; treat conclusions as unverified."},
}
