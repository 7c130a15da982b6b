package model

import (
	"encoding/json"
	"math"
)

// RoleConfig is a caller-supplied role to score in the role-fit module.
// Weights must cover the four user axes and sum to 1.0.
type RoleConfig struct {
	Name        string             `json:"name"`
	Group       string             `json:"group"`
	Weights     map[string]float64 `json:"weights"`
	MinArcLevel int                `json:"min_arc_level"`
	MinAxes     map[string]float64 `json:"min_axes,omitempty"`
}

// RubricOverride lets a caller bypass rubric derivation with explicit
// 0-5 dimension scores.
type RubricOverride struct {
	Coherence   float64 `json:"coherence"`
	Structure   float64 `json:"structure"`
	Evaluation  float64 `json:"evaluation"`
	Integration float64 `json:"integration"`
}

// Input is the typed form of a derivation request after extraction.
// Every field defaults to its zero value when absent from the payload.
type Input struct {
	Raw            RawFeatures
	Rubric         *RubricOverride
	Indicators     map[string]float64
	RoleConfigs    []RoleConfig
	CohortFRIList  []float64
	ArcLevel       *int
	ActiveEvidence []string
}

// rawFeatureAliases are the accepted payload keys for the raw feature
// block, newest first.
var rawFeatureAliases = []string{"raw_features", "rawFeatures", "features", "raw"}

// ParseInput decodes a request payload and extracts the typed Input.
// Only syntactically invalid JSON is an error; a structurally empty
// payload extracts to a zeroed Input.
func ParseInput(data []byte) (Input, error) {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return Input{}, err
	}
	return ExtractInput(m), nil
}

// ExtractInput maps a loosely shaped payload onto Input. The payload may
// be the analysis record itself or wrapped as {"analysis_input": {...}}.
// Every sub-input is optional and malformed sub-blocks are dropped rather
// than surfaced.
func ExtractInput(m map[string]any) Input {
	if m == nil {
		return Input{Raw: RawFeatures{}.Sanitize()}
	}
	if inner, ok := m["analysis_input"].(map[string]any); ok {
		m = inner
	}

	var in Input

	for _, key := range rawFeatureAliases {
		if block, ok := m[key].(map[string]any); ok {
			decodeInto(block, &in.Raw)
			break
		}
	}
	in.Raw = in.Raw.Sanitize()

	for _, key := range []string{"rsl_rubric", "rubric"} {
		if block, ok := m[key].(map[string]any); ok {
			var r RubricOverride
			decodeInto(block, &r)
			in.Rubric = &r
			break
		}
	}

	if cff, ok := m["cff"].(map[string]any); ok {
		if inds, ok := cff["indicators"].(map[string]any); ok {
			in.Indicators = map[string]float64{}
			for k, v := range inds {
				if f, ok := toFloat(v); ok {
					in.Indicators[k] = f
				}
			}
		}
	}

	if roles, ok := m["role_configs"].([]any); ok {
		for _, r := range roles {
			block, ok := r.(map[string]any)
			if !ok {
				continue
			}
			var rc RoleConfig
			decodeInto(block, &rc)
			in.RoleConfigs = append(in.RoleConfigs, rc)
		}
	}

	if cohort, ok := m["cohort_fri_list"].([]any); ok {
		for _, v := range cohort {
			if f, ok := toFloat(v); ok {
				in.CohortFRIList = append(in.CohortFRIList, f)
			}
		}
	}

	if lvl, ok := toFloat(m["arc_level"]); ok && lvl >= 1 {
		n := int(lvl)
		in.ArcLevel = &n
	}

	if ids, ok := m["active_evidence"].([]any); ok {
		for _, v := range ids {
			if s, ok := v.(string); ok {
				in.ActiveEvidence = append(in.ActiveEvidence, s)
			}
		}
	}

	return in
}

// decodeInto maps a generic JSON object onto a typed struct via a JSON
// round trip, silently ignoring shape mismatches.
func decodeInto(block map[string]any, dst any) {
	data, err := json.Marshal(block)
	if err != nil {
		return
	}
	_ = json.Unmarshal(data, dst)
}

func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return 0, false
		}
		return x, true
	case int:
		return float64(x), true
	case json.Number:
		f, err := x.Float64()
		return f, err == nil
	}
	return 0, false
}
