// Package model defines the input records consumed by the derivation
// pipeline and the tolerant extraction step that maps loosely shaped
// request payloads onto them.
package model

import (
	"math"
)

// Structure type weights used by the CFF analyticity indicator.
const (
	StructureLinear       = "linear"
	StructureHierarchical = "hierarchical"
	StructureNetworked    = "networked"
)

// RawFeatures is the sole input entity of the pipeline: counts and
// per-unit arrays describing a text's reasoning structure. All counts are
// sanitized to non-negative values before scoring; Units is floored to 1
// wherever it serves as a divisor.
type RawFeatures struct {
	Units                 float64 `json:"units"`
	Claims                float64 `json:"claims"`
	Reasons               float64 `json:"reasons"`
	Evidence              float64 `json:"evidence"`
	Warrants              float64 `json:"warrants"`
	Counterpoints         float64 `json:"counterpoints"`
	Refutations           float64 `json:"refutations"`
	Transitions           float64 `json:"transitions"`
	TransitionOK          float64 `json:"transition_ok"`
	Revisions             float64 `json:"revisions"`
	RevisionDepthSum      float64 `json:"revision_depth_sum"`
	IntentMarkers         float64 `json:"intent_markers"`
	DriftSegments         float64 `json:"drift_segments"`
	Hedges                float64 `json:"hedges"`
	Loops                 float64 `json:"loops"`
	SelfRegulationSignals float64 `json:"self_regulation_signals"`
	AdjacencyLinks        float64 `json:"adjacency_links"`

	// StructureType is one of linear, hierarchical, networked.
	StructureType string `json:"structure_type"`

	// Per-unit arrays are trusted only when their length equals Units.
	UnitLengths []float64 `json:"unit_lengths"`
	UnitDepths  []float64 `json:"unit_depths"`

	// Externally computed side signals; absent unless supplied.
	KPFSim *float64 `json:"kpf_sim"`
	TPSH   *float64 `json:"tps_h"`
}

// Sanitize coerces the record into its invariant form: counts
// non-negative and finite, Units at least 1, untrusted per-unit arrays
// dropped, side signals clamped to [0,1].
func (rf RawFeatures) Sanitize() RawFeatures {
	rf.Units = math.Max(1, nonNeg(rf.Units))
	rf.Claims = nonNeg(rf.Claims)
	rf.Reasons = nonNeg(rf.Reasons)
	rf.Evidence = nonNeg(rf.Evidence)
	rf.Warrants = nonNeg(rf.Warrants)
	rf.Counterpoints = nonNeg(rf.Counterpoints)
	rf.Refutations = nonNeg(rf.Refutations)
	rf.Transitions = nonNeg(rf.Transitions)
	rf.TransitionOK = nonNeg(rf.TransitionOK)
	rf.Revisions = nonNeg(rf.Revisions)
	rf.RevisionDepthSum = nonNeg(rf.RevisionDepthSum)
	rf.IntentMarkers = nonNeg(rf.IntentMarkers)
	rf.DriftSegments = nonNeg(rf.DriftSegments)
	rf.Hedges = nonNeg(rf.Hedges)
	rf.Loops = nonNeg(rf.Loops)
	rf.SelfRegulationSignals = nonNeg(rf.SelfRegulationSignals)
	rf.AdjacencyLinks = nonNeg(rf.AdjacencyLinks)

	switch rf.StructureType {
	case StructureLinear, StructureHierarchical, StructureNetworked:
	default:
		rf.StructureType = StructureLinear
	}

	if len(rf.UnitLengths) != int(rf.Units) {
		rf.UnitLengths = nil
	}
	if len(rf.UnitDepths) != int(rf.Units) {
		rf.UnitDepths = nil
	}

	rf.KPFSim = clampSignal(rf.KPFSim)
	rf.TPSH = clampSignal(rf.TPSH)

	return rf
}

// HasSideSignal reports whether at least one external side signal is
// present.
func (rf RawFeatures) HasSideSignal() bool {
	return rf.KPFSim != nil || rf.TPSH != nil
}

func nonNeg(x float64) float64 {
	if math.IsNaN(x) || x < 0 {
		return 0
	}
	if math.IsInf(x, 1) {
		return 0
	}
	return x
}

func clampSignal(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p
	if math.IsNaN(v) {
		return nil
	}
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	return &v
}
