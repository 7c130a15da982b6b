package rfs

import (
	"math"

	"github.com/rotisserie/eris"

	"github.com/veracify/analysis-cli/internal/cff"
	"github.com/veracify/analysis-cli/internal/model"
	"github.com/veracify/analysis-cli/internal/numeric"
)

// weightTolerance is the permitted drift when role weights are checked
// against a sum of 1.0.
const weightTolerance = 1e-6

// maxArcBoost caps the bonus granted for exceeding a role's minimum arc
// level.
const maxArcBoost = 0.04

// UserAxes are the four role-scoring axes derived for the user.
type UserAxes struct {
	Analyticity   float64 `json:"analyticity"`
	Flow          float64 `json:"flow"`
	Metacognition float64 `json:"metacognition"`
	Authenticity  float64 `json:"authenticity"`
}

// DeriveUserAxes projects the fingerprint axes onto the role axes.
// Authenticity defaults to the 0.5 midpoint when no side signals were
// available upstream.
func DeriveUserAxes(ax cff.Axes) UserAxes {
	auth := 0.5
	if ax.Authenticity != nil {
		auth = *ax.Authenticity
	}
	return UserAxes{
		Analyticity:   ax.Analyticity,
		Flow:          ax.Flow,
		Metacognition: ax.Metacog,
		Authenticity:  auth,
	}
}

func (ua UserAxes) value(key string) float64 {
	switch key {
	case "analyticity":
		return ua.Analyticity
	case "flow":
		return ua.Flow
	case "metacognition":
		return ua.Metacognition
	case "authenticity":
		return ua.Authenticity
	}
	return 0
}

func isAxisKey(key string) bool {
	switch key {
	case "analyticity", "flow", "metacognition", "authenticity":
		return true
	}
	return false
}

// ValidateRoles checks every role's weight map: known axis keys only,
// each weight in [0,1], and a total of 1.0 within tolerance. Silently
// renormalizing bad weights would shift scores unnoticed, so violations
// are hard errors.
func ValidateRoles(roles []model.RoleConfig) error {
	for _, r := range roles {
		sum := 0.0
		for key, w := range r.Weights {
			if !isAxisKey(key) {
				return eris.Errorf("rfs: role %q: unknown weight axis %q", r.Name, key)
			}
			if w < 0 || w > 1 {
				return eris.Errorf("rfs: role %q: weight %s=%g outside [0,1]", r.Name, key, w)
			}
			sum += w
		}
		if math.Abs(sum-1.0) > weightTolerance {
			return eris.Errorf("rfs: role %q: weights sum to %g, want 1.0", r.Name, sum)
		}
	}
	return nil
}

// ScoreRole is the weighted axis sum plus the capped arc boost, clamped
// to [0,1].
func ScoreRole(r model.RoleConfig, ua UserAxes, userArc int) float64 {
	base := 0.0
	for key, w := range r.Weights {
		base += w * ua.value(key)
	}

	boost := 0.0
	if userArc > r.MinArcLevel {
		boost = math.Min(maxArcBoost, 0.01*float64(userArc-r.MinArcLevel))
	}

	return numeric.Clamp01(base + boost)
}

func meetsRequirements(r model.RoleConfig, ua UserAxes, userArc int) bool {
	if userArc < r.MinArcLevel {
		return false
	}
	for key, min := range r.MinAxes {
		if ua.value(key) < min {
			return false
		}
	}
	return true
}

// filterRoles drops roles whose minimum requirements the user misses.
// When that would empty the pool entirely, the unfiltered pool is kept
// so the ranking still produces output.
func filterRoles(roles []model.RoleConfig, ua UserAxes, userArc int) []model.RoleConfig {
	var out []model.RoleConfig
	for _, r := range roles {
		if meetsRequirements(r, ua, userArc) {
			out = append(out, r)
		}
	}
	if len(out) == 0 {
		return roles
	}
	return out
}
