// Package numeric holds the normalization and statistical helpers shared
// by every scorer. All functions are total: non-finite input is coerced
// to a safe bound instead of propagating NaN into the report.
package numeric

import "math"

// Clamp bounds x to [lo, hi]. NaN and -Inf collapse to lo, +Inf to hi.
func Clamp(x, lo, hi float64) float64 {
	if math.IsNaN(x) {
		return lo
	}
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Clamp01 bounds x to [0, 1].
func Clamp01(x float64) float64 {
	return Clamp(x, 0, 1)
}

// Clamp0To5 bounds x to [0, 5].
func Clamp0To5(x float64) float64 {
	return Clamp(x, 0, 5)
}

// SafeDiv divides a by max(1, b). This is not true division: it exists so
// count ratios degrade to the raw count instead of exploding when the
// denominator is zero or fractional.
func SafeDiv(a, b float64) float64 {
	if math.IsNaN(a) {
		return 0
	}
	return a / math.Max(1, b)
}

// Sat is the saturating map x/(x+k), compressing an unbounded non-negative
// value into [0,1). Non-positive x maps to 0. k is a per-use calibration
// constant marking the half-saturation point.
func Sat(x, k float64) float64 {
	if math.IsNaN(x) || x <= 0 {
		return 0
	}
	if k <= 0 {
		return 1
	}
	return x / (x + k)
}

// Peak01 is a triangular bump: 1 at target, decaying linearly to 0 at
// target±width, 0 beyond.
func Peak01(x, target, width float64) float64 {
	if math.IsNaN(x) || width <= 0 {
		return 0
	}
	d := math.Abs(x - target)
	return Clamp01(1 - d/width)
}

// Entropy01 returns the Shannon entropy of a non-negative count vector,
// normalized by the maximum entropy for its cardinality. A vector with
// all mass in one bucket, total mass ≤ 0, or fewer than two buckets
// scores 0.
func Entropy01(counts []float64) float64 {
	if len(counts) < 2 {
		return 0
	}
	total := 0.0
	for _, c := range counts {
		if math.IsNaN(c) || c <= 0 {
			continue
		}
		total += c
	}
	if total <= 0 {
		return 0
	}
	h := 0.0
	for _, c := range counts {
		if math.IsNaN(c) || c <= 0 {
			continue
		}
		p := c / total
		h -= p * math.Log(p)
	}
	return Clamp01(h / math.Log(float64(len(counts))))
}

// Mean returns the arithmetic mean, 0 for an empty slice.
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	s := 0.0
	for _, x := range xs {
		s += x
	}
	return s / float64(len(xs))
}

// Std returns the population standard deviation, 0 for fewer than two
// entries.
func Std(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	m := Mean(xs)
	ss := 0.0
	for _, x := range xs {
		d := x - m
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(xs)))
}

// CV returns the coefficient of variation (Std/|Mean|), 0 when the mean
// is zero.
func CV(xs []float64) float64 {
	m := Mean(xs)
	if m == 0 {
		return 0
	}
	return Std(xs) / math.Abs(m)
}

// Percentile01 returns the fraction of peers strictly below v. An empty
// peer list yields the neutral 0.5.
func Percentile01(v float64, peers []float64) float64 {
	if len(peers) == 0 {
		return 0.5
	}
	below := 0
	for _, p := range peers {
		if p < v {
			below++
		}
	}
	return float64(below) / float64(len(peers))
}

// Sigmoid is the logistic function 1/(1+e^-x).
func Sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

// Round2 rounds to two decimal places.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}
