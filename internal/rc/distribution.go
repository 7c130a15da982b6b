package rc

import (
	"math"

	"github.com/veracify/analysis-cli/internal/cff"
	"github.com/veracify/analysis-cli/internal/model"
	"github.com/veracify/analysis-cli/internal/numeric"
)

// DistIndicators are the eight named 0-1 inputs of the logistic model.
// Six come from the fingerprint scorer; HIL (human-intent likeness) and
// NSV (non-synthetic variability) derive from raw rates.
type DistIndicators struct {
	AAS float64 `json:"aas"`
	CTF float64 `json:"ctf"`
	RMD float64 `json:"rmd"`
	RDX float64 `json:"rdx"`
	EDS float64 `json:"eds"`
	IFD float64 `json:"ifd"`
	HIL float64 `json:"hil"`
	NSV float64 `json:"nsv"`
}

// Logistic model coefficients.
const (
	beta0   = -1.2
	betaAAS = 0.6
	betaCTF = 0.3
	betaRMD = 0.2
	betaRDX = 1.1
	betaEDS = 0.8
	betaIFD = -0.4
	betaHIL = 1.0
	betaNSV = 0.7
)

// Determination cut points on P(Human).
const (
	humanMin = 0.75
	aiMax    = 0.45
)

// Hybrid confirmation thresholds: without this auxiliary conjunction a
// mid-band probability reclassifies to the likelier pole.
const (
	hybridRDXMax = 0.55
	hybridHILMin = 0.50
	hybridAASMin = 0.50
	hybridEDSMin = 0.45
)

// Distribution is the probabilistic determination with its three-way
// percentage split, normalized to sum to 100.
type Distribution struct {
	PHuman        float64 `json:"p_human"`
	PAI           float64 `json:"p_ai"`
	Determination string  `json:"determination"`
	HumanPct      int     `json:"human_pct"`
	HybridPct     int     `json:"hybrid_pct"`
	AIPct         int     `json:"ai_pct"`
}

// DeriveDistIndicators assembles the logistic model's inputs from the
// fingerprint indicators and raw rates.
func DeriveDistIndicators(ind cff.Indicators, rf model.RawFeatures) DistIndicators {
	units := rf.Units
	drift := numeric.Clamp01(rf.DriftSegments / units)

	hil := numeric.Clamp01(0.6*numeric.Sat(rf.IntentMarkers/units, 0.15) +
		0.4*numeric.Sat(rf.SelfRegulationSignals/units, 0.15))
	nsv := numeric.Clamp01(0.5*numeric.Sat(rf.Evidence/units, 0.25) + 0.5*(1-drift))

	return DistIndicators{
		AAS: ind.AAS, CTF: ind.CTF, RMD: ind.RMD,
		RDX: ind.RDX, EDS: ind.EDS, IFD: ind.IFD,
		HIL: hil, NSV: nsv,
	}
}

// ComputeDistribution runs the logistic model and reconstructs the
// three-way split from the binary probabilities and the final
// determination.
func ComputeDistribution(di DistIndicators) Distribution {
	z := beta0 +
		betaAAS*di.AAS + betaCTF*di.CTF + betaRMD*di.RMD +
		betaRDX*di.RDX + betaEDS*di.EDS + betaIFD*di.IFD +
		betaHIL*di.HIL + betaNSV*di.NSV
	p := numeric.Sigmoid(z)

	det := determine(p, di)

	var h, hy, ai float64
	switch det {
	case "human":
		h, hy, ai = p, 0.65*(1-p), 0.35*(1-p)
	case "ai":
		ai, hy, h = 1-p, 0.55*p, 0.45*p
	default: // hybrid
		hy, h, ai = 0.46, 0.54*p, 0.54*(1-p)
	}
	hPct, hyPct, aiPct := toPercentages(h, hy, ai)

	return Distribution{
		PHuman:        numeric.Round2(p),
		PAI:           numeric.Round2(1 - p),
		Determination: det,
		HumanPct:      hPct,
		HybridPct:     hyPct,
		AIPct:         aiPct,
	}
}

func determine(p float64, di DistIndicators) string {
	switch {
	case p >= humanMin:
		return "human"
	case p < aiMax:
		return "ai"
	}
	// Mid band: hybrid only when the auxiliary conjunction confirms it.
	if di.RDX <= hybridRDXMax && di.HIL >= hybridHILMin &&
		di.AAS >= hybridAASMin && di.EDS >= hybridEDSMin {
		return "hybrid"
	}
	if p >= 0.5 {
		return "human"
	}
	return "ai"
}

// toPercentages normalizes three shares to integers summing to exactly
// 100 by largest remainder.
func toPercentages(shares ...float64) (int, int, int) {
	total := 0.0
	for _, s := range shares {
		total += s
	}
	if total <= 0 {
		return 34, 33, 33
	}

	type part struct {
		idx  int
		base int
		frac float64
	}
	parts := make([]part, len(shares))
	sum := 0
	for i, s := range shares {
		exact := s / total * 100
		base := int(math.Floor(exact))
		parts[i] = part{idx: i, base: base, frac: exact - float64(base)}
		sum += base
	}
	for sum < 100 {
		best := 0
		for i := 1; i < len(parts); i++ {
			if parts[i].frac > parts[best].frac {
				best = i
			}
		}
		parts[best].base++
		parts[best].frac = 0
		sum++
	}

	out := make([]int, len(shares))
	for _, p := range parts {
		out[p.idx] = p.base
	}
	return out[0], out[1], out[2]
}
