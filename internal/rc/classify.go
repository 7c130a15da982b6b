package rc

import (
	"math"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/veracify/analysis-cli/internal/library"
	"github.com/veracify/analysis-cli/internal/numeric"
)

// Reliability cut points on centroid distance.
const (
	reliabilityHighMax   = 0.12
	reliabilityMediumMax = 0.22
)

// Archetype is the nearest-centroid classification outcome.
type Archetype struct {
	Code           string  `json:"code"`
	Label          string  `json:"label"`
	Distance       float64 `json:"distance"`
	Reliability    string  `json:"reliability"`
	Description    string  `json:"description"`
	Interpretation string  `json:"interpretation"`
	Rationale      string  `json:"rationale"`
}

var titleCaser = cases.Title(language.English)

// DisplayLabel derives a human-readable label from a snake_case
// archetype key.
func DisplayLabel(code string) string {
	return titleCaser.String(strings.ReplaceAll(code, "_", " "))
}

// Classify assigns the control vector to the nearest of the nine fixed
// centroids by Euclidean distance. Exact ties resolve to the first
// registered centroid.
func Classify(cv ControlVector) Archetype {
	patterns := library.ControlPatterns()

	best := patterns[0]
	bestDist := distance(cv, best)
	for _, p := range patterns[1:] {
		if d := distance(cv, p); d < bestDist {
			best, bestDist = p, d
		}
	}

	return Archetype{
		Code:           best.Code,
		Label:          DisplayLabel(best.Code),
		Distance:       numeric.Round2(bestDist),
		Reliability:    reliabilityBand(bestDist),
		Description:    best.Description,
		Interpretation: best.Interpretation,
		Rationale:      best.Rationale,
	}
}

func distance(cv ControlVector, p library.ControlPattern) float64 {
	da := cv.Agency - p.A
	dd := cv.Depth - p.D
	dr := cv.Reflection - p.R
	return math.Sqrt(da*da + dd*dd + dr*dr)
}

func reliabilityBand(dist float64) string {
	switch {
	case dist < reliabilityHighMax:
		return "HIGH"
	case dist < reliabilityMediumMax:
		return "MEDIUM"
	default:
		return "LOW"
	}
}
