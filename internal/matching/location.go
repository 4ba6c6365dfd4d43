package matching

import (
	"fmt"
	"math"

	"github.com/gigmatch/match-engine/internal/domain/models"
	"github.com/pkg/errors"
)

// ScoreLocation rates commute feasibility from the great-circle
// distance between listing and candidate. Drive and transit estimates
// are rough per-mile heuristics (2 and 3 minutes per mile), not a
// routing engine. maxDistance <= 0 falls back to the 25-mile default.
func ScoreLocation(jobCoord, userCoord *models.Coordinate, maxDistance float64) (MatchResult, error) {
	if jobCoord == nil {
		return MatchResult{}, errors.Wrap(ErrInvalidInput, "listing has no resolved coordinates")
	}
	if userCoord == nil {
		return MatchResult{}, errors.Wrap(ErrInvalidInput, "profile has no resolved coordinates")
	}
	if maxDistance <= 0 {
		maxDistance = models.DefaultMaxDistance
	}

	distance := haversineMiles(*jobCoord, *userCoord)

	details := []string{
		fmt.Sprintf("Distance: %.1f miles", distance),
		fmt.Sprintf("Estimated drive time: %d minutes", int(math.Round(distance*2))),
		fmt.Sprintf("Estimated transit time: %d minutes", int(math.Round(distance*3))),
	}

	switch {
	case distance <= 5:
		details = append(details, "Very close to your location - excellent commute")
	case distance <= 15:
		details = append(details, "Reasonable commuting distance")
	case distance <= 25:
		details = append(details, "Longer commute - consider transportation options")
	default:
		details = append(details, "Long distance - may require relocation or remote work arrangement")
	}

	return MatchResult{
		Score:   clamp(1-distance/maxDistance, 0, 1),
		Details: details,
	}, nil
}
