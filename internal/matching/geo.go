package matching

import (
	"math"

	"github.com/gigmatch/match-engine/internal/domain/models"
)

const earthRadiusMiles = 3963

// haversineMiles is the great-circle distance between two coordinates.
func haversineMiles(a, b models.Coordinate) float64 {
	dLat := toRadians(b.Latitude - a.Latitude)
	dLon := toRadians(b.Longitude - a.Longitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(a.Latitude))*math.Cos(toRadians(b.Latitude))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	return 2 * earthRadiusMiles * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
