package matching

import (
	"testing"

	"github.com/gigmatch/match-engine/internal/domain/models"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_HaversineMiles_OneDegreeOfLongitudeAtEquator(t *testing.T) {
	distance := haversineMiles(models.Coordinate{}, models.Coordinate{Longitude: 1})

	assert.InDelta(t, 69.17, distance, 0.5)
}

func Test_ScoreLocation_IdenticalCoordinates_ShouldBePerfect(t *testing.T) {
	here := &models.Coordinate{Latitude: 37.7749, Longitude: -122.4194}

	for _, maxDistance := range []float64{1, 25, 100} {
		result, err := ScoreLocation(here, here, maxDistance)

		require.NoError(t, err)
		assert.Equal(t, 1.0, result.Score)
		assert.Equal(t, "Distance: 0.0 miles", result.Details[0])
	}
}

func Test_ScoreLocation_BeyondMaxDistance_ShouldClampToZero(t *testing.T) {
	result, err := ScoreLocation(
		&models.Coordinate{},
		&models.Coordinate{Longitude: 1}, // ~69 miles
		25)

	require.NoError(t, err)
	assert.Equal(t, 0.0, result.Score)
	assert.Contains(t, result.Details, "Long distance - may require relocation or remote work arrangement")
}

func Test_ScoreLocation_CloseBy_ShouldMentionExcellentCommute(t *testing.T) {
	result, err := ScoreLocation(
		&models.Coordinate{Latitude: 37.7749, Longitude: -122.4194},
		&models.Coordinate{Latitude: 37.7750, Longitude: -122.4195},
		25)

	require.NoError(t, err)
	assert.InDelta(t, 1.0, result.Score, 0.01)
	assert.Contains(t, result.Details, "Very close to your location - excellent commute")
}

func Test_ScoreLocation_MissingCoordinates_ShouldFail(t *testing.T) {
	coord := &models.Coordinate{Latitude: 1, Longitude: 2}

	_, err := ScoreLocation(nil, coord, 25)
	assert.True(t, errors.Is(err, ErrInvalidInput))

	_, err = ScoreLocation(coord, nil, 25)
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func Test_ScoreLocation_ZeroMaxDistance_ShouldUseDefault(t *testing.T) {
	// ~6.9 miles apart; with the 25 mile default the score stays positive.
	result, err := ScoreLocation(
		&models.Coordinate{},
		&models.Coordinate{Latitude: 0.1},
		0)

	require.NoError(t, err)
	assert.InDelta(t, 1-6.917/25, result.Score, 0.01)
}
