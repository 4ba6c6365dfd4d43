package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_DefaultWeights_SumToExactlyOne(t *testing.T) {
	weights := DefaultWeights()

	assert.NoError(t, weights.Validate())
	assert.Equal(t, 1.0, weights.Skills+weights.Schedule+weights.Location+weights.Compensation)
}

func Test_Weights_Validate_RejectsBadSums(t *testing.T) {
	assert.Error(t, Weights{Skills: 0.5, Schedule: 0.5, Location: 0.5}.Validate())
	assert.Error(t, Weights{Skills: 1.5, Schedule: -0.5}.Validate())
}

// uniform sub-scores make the weighted total equal the sub-score, so
// the summary buckets can be probed right at their lower bounds.
func uniformFit(score float64) OverallFit {
	result := MatchResult{Score: score}
	return Aggregate(DefaultWeights(), result, result, result, result)
}

func Test_Aggregate_SummaryBuckets(t *testing.T) {
	cases := []struct {
		score   float64
		summary string
	}{
		{1.0, "Excellent match! This job aligns well with your profile."},
		{0.81, "Excellent match! This job aligns well with your profile."},
		{0.79, "Good match with some areas for consideration."},
		{0.61, "Good match with some areas for consideration."},
		{0.59, "This job may require some compromises."},
		{0.0, "This job may require some compromises."},
	}

	for _, c := range cases {
		fit := uniformFit(c.score)
		assert.InDelta(t, c.score, fit.Score, 1e-9)
		assert.Equal(t, []string{c.summary}, fit.Summary, "score %v", c.score)
	}
}

func Test_Aggregate_RecommendsMissingSkills(t *testing.T) {
	skills := MatchResult{Score: 0.5, MissingSkills: []string{"SQL", "Go"}}
	perfect := MatchResult{Score: 1}

	fit := Aggregate(DefaultWeights(), skills, perfect, perfect, perfect)

	assert.Contains(t, fit.Recommendations, "Consider developing skills in: SQL, Go")
}

func Test_Aggregate_RecommendsFlexibilityForWeakScheduleAndLocation(t *testing.T) {
	perfect := MatchResult{Score: 1}
	weak := MatchResult{Score: 0.4}

	fit := Aggregate(DefaultWeights(), perfect, weak, weak, perfect)

	assert.Equal(t, []string{
		"Schedule flexibility might be needed",
		"Consider transportation options or remote work possibilities",
	}, fit.Recommendations)
}

func Test_Aggregate_NoRecommendationForCompensation(t *testing.T) {
	perfect := MatchResult{Score: 1}

	fit := Aggregate(DefaultWeights(), perfect, perfect, perfect, MatchResult{Score: 0})

	assert.Empty(t, fit.Recommendations)
}
