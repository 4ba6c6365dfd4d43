package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_ScoreSkills_WhenNothingRequired_ShouldBePerfect(t *testing.T) {
	result := ScoreSkills(nil, []string{"Go", "SQL"})

	assert.Equal(t, 1.0, result.Score)
	assert.Equal(t, []string{"No specific skills required"}, result.Details)
	assert.Empty(t, result.MissingSkills)
}

func Test_ScoreSkills_WhenHalfMatch_ShouldScoreHalf(t *testing.T) {
	result := ScoreSkills([]string{"JavaScript", "SQL"}, []string{"JavaScript"})

	assert.Equal(t, 0.5, result.Score)
	assert.Equal(t, []string{"JavaScript"}, result.Details)
	assert.Equal(t, []string{"SQL"}, result.MissingSkills)
}

func Test_ScoreSkills_WhenNoneMatch_ShouldSaySoExplicitly(t *testing.T) {
	result := ScoreSkills([]string{"Welding"}, []string{"Cooking"})

	assert.Equal(t, 0.0, result.Score)
	assert.Equal(t, []string{"None of the required skills matched"}, result.Details)
	assert.Equal(t, []string{"Welding"}, result.MissingSkills)
}

func Test_ScoreSkills_ShouldTrimAndCollapseDuplicates(t *testing.T) {
	result := ScoreSkills([]string{" SQL ", "SQL", "Go"}, []string{"SQL"})

	assert.Equal(t, 0.5, result.Score)
	assert.Equal(t, []string{"SQL"}, result.Details)
	assert.Equal(t, []string{"Go"}, result.MissingSkills)
}

func Test_ScoreSkills_ShouldBeCaseSensitive(t *testing.T) {
	result := ScoreSkills([]string{"sql"}, []string{"SQL"})

	assert.Equal(t, 0.0, result.Score)
}

func Test_ScoreSkills_DetailsFollowRequiredOrder(t *testing.T) {
	result := ScoreSkills([]string{"C", "A", "B"}, []string{"B", "A", "C"})

	assert.Equal(t, 1.0, result.Score)
	assert.Equal(t, []string{"C", "A", "B"}, result.Details)
}
