package matching

import (
	"strings"
	"testing"

	"github.com/gigmatch/match-engine/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func slot(t *testing.T, start, end string) models.TimeSlot {
	t.Helper()
	s, err := models.ParseClock(start)
	require.NoError(t, err)
	e, err := models.ParseClock(end)
	require.NoError(t, err)
	return models.TimeSlot{Start: s, End: e}
}

func Test_ScoreSchedule_WhenNothingRequired_ShouldBePerfect(t *testing.T) {
	result := ScoreSchedule(models.WeeklyAvailability{}, models.WeeklyAvailability{
		models.Monday: {slot(t, "09:00", "17:00")},
	})

	assert.Equal(t, 1.0, result.Score)
	assert.Equal(t, []string{"No specific availability required"}, result.Details)
}

func Test_ScoreSchedule_WhenSingleDayOverlaps_ShouldFormatInterval(t *testing.T) {
	job := models.WeeklyAvailability{models.Monday: {slot(t, "09:00", "17:00")}}
	user := models.WeeklyAvailability{models.Monday: {slot(t, "12:00", "18:00")}}

	result := ScoreSchedule(job, user)

	assert.Equal(t, 1.0, result.Score)
	assert.Equal(t, []string{"Monday: 12:00 - 17:00"}, result.Details)
}

func Test_ScoreSchedule_WhenOnlySomeDaysCovered_ShouldScoreFraction(t *testing.T) {
	job := models.WeeklyAvailability{
		models.Monday:  {slot(t, "09:00", "17:00")},
		models.Tuesday: {slot(t, "09:00", "17:00")},
	}
	user := models.WeeklyAvailability{
		models.Monday: {slot(t, "08:00", "12:00")},
	}

	result := ScoreSchedule(job, user)

	assert.Equal(t, 0.5, result.Score)
	assert.Equal(t, []string{"Monday: 09:00 - 12:00"}, result.Details)
}

func Test_ScoreSchedule_WhenNoOverlapAtAll_ShouldScoreZero(t *testing.T) {
	job := models.WeeklyAvailability{models.Friday: {slot(t, "09:00", "12:00")}}
	user := models.WeeklyAvailability{models.Friday: {slot(t, "13:00", "18:00")}}

	result := ScoreSchedule(job, user)

	assert.Equal(t, 0.0, result.Score)
	assert.Equal(t, []string{"No overlapping availability"}, result.Details)
}

func Test_ScoreSchedule_TouchingSlotsDoNotOverlap(t *testing.T) {
	job := models.WeeklyAvailability{models.Monday: {slot(t, "09:00", "12:00")}}
	user := models.WeeklyAvailability{models.Monday: {slot(t, "12:00", "15:00")}}

	result := ScoreSchedule(job, user)

	assert.Equal(t, 0.0, result.Score)
}

func Test_ScoreSchedule_MalformedSlotIsSkippedNotFatal(t *testing.T) {
	job := models.WeeklyAvailability{models.Monday: {
		{Start: 1020, End: 540}, // inverted, unsaved partial entry
		slot(t, "09:00", "11:00"),
	}}
	user := models.WeeklyAvailability{models.Monday: {slot(t, "10:00", "12:00")}}

	result := ScoreSchedule(job, user)

	assert.Equal(t, 1.0, result.Score)
	assert.Equal(t, []string{"Monday: 10:00 - 11:00"}, result.Details)
}

func Test_ScoreSchedule_OverlapsAreSymmetric(t *testing.T) {
	a := models.WeeklyAvailability{
		models.Monday:    {slot(t, "08:00", "12:00"), slot(t, "14:00", "18:00")},
		models.Wednesday: {slot(t, "10:00", "16:00")},
	}
	b := models.WeeklyAvailability{
		models.Monday:    {slot(t, "11:00", "15:00")},
		models.Wednesday: {slot(t, "09:00", "11:00")},
	}

	forward := ScoreSchedule(a, b)
	backward := ScoreSchedule(b, a)

	assert.ElementsMatch(t, intervalsOf(forward), intervalsOf(backward))
}

func intervalsOf(result MatchResult) []string {
	var intervals []string
	for _, detail := range result.Details {
		if strings.Contains(detail, " - ") {
			intervals = append(intervals, detail)
		}
	}
	return intervals
}
