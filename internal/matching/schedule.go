package matching

import (
	"fmt"

	"github.com/gigmatch/match-engine/internal/domain/models"
	log "github.com/sirupsen/logrus"
)

// ScoreSchedule rates how many of the days a job needs coverage for
// the candidate can actually cover. Times are wall-clock with no date
// or timezone; slots never cross midnight. A slot with start >= end is
// unsaved partial data and is skipped, not treated as an error.
func ScoreSchedule(jobAvail, userAvail models.WeeklyAvailability) MatchResult {
	requiredDays, coveredDays := 0, 0
	var details []string

	for _, day := range models.Weekdays {
		jobSlots := validSlots(day, jobAvail[day])
		if len(jobSlots) == 0 {
			continue
		}
		requiredDays++

		overlaps := overlapSlots(jobSlots, validSlots(day, userAvail[day]))
		if len(overlaps) == 0 {
			continue
		}
		coveredDays++
		for _, slot := range overlaps {
			details = append(details, fmt.Sprintf("%s: %s - %s", day, slot.Start, slot.End))
		}
	}

	if requiredDays == 0 {
		return MatchResult{
			Score:   1,
			Details: []string{"No specific availability required"},
		}
	}
	if len(details) == 0 {
		details = []string{"No overlapping availability"}
	}
	return MatchResult{
		Score:   float64(coveredDays) / float64(requiredDays),
		Details: details,
	}
}

func validSlots(day models.Weekday, slots []models.TimeSlot) []models.TimeSlot {
	valid := slots[:0:0]
	for _, slot := range slots {
		if !slot.Valid() {
			log.Warnf("skipping malformed %v slot %v - %v", day, slot.Start, slot.End)
			continue
		}
		valid = append(valid, slot)
	}
	return valid
}

// overlapSlots intersects every job slot with every user slot. Two
// slots overlap when start1 < end2 and end1 > start2; the overlap is
// [max(starts), min(ends)].
func overlapSlots(jobSlots, userSlots []models.TimeSlot) []models.TimeSlot {
	var overlaps []models.TimeSlot
	for _, job := range jobSlots {
		for _, user := range userSlots {
			if job.Start < user.End && job.End > user.Start {
				overlaps = append(overlaps, models.TimeSlot{
					Start: max(job.Start, user.Start),
					End:   min(job.End, user.End),
				})
			}
		}
	}
	return overlaps
}
