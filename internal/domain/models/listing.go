package models

import (
	"strings"

	"github.com/samber/lo"
)

// Coordinate is a geographic point already resolved by the geocoding
// collaborator. The engine never sees raw addresses.
type Coordinate struct {
	Latitude  float64
	Longitude float64
}

// SalaryRange is an hourly rate range in dollars, Min <= Max.
type SalaryRange struct {
	Min float64
	Max float64
}

func (r SalaryRange) Valid() bool {
	return r.Min <= r.Max
}

type Experience struct {
	MinYears float64
}

// JobListing is an employer-side posting, hydrated from storage by the
// caller before scoring. Optional fields are pointers; absence follows
// the documented fallback for each matcher.
type JobListing struct {
	ID                 string
	RequiredSkills     []string
	RequiredExperience *Experience
	Availability       WeeklyAvailability
	Location           *Coordinate
	SalaryRange        SalaryRange
	WeeklyHours        float64
	Category           string
}

// JoinSkills and SplitSkills round-trip a skill list through the
// comma-joined column format used by the repositories.
func JoinSkills(skills []string) string {
	return strings.Join(skills, ",")
}

func SplitSkills(joined string) []string {
	if joined == "" {
		return []string{}
	}
	return lo.Map(strings.Split(joined, ","), func(item string, _ int) string {
		return strings.TrimSpace(item)
	})
}
