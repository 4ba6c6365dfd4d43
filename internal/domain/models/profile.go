package models

// DefaultMaxDistance is the commute distance preference, in miles,
// applied when a profile does not state one.
const DefaultMaxDistance = 25.0

type WorkExperience struct {
	TotalYears float64
}

// UserProfile is a worker-side profile, hydrated from storage by the
// caller before scoring.
type UserProfile struct {
	ID           string
	Skills       []string
	Experience   *WorkExperience
	Availability WeeklyAvailability
	Location     *Coordinate
	SalaryPrefs  *SalaryRange

	// MaxDistance is the preferred maximum commute in miles.
	// Zero means unset and falls back to DefaultMaxDistance.
	MaxDistance float64
}

func (p UserProfile) MaxDistanceOrDefault() float64 {
	if p.MaxDistance <= 0 {
		return DefaultMaxDistance
	}
	return p.MaxDistance
}
