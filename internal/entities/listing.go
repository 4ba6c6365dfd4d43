package entities

import "time"

// JobListing is the stored shape of an employer posting. Skills are
// comma-joined and availability is a JSON blob; the repositories
// hydrate both into domain types before scoring.
type JobListing struct {
	ID             string `gorm:"primaryKey"`
	RequiredSkills string
	Availability   []byte
	Latitude       *float64
	Longitude      *float64
	SalaryMin      float64
	SalaryMax      float64
	MinYears       *float64
	WeeklyHours    float64
	Category       string
	Open           bool `gorm:"index"`
	CreatedAt      time.Time
}

type UserProfile struct {
	ID           string `gorm:"primaryKey"`
	Skills       string
	Availability []byte
	Latitude     *float64
	Longitude    *float64
	SalaryMin    *float64
	SalaryMax    *float64
	TotalYears   *float64
	MaxDistance  float64
	CreatedAt    time.Time
}
