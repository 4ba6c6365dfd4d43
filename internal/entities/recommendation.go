package entities

import "time"

// Recommendation records a match already surfaced for a profile, so
// repeated scoring runs do not announce the same pair twice.
type Recommendation struct {
	ID           int
	ProfileID    string
	ListingID    string
	Score        float64
	Summary      string
	LastScoredAt time.Time
	CreatedAt    time.Time
}

// FailedMatch records a scoring attempt rejected on invalid input, so
// bad records stay visible instead of being silently skipped.
type FailedMatch struct {
	ProfileID string `gorm:"primaryKey"`
	ListingID string `gorm:"primaryKey"`
	Error     string
	Attempts  int `gorm:"default:1"`
	CreatedAt time.Time
	UpdatedAt *time.Time
}

// MarketRate is one row of the category rate-band table.
type MarketRate struct {
	Category string `gorm:"primaryKey"`
	Low      float64
	Medium   float64
	High     float64
}
