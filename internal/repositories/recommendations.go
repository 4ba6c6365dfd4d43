package repositories

import (
	"context"
	"strings"
	"time"

	"github.com/gigmatch/match-engine/internal/entities"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Recommendations struct {
	db *gorm.DB
}

func NewRecommendationRepository(db *gorm.DB) *Recommendations {
	return &Recommendations{db: db}
}

// WasRecommended reports whether this pair was already surfaced and,
// when it was, touches LastScoredAt so the cleaner keeps the row.
func (repo *Recommendations) WasRecommended(ctx context.Context, profileID, listingID string) (bool, error) {
	var rec entities.Recommendation
	err := repo.db.WithContext(ctx).
		Where("profile_id = ? AND listing_id = ?", profileID, listingID).
		First(&rec).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	err = repo.db.WithContext(ctx).
		Model(&entities.Recommendation{}).
		Where("id = ?", rec.ID).
		Update("last_scored_at", time.Now()).Error
	return true, err
}

func (repo *Recommendations) Record(ctx context.Context, profileID, listingID string,
	score float64, summary []string) error {

	return repo.db.WithContext(ctx).Create(&entities.Recommendation{
		ProfileID:    profileID,
		ListingID:    listingID,
		Score:        score,
		Summary:      strings.Join(summary, "\n"),
		LastScoredAt: time.Now(),
	}).Error
}

// RecordFailure logs a scoring attempt rejected on invalid input,
// bumping the attempt counter on repeats.
func (repo *Recommendations) RecordFailure(ctx context.Context, profileID, listingID, cause string) error {
	var failed entities.FailedMatch
	err := repo.db.WithContext(ctx).
		Where("profile_id = ? AND listing_id = ?", profileID, listingID).
		First(&failed).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return repo.db.WithContext(ctx).Create(&entities.FailedMatch{
			ProfileID: profileID,
			ListingID: listingID,
			Error:     cause,
		}).Error
	}
	if err != nil {
		return err
	}

	now := time.Now()
	return repo.db.WithContext(ctx).
		Model(&entities.FailedMatch{}).
		Where("profile_id = ? AND listing_id = ?", profileID, listingID).
		Updates(map[string]any{
			"error":      cause,
			"attempts":   failed.Attempts + 1,
			"updated_at": &now,
		}).Error
}

func (repo *Recommendations) RemoveStale(ctx context.Context, notScoredSince time.Time) (int64, error) {
	res := repo.db.WithContext(ctx).
		Delete(&entities.Recommendation{}, "last_scored_at < ?", notScoredSince)
	return res.RowsAffected, res.Error
}

func (repo *Recommendations) RemoveForProfile(ctx context.Context, profileID string) error {
	return repo.db.WithContext(ctx).
		Delete(&entities.Recommendation{}, "profile_id = ?", profileID).Error
}
