package repositories

import (
	"context"

	"github.com/gigmatch/match-engine/internal/domain/models"
	"github.com/gigmatch/match-engine/internal/entities"
	"gorm.io/gorm"
)

type Listings struct {
	db *gorm.DB
}

func NewListingRepository(db *gorm.DB) *Listings {
	return &Listings{db: db}
}

func (repo *Listings) Add(ctx context.Context, listing models.JobListing) error {
	row, err := listingToRow(listing)
	if err != nil {
		return err
	}
	return repo.db.WithContext(ctx).Create(&row).Error
}

func (repo *Listings) GetByID(ctx context.Context, id string) (*models.JobListing, error) {
	var row entities.JobListing
	if err := repo.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		return nil, err
	}

	listing, err := listingToDomain(row)
	if err != nil {
		return nil, err
	}
	return &listing, nil
}

// GetOpen pages through listings still accepting candidates.
func (repo *Listings) GetOpen(ctx context.Context, limit int, offset int) ([]models.JobListing, error) {
	var rows []entities.JobListing
	if err := repo.db.WithContext(ctx).
		Where("open = ?", true).
		Order("created_at").
		Limit(limit).
		Offset(offset).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	listings := make([]models.JobListing, 0, len(rows))
	for _, row := range rows {
		listing, err := listingToDomain(row)
		if err != nil {
			return nil, err
		}
		listings = append(listings, listing)
	}
	return listings, nil
}

func (repo *Listings) MarkClosed(ctx context.Context, id string) error {
	return repo.db.WithContext(ctx).Model(&entities.JobListing{}).
		Where("id = ?", id).
		Update("open", false).Error
}

func (repo *Listings) Remove(ctx context.Context, id string) error {
	return repo.db.WithContext(ctx).Delete(&entities.JobListing{}, "id = ?", id).Error
}
