package repositories

import (
	"context"

	"github.com/gigmatch/match-engine/internal/domain/models"
	"github.com/gigmatch/match-engine/internal/entities"
	"gorm.io/gorm"
)

type Profiles struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *Profiles {
	return &Profiles{db: db}
}

func (repo *Profiles) Add(ctx context.Context, profile models.UserProfile) error {
	row, err := profileToRow(profile)
	if err != nil {
		return err
	}
	return repo.db.WithContext(ctx).Create(&row).Error
}

func (repo *Profiles) GetByID(ctx context.Context, id string) (*models.UserProfile, error) {
	var row entities.UserProfile
	if err := repo.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		return nil, err
	}

	profile, err := profileToDomain(row)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (repo *Profiles) Get(ctx context.Context, limit int, offset int) ([]models.UserProfile, error) {
	var rows []entities.UserProfile
	if err := repo.db.WithContext(ctx).
		Order("created_at").
		Limit(limit).
		Offset(offset).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	profiles := make([]models.UserProfile, 0, len(rows))
	for _, row := range rows {
		profile, err := profileToDomain(row)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}
	return profiles, nil
}

func (repo *Profiles) Remove(ctx context.Context, id string) error {
	return repo.db.WithContext(ctx).Delete(&entities.UserProfile{}, "id = ?", id).Error
}
