package repositories

import (
	"context"

	"github.com/gigmatch/match-engine/internal/entities"
	"github.com/gigmatch/match-engine/internal/matching"
	"gorm.io/gorm"
)

type Rates struct {
	db *gorm.DB
}

func NewRateRepository(db *gorm.DB) *Rates {
	return &Rates{db: db}
}

func (repo *Rates) GetAll(ctx context.Context) (matching.RateTable, error) {
	var rows []entities.MarketRate
	if err := repo.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}

	table := make(matching.RateTable, len(rows))
	for _, row := range rows {
		table[row.Category] = matching.RateBand{
			Low:    row.Low,
			Medium: row.Medium,
			High:   row.High,
		}
	}
	return table, nil
}

// ReplaceAll swaps the whole table for a freshly fetched one.
func (repo *Rates) ReplaceAll(ctx context.Context, table matching.RateTable) error {
	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&entities.MarketRate{}).Error; err != nil {
			return err
		}
		for category, band := range table {
			row := entities.MarketRate{
				Category: category,
				Low:      band.Low,
				Medium:   band.Medium,
				High:     band.High,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
