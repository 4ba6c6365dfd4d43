package repositories

import (
	"fmt"

	"github.com/gigmatch/match-engine/internal/entities"
	"github.com/gigmatch/match-engine/internal/matching"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DbContext struct {
	DB *gorm.DB
}

func NewDbContext(connectionString string) (*DbContext, error) {
	db, err := gorm.Open(sqlite.Open(connectionString), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	})
	if err != nil {
		return nil, err
	}

	return &DbContext{DB: db}, nil
}

func (c *DbContext) Migrate() error {
	for _, entity := range []any{
		entities.JobListing{},
		entities.UserProfile{},
		entities.Recommendation{},
		entities.FailedMatch{},
		entities.MarketRate{},
	} {
		if err := c.DB.AutoMigrate(entity); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", entity, err)
		}
	}

	var ratesCount int64
	if err := c.DB.Model(entities.MarketRate{}).Count(&ratesCount).Error; err != nil {
		return fmt.Errorf("failed to count market rates: %w", err)
	}

	if ratesCount == 0 {
		if err := c.seedMarketRates(); err != nil {
			return fmt.Errorf("failed to seed market rates: %w", err)
		}
	}

	if err := c.DB.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_profile_listing " +
		"ON recommendations (profile_id, listing_id);").Error; err != nil {
		return fmt.Errorf("failed to create recommendation index: %w", err)
	}

	return nil
}

func (c *DbContext) seedMarketRates() error {
	var rows []entities.MarketRate
	for category, band := range matching.BuiltinRates() {
		rows = append(rows, entities.MarketRate{
			Category: category,
			Low:      band.Low,
			Medium:   band.Medium,
			High:     band.High,
		})
	}

	if err := c.DB.Create(rows).Error; err != nil {
		return fmt.Errorf("failed to create market rates in the database: %w", err)
	}
	return nil
}

func (c *DbContext) Close() error {
	db, err := c.DB.DB()
	if err != nil {
		return err
	}

	return db.Close()
}
