package repositories

import (
	"context"
	"time"

	"github.com/gigmatch/match-engine/internal/matching"
	gocache "github.com/patrickmn/go-cache"
)

type rateProvider interface {
	GetAll(ctx context.Context) (matching.RateTable, error)
}

const rateTableCacheKey = "rate_table"

// CachedRates keeps the whole rate table in memory so batch runs do
// not hit the database once per scored pair.
type CachedRates struct {
	repo  rateProvider
	cache *gocache.Cache
}

func NewCachedRates(repo rateProvider) *CachedRates {
	return &CachedRates{repo: repo, cache: gocache.New(10*time.Minute, 20*time.Minute)}
}

func (c *CachedRates) GetAll(ctx context.Context) (matching.RateTable, error) {
	if value, found := c.cache.Get(rateTableCacheKey); found {
		return value.(matching.RateTable), nil
	}

	table, err := c.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	if err = c.cache.Add(rateTableCacheKey, table, gocache.DefaultExpiration); err != nil {
		return table, err
	}
	return table, nil
}
