package services

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
)

type recommendationCleanupRepository interface {
	RemoveStale(ctx context.Context, notScoredSince time.Time) (int64, error)
}

// RecommendationsCleaner prunes recommendations that no matchmaking
// pass has re-confirmed recently, so closed or deleted listings stop
// lingering in user feeds.
type RecommendationsCleaner struct {
	recommendations  recommendationCleanupRepository
	cron             *cron.Cron
	expirationInDays int
}

func NewRecommendationsCleaner(recommendations recommendationCleanupRepository,
	expirationInDays int) (*RecommendationsCleaner, error) {

	if expirationInDays <= 0 {
		return nil, errors.New("expiration in days must be greater than zero")
	}

	rc := &RecommendationsCleaner{
		recommendations:  recommendations,
		cron:             cron.New(),
		expirationInDays: expirationInDays,
	}

	_, err := rc.cron.AddFunc("0 0 * * *", rc.cleanStaleRecommendations)
	if err != nil {
		return nil, err
	}

	rc.cron.Start()
	log.Infof("recommendations cleaner started, expiration in days: %d", rc.expirationInDays)
	return rc, nil
}

func (rc *RecommendationsCleaner) Stop() {
	rc.cron.Stop()
}

func (rc *RecommendationsCleaner) cleanStaleRecommendations() {
	notScoredSince := time.Now().Add(-time.Duration(rc.expirationInDays) * 24 * time.Hour)
	rowsAffected, err := rc.recommendations.RemoveStale(context.Background(), notScoredSince)
	if err != nil {
		log.Errorf("failed to clean stale recommendations: %v", err)
	} else {
		log.Infof("stale recommendations cleaned at %v, affected rows: %v", time.Now(), rowsAffected)
	}
}
