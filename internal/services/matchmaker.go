package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sync"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/gigmatch/match-engine/internal/domain/models"
	"github.com/gigmatch/match-engine/internal/events"
	"github.com/gigmatch/match-engine/internal/logger"
	"github.com/gigmatch/match-engine/internal/matching"
	"github.com/gigmatch/match-engine/internal/metrics"
	gocache "github.com/patrickmn/go-cache"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type profileRepository interface {
	Get(ctx context.Context, limit int, offset int) ([]models.UserProfile, error)
}

type listingRepository interface {
	GetOpen(ctx context.Context, limit int, offset int) ([]models.JobListing, error)
}

type recommendationRepository interface {
	WasRecommended(ctx context.Context, profileID, listingID string) (bool, error)
	Record(ctx context.Context, profileID, listingID string, score float64, summary []string) error
	RecordFailure(ctx context.Context, profileID, listingID, cause string) error
	RemoveForProfile(ctx context.Context, profileID string) error
}

type rateSource interface {
	GetAll(ctx context.Context) (matching.RateTable, error)
}

// Matchmaker periodically scores every worker profile against every
// open listing and surfaces the strong fits. Scoring one pair is pure,
// so profiles run concurrently without coordination; only the dedup
// bookkeeping goes through the repositories.
type Matchmaker struct {
	bus             EventBus.Bus
	profiles        profileRepository
	listings        listingRepository
	recommendations recommendationRepository
	rates           rateSource
	weights         matching.Weights
	threshold       float64
	cache           *gocache.Cache
	matchInterval   time.Duration
	profileContexts sync.Map
}

func NewMatchmaker(bus EventBus.Bus, profiles profileRepository, listings listingRepository,
	recommendations recommendationRepository, rates rateSource, weights matching.Weights,
	threshold float64, matchInterval time.Duration) (*Matchmaker, error) {

	if err := weights.Validate(); err != nil {
		return nil, err
	}
	if threshold < 0 || threshold > 1 {
		return nil, errors.Errorf("recommendation threshold must be in [0, 1], got %v", threshold)
	}

	m := &Matchmaker{
		bus:             bus,
		profiles:        profiles,
		listings:        listings,
		recommendations: recommendations,
		rates:           rates,
		weights:         weights,
		threshold:       threshold,
		matchInterval:   matchInterval,
		cache:           gocache.New(10*time.Minute, 20*time.Minute),
	}
	if err := bus.Subscribe(events.ProfileDeletedTopic, m.onProfileDeletedEvent); err != nil {
		return nil, err
	}

	return m, nil
}

func (m *Matchmaker) Run() {
	for {
		startTime := time.Now()
		log.Infof("running matchmaking pass at %v", time.Now())

		m.runPass()

		executionTime := time.Since(startTime)
		metrics.MatchRunDuration.Observe(executionTime.Seconds())
		log.Infof("matchmaking pass ended after %v", executionTime)

		var sleepTime time.Duration
		if executionTime <= m.matchInterval {
			sleepTime = m.matchInterval - executionTime
		} else {
			m.matchInterval = executionTime + time.Hour
			log.Infof("matchmaking interval stretched to %v", m.matchInterval)
		}

		log.Infof("next matchmaking pass at %v", time.Now().Add(sleepTime))
		time.Sleep(sleepTime)
	}
}

func (m *Matchmaker) runPass() {

	engine, err := m.buildEngine()
	if err != nil {
		log.Errorf("failed to build scoring engine: %v", err)
		return
	}

	var pageSize, handledTotal = 20, 0

	for offset := 0; ; offset += pageSize {

		profiles, err := m.profiles.Get(context.Background(), pageSize, offset)
		if err != nil {
			log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).
				Errorf("failed to get profiles: %v", err)
			break
		}
		if len(profiles) == 0 {
			break
		}

		var wg sync.WaitGroup
		for _, profile := range profiles {
			m.runPassForProfile(&wg, engine, profile)
		}

		wg.Wait()
		handledTotal += len(profiles)
	}

	log.Infof("handled %v profiles", handledTotal)
}

// buildEngine resolves the current market rate table; a failing rate
// source degrades to the builtin table instead of blocking the pass.
func (m *Matchmaker) buildEngine() (*matching.Engine, error) {
	table, err := m.rates.GetAll(context.Background())
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).
			Errorf("failed to load market rates, using builtin table: %v", err)
		table = nil
	}
	return matching.NewEngine(m.weights, table)
}

func (m *Matchmaker) runPassForProfile(wg *sync.WaitGroup, engine *matching.Engine, profile models.UserProfile) {

	profileCtx, cancel := context.WithCancel(context.Background())
	m.profileContexts.Store(profile.ID, cancel)

	wg.Add(1)
	go func() {
		defer wg.Done()
		defer m.profileContexts.Delete(profile.ID)
		m.scoreProfileAgainstListings(profileCtx, engine, profile)
	}()
}

func (m *Matchmaker) scoreProfileAgainstListings(ctx context.Context, engine *matching.Engine,
	profile models.UserProfile) {

	var pageSize, scoredTotal = 20, 0

	for offset := 0; ; offset += pageSize {

		select {
		case <-ctx.Done():
			log.Infof("matchmaking canceled for profile %v", profile.ID)
			return
		default:
		}

		listings, err := m.listings.GetOpen(ctx, pageSize, offset)
		if err != nil {
			log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).
				Errorf("failed to get open listings: %v", err)
			return
		}
		if len(listings) == 0 {
			break
		}

		for _, listing := range listings {
			select {
			case <-ctx.Done():
				return
			default:
			}
			if m.scorePair(ctx, engine, profile, listing) == nil {
				metrics.PairsScoredCounter.Inc()
			}
			scoredTotal++
		}
	}

	log.Debugf("scored %v listings for profile %v", scoredTotal, profile.ID)
}

func (m *Matchmaker) scorePair(ctx context.Context, engine *matching.Engine,
	profile models.UserProfile, listing models.JobListing) error {

	cacheID, err := pairCacheID(profile, listing)
	if err == nil {
		if _, found := m.cache.Get(cacheID); found {
			return nil
		}
	}

	start := time.Now()
	analysis, err := engine.Score(listing, profile)
	metrics.ScoreStepDuration.WithLabelValues("scoring").Observe(time.Since(start).Seconds())

	if err != nil {
		if errors.Is(err, matching.ErrInvalidInput) {
			metrics.InvalidInputCounter.Inc()
			if recordErr := m.recommendations.RecordFailure(ctx, profile.ID, listing.ID, err.Error()); recordErr != nil {
				log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).
					Errorf("failed to record scoring failure: %v", recordErr)
			}
		}
		return err
	}

	if analysis.Overall.Score >= m.threshold {
		if err = m.handleStrongFit(ctx, profile, listing, analysis); err != nil {
			return err
		}
	}

	if cacheID != "" {
		if err = m.cache.Add(cacheID, "", gocache.DefaultExpiration); err != nil {
			log.Errorf("failed to cache scored pair: %v", err)
		}
	}

	return nil
}

func (m *Matchmaker) handleStrongFit(ctx context.Context, profile models.UserProfile,
	listing models.JobListing, analysis *matching.Analysis) error {

	start := time.Now()
	defer func() {
		metrics.ScoreStepDuration.WithLabelValues("recording").Observe(time.Since(start).Seconds())
	}()

	wasRecommended, err := m.recommendations.WasRecommended(ctx, profile.ID, listing.ID)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).
			Errorf("failed to check if pair was recommended: %v", err)
		return err
	}

	if wasRecommended {
		return nil
	}

	if err = m.recommendations.Record(ctx, profile.ID, listing.ID,
		analysis.Overall.Score, analysis.Overall.Summary); err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).
			Errorf("failed to record recommendation: %v", err)
		return err
	}

	metrics.RecommendationsCounter.Inc()
	m.bus.Publish(events.MatchFoundTopic, events.MatchFound{
		ProfileID: profile.ID,
		ListingID: listing.ID,
		Score:     analysis.Overall.Score,
		Summary:   analysis.Overall.Summary,
	})
	return nil
}

func (m *Matchmaker) onProfileDeletedEvent(event events.ProfileDeleted) {
	if cancel, ok := m.profileContexts.Load(event.ProfileID); ok {
		cancel.(context.CancelFunc)()
		m.profileContexts.Delete(event.ProfileID)
	}

	if err := m.recommendations.RemoveForProfile(context.Background(), event.ProfileID); err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).
			Errorf("failed to remove recommendations for profile %v: %v", event.ProfileID, err)
	}
}

// pairCacheID fingerprints the pair's scoring inputs so unchanged
// pairs are not re-scored within the cache TTL.
func pairCacheID(profile models.UserProfile, listing models.JobListing) (string, error) {
	payload, err := json.Marshal(struct {
		Profile models.UserProfile
		Listing models.JobListing
	}{profile, listing})
	if err != nil {
		return "", err
	}
	digest := sha256.Sum256(payload)
	return profile.ID + ":" + listing.ID + ":" + hex.EncodeToString(digest[:]), nil
}
