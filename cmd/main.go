package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/asaskevich/EventBus"
	"github.com/gigmatch/match-engine/internal/clients/rates"
	"github.com/gigmatch/match-engine/internal/config"
	"github.com/gigmatch/match-engine/internal/logger"
	"github.com/gigmatch/match-engine/internal/metrics"
	"github.com/gigmatch/match-engine/internal/repositories"
	"github.com/gigmatch/match-engine/internal/services"
	log "github.com/sirupsen/logrus"
)

// refreshMarketRates replaces the stored rate table with a fresh copy
// from the external rates endpoint, when one is configured. Failures
// are logged and the previously stored table stays in effect.
func refreshMarketRates(ctx context.Context, cfg config.EngineConfig, ratesRepo *repositories.Rates) {

	if cfg.RatesURL == "" {
		return
	}

	client := rates.NewClient(cfg.RatesURL)
	if cfg.RatesMaxRequestsPerSecond > 0 {
		client.SetRateLimit(cfg.RatesMaxRequestsPerSecond)
	}

	table, err := client.FetchRates(ctx)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeRatesApi).
			Errorf("failed to fetch market rates: %v", err)
		return
	}

	if err = ratesRepo.ReplaceAll(ctx, table); err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).
			Errorf("failed to store market rates: %v", err)
		return
	}

	log.Infof("market rates refreshed, %d categories", len(table))
}

func runMatchmaker(cfg *config.Config, dbContext *repositories.DbContext,
	ratesRepo *repositories.Rates, bus EventBus.Bus) *services.RecommendationsCleaner {

	profiles := repositories.NewProfileRepository(dbContext.DB)
	listings := repositories.NewListingRepository(dbContext.DB)
	recommendations := repositories.NewRecommendationRepository(dbContext.DB)

	cleaner, err := services.NewRecommendationsCleaner(recommendations, cfg.Engine.RecommendationExpirationDays)
	if err != nil {
		log.Fatalf("can't create recommendations cleaner: %v", err)
	}

	matchmaker, err := services.NewMatchmaker(bus, profiles, listings, recommendations,
		repositories.NewCachedRates(ratesRepo), cfg.Engine.Weights,
		cfg.Engine.RecommendationThreshold, cfg.Engine.MatchInterval)
	if err != nil {
		log.Fatalf("can't create matchmaker: %v", err)
	}
	go matchmaker.Run()

	return cleaner
}

func main() {

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Get()

	logger.Setup(ctx, cfg.Logger)
	defer logger.Cleanup()

	metrics.StartMetricsServer()

	dbContext, err := repositories.NewDbContext(cfg.DB.ConnectionString)
	if err != nil {
		log.Fatalf("can't create db context: %v", err)
	}
	defer dbContext.Close()

	err = dbContext.Migrate()
	if err != nil {
		log.Fatalf("can't migrate db context: %v", err)
	}

	ratesRepo := repositories.NewRateRepository(dbContext.DB)
	refreshMarketRates(ctx, cfg.Engine, ratesRepo)

	bus := EventBus.New()

	cleaner := runMatchmaker(cfg, dbContext, ratesRepo, bus)
	defer cleaner.Stop()

	<-ctx.Done()

	log.Info("Shutting down services...")
}
