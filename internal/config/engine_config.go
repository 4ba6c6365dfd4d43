package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/gigmatch/match-engine/internal/matching"
	"github.com/spf13/viper"
)

type EngineConfig struct {
	Weights                      matching.Weights `mapstructure:"weights"`
	MatchInterval                time.Duration    `mapstructure:"match_interval"`
	RecommendationThreshold      float64          `mapstructure:"recommendation_threshold"`
	RecommendationExpirationDays int              `mapstructure:"recommendation_expiration_days"`
	RatesURL                     string           `mapstructure:"rates_url"`
	RatesMaxRequestsPerSecond    float32          `mapstructure:"rates_max_requests_per_second"`
}

func setDefaults() {
	defaults := matching.DefaultWeights()
	viper.SetDefault("engine.weights.skills", defaults.Skills)
	viper.SetDefault("engine.weights.schedule", defaults.Schedule)
	viper.SetDefault("engine.weights.location", defaults.Location)
	viper.SetDefault("engine.weights.compensation", defaults.Compensation)
	viper.SetDefault("engine.match_interval", 3*time.Hour)
	viper.SetDefault("engine.recommendation_threshold", 0.6)
	viper.SetDefault("engine.recommendation_expiration_days", 30)
}

func (config EngineConfig) validate() error {
	var errs []error

	if err := config.Weights.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("weights: %w", err))
	}
	if config.MatchInterval <= 0 {
		errs = append(errs, fmt.Errorf("match_interval must be greater than zero"))
	}
	if config.RecommendationThreshold < 0 || config.RecommendationThreshold > 1 {
		errs = append(errs, fmt.Errorf("recommendation_threshold must be in [0, 1]"))
	}
	if config.RecommendationExpirationDays <= 0 {
		errs = append(errs, fmt.Errorf("recommendation_expiration_days must be greater than zero"))
	}
	if config.RatesMaxRequestsPerSecond < 0 {
		errs = append(errs, fmt.Errorf("rates_max_requests_per_second must not be negative"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("multiple errors occurred: %w", errors.Join(errs...))
	}

	return nil
}

func (config EngineConfig) bindEnvironmentVariables() error {

	bindings := map[string]string{
		"engine.match_interval":                 "MATCH_INTERVAL",
		"engine.recommendation_threshold":       "RECOMMENDATION_THRESHOLD",
		"engine.recommendation_expiration_days": "RECOMMENDATION_EXPIRATION_DAYS",
		"engine.rates_url":                      "RATES_URL",
		"engine.rates_max_requests_per_second":  "RATES_MAX_REQUESTS_PER_SECOND",
	}

	for key, env := range bindings {
		if err := viper.BindEnv(key, env); err != nil {
			return err
		}
	}
	return nil
}
