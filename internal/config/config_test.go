package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_LoadConfig_WhenEnvVariablesSet_ShouldOverrideFileValues(t *testing.T) {

	t.Setenv("DB_CONNECTION_STRING", "file::memory:?cache=shared")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("RECOMMENDATION_THRESHOLD", "0.75")
	t.Setenv("MATCH_INTERVAL", "45m")

	config, err := loadConfig("../../configs/config.yaml")
	require.NoError(t, err)

	assert.Equal(t, "file::memory:?cache=shared", config.DB.ConnectionString)
	assert.Equal(t, LevelDebug, config.Logger.LogLevel)
	assert.Equal(t, 0.75, config.Engine.RecommendationThreshold)
	assert.Equal(t, 45*time.Minute, config.Engine.MatchInterval)
}

func Test_LoadConfig_ShouldCarryWeightsFromFile(t *testing.T) {

	config, err := loadConfig("../../configs/config.yaml")
	require.NoError(t, err)

	require.NoError(t, config.Engine.Weights.Validate())
	assert.InDelta(t, 0.35, config.Engine.Weights.Skills, 1e-9)
}
