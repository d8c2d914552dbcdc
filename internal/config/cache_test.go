package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetCacheConfigDefaults(t *testing.T) {
	cfg := GetCacheConfig()

	assert.Equal(t, defaultGridLRUSize, cfg.GridLRUSize)
	assert.True(t, cfg.EnableGridCache)
	assert.Equal(t, defaultBatchSize, cfg.BatchSize)
	assert.Equal(t, defaultMaxBatchRetries, cfg.MaxBatchRetries)
	assert.Equal(t, 100*time.Millisecond, cfg.GetRetryBackoff())
	assert.Equal(t, defaultGridLRUSize, cfg.GridCacheSize())
}

func TestGetCacheConfigFromEnv(t *testing.T) {
	t.Setenv("GRID_CACHE_SIZE", "8")
	t.Setenv("PUBLISH_BATCH_SIZE", "10")
	t.Setenv("PUBLISH_MAX_RETRIES", "not-a-number")
	t.Setenv("PUBLISH_RETRY_BACKOFF_MS", "0")

	cfg := GetCacheConfig()

	assert.Equal(t, 8, cfg.GridLRUSize)
	assert.Equal(t, 10, cfg.BatchSize)
	assert.Equal(t, defaultMaxBatchRetries, cfg.MaxBatchRetries)
	assert.Equal(t, time.Duration(0), cfg.GetRetryBackoff())
}

func TestGridCacheSize(t *testing.T) {
	tests := []struct {
		name   string
		config CacheConfig
		want   int
	}{
		{name: "enabled", config: CacheConfig{GridLRUSize: 32, EnableGridCache: true}, want: 32},
		{name: "disabled", config: CacheConfig{GridLRUSize: 32, EnableGridCache: false}, want: 0},
		{name: "negative size", config: CacheConfig{GridLRUSize: -1, EnableGridCache: true}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.config.GridCacheSize())
		})
	}
}

func TestGetEnvBool(t *testing.T) {
	t.Setenv("TEST_BOOL_YES", "yes")
	t.Setenv("TEST_BOOL_NO", "false")

	assert.True(t, getEnvBool("TEST_BOOL_YES", false))
	assert.False(t, getEnvBool("TEST_BOOL_NO", true))
	assert.True(t, getEnvBool("TEST_BOOL_MISSING", true))
}
