package config

import (
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

// CacheConfig holds grid sample caching and publishing batch settings
type CacheConfig struct {
	// Grid sample LRU settings
	GridLRUSize     int
	EnableGridCache bool

	// Batch processing settings
	BatchSize       int
	MaxBatchRetries int
	RetryBackoffMs  int
}

const (
	defaultGridLRUSize     = 64
	defaultBatchSize       = 25
	defaultMaxBatchRetries = 3
	defaultRetryBackoffMs  = 100
)

// GetCacheConfig returns the cache configuration from environment variables or defaults
func GetCacheConfig() *CacheConfig {
	config := &CacheConfig{
		GridLRUSize:     getEnvInt("GRID_CACHE_SIZE", defaultGridLRUSize),
		EnableGridCache: getEnvBool("GRID_CACHE_ENABLE", true),
		BatchSize:       getEnvInt("PUBLISH_BATCH_SIZE", defaultBatchSize),
		MaxBatchRetries: getEnvInt("PUBLISH_MAX_RETRIES", defaultMaxBatchRetries),
		RetryBackoffMs:  getEnvInt("PUBLISH_RETRY_BACKOFF_MS", defaultRetryBackoffMs),
	}

	log.Debug().
		Int("GridLRUSize", config.GridLRUSize).
		Bool("EnableGridCache", config.EnableGridCache).
		Int("BatchSize", config.BatchSize).
		Int("MaxBatchRetries", config.MaxBatchRetries).
		Int("RetryBackoffMs", config.RetryBackoffMs).
		Msg("Cache configuration loaded")

	return config
}

// GridCacheSize is the LRU size to use, 0 when caching is off
func (c *CacheConfig) GridCacheSize() int {
	if !c.EnableGridCache || c.GridLRUSize < 0 {
		return 0
	}
	return c.GridLRUSize
}

func (c *CacheConfig) GetRetryBackoff() time.Duration {
	return time.Duration(c.RetryBackoffMs) * time.Millisecond
}

func getEnvInt(key string, defaultVal int) int {
	if val, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(val); err == nil {
			return intVal
		}
		log.Warn().Str("key", key).Msg("Invalid integer value in environment variable, using default")
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val, exists := os.LookupEnv(key); exists {
		return val == "true" || val == "1" || val == "yes"
	}
	return defaultVal
}
