package grid

import (
	"fmt"

	"github.com/bbernstein/datumcheck/internal/models"
	"github.com/hashicorp/golang-lru/v2"
)

// CachedSampler memoizes grid samples per coordinate. Errors are not cached.
type CachedSampler struct {
	next   Sampler
	lru    *lru.Cache[models.Coordinate, float64]
	hits   uint64
	misses uint64
}

// NewCachedSampler wraps next in an LRU cache holding size samples
func NewCachedSampler(next Sampler, size int) (*CachedSampler, error) {
	lruCache, err := lru.New[models.Coordinate, float64](size)
	if err != nil {
		return nil, fmt.Errorf("creating LRU cache: %w", err)
	}

	return &CachedSampler{
		next: next,
		lru:  lruCache,
	}, nil
}

func (c *CachedSampler) Sample(coord models.Coordinate) (float64, error) {
	if v, ok := c.lru.Get(coord); ok {
		c.hits++
		return v, nil
	}
	c.misses++

	v, err := c.next.Sample(coord)
	if err != nil {
		return 0, err
	}
	c.lru.Add(coord, v)
	return v, nil
}

// GetCacheStats returns statistics about cache hits and misses
func (c *CachedSampler) GetCacheStats() map[string]uint64 {
	return map[string]uint64{
		"hits":   c.hits,
		"misses": c.misses,
	}
}
