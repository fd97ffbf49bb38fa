package ristretto

import (
	"fmt"
	"time"

	"github.com/armethq/armet/cache"
	"github.com/dgraph-io/ristretto/v2"
)

// Preconfigured cache sizes. Header-set memoization needs very little
// room (one entry per distinct upstream fingerprint), so "small" is the
// usual choice; the larger levels exist for hosts that key by route.
var levels = map[string]struct {
	numCounters int64
	maxCost     int64
}{
	"small":      {numCounters: 1e4, maxCost: 1 << 20},
	"medium":     {numCounters: 1e5, maxCost: 1 << 24},
	"large":      {numCounters: 1e6, maxCost: 1 << 27},
	"very-large": {numCounters: 1e7, maxCost: 1 << 30},
}

type rcache[V any] struct {
	cache *ristretto.Cache[string, V]
}

func (rc *rcache[V]) Get(key string) (V, bool) {
	return rc.cache.Get(key)
}

func (rc *rcache[V]) Set(key string, value V, cost int64) bool {
	return rc.cache.Set(key, value, cost)
}

func (rc *rcache[V]) SetWithTTL(key string, value V, cost int64, ttl time.Duration) bool {
	return rc.cache.SetWithTTL(key, value, cost, ttl)
}

// New creates a string-keyed Ristretto cache sized by level: "small",
// "medium", "large" or "very-large".
func New[V any](level string) (cache.Cache[string, V], error) {
	size, ok := levels[level]
	if !ok {
		return nil, fmt.Errorf("ristretto: unknown cache size level %q", level)
	}

	c, err := ristretto.NewCache(&ristretto.Config[string, V]{
		NumCounters: size.numCounters,
		MaxCost:     size.maxCost,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("ristretto: failed to create cache: %w", err)
	}
	return &rcache[V]{cache: c}, nil
}
