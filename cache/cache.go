package cache

import "time"

// Cache defines a generic interface compatible with Ristretto and other
// cost-based caches. The host uses it to memoize finalized header sets, so
// implementations must be safe for concurrent readers and writers.
type Cache[K comparable, V any] interface {
	// Get retrieves a value from the cache.
	Get(key K) (V, bool)

	// Set stores a value with cost, returning true if the entry was
	// accepted. Writes may be applied asynchronously.
	Set(key K, value V, cost int64) bool

	// SetWithTTL stores a value with cost and TTL, returning true if the
	// entry was accepted.
	SetWithTTL(key K, value V, cost int64, ttl time.Duration) bool
}
