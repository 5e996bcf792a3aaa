package initializr

import (
	"context"
	"sync"
	"time"
)

// DefaultTTL is the maximum age at which a cached metadata document is
// still considered valid.
const DefaultTTL = time.Hour

// Cache is a single-entry TTL cache for the metadata document.
//
// The system only ever fetches one metadata URL, so the cache holds a
// single payload keyed implicitly by that URL. The entry is replaced
// wholesale on every successful fetch and is never partially mutated;
// a failed fetch leaves the entry unchanged.
//
// Parameters:
//   - ttl: Maximum age of a valid entry
//
// Returns:
//   - None (data structure)
//
// Concurrency:
//   - Thread-safe
//
// Performance:
//   - O(1) freshness check, no eviction beyond TTL expiry
type Cache struct {
	mu        sync.Mutex
	payload   *Metadata
	fetchedAt time.Time
	ttl       time.Duration

	// now is replaceable in tests to simulate staleness.
	now func() time.Time
}

// NewCache creates a cache with the given TTL, DefaultTTL when zero.
func NewCache(ttl time.Duration) *Cache {
	if ttl == 0 {
		ttl = DefaultTTL
	}
	return &Cache{
		ttl: ttl,
		now: time.Now,
	}
}

// fresh reports whether the cached entry is still valid.
// Valid means the payload is non-empty and younger than the TTL.
func (c *Cache) fresh() bool {
	return c.payload != nil && c.now().Sub(c.fetchedAt) < c.ttl
}

// GetOrFetch returns the cached payload when fresh, otherwise invokes
// fetch and replaces the entry on success.
//
// Parameters:
//   - ctx: Context for cancellation
//   - fetch: Fetch function invoked on a stale or empty cache
//
// Returns:
//   - *Metadata: Cached or freshly fetched metadata
//   - error: Fetch error; the cache entry is left unchanged
//
// Concurrency:
//   - Thread-safe; the fetch runs under the cache lock so at most one
//     fetch is in flight
//
// Performance:
//   - No network call while the entry is fresh
func (c *Cache) GetOrFetch(ctx context.Context, fetch func(ctx context.Context) (*Metadata, error)) (*Metadata, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.fresh() {
		return c.payload, nil
	}

	meta, err := fetch(ctx)
	if err != nil {
		return nil, err
	}

	c.payload = meta
	c.fetchedAt = c.now()
	return meta, nil
}
