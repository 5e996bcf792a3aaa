package initializr

import (
	"context"
	"time"
)

// Service combines the metadata client with the TTL cache.
//
// Parameters:
//   - client: Metadata HTTP client
//   - cache: Single-entry TTL cache
//
// Returns:
//   - None (data structure)
//
// Concurrency:
//   - Safe for concurrent use
//
// Performance:
//   - Network call only on a stale or empty cache
type Service struct {
	client *Client
	cache  *Cache
}

// NewService creates a metadata service.
//
// Parameters:
//   - url: Metadata service URL
//   - ttl: Cache TTL, DefaultTTL when zero
//   - timeout: Fetch timeout, DefaultTimeout when zero
//
// Returns:
//   - *Service: Metadata service instance
//
// Concurrency:
//   - Safe for concurrent use
//
// Performance:
//   - Minimal initialization overhead
func NewService(url string, ttl, timeout time.Duration) *Service {
	return &Service{
		client: NewClient(url, timeout),
		cache:  NewCache(ttl),
	}
}

// URL returns the metadata service URL.
func (s *Service) URL() string {
	return s.client.URL()
}

// Metadata returns the cached metadata document, fetching when stale.
func (s *Service) Metadata(ctx context.Context) (*Metadata, error) {
	return s.cache.GetOrFetch(ctx, s.client.Fetch)
}
