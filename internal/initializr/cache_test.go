package initializr

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMetadata(id string) *Metadata {
	return &Metadata{
		Dependencies: DependencyCatalog{
			Values: []DependencyGroup{
				{
					Name:   "Web",
					Values: []Dependency{{ID: id, Name: "Spring Web"}},
				},
			},
		},
	}
}

func TestCacheReturnsFreshPayloadWithoutFetching(t *testing.T) {
	now := time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC)
	cache := NewCache(time.Hour)
	cache.now = func() time.Time { return now }

	fetches := 0
	fetch := func(ctx context.Context) (*Metadata, error) {
		fetches++
		return testMetadata("web"), nil
	}

	first, err := cache.GetOrFetch(context.Background(), fetch)
	require.NoError(t, err)
	require.Equal(t, 1, fetches)

	// Second request just inside the TTL: same payload, no fetch.
	now = now.Add(59 * time.Minute)
	second, err := cache.GetOrFetch(context.Background(), fetch)
	require.NoError(t, err)
	assert.Equal(t, 1, fetches)
	assert.Same(t, first, second)
}

func TestCacheRefetchesStalePayload(t *testing.T) {
	now := time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC)
	cache := NewCache(time.Hour)
	cache.now = func() time.Time { return now }

	fetches := 0
	fetch := func(ctx context.Context) (*Metadata, error) {
		fetches++
		return testMetadata("web"), nil
	}

	_, err := cache.GetOrFetch(context.Background(), fetch)
	require.NoError(t, err)

	// Exactly at the TTL boundary the entry is stale.
	now = now.Add(time.Hour)
	_, err = cache.GetOrFetch(context.Background(), fetch)
	require.NoError(t, err)
	assert.Equal(t, 2, fetches)
}

func TestCacheFailedFetchLeavesEntryUnchanged(t *testing.T) {
	now := time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC)
	cache := NewCache(time.Hour)
	cache.now = func() time.Time { return now }

	payload := testMetadata("web")
	_, err := cache.GetOrFetch(context.Background(), func(ctx context.Context) (*Metadata, error) {
		return payload, nil
	})
	require.NoError(t, err)

	fetchErr := errors.New("connection refused")
	now = now.Add(2 * time.Hour)
	_, err = cache.GetOrFetch(context.Background(), func(ctx context.Context) (*Metadata, error) {
		return nil, fetchErr
	})
	require.ErrorIs(t, err, fetchErr)

	// The stale entry survived the failure untouched.
	assert.Same(t, payload, cache.payload)
	assert.Equal(t, time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC), cache.fetchedAt)
}

func TestCacheEmptyEntryAlwaysFetches(t *testing.T) {
	cache := NewCache(0)
	assert.Equal(t, DefaultTTL, cache.ttl)

	fetches := 0
	_, err := cache.GetOrFetch(context.Background(), func(ctx context.Context) (*Metadata, error) {
		fetches++
		return testMetadata("web"), nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, fetches)
}
