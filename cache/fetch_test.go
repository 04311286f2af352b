package cache_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sarilacivert/matchcenter-service/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixtureList struct {
	Names []string `json:"names"`
}

func TestFetch(t *testing.T) {
	ctx := context.Background()
	ttl := time.Minute

	t.Run("a fresh hit never invokes the loader", func(t *testing.T) {
		c := cache.NewMemoryCache()
		require.NoError(t, c.Set(ctx, "k", []byte(`{"names":["cached"]}`), ttl))

		calls := 0
		value, err := cache.Fetch(ctx, c, "k", ttl, func(_ context.Context) (*fixtureList, error) {
			calls++
			return &fixtureList{Names: []string{"fresh"}}, nil
		})

		require.NoError(t, err)
		assert.Equal(t, 0, calls)
		assert.Equal(t, []string{"cached"}, value.Names)
	})

	t.Run("a miss invokes the loader and stores the result", func(t *testing.T) {
		c := cache.NewMemoryCache()

		value, err := cache.Fetch(ctx, c, "k", ttl, func(_ context.Context) (*fixtureList, error) {
			return &fixtureList{Names: []string{"fresh"}}, nil
		})

		require.NoError(t, err)
		assert.Equal(t, []string{"fresh"}, value.Names)

		// The second call is served from the cache.
		calls := 0
		again, err := cache.Fetch(ctx, c, "k", ttl, func(_ context.Context) (*fixtureList, error) {
			calls++
			return nil, errors.New("should not be called")
		})

		require.NoError(t, err)
		assert.Equal(t, 0, calls)
		assert.Equal(t, value.Names, again.Names)
	})

	t.Run("a corrupted entry is treated as a miss", func(t *testing.T) {
		c := cache.NewMemoryCache()
		require.NoError(t, c.Set(ctx, "k", []byte(`{not json`), ttl))

		value, err := cache.Fetch(ctx, c, "k", ttl, func(_ context.Context) (*fixtureList, error) {
			return &fixtureList{Names: []string{"fresh"}}, nil
		})

		require.NoError(t, err)
		assert.Equal(t, []string{"fresh"}, value.Names)
	})

	t.Run("a nil result is returned but not cached", func(t *testing.T) {
		c := cache.NewMemoryCache()

		calls := 0
		value, err := cache.Fetch(ctx, c, "k", ttl, func(_ context.Context) (*fixtureList, error) {
			calls++
			return nil, nil
		})

		require.NoError(t, err)
		assert.Nil(t, value)

		// The next call retries immediately instead of caching the absence.
		_, err = cache.Fetch(ctx, c, "k", ttl, func(_ context.Context) (*fixtureList, error) {
			calls++
			return nil, nil
		})

		require.NoError(t, err)
		assert.Equal(t, 2, calls)
	})

	t.Run("a loader error is returned and nothing is cached", func(t *testing.T) {
		c := cache.NewMemoryCache()
		expected := errors.New("upstream unavailable")

		_, err := cache.Fetch(ctx, c, "k", ttl, func(_ context.Context) (*fixtureList, error) {
			return nil, expected
		})

		assert.ErrorIs(t, err, expected)

		_, getErr := c.Get(ctx, "k")
		assert.ErrorIs(t, getErr, cache.ErrCacheMiss)
	})
}
