package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/sarilacivert/matchcenter-service/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache(t *testing.T) {
	ctx := context.Background()

	t.Run("it returns a miss for an unknown key", func(t *testing.T) {
		c := cache.NewMemoryCache()

		_, err := c.Get(ctx, "unknown")

		assert.ErrorIs(t, err, cache.ErrCacheMiss)
	})

	t.Run("it returns a fresh entry", func(t *testing.T) {
		c := cache.NewMemoryCache()

		require.NoError(t, c.Set(ctx, "fixtures:432", []byte(`[]`), time.Minute))

		data, err := c.Get(ctx, "fixtures:432")
		require.NoError(t, err)
		assert.Equal(t, []byte(`[]`), data)
	})

	t.Run("it expires an entry after its ttl", func(t *testing.T) {
		now := time.Date(2026, 3, 8, 20, 0, 0, 0, time.UTC)
		c := cache.NewMemoryCacheWithNow(func() time.Time { return now })

		require.NoError(t, c.Set(ctx, "fixtures:432", []byte(`[]`), time.Minute))

		now = now.Add(time.Minute)

		_, err := c.Get(ctx, "fixtures:432")
		assert.ErrorIs(t, err, cache.ErrCacheMiss)
	})

	t.Run("it deletes entries", func(t *testing.T) {
		c := cache.NewMemoryCache()

		require.NoError(t, c.Set(ctx, "squad:432", []byte(`[]`), time.Minute))
		require.NoError(t, c.Delete(ctx, "squad:432"))

		_, err := c.Get(ctx, "squad:432")
		assert.ErrorIs(t, err, cache.ErrCacheMiss)
	})
}
