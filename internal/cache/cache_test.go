package cache_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bewear/internal/cache"
)

func setupCache(t *testing.T) (*cache.PageCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	c := cache.NewWithClient(rdb, time.Minute, logger)
	t.Cleanup(func() { _ = c.Close() })
	return c, mr
}

func TestPageCache_SetGetRevalidate(t *testing.T) {
	c, _ := setupCache(t)
	ctx := context.Background()

	_, ok := c.Get(ctx, "/cart/identification", "user-1")
	assert.False(t, ok, "cold cache misses")

	c.Set(ctx, "/cart/identification", "user-1", []byte("rendered"))

	payload, ok := c.Get(ctx, "/cart/identification", "user-1")
	require.True(t, ok)
	assert.Equal(t, []byte("rendered"), payload)

	c.Revalidate(ctx, "/cart/identification", "user-1")

	_, ok = c.Get(ctx, "/cart/identification", "user-1")
	assert.False(t, ok, "revalidation drops the entry")
}

func TestPageCache_ScopedPerUser(t *testing.T) {
	c, _ := setupCache(t)
	ctx := context.Background()

	c.Set(ctx, "/cart/identification", "user-1", []byte("a"))
	c.Set(ctx, "/cart/identification", "user-2", []byte("b"))

	c.Revalidate(ctx, "/cart/identification", "user-1")

	_, ok := c.Get(ctx, "/cart/identification", "user-1")
	assert.False(t, ok)

	payload, ok := c.Get(ctx, "/cart/identification", "user-2")
	require.True(t, ok, "another user's cache entry survives")
	assert.Equal(t, []byte("b"), payload)
}

func TestPageCache_EntriesExpire(t *testing.T) {
	c, mr := setupCache(t)
	ctx := context.Background()

	c.Set(ctx, "/cart/identification", "user-1", []byte("rendered"))
	mr.FastForward(2 * time.Minute)

	_, ok := c.Get(ctx, "/cart/identification", "user-1")
	assert.False(t, ok)
}
