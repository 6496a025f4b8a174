// Package cache provides the Redis-backed page cache for address-dependent
// checkout pages. Mutations that change what the identification step would
// render (address create/update, cart-address bind) revalidate the cached
// entry so the next read rebuilds it.
package cache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"bewear/internal/telemetry"
)

// Revalidator invalidates cached renderings of a path for one user.
// Implementations must treat failures as non-fatal: a missed invalidation
// only shortens the staleness window on the next write, it never blocks
// the mutation that already succeeded.
type Revalidator interface {
	Revalidate(ctx context.Context, path string, userID string)
}

// Config holds Redis connection settings for the page cache.
type Config struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// PageCache caches rendered page payloads per (path, user) in Redis.
type PageCache struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// New creates a page cache and verifies the Redis connection.
func New(ctx context.Context, cfg Config, logger *slog.Logger) (*PageCache, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}

	return &PageCache{rdb: rdb, ttl: ttl, logger: logger}, nil
}

// NewWithClient wraps an existing Redis client (used by tests).
func NewWithClient(rdb *redis.Client, ttl time.Duration, logger *slog.Logger) *PageCache {
	return &PageCache{rdb: rdb, ttl: ttl, logger: logger}
}

// Close releases the underlying Redis connection.
func (c *PageCache) Close() error {
	return c.rdb.Close()
}

func key(path, userID string) string {
	return "page:" + path + ":user:" + userID
}

// Get returns the cached payload for (path, user), or ok=false on a miss.
// Redis errors degrade to a miss.
func (c *PageCache) Get(ctx context.Context, path, userID string) ([]byte, bool) {
	payload, err := c.rdb.Get(ctx, key(path, userID)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("page cache read failed",
				slog.String("path", path), slog.String("error", err.Error()))
		}
		telemetry.PageCacheRequests.WithLabelValues("miss").Inc()
		return nil, false
	}
	telemetry.PageCacheRequests.WithLabelValues("hit").Inc()
	return payload, true
}

// Set stores a rendered payload for (path, user) with the configured TTL.
func (c *PageCache) Set(ctx context.Context, path, userID string, payload []byte) {
	if err := c.rdb.Set(ctx, key(path, userID), payload, c.ttl).Err(); err != nil {
		c.logger.Warn("page cache write failed",
			slog.String("path", path), slog.String("error", err.Error()))
	}
}

// Revalidate drops the cached entry for (path, user). Errors are logged
// and swallowed; the TTL bounds staleness if the delete is lost.
func (c *PageCache) Revalidate(ctx context.Context, path, userID string) {
	if err := c.rdb.Del(ctx, key(path, userID)).Err(); err != nil {
		c.logger.Warn("page cache revalidation failed",
			slog.String("path", path), slog.String("error", err.Error()))
	}
}
