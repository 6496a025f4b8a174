// Package jobs holds background maintenance tasks run alongside the server.
package jobs

import (
	"context"
	"log/slog"
	"time"
)

// SessionStore is the slice of the repository the cleanup job needs.
type SessionStore interface {
	DeleteExpiredSessions(ctx context.Context) (int64, error)
}

// Cleanup periodically deletes expired session rows. Sessions are written
// by the external auth provider, which never prunes them.
type Cleanup struct {
	sessions SessionStore
	interval time.Duration
	logger   *slog.Logger
}

// NewCleanup creates a cleanup job running every interval.
func NewCleanup(sessions SessionStore, interval time.Duration, logger *slog.Logger) *Cleanup {
	if interval <= 0 {
		interval = time.Hour
	}
	return &Cleanup{
		sessions: sessions,
		interval: interval,
		logger:   logger,
	}
}

// Run blocks until ctx is canceled, sweeping on every tick. Failures are
// logged and retried on the next tick.
func (c *Cleanup) Run(ctx context.Context) {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.sweep(ctx)
		}
	}
}

func (c *Cleanup) sweep(ctx context.Context) {
	deleted, err := c.sessions.DeleteExpiredSessions(ctx)
	if err != nil {
		c.logger.Error("session cleanup failed", slog.String("error", err.Error()))
		return
	}
	if deleted > 0 {
		c.logger.Info("expired sessions removed", slog.Int64("count", deleted))
	}
}
