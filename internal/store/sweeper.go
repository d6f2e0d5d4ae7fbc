package store

import (
	"context"
	"log/slog"
	"time"
)

const sweepInterval = 5 * time.Minute

// StartSweeper runs a background goroutine that periodically removes
// sessions inactive for longer than ttl. It stops when ctx is canceled.
func StartSweeper(ctx context.Context, s Store, ttl time.Duration) {
	ticker := time.NewTicker(sweepInterval)
	go func() {
		defer ticker.Stop()
		slog.Info("Session sweeper started", "interval", sweepInterval, "ttl", ttl)

		for {
			select {
			case <-ticker.C:
				if removed := s.DeleteExpired(ctx, ttl); removed > 0 {
					slog.Info("Expired sessions removed", "count", removed, "remaining", s.Len())
				}
			case <-ctx.Done():
				slog.Info("Session sweeper shutting down", "reason", ctx.Err())
				return
			}
		}
	}()
}
