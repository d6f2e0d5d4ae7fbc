// Package store provides session state storage.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/rptlabs/counterpose/internal/domain"
)

// ErrSessionNotFound is returned when a session id has no entry in the
// store. Callers must surface it, never substitute a fresh session.
var ErrSessionNotFound = errors.New("session not found")

// Store defines the interface for session state storage. Creating with an
// existing id overwrites the previous record.
type Store interface {
	// Create inserts or replaces the session keyed by its id.
	Create(ctx context.Context, session *domain.Session) error

	// Get returns a snapshot of the session, or ErrSessionNotFound.
	// The snapshot is a copy; mutating it does not affect the store.
	Get(ctx context.Context, id string) (*domain.Session, error)

	// Update applies fn to the stored session under the store's lock, so
	// concurrent mutation of the same id is serialized. Returns
	// ErrSessionNotFound if the id is unknown; if fn returns an error the
	// mutation is discarded and the error is returned unchanged.
	Update(ctx context.Context, id string, fn func(*domain.Session) error) error

	// DeleteExpired removes sessions inactive for longer than ttl and
	// returns how many were removed.
	DeleteExpired(ctx context.Context, ttl time.Duration) int

	// Len returns the number of stored sessions.
	Len() int
}
