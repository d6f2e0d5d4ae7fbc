package store

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/rptlabs/counterpose/internal/domain"
)

// MemoryStore implements Store with an in-process map. Sessions live for the
// process lifetime unless evicted by the LRU cap or the TTL sweeper.
type MemoryStore struct {
	mu          sync.RWMutex
	sessions    map[string]*domain.Session
	maxSessions int
}

// NewMemory creates an in-memory store. maxSessions bounds the entry count;
// zero or negative means unbounded.
func NewMemory(maxSessions int) *MemoryStore {
	return &MemoryStore{
		sessions:    make(map[string]*domain.Session),
		maxSessions: maxSessions,
	}
}

// Create inserts or replaces a session. When the store is at capacity the
// least-recently-active session is evicted first.
func (m *MemoryStore) Create(_ context.Context, session *domain.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.sessions[session.ID]; !exists && m.maxSessions > 0 && len(m.sessions) >= m.maxSessions {
		m.evictOldestLocked()
	}
	m.sessions[session.ID] = cloneSession(session)
	return nil
}

// Get returns a snapshot of the session or ErrSessionNotFound.
func (m *MemoryStore) Get(_ context.Context, id string) (*domain.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	session, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return cloneSession(session), nil
}

// Update applies fn to the stored session under the write lock, serializing
// concurrent mutations of the same id.
func (m *MemoryStore) Update(_ context.Context, id string, fn func(*domain.Session) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, ok := m.sessions[id]
	if !ok {
		return ErrSessionNotFound
	}

	// fn runs against a copy so a failed mutation leaves the record intact.
	updated := cloneSession(session)
	if err := fn(updated); err != nil {
		return err
	}
	m.sessions[id] = updated
	return nil
}

// DeleteExpired removes sessions whose last activity exceeds ttl.
func (m *MemoryStore) DeleteExpired(_ context.Context, ttl time.Duration) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	cutoff := time.Now().Add(-ttl)
	removed := 0
	for id, session := range m.sessions {
		if session.LastActiveAt.Before(cutoff) {
			delete(m.sessions, id)
			removed++
		}
	}
	return removed
}

// Len returns the number of stored sessions.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// evictOldestLocked removes the least-recently-active session. Caller must
// hold the write lock.
func (m *MemoryStore) evictOldestLocked() {
	var oldestID string
	var oldestTime time.Time
	for id, session := range m.sessions {
		if oldestID == "" || session.LastActiveAt.Before(oldestTime) {
			oldestID = id
			oldestTime = session.LastActiveAt
		}
	}
	if oldestID != "" {
		delete(m.sessions, oldestID)
		slog.Info("Session evicted at capacity", "session_id", oldestID, "last_active_at", oldestTime)
	}
}

// cloneSession deep-copies the fields a caller could mutate.
func cloneSession(s *domain.Session) *domain.Session {
	out := *s
	out.Personas = append([]string(nil), s.Personas...)
	out.Steps = append([]domain.Step(nil), s.Steps...)
	out.BlindSpots = append([]string(nil), s.BlindSpots...)
	out.Contradictions = append([]string(nil), s.Contradictions...)
	return &out
}
