// Package session provides an in-memory, TTL-bounded store for live booking
// sessions. Sessions are transient: they are discarded on expiry,
// on abandonment, and on successful submission, and never persisted.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/skyway/travel-booking-system/internal/infrastructure/timeutil"
)

// DefaultTTL bounds how long an abandoned session is kept.
const DefaultTTL = 30 * time.Minute

// Store holds live sessions keyed by generated UUID. All methods are safe for
// concurrent use; each stored value still has a single logical owner.
type Store[T any] struct {
	mu      sync.RWMutex
	entries map[string]entry[T]
	ttl     time.Duration
	clock   timeutil.Clock
}

type entry[T any] struct {
	value     T
	expiresAt time.Time
}

// New creates a Store with the given TTL. A non-positive TTL falls back to
// DefaultTTL.
func New[T any](ttl time.Duration, clock timeutil.Clock) *Store[T] {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	return &Store[T]{
		entries: make(map[string]entry[T]),
		ttl:     ttl,
		clock:   clock,
	}
}

// Put stores a value under a fresh session ID and returns the ID.
func (s *Store[T]) Put(value T) string {
	id := uuid.New().String()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[id] = entry[T]{
		value:     value,
		expiresAt: s.clock.Now().Add(s.ttl),
	}
	return id
}

// Get returns the value stored under id. Expired entries are dropped and
// reported as absent; a hit extends the entry's lifetime by the TTL.
func (s *Store[T]) Get(id string) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T
	e, ok := s.entries[id]
	if !ok {
		return zero, false
	}

	now := s.clock.Now()
	if now.After(e.expiresAt) {
		delete(s.entries, id)
		return zero, false
	}

	e.expiresAt = now.Add(s.ttl)
	s.entries[id] = e
	return e.value, true
}

// Delete removes the session with the given ID, if present.
func (s *Store[T]) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, id)
}

// Len returns the number of stored sessions, including any not yet pruned.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// PurgeExpired drops every expired session and returns how many were removed.
func (s *Store[T]) PurgeExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	removed := 0
	for id, e := range s.entries {
		if now.After(e.expiresAt) {
			delete(s.entries, id)
			removed++
		}
	}
	return removed
}
