package sessions

import (
	"sync"
	"time"

	"slotbook/internal/pkg/clock"

	"github.com/google/uuid"
)

// Store holds server-side view state (wizards, boards) keyed by session
// id. Entries expire TTL after their last touch; an expired session is an
// unmounted view, so late responses against it are simply dropped.
// Eviction is lazy: expired entries are swept on access.
type Store[T any] struct {
	mu      sync.Mutex
	ttl     time.Duration
	clock   clock.Clock
	entries map[uuid.UUID]*entry[T]
}

type entry[T any] struct {
	value    T
	lastSeen time.Time
}

func NewStore[T any](ttl time.Duration, clk clock.Clock) *Store[T] {
	return &Store[T]{
		ttl:     ttl,
		clock:   clk,
		entries: make(map[uuid.UUID]*entry[T]),
	}
}

func (s *Store[T]) Put(id uuid.UUID, value T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweepLocked()
	s.entries[id] = &entry[T]{value: value, lastSeen: s.clock.Now()}
}

func (s *Store[T]) Get(id uuid.UUID) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweepLocked()

	e, ok := s.entries[id]
	if !ok {
		var zero T
		return zero, false
	}
	e.lastSeen = s.clock.Now()
	return e.value, true
}

func (s *Store[T]) Delete(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, id)
}

func (s *Store[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweepLocked()
	return len(s.entries)
}

func (s *Store[T]) sweepLocked() {
	deadline := s.clock.Now().Add(-s.ttl)
	for id, e := range s.entries {
		if e.lastSeen.Before(deadline) {
			delete(s.entries, id)
		}
	}
}
