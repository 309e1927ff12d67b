// Package cache holds per-owner collection snapshots. Each entity type gets
// its own Store; services read through it and invalidate after every
// successful mutation so derived aggregates are never computed from a stale
// collection.
package cache

import (
	"sync"

	"github.com/google/uuid"
)

type entry[T any] struct {
	items   []T
	valid   bool
	version uint64
}

// Store maps an owner id to its current collection and a version counter.
// The version bumps on every invalidation, so callers can detect that a
// snapshot they hold predates a mutation.
type Store[T any] struct {
	mu      sync.RWMutex
	entries map[uuid.UUID]*entry[T]
}

func NewStore[T any]() *Store[T] {
	return &Store[T]{entries: make(map[uuid.UUID]*entry[T])}
}

// Get returns the cached collection for owner, if one is valid.
func (s *Store[T]) Get(owner uuid.UUID) ([]T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[owner]
	if !ok || !e.valid {
		return nil, false
	}
	return e.items, true
}

// Put stores a freshly fetched collection for owner.
func (s *Store[T]) Put(owner uuid.UUID, items []T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[owner]
	if !ok {
		e = &entry[T]{}
		s.entries[owner] = e
	}
	e.items = items
	e.valid = true
}

// Invalidate drops the cached collection for owner and bumps its version.
func (s *Store[T]) Invalidate(owner uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[owner]
	if !ok {
		e = &entry[T]{}
		s.entries[owner] = e
	}
	e.items = nil
	e.valid = false
	e.version++
}

// Version returns the invalidation counter for owner.
func (s *Store[T]) Version(owner uuid.UUID) uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if e, ok := s.entries[owner]; ok {
		return e.version
	}
	return 0
}
