// Package storage provides in-memory and file-backed persistence helpers.
package storage

import (
	"context"
	"sync"

	"github.com/hammamikhairi/gastro/internal/domain"
	"github.com/hammamikhairi/gastro/internal/logger"
)

// MemoryStore is an in-memory keyed store holding at most one value per
// key. Saving under an existing key overwrites it. Safe for concurrent
// access.
type MemoryStore[K comparable, V any] struct {
	mu    sync.RWMutex
	items map[K]V
	log   *logger.Logger
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore[K comparable, V any](log *logger.Logger) *MemoryStore[K, V] {
	return &MemoryStore[K, V]{
		items: make(map[K]V),
		log:   log,
	}
}

// Save stores v under key. Overwrites if it already exists.
func (s *MemoryStore[K, V]) Save(ctx context.Context, key K, v V) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[key]; ok {
		s.log.Debug("overwriting entry %v", key)
	} else {
		s.log.Debug("saving entry %v", key)
	}
	s.items[key] = v
	return nil
}

// Load retrieves the value stored under key.
func (s *MemoryStore[K, V]) Load(ctx context.Context, key K) (V, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.items[key]
	if !ok {
		s.log.Debug("entry not found: %v", key)
		var zero V
		return zero, domain.ErrNotFound
	}
	return v, nil
}

// Len returns the number of stored entries.
func (s *MemoryStore[K, V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
