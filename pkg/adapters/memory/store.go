// Package memory provides an in-memory SnapshotStore, the default backend
// for tests and short-lived hosts.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/latticekit/lattice/pkg/ports"
)

// Store implements ports.SnapshotStore in memory.
// Safe for concurrent use.
type Store[S any] struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewStore creates a new in-memory store.
func NewStore[S any]() *Store[S] {
	return &Store[S]{
		data: make(map[string][]byte),
	}
}

// Save persists the snapshot in memory. Snapshots are stored serialized so
// callers can never reach the stored value through a shared reference.
func (s *Store[S]) Save(ctx context.Context, key string, snapshot S) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = data
	return nil
}

// Load retrieves the snapshot from memory.
func (s *Store[S]) Load(ctx context.Context, key string) (S, error) {
	s.mu.RLock()
	data, ok := s.data[key]
	s.mu.RUnlock()

	var snapshot S
	if !ok {
		return snapshot, ports.ErrSnapshotNotFound
	}
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return snapshot, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}
	return snapshot, nil
}

// Delete removes the snapshot.
func (s *Store[S]) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

// List returns the stored keys.
func (s *Store[S]) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.data))
	for key := range s.data {
		keys = append(keys, key)
	}
	sort.Strings(keys) // Deterministic order
	return keys, nil
}
