package ports

import (
	"context"
	"errors"
)

// ErrSnapshotNotFound is returned by Load when no snapshot exists for a key.
var ErrSnapshotNotFound = errors.New("snapshot not found")

// SnapshotStore defines the interface for persisting state snapshots.
// S is the snapshot type; adapters serialize it (typically as JSON) and must
// return values isolated from their internal storage, so callers can never
// mutate persisted data through a returned reference.
type SnapshotStore[S any] interface {
	// Save persists the snapshot under the given key, replacing any
	// previous value.
	Save(ctx context.Context, key string, snapshot S) error

	// Load retrieves the snapshot stored under the key.
	// Returns ErrSnapshotNotFound if the key does not exist.
	Load(ctx context.Context, key string) (S, error)

	// Delete removes the snapshot. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// List returns the keys currently stored.
	List(ctx context.Context) ([]string, error)
}
