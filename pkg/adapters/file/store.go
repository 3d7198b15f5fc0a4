// Package file provides a SnapshotStore backed by the local filesystem,
// storing snapshots as JSON files in a configured directory.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/latticekit/lattice/pkg/ports"
)

// Store implements ports.SnapshotStore on the local filesystem.
type Store[S any] struct {
	BasePath string
}

// New creates a new Store writing under basePath.
// If basePath is empty, it defaults to ".lattice/snapshots".
func New[S any](basePath string) *Store[S] {
	if basePath == "" {
		basePath = filepath.Join(".lattice", "snapshots")
	}
	return &Store[S]{BasePath: basePath}
}

func (s *Store[S]) path(key string) string {
	return filepath.Join(s.BasePath, key+".json")
}

// Save persists the snapshot atomically: write to a temp file in the same
// directory, fsync, close, then rename over the destination. A crash mid-save
// leaves either the previous snapshot or the new one, never a partial file.
func (s *Store[S]) Save(ctx context.Context, key string, snapshot S) error {
	if key == "" {
		return fmt.Errorf("key cannot be empty")
	}

	if err := os.MkdirAll(s.BasePath, 0o755); err != nil {
		return fmt.Errorf("failed to ensure snapshot directory: %w", err)
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	// Same directory as the destination, so the rename stays on one filesystem.
	tmpFile, err := os.CreateTemp(s.BasePath, "tmp-"+key+"-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath) // no-op once renamed
	}()

	if _, err := tmpFile.Write(data); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("failed to fsync temp file: %w", err)
	}
	// Windows cannot rename an open file.
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path(key)); err != nil {
		return fmt.Errorf("failed to rename temp file into place: %w", err)
	}
	return nil
}

// Load retrieves the snapshot from its JSON file.
func (s *Store[S]) Load(ctx context.Context, key string) (S, error) {
	var snapshot S
	if key == "" {
		return snapshot, fmt.Errorf("key cannot be empty")
	}

	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return snapshot, ports.ErrSnapshotNotFound
		}
		return snapshot, fmt.Errorf("failed to read snapshot file: %w", err)
	}

	if err := json.Unmarshal(data, &snapshot); err != nil {
		return snapshot, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}
	return snapshot, nil
}

// Delete removes the snapshot file. Missing files are not an error.
func (s *Store[S]) Delete(ctx context.Context, key string) error {
	if key == "" {
		return fmt.Errorf("key cannot be empty")
	}
	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete snapshot file: %w", err)
	}
	return nil
}

// List returns the keys of all stored snapshots.
func (s *Store[S]) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.BasePath)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}

	var keys []string
	for _, entry := range entries {
		name := entry.Name()
		if !entry.IsDir() && filepath.Ext(name) == ".json" {
			keys = append(keys, name[:len(name)-len(".json")])
		}
	}
	return keys, nil
}
