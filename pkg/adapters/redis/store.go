// Package redis provides a SnapshotStore backed by Redis, for hosts that
// need snapshots to survive process restarts or be shared across replicas.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/latticekit/lattice/pkg/ports"
	backend "github.com/redis/go-redis/v9"
)

// Store implements ports.SnapshotStore using Redis.
type Store[S any] struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

// Option configures the Store.
type Option[S any] func(*Store[S])

// WithTTL sets the expiration for snapshots. Zero means no expiration.
func WithTTL[S any](ttl time.Duration) Option[S] {
	return func(s *Store[S]) {
		s.ttl = ttl
	}
}

// WithPrefix sets the key prefix for snapshots.
func WithPrefix[S any](prefix string) Option[S] {
	return func(s *Store[S]) {
		s.prefix = prefix
	}
}

// New creates a Redis store connecting to the given address.
func New[S any](address, password string, db int, opts ...Option[S]) *Store[S] {
	client := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient[S](client, opts...)
}

// NewFromClient creates a Redis store from an existing client.
func NewFromClient[S any](client *backend.Client, opts ...Option[S]) *Store[S] {
	store := &Store[S]{
		client: client,
		prefix: "lattice:snapshot:",
	}
	for _, opt := range opts {
		opt(store)
	}
	return store
}

func (s *Store[S]) key(key string) string {
	return s.prefix + key
}

func (s *Store[S]) indexKey() string {
	return s.prefix + "index"
}

// Save persists the snapshot and registers it in the ZSET index. The index
// score is the expiration time, which lets List prune lazily.
func (s *Store[S]) Save(ctx context.Context, key string, snapshot S) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	pipe := s.client.Pipeline()
	pipe.Set(ctx, s.key(key), data, s.ttl)

	score := float64(time.Now().Add(s.ttl).Unix())
	if s.ttl == 0 {
		score = 4102444800 // 2100-01-01, effectively "never expires"
	}
	pipe.ZAdd(ctx, s.indexKey(), backend.Z{
		Score:  score,
		Member: key,
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save to redis: %w", err)
	}
	return nil
}

// Load retrieves the snapshot.
func (s *Store[S]) Load(ctx context.Context, key string) (S, error) {
	var snapshot S

	val, err := s.client.Get(ctx, s.key(key)).Result()
	if err != nil {
		if err == backend.Nil {
			return snapshot, ports.ErrSnapshotNotFound
		}
		return snapshot, fmt.Errorf("failed to get from redis: %w", err)
	}

	if err := json.Unmarshal([]byte(val), &snapshot); err != nil {
		return snapshot, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}
	return snapshot, nil
}

// Delete removes the snapshot and its index entry.
func (s *Store[S]) Delete(ctx context.Context, key string) error {
	pipe := s.client.Pipeline()
	pipe.Del(ctx, s.key(key))
	pipe.ZRem(ctx, s.indexKey(), key)

	_, err := pipe.Exec(ctx)
	return err
}

// List returns the stored keys, lazily pruning expired index entries first.
func (s *Store[S]) List(ctx context.Context) ([]string, error) {
	now := float64(time.Now().Unix())
	if err := s.client.ZRemRangeByScore(ctx, s.indexKey(), "-inf", fmt.Sprintf("%f", now)).Err(); err != nil {
		return nil, fmt.Errorf("failed to prune expired snapshots: %w", err)
	}

	keys, err := s.client.ZRange(ctx, s.indexKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}
	return keys, nil
}

// Close closes the underlying redis client.
func (s *Store[S]) Close() error {
	return s.client.Close()
}
