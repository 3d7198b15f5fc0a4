// Package crypto provides an encrypting decorator for snapshot stores.
// Snapshots are sealed with AES-256-GCM before they reach the inner
// backend, so file and redis backends only ever see ciphertext.
package crypto

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/latticekit/lattice/pkg/ports"
)

// ErrBadKey is returned when a key is not the required 32 bytes (AES-256).
var ErrBadKey = errors.New("encryption key must be 32 bytes")

// ErrDecrypt is returned when no configured key can open a snapshot.
var ErrDecrypt = errors.New("decryption failed with all available keys")

// Envelope is what the inner backend stores: an opaque ciphertext blob.
type Envelope struct {
	Cipher []byte `json:"cipher"`
}

// KeyConfig holds the keys for sealing and opening snapshots.
type KeyConfig struct {
	// ActiveKey seals new snapshots. Must be 32 bytes.
	ActiveKey []byte

	// FallbackKeys are old keys tried when opening fails, enabling
	// zero-downtime key rotation.
	FallbackKeys [][]byte
}

// Store wraps an Envelope-typed backend and exposes it as a plaintext
// SnapshotStore for S.
type Store[S any] struct {
	inner ports.SnapshotStore[Envelope]
	keys  KeyConfig
}

// New creates an encrypting store over the given backend.
func New[S any](inner ports.SnapshotStore[Envelope], keys KeyConfig) (*Store[S], error) {
	if len(keys.ActiveKey) != 32 {
		return nil, ErrBadKey
	}
	for _, key := range keys.FallbackKeys {
		if len(key) != 32 {
			return nil, ErrBadKey
		}
	}
	return &Store[S]{inner: inner, keys: keys}, nil
}

// Save serializes the snapshot, seals it with the active key and hands the
// envelope to the inner backend.
func (s *Store[S]) Save(ctx context.Context, key string, snapshot S) error {
	plain, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	sealed, err := seal(plain, s.keys.ActiveKey)
	if err != nil {
		return fmt.Errorf("failed to encrypt snapshot: %w", err)
	}

	return s.inner.Save(ctx, key, Envelope{Cipher: sealed})
}

// Load fetches the envelope and tries the active key first, then the
// fallback keys in order.
func (s *Store[S]) Load(ctx context.Context, key string) (S, error) {
	var zero S

	envelope, err := s.inner.Load(ctx, key)
	if err != nil {
		return zero, err
	}

	plain, err := s.open(envelope.Cipher)
	if err != nil {
		return zero, err
	}

	var snapshot S
	if err := json.Unmarshal(plain, &snapshot); err != nil {
		return zero, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}
	return snapshot, nil
}

// Delete removes the snapshot from the inner backend.
func (s *Store[S]) Delete(ctx context.Context, key string) error {
	return s.inner.Delete(ctx, key)
}

// List returns the keys known to the inner backend.
func (s *Store[S]) List(ctx context.Context) ([]string, error) {
	return s.inner.List(ctx)
}

func (s *Store[S]) open(sealed []byte) ([]byte, error) {
	if plain, err := open(sealed, s.keys.ActiveKey); err == nil {
		return plain, nil
	}
	for _, key := range s.keys.FallbackKeys {
		if plain, err := open(sealed, key); err == nil {
			return plain, nil
		}
	}
	return nil, ErrDecrypt
}

func seal(plain, key []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}

	return gcm.Seal(nonce, nonce, plain, nil), nil
}

func open(sealed, key []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	if len(sealed) < gcm.NonceSize() {
		return nil, errors.New("ciphertext too short")
	}

	nonce := sealed[:gcm.NonceSize()]
	return gcm.Open(nil, nonce, sealed[gcm.NonceSize():], nil)
}
