package ports

import (
	"context"
	"testing"
	"time"

	"github.com/latticekit/lattice/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunSnapshotStoreContract runs a suite of tests to verify that a
// SnapshotStore implementation adheres to the defined interface contract.
// Adapters (memory, file, redis, ...) call this from their own tests.
func RunSnapshotStoreContract(t *testing.T, store SnapshotStore[domain.List]) {
	ctx := context.Background()
	key := "contract-test-" + time.Now().Format("20060102150405")

	t.Run("Save and Load", func(t *testing.T) {
		snap := domain.Transition(domain.NewList(), domain.Add("contract"))
		snap = domain.Transition(snap, domain.Toggle(0))

		err := store.Save(ctx, key, snap)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, key)
		require.NoError(t, err, "Load should not return error")
		assert.True(t, loaded.Equal(snap), "loaded snapshot should be value-equal")
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+key)
		assert.ErrorIs(t, err, ErrSnapshotNotFound)
	})

	t.Run("Save Overwrites", func(t *testing.T) {
		first := domain.Transition(domain.NewList(), domain.Add("v1"))
		second := domain.Transition(first, domain.Add("v2"))

		require.NoError(t, store.Save(ctx, key, first))
		require.NoError(t, store.Save(ctx, key, second))

		loaded, err := store.Load(ctx, key)
		require.NoError(t, err)
		assert.True(t, loaded.Equal(second))
	})

	t.Run("Loaded Value Is Isolated", func(t *testing.T) {
		snap := domain.Transition(domain.NewList(), domain.Add("isolated"))
		require.NoError(t, store.Save(ctx, key, snap))

		loaded, err := store.Load(ctx, key)
		require.NoError(t, err)
		loaded.Items[0].Title = "mutated"

		again, err := store.Load(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, "isolated", again.Items[0].Title)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, key, domain.NewList()))

		err := store.Delete(ctx, key)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, key)
		assert.ErrorIs(t, err, ErrSnapshotNotFound, "Load after Delete should return ErrSnapshotNotFound")

		assert.NoError(t, store.Delete(ctx, key), "deleting a missing key is not an error")
	})

	t.Run("List", func(t *testing.T) {
		k1 := key + "-1"
		k2 := key + "-2"
		require.NoError(t, store.Save(ctx, k1, domain.NewList()))
		require.NoError(t, store.Save(ctx, k2, domain.NewList()))

		defer func() {
			_ = store.Delete(ctx, k1)
			_ = store.Delete(ctx, k2)
		}()

		keys, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, keys, k1)
		assert.Contains(t, keys, k2)
	})
}
