package file_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/latticekit/lattice/pkg/adapters/file"
	"github.com/latticekit/lattice/pkg/domain"
	"github.com/latticekit/lattice/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Contract(t *testing.T) {
	ports.RunSnapshotStoreContract(t, file.New[domain.List](t.TempDir()))
}

func TestStore_WritesJSONFile(t *testing.T) {
	dir := t.TempDir()
	store := file.New[domain.List](dir)
	ctx := context.Background()

	snap := domain.Transition(domain.NewList(), domain.Add("on disk"))
	require.NoError(t, store.Save(ctx, "session", snap))

	data, err := os.ReadFile(filepath.Join(dir, "session.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"on disk"`)
	assert.Contains(t, string(data), `"next_id": 1`)

	// No temp files left behind.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestStore_EmptyKeyRejected(t *testing.T) {
	store := file.New[domain.List](t.TempDir())
	ctx := context.Background()

	assert.Error(t, store.Save(ctx, "", domain.NewList()))
	_, err := store.Load(ctx, "")
	assert.Error(t, err)
	assert.Error(t, store.Delete(ctx, ""))
}

func TestStore_ListOnMissingDirectory(t *testing.T) {
	store := file.New[domain.List](filepath.Join(t.TempDir(), "nope"))
	keys, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, keys)
}
