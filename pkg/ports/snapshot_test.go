package ports_test

import (
	"context"
	"testing"

	"github.com/latticekit/lattice/pkg/domain"
	"github.com/latticekit/lattice/pkg/ports"
)

// MockStore is a minimal SnapshotStore used to validate the contract suite
// itself. Real adapters live under pkg/adapters.
type MockStore struct {
	data map[string]domain.List
}

func NewMockStore() *MockStore {
	return &MockStore{data: make(map[string]domain.List)}
}

func (m *MockStore) Save(ctx context.Context, key string, snapshot domain.List) error {
	// Copy items to simulate serialization
	items := make([]domain.Item, len(snapshot.Items))
	copy(items, snapshot.Items)
	snapshot.Items = items
	m.data[key] = snapshot
	return nil
}

func (m *MockStore) Load(ctx context.Context, key string) (domain.List, error) {
	snap, ok := m.data[key]
	if !ok {
		return domain.List{}, ports.ErrSnapshotNotFound
	}
	items := make([]domain.Item, len(snap.Items))
	copy(items, snap.Items)
	snap.Items = items
	return snap, nil
}

func (m *MockStore) Delete(ctx context.Context, key string) error {
	delete(m.data, key)
	return nil
}

func (m *MockStore) List(ctx context.Context) ([]string, error) {
	keys := make([]string, 0, len(m.data))
	for k := range m.data {
		keys = append(keys, k)
	}
	return keys, nil
}

func TestSnapshotStore_Contract(t *testing.T) {
	// Verifies the MockStore complies with the SnapshotStore contract, and
	// doubles as a self-test for the suite future adapters run against.
	ports.RunSnapshotStoreContract(t, NewMockStore())
}
