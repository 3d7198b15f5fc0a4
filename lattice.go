package lattice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/latticekit/lattice/internal/logging"
	"github.com/latticekit/lattice/pkg/adapters/memory"
	"github.com/latticekit/lattice/pkg/domain"
	"github.com/latticekit/lattice/pkg/effect"
	"github.com/latticekit/lattice/pkg/observability"
	"github.com/latticekit/lattice/pkg/ports"
	"github.com/latticekit/lattice/pkg/store"
	"github.com/latticekit/lattice/pkg/translate"
)

// Version is the library version, surfaced by the CLI.
const Version = "0.1.0"

// TodoStore is a Store wired for the todo-list domain.
type TodoStore = store.Store[domain.List, domain.Action]

// SnapshotStore is the persistence port for todo-list snapshots.
type SnapshotStore = ports.SnapshotStore[domain.List]

type config struct {
	snapshots SnapshotStore
	key       string
	logger    *slog.Logger
	metrics   *observability.Metrics
	initial   *domain.List
}

// Option defines a functional option for configuring the store.
type Option func(*config)

// WithSnapshotStore sets the persistence backend. Defaults to in-memory.
func WithSnapshotStore(s SnapshotStore) Option {
	return func(c *config) {
		if s != nil {
			c.snapshots = s
		}
	}
}

// WithSnapshotKey sets the key snapshots are stored under, so multiple
// logical sessions can share one backend. Defaults to "default".
func WithSnapshotKey(key string) Option {
	return func(c *config) {
		if key != "" {
			c.key = key
		}
	}
}

// WithLogger sets a structured logger. Defaults to a no-op logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithMetrics wires Prometheus instrumentation into the store hooks and the
// analytics effect handler.
func WithMetrics(m *observability.Metrics) Option {
	return func(c *config) {
		c.metrics = m
	}
}

// WithInitialState sets the starting state explicitly, skipping the resume
// lookup against the snapshot store.
func WithInitialState(list domain.List) Option {
	return func(c *config) {
		c.initial = &list
	}
}

// nopSink drops analytics events when no metrics are configured.
type nopSink struct{}

func (nopSink) Observe(effect.Event) {}

// New wires a ready-to-use todo store: pure transition, translator, effect
// handlers and persistence. If the snapshot store already holds a snapshot
// under the configured key, the store resumes from it.
func New(ctx context.Context, opts ...Option) (*TodoStore, error) {
	cfg := &config{
		snapshots: memory.NewStore[domain.List](),
		key:       "default",
		logger:    logging.NewNop(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	initial := domain.NewList()
	switch {
	case cfg.initial != nil:
		initial = *cfg.initial
	default:
		snapshot, err := cfg.snapshots.Load(ctx, cfg.key)
		if err == nil {
			initial = snapshot
		} else if !errors.Is(err, ports.ErrSnapshotNotFound) {
			return nil, fmt.Errorf("failed to resume from snapshot: %w", err)
		}
	}

	var sink effect.EventSink = nopSink{}
	if cfg.metrics != nil {
		sink = cfg.metrics
	}

	executor := effect.NewExecutor()
	executor.Register(effect.KindPersist, effect.NewSnapshotHandler[domain.List](cfg.snapshots, cfg.key))
	executor.Register(effect.KindLog, effect.NewLogHandler(cfg.logger))
	executor.Register(effect.KindAnalytics, effect.NewAnalyticsHandler(sink))

	storeOpts := []store.Option[domain.List, domain.Action]{
		store.WithTranslator(translate.Todos),
		store.WithExecutor[domain.List, domain.Action](executor),
		store.WithLogger[domain.List, domain.Action](cfg.logger),
		store.WithActionLabeler[domain.List](func(a domain.Action) string { return string(a.Type) }),
	}
	if cfg.metrics != nil {
		storeOpts = append(storeOpts, store.WithHooks[domain.List, domain.Action](cfg.metrics.StoreHooks()))
	}

	return store.New(initial, domain.Transition, storeOpts...), nil
}
