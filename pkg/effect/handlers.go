package effect

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mitchellh/mapstructure"

	"github.com/latticekit/lattice/pkg/ports"
)

// SnapshotHandler persists KindPersist payloads through a SnapshotStore.
// The store key is fixed at construction: one handler per logical session.
type SnapshotHandler[S any] struct {
	store ports.SnapshotStore[S]
	key   string
}

// NewSnapshotHandler creates a persistence handler writing under key.
func NewSnapshotHandler[S any](store ports.SnapshotStore[S], key string) *SnapshotHandler[S] {
	return &SnapshotHandler[S]{store: store, key: key}
}

// Execute writes the snapshot carried by the command.
func (h *SnapshotHandler[S]) Execute(ctx context.Context, cmd Command) error {
	snapshot, ok := cmd.Payload.(S)
	if !ok {
		return fmt.Errorf("%w: persist payload is %T", ErrBadPayload, cmd.Payload)
	}
	if err := h.store.Save(ctx, h.key, snapshot); err != nil {
		return fmt.Errorf("failed to persist snapshot: %w", err)
	}
	return nil
}

// LogHandler emits KindLog payloads through a structured logger.
type LogHandler struct {
	logger *slog.Logger
}

// NewLogHandler creates a logging handler.
func NewLogHandler(logger *slog.Logger) *LogHandler {
	return &LogHandler{logger: logger}
}

// Execute logs the entry at Info level.
func (h *LogHandler) Execute(ctx context.Context, cmd Command) error {
	entry, err := decodeLogEntry(cmd.Payload)
	if err != nil {
		return err
	}
	h.logger.InfoContext(ctx, entry.Message, "action", entry.Action)
	return nil
}

// EventSink receives analytics events. The prometheus-backed sink lives in
// pkg/observability; tests use in-memory doubles.
type EventSink interface {
	Observe(Event)
}

// AnalyticsHandler forwards KindAnalytics payloads to an EventSink.
type AnalyticsHandler struct {
	sink EventSink
}

// NewAnalyticsHandler creates an analytics handler.
func NewAnalyticsHandler(sink EventSink) *AnalyticsHandler {
	return &AnalyticsHandler{sink: sink}
}

// Execute decodes the event and forwards it to the sink.
// Payloads arriving as generic maps (e.g. commands rehydrated from JSON)
// are decoded with mapstructure, so both typed and untyped forms work.
func (h *AnalyticsHandler) Execute(ctx context.Context, cmd Command) error {
	var event Event
	switch payload := cmd.Payload.(type) {
	case Event:
		event = payload
	default:
		if err := mapstructure.Decode(payload, &event); err != nil {
			return fmt.Errorf("%w: %v", ErrBadPayload, err)
		}
	}
	if event.Name == "" {
		return fmt.Errorf("%w: analytics event has no name", ErrBadPayload)
	}
	h.sink.Observe(event)
	return nil
}

func decodeLogEntry(payload any) (LogEntry, error) {
	switch p := payload.(type) {
	case LogEntry:
		return p, nil
	case string:
		return LogEntry{Message: p}, nil
	default:
		var entry LogEntry
		if err := mapstructure.Decode(payload, &entry); err != nil {
			return LogEntry{}, fmt.Errorf("%w: %v", ErrBadPayload, err)
		}
		return entry, nil
	}
}
