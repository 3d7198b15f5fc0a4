package store

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/latticekit/lattice/internal/logging"
	"github.com/latticekit/lattice/pkg/effect"
)

// Transition computes the next state from a state and an action. It must be
// pure: no I/O, no shared mutation, and total over its inputs.
type Transition[S, A any] func(S, A) S

// Translator maps a completed transition to the ordered effect commands that
// should follow it. It must be pure and deterministic, and should return nil
// when the transition was a no-op.
type Translator[S, A any] func(oldState S, action A, newState S) []effect.Command

// Store owns the current state and serializes all changes through Dispatch.
type Store[S, A any] struct {
	state      S
	transition Transition[S, A]
	translator Translator[S, A]
	executor   *effect.Executor
	logger     *slog.Logger
	hooks      Hooks
	label      func(A) string

	subscribers []subscription[S]
	nextToken   Token

	// dispatching guards against same-goroutine re-entrant Dispatch calls.
	// Plain bool on purpose: cross-goroutine races are out of contract.
	dispatching bool
}

// New creates a Store owning the initial state.
func New[S, A any](initial S, transition Transition[S, A], opts ...Option[S, A]) *Store[S, A] {
	s := &Store[S, A]{
		state:      initial,
		transition: transition,
		executor:   effect.NewExecutor(),
		logger:     logging.NewNop(),
		label:      func(a A) string { return fmt.Sprintf("%T", a) },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns the current state. The value must be treated as read-only;
// transitions never mutate in place, so holding an old value is always safe.
func (s *Store[S, A]) State() S {
	return s.state
}

// Dispatch runs one full cycle: transition, state swap, effects, then
// subscriber notification. It returns ErrReentrantDispatch when called from
// inside an already running dispatch; everything else is absorbed — effect
// and subscriber failures are reported through the logger and hooks but do
// not fail the dispatch, and the state swap is never rolled back.
func (s *Store[S, A]) Dispatch(ctx context.Context, action A) error {
	if s.dispatching {
		return ErrReentrantDispatch
	}
	s.dispatching = true
	defer func() { s.dispatching = false }()

	started := time.Now()
	oldState := s.state
	newState := s.transition(oldState, action)

	var commands []effect.Command
	if s.translator != nil {
		commands = s.translator(oldState, action, newState)
	}

	// Single atomic swap; the state is committed before any effect runs.
	s.state = newState

	for _, failure := range s.executor.ExecuteAll(ctx, commands) {
		s.logger.WarnContext(ctx, "effect command failed",
			"kind", failure.Kind,
			"index", failure.Index,
			"err", failure.Err,
		)
		if s.hooks.OnEffectError != nil {
			s.hooks.OnEffectError(string(failure.Kind), failure.Err)
		}
	}

	s.notify(ctx, newState)

	if s.hooks.OnDispatch != nil {
		s.hooks.OnDispatch(s.label(action), time.Since(started))
	}
	return nil
}

// notify invokes every subscriber in registration order. A panicking
// subscriber is isolated: it is reported and the rest still run.
func (s *Store[S, A]) notify(ctx context.Context, state S) {
	// Snapshot the registry so subscribe/unsubscribe from inside a callback
	// cannot disturb this notification round.
	current := make([]subscription[S], len(s.subscribers))
	copy(current, s.subscribers)

	for _, sub := range current {
		s.invoke(ctx, sub, state)
	}
}

func (s *Store[S, A]) invoke(ctx context.Context, sub subscription[S], state S) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.ErrorContext(ctx, "subscriber panicked",
				"token", sub.token,
				"err", r,
			)
			if s.hooks.OnSubscriberPanic != nil {
				s.hooks.OnSubscriberPanic(sub.token, r)
			}
		}
	}()
	sub.subscriber.OnState(state)
}
