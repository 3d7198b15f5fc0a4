package store

import (
	"log/slog"

	"github.com/latticekit/lattice/pkg/effect"
)

// Option defines a functional option for configuring the Store.
type Option[S, A any] func(*Store[S, A])

// WithTranslator sets the action-to-command translator. Without one, no
// effects run.
func WithTranslator[S, A any](tr Translator[S, A]) Option[S, A] {
	return func(s *Store[S, A]) {
		s.translator = tr
	}
}

// WithExecutor sets the effect executor that runs translated commands.
func WithExecutor[S, A any](exec *effect.Executor) Option[S, A] {
	return func(s *Store[S, A]) {
		if exec != nil {
			s.executor = exec
		}
	}
}

// WithLogger sets a structured logger for effect and subscriber failures.
func WithLogger[S, A any](logger *slog.Logger) Option[S, A] {
	return func(s *Store[S, A]) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithHooks registers observability hooks.
func WithHooks[S, A any](hooks Hooks) Option[S, A] {
	return func(s *Store[S, A]) {
		s.hooks = hooks
	}
}

// WithActionLabeler sets the function producing the label hooks receive for
// each action (e.g. a metric label). Defaults to the action's Go type.
func WithActionLabeler[S, A any](fn func(A) string) Option[S, A] {
	return func(s *Store[S, A]) {
		if fn != nil {
			s.label = fn
		}
	}
}
