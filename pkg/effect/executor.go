package effect

import (
	"context"
	"fmt"
	"sync"
)

// Handler executes a single command. Handlers must return promptly; a
// long-running effect should hand itself to its own asynchronous boundary
// and report only submission failures here.
type Handler interface {
	Execute(ctx context.Context, cmd Command) error
}

// HandlerFunc adapts a plain function to the Handler interface.
type HandlerFunc func(ctx context.Context, cmd Command) error

// Execute implements Handler.
func (f HandlerFunc) Execute(ctx context.Context, cmd Command) error {
	return f(ctx, cmd)
}

// Executor routes commands to their registered handlers.
type Executor struct {
	mu       sync.RWMutex
	handlers map[Kind]Handler
}

// NewExecutor creates an empty executor. Commands of unregistered kinds
// fail with an error wrapping ErrNoHandler.
func NewExecutor() *Executor {
	return &Executor{
		handlers: make(map[Kind]Handler),
	}
}

// Register binds a handler to a command kind.
// If a handler for the kind exists, it is overwritten.
func (e *Executor) Register(kind Kind, h Handler) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.handlers[kind] = h
}

// Execute looks up the handler for the command's kind and runs it.
func (e *Executor) Execute(ctx context.Context, cmd Command) error {
	e.mu.RLock()
	h, ok := e.handlers[cmd.Kind]
	e.mu.RUnlock()

	if !ok {
		return fmt.Errorf("%w: %s", ErrNoHandler, cmd.Kind)
	}

	return h.Execute(ctx, cmd)
}

// ExecuteAll runs the commands in order, continuing past failures so a bad
// effect cannot block the ones behind it. It returns one Failure per failed
// command, preserving command order.
func (e *Executor) ExecuteAll(ctx context.Context, cmds []Command) []Failure {
	var failures []Failure
	for i, cmd := range cmds {
		if err := e.Execute(ctx, cmd); err != nil {
			failures = append(failures, Failure{Index: i, Kind: cmd.Kind, Err: err})
		}
	}
	return failures
}

// Failure records a single failed command within a dispatch.
type Failure struct {
	Index int
	Kind  Kind
	Err   error
}

func (f Failure) Error() string {
	return fmt.Sprintf("command %d (%s): %v", f.Index, f.Kind, f.Err)
}

// Unwrap exposes the underlying handler error to errors.Is/As.
func (f Failure) Unwrap() error {
	return f.Err
}
