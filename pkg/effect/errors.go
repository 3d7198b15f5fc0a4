package effect

import "errors"

// ErrNoHandler is returned when a command's kind has no registered handler.
var ErrNoHandler = errors.New("no handler registered for command kind")

// ErrBadPayload is returned when a command's payload cannot be interpreted
// by the handler that received it.
var ErrBadPayload = errors.New("command payload has unexpected shape")
