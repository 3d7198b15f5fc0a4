package store

import "time"

// Hooks defines callbacks for store observability. All fields are optional.
// Hooks run synchronously inside Dispatch and must not dispatch themselves.
type Hooks struct {
	// OnDispatch fires after a dispatch completes, with the action label and
	// the total elapsed time (transition, effects and notification).
	OnDispatch func(action string, elapsed time.Duration)

	// OnEffectError fires once per failed effect command.
	OnEffectError func(kind string, err error)

	// OnSubscriberPanic fires when a subscriber panics during notification.
	OnSubscriberPanic func(token Token, recovered any)
}
