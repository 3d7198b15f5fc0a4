/*
Package store implements the dispatcher at the heart of the Lattice runtime.

A Store owns exactly one current state value and serializes every change
through a single mutation entry point, Dispatch. Each dispatch applies the
pure transition, swaps the stored state, runs the translated effect commands
in order, and notifies subscribers in registration order.

# Unidirectional Flow

	host --> Dispatch(action) --> transition --> new state
	     --> translator --> commands --> executor
	     --> subscribers (in order) --> host re-render

# Ownership and Concurrency

A Store is confined to a single goroutine. The re-entrancy guard protects
against a subscriber or effect handler synchronously dispatching again from
inside a dispatch; it is deliberately not a mutex and does not make the Store
safe for concurrent use from multiple goroutines. Hosts that need that wrap
the Store in their own mutual-exclusion boundary.

Subscribers and effect handlers run synchronously inside Dispatch, so a slow
callback blocks the dispatching caller. Long-running effects should hand
themselves to their own asynchronous boundary and return promptly.
*/
package store
