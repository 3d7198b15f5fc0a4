/*
Package lattice is a state-management runtime with a strict three-tier
execution model: pure domain logic, a stateful runtime with controlled side
effects, and external bindings that consume both.

The store owns a single immutable state value and applies every change
through one dispatch cycle: a pure transition computes the new state, a pure
translator maps the action to effect commands, the executor runs those
commands in order (persistence before notification), and subscribers are
invoked in registration order. Effects and observers can fail without ever
corrupting the committed state.

# Architecture

  - pkg/domain: pure value types and the total transition function. No I/O,
    no dependencies.
  - pkg/translate: pure mapping from actions to effect commands.
  - pkg/store: the dispatcher. Exclusive state ownership, re-entrancy
    guarded, ordered subscriber registry.
  - pkg/effect: the command executor and its swappable handlers.
  - pkg/ports + pkg/adapters: persistence backends (memory, file, Redis)
    behind one contract-tested interface.
  - pkg/reconnect: backoff-governed retry state machine for transport-owning
    hosts.

# Usage

	package main

	import (
		"context"
		"fmt"
		"log"

		"github.com/latticekit/lattice"
		"github.com/latticekit/lattice/pkg/domain"
	)

	func main() {
		ctx := context.Background()
		s, err := lattice.New(ctx)
		if err != nil {
			log.Fatal(err)
		}

		s.SubscribeFunc(func(state domain.List) {
			fmt.Printf("%d item(s)\n", len(state.Items))
		})

		if err := s.Dispatch(ctx, domain.Add("hello")); err != nil {
			log.Fatal(err)
		}
	}

A Store is confined to a single goroutine; see pkg/store for the ownership
and re-entrancy rules.
*/
package lattice
