/*
Package domain contains the pure domain model for the Lattice runtime.

It defines the immutable state snapshot, the actions that describe intended
changes, and the pure transition function that computes the next state. This
package is kept free of I/O, side effects and external dependencies, following
Hexagonal Architecture principles: the store, translator and adapters depend
on domain, never the reverse.

# Key Entities

  - Item: A single unit of domain data with a stable identity.
  - List: The immutable state snapshot (items, identity counter, view filter).
  - Action: A tagged variant describing an intended change (Add, Toggle, ...).
  - Transition: The total, pure function producing the next state.

Transition never fails. Edge cases (toggling a missing ID, adding a blank
title) resolve to a value-equal copy of the input state rather than an error.
*/
package domain
