/*
Package ports defines the driven ports (interfaces) for the Lattice runtime.

These interfaces decouple the store and effect executor from external
implementations, allowing persistence backends (memory, file, Redis) to be
swapped without touching domain or dispatch logic.

# Key Interfaces

  - SnapshotStore: Responsible for persisting and loading state snapshots.

The package also ships a reusable contract test suite
(RunSnapshotStoreContract) that every adapter is expected to pass.
*/
package ports
