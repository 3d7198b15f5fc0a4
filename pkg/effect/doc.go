/*
Package effect defines commands (side effects to perform after a state
change) and the executor that runs them.

Commands are produced by the translator, never by domain logic. Each command
kind maps to exactly one registered handler, which is the seam that lets
persistence backends, loggers and analytics sinks be swapped (test doubles
vs real backends) without changing store or translator code.

Execution is best-effort from the store's perspective: a failing handler is
reported but never rolls back the state transition that produced the command.
*/
package effect
