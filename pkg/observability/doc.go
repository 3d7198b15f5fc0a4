/*
Package observability provides Prometheus instrumentation for the Lattice
runtime.

Metrics plug into the store through its Hooks, into the effect executor as
an analytics EventSink, and into the reconnect policy through its scheduling
observer, so none of the core packages depend on Prometheus themselves.
*/
package observability
