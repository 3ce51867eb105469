/*
Package observability provides tools for monitoring the steer engine.

Metrics implements domain.LifecycleHooks on top of Prometheus collectors:
tick counts, per-branch participation, sink guard interventions, the last
emitted command and the observed tick interval. DebugHooks logs the same
events through slog for troubleshooting.
*/
package observability
