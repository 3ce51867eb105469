/*
Package domain contains the core value types of the steer composition engine.

It defines the chassis-velocity Command produced every control tick, the
closed sets of axis roles, mixing strategies and output-limit policies, and
the typed closures that connect the engine to external producers. This package
is kept pure and free of I/O so it can be shared by the engine, the adapters
and the tooling.

# Key Entities

  - Command: the (lateral, axial, omega) velocity intent. Value semantics.
  - Tick: one iteration of the control loop, carrying the elapsed time.
  - AxisRole: which Command components a branch may contribute to.
  - MixStrategy / OutputLimitPolicy: how contributions are combined and bounded.
  - LifecycleHooks: synchronous observability callbacks fired during evaluation.
*/
package domain
