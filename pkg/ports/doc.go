/*
Package ports defines the driven ports (interfaces) around the steer engine.

The engine itself is a pure in-process computation. These interfaces describe
where its output goes once a control loop has produced it, so runners and
tooling can work with different downstream layers.

# Key Interfaces

  - CommandSink: receives the final command of every tick (chassis/kinematics layer).
  - CommandSource: reads back the most recently published command (status endpoints, tests).
*/
package ports
