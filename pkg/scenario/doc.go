/*
Package scenario loads scripted driving sessions and replays them through an engine.

A scenario file describes what the driver does with the sticks over time, how
the robot heading evolves, when precision mode is held and which assists engage.
Time is derived from the tick sequence and the tick rate, so a replay is fully
deterministic: the same file always yields the same command trace.

	name: approach
	tick_rate: 50
	ticks: 150
	driver:
	  - {at: 0, axial: 1}
	  - {at: 2, axial: 0}
	assists:
	  - name: align
	    role: omega_only
	    active: [{from: 1, to: 2}]
	    output: [{at: 0, omega: 0.4}]
*/
package scenario
