/*
Package runner drives an engine in real time.

The engine itself is synchronous and owns no clock. The runner owns the loop:
it measures elapsed time between ticks, calls Evaluate exactly once per tick
and hands the bounded result to a ports.CommandSink.

# Usage

	r := runner.New(engine,
		runner.WithSink(publisher),
		runner.WithTickRate(50),
		runner.WithLogger(logger),
	)

	if err := r.Run(ctx); err != nil {
		log.Fatal(err)
	}

For deterministic drivers (tests, simulators) call Step with explicit
timestamps instead of Run.
*/
package runner
