package runner

import (
	"log/slog"
	"time"

	"github.com/aretw0/steer/pkg/ports"
)

// DefaultTickRate is the loop frequency in Hz when none is configured.
const DefaultTickRate = 50

// DefaultMaxDT bounds the elapsed time fed to the engine after a stall.
const DefaultMaxDT = 100 * time.Millisecond

// Clock returns the current time. time.Now carries a monotonic reading,
// so intervals survive wall clock adjustments.
type Clock func() time.Time

// Option defines a functional option for configuring the Runner.
type Option func(*Runner)

// WithSink configures where final commands are published.
func WithSink(sink ports.CommandSink) Option {
	return func(r *Runner) {
		r.sink = sink
	}
}

// WithTickRate sets the loop frequency in Hz. Non-positive values are ignored.
func WithTickRate(hz float64) Option {
	return func(r *Runner) {
		if hz > 0 {
			r.period = time.Duration(float64(time.Second) / hz)
		}
	}
}

// WithMaxDT caps the elapsed time reported to the engine.
func WithMaxDT(d time.Duration) Option {
	return func(r *Runner) {
		if d > 0 {
			r.maxDT = d
		}
	}
}

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}

// WithClock replaces time.Now.
func WithClock(clock Clock) Option {
	return func(r *Runner) {
		r.clock = clock
	}
}
