package runner

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/aretw0/steer/pkg/domain"
	"github.com/aretw0/steer/pkg/ports"
)

// Evaluator computes one bounded command per tick. *steer.Engine satisfies it.
type Evaluator interface {
	Evaluate(domain.Tick) domain.Command
}

// Runner calls an Evaluator once per tick and publishes the result.
// Step and Run must not be called concurrently.
type Runner struct {
	engine Evaluator
	sink   ports.CommandSink
	period time.Duration
	maxDT  time.Duration
	clock  Clock
	logger *slog.Logger

	seq  uint64
	last time.Time

	sinkErrors atomic.Uint64
	panics     atomic.Uint64
}

// New creates a runner for the engine.
func New(engine Evaluator, opts ...Option) *Runner {
	r := &Runner{
		engine: engine,
		period: time.Second / DefaultTickRate,
		maxDT:  DefaultMaxDT,
		clock:  time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if r.sink == nil {
		r.sink = ports.SinkFunc(func(context.Context, domain.Tick, domain.Command) error { return nil })
	}
	return r
}

// Period returns the nominal interval between ticks.
func (r *Runner) Period() time.Duration {
	return r.period
}

// SinkErrors returns how many publishes failed.
func (r *Runner) SinkErrors() uint64 {
	return r.sinkErrors.Load()
}

// Panics returns how many ticks were aborted by a panicking source.
func (r *Runner) Panics() uint64 {
	return r.panics.Load()
}

// Step runs one tick at the given instant. The first tick reports the nominal
// period; later ticks report the time since the previous one, clamped to
// [0, MaxDT]. Sink failures are returned but leave the runner usable.
func (r *Runner) Step(ctx context.Context, now time.Time) (domain.Command, error) {
	dt := r.period
	if !r.last.IsZero() {
		dt = now.Sub(r.last)
	}
	r.last = now

	if dt < 0 {
		dt = 0
	}
	if dt > r.maxDT {
		r.logger.Debug("tick interval clamped", "elapsed", dt, "max", r.maxDT)
		dt = r.maxDT
	}

	r.seq++
	tick := domain.Tick{Seq: r.seq, DT: dt.Seconds()}
	cmd := r.evaluate(tick)

	if err := r.sink.Publish(ctx, tick, cmd); err != nil {
		r.sinkErrors.Add(1)
		r.logger.Error("publish failed", "seq", tick.Seq, "error", err)
		return cmd, fmt.Errorf("publish tick %d: %w", tick.Seq, err)
	}
	return cmd, nil
}

// evaluate isolates the loop from panicking user sources. A panicked tick
// publishes the zero command.
func (r *Runner) evaluate(tick domain.Tick) (cmd domain.Command) {
	defer func() {
		if rec := recover(); rec != nil {
			r.panics.Add(1)
			r.logger.Error("evaluate panicked", "seq", tick.Seq, "panic", rec)
			cmd = domain.Zero
		}
	}()
	return r.engine.Evaluate(tick)
}

// Run ticks until ctx is cancelled. On exit it publishes the zero command so
// the chassis does not keep executing the last one.
func (r *Runner) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.period)
	defer ticker.Stop()

	r.logger.Info("control loop started", "period", r.period, "max_dt", r.maxDT)

	for {
		select {
		case <-ctx.Done():
			r.stop()
			return nil
		case <-ticker.C:
			// Errors are already logged and counted; the loop keeps going.
			_, _ = r.Step(ctx, r.clock())
		}
	}
}

func (r *Runner) stop() {
	ctx, cancel := context.WithTimeout(context.Background(), r.period+r.maxDT)
	defer cancel()

	r.seq++
	tick := domain.Tick{Seq: r.seq}
	if err := r.sink.Publish(ctx, tick, domain.Zero); err != nil {
		r.sinkErrors.Add(1)
		r.logger.Error("publish stop command failed", "error", err)
	}
	r.logger.Info("control loop stopped", "ticks", r.seq)
}
