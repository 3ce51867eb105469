package ports

import (
	"context"
	"errors"

	"github.com/aretw0/steer/pkg/domain"
)

// CommandSink defines the downstream consumer of final commands.
// Implementations must be safe to call from the control-loop goroutine and
// should return quickly; slow transports are expected to buffer internally.
type CommandSink interface {
	// Publish hands over the bounded command produced for tick.
	Publish(ctx context.Context, tick domain.Tick, cmd domain.Command) error
}

// CommandSource reads back the latest published command.
type CommandSource interface {
	// Last returns the most recent tick and command.
	// Returns domain.ErrNoCommand if nothing was published yet.
	Last(ctx context.Context) (domain.Tick, domain.Command, error)
}

// SinkFunc adapts a function to CommandSink.
type SinkFunc func(ctx context.Context, tick domain.Tick, cmd domain.Command) error

// Publish calls f.
func (f SinkFunc) Publish(ctx context.Context, tick domain.Tick, cmd domain.Command) error {
	return f(ctx, tick, cmd)
}

// MultiSink publishes to every sink in order. All sinks are attempted; their
// errors are joined.
func MultiSink(sinks ...CommandSink) CommandSink {
	return SinkFunc(func(ctx context.Context, tick domain.Tick, cmd domain.Command) error {
		var errs []error
		for _, s := range sinks {
			if err := s.Publish(ctx, tick, cmd); err != nil {
				errs = append(errs, err)
			}
		}
		return errors.Join(errs...)
	})
}
