package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/steer/internal/presentation/tui"
	"github.com/aretw0/steer/pkg/scenario"
	"github.com/muesli/termenv"
)

// SimulateOptions configure an offline replay.
type SimulateOptions struct {
	EngineOptions
	// Ticks overrides the scenario length when positive.
	Ticks int
	// JSON selects NDJSON output instead of a table.
	JSON bool
	// Profile sets table colors; termenv.Ascii disables them.
	Profile termenv.Profile
}

// Simulate replays a scenario and writes the trace to w.
func Simulate(opts SimulateOptions, w io.Writer, logger *slog.Logger) error {
	trace := &Trace{}
	opts.Hooks = opts.Hooks.Merge(trace.Hooks())

	eng, sc, err := createEngine(opts.EngineOptions, logger)
	if err != nil {
		return err
	}

	n := sc.Ticks
	if opts.Ticks > 0 {
		n = opts.Ticks
	}
	scenario.Replay(eng, n, sc.TickRate)
	logger.Info("Replay finished", "scenario", sc.Name, "ticks", n)

	if opts.JSON {
		enc := json.NewEncoder(w)
		for _, row := range trace.Rows {
			if err := enc.Encode(row); err != nil {
				return fmt.Errorf("encode tick %d: %w", row.Tick.Seq, err)
			}
		}
		return nil
	}

	out := termenv.NewOutput(w, termenv.WithProfile(opts.Profile))
	table := tui.NewTable(w, out)
	table.Header()
	for _, row := range trace.Rows {
		table.Row(row.tableRow(), float64(row.Tick.Seq-1)/sc.TickRate)
	}
	return nil
}
