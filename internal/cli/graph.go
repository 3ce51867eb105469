package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/steer/internal/presentation/graph"
	"github.com/aretw0/steer/pkg/config"
	"github.com/aretw0/steer/pkg/scenario"
)

// GraphOptions configure the pipeline diagram.
type GraphOptions struct {
	EngineOptions
	// Tick highlights branches active on that tick when positive.
	Tick int
}

// Graph writes a Mermaid diagram of the scenario's composition pipeline.
func Graph(opts GraphOptions, w io.Writer, logger *slog.Logger) error {
	sc, err := scenario.Load(opts.ScenarioPath)
	if err != nil {
		return err
	}
	setup, err := sc.Build()
	if err != nil {
		return err
	}
	if opts.TuningPath != "" {
		if setup.Tuning, err = config.Load(opts.TuningPath); err != nil {
			return err
		}
	}

	var overlay *graph.Overlay
	if opts.Tick > 0 {
		trace := &Trace{}
		opts.Hooks = opts.Hooks.Merge(trace.Hooks())
		eng, _, err := createEngine(opts.EngineOptions, logger)
		if err != nil {
			return err
		}
		scenario.Replay(eng, opts.Tick, sc.TickRate)
		row := trace.Rows[len(trace.Rows)-1]
		overlay = &graph.Overlay{Active: row.Active, Guarded: row.Guarded}
	}

	_, err = fmt.Fprint(w, graph.GenerateMermaid(setup.Tuning, setup.Assists, overlay))
	return err
}
