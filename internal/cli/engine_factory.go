package cli

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/steer"
	"github.com/aretw0/steer/pkg/config"
	"github.com/aretw0/steer/pkg/domain"
	"github.com/aretw0/steer/pkg/observability"
	"github.com/aretw0/steer/pkg/scenario"
)

// EngineOptions are the CLI inputs shared by commands that build an engine.
type EngineOptions struct {
	ScenarioPath string
	// TuningPath overrides the scenario's inline tuning when set.
	TuningPath string
	Debug      bool
	Hooks      domain.LifecycleHooks
}

// createEngine loads the scenario and builds an engine with standard CLI conventions.
func createEngine(opts EngineOptions, logger *slog.Logger) (*steer.Engine, *scenario.Scenario, error) {
	sc, err := scenario.Load(opts.ScenarioPath)
	if err != nil {
		return nil, nil, err
	}

	extra := []steer.Option{steer.WithLogger(logger)}

	if opts.TuningPath != "" {
		tuning, err := config.Load(opts.TuningPath)
		if err != nil {
			return nil, nil, err
		}
		extra = append(extra, steer.WithTuning(tuning))
	}

	if opts.Debug {
		extra = append(extra, steer.WithLifecycleHooks(observability.DebugHooks(logger)))
	}
	extra = append(extra, steer.WithLifecycleHooks(opts.Hooks))

	eng, err := sc.Engine(extra...)
	if err != nil {
		return nil, nil, fmt.Errorf("error initializing engine: %w", err)
	}
	return eng, sc, nil
}
