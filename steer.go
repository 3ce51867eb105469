package steer

import (
	"io"
	"log/slog"

	"github.com/aretw0/steer/internal/runtime"
	"github.com/aretw0/steer/pkg/branch"
	"github.com/aretw0/steer/pkg/config"
	"github.com/aretw0/steer/pkg/domain"
)

// Engine is the high-level entry point for the steer library.
// It wraps the internal composition graph and provides a simplified API for consumers.
type Engine struct {
	graph *runtime.Graph

	tuning       config.Tuning
	fieldCentric *bool
	assists      []branch.Branch
	precision    domain.Scalar
	fineRotation domain.Scalar
	heading      domain.Scalar
	hooks        domain.LifecycleHooks
	logger       *slog.Logger
	Name         string
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithTuning sets the static shaping and mixing parameters (default: config.Default()).
func WithTuning(t config.Tuning) Option {
	return func(e *Engine) {
		e.tuning = t
	}
}

// WithAssists appends assist branches. Earlier branches have higher priority.
func WithAssists(branches ...branch.Branch) Option {
	return func(e *Engine) {
		e.assists = append(e.assists, branches...)
	}
}

// WithPrecisionScale sets the live scale applied to the driver's translation axes.
func WithPrecisionScale(s domain.Scalar) Option {
	return func(e *Engine) {
		e.precision = s
	}
}

// WithFineRotationScale sets the live scale applied to the driver's omega axis.
func WithFineRotationScale(s domain.Scalar) Option {
	return func(e *Engine) {
		e.fineRotation = s
	}
}

// WithHeading sets the heading accessor used for field-centric driving, in radians CCW.
func WithHeading(s domain.Scalar) Option {
	return func(e *Engine) {
		e.heading = s
	}
}

// WithFieldCentric overrides the field-centric flag from the tuning.
func WithFieldCentric(enabled bool) Option {
	return func(e *Engine) {
		e.fieldCentric = &enabled
	}
}

// WithLifecycleHooks registers observability hooks. Multiple calls are merged.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = e.hooks.Merge(hooks)
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithName labels the engine in logs.
func WithName(name string) Option {
	return func(e *Engine) {
		e.Name = name
	}
}

// New builds an engine around the driver source. Configuration errors are
// returned here; Evaluate never fails.
func New(driver domain.Source, opts ...Option) (*Engine, error) {
	eng := &Engine{tuning: config.Default()}
	for _, opt := range opts {
		opt(eng)
	}

	if eng.logger == nil {
		eng.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	if eng.Name != "" {
		eng.logger = eng.logger.With("engine", eng.Name)
	}
	if eng.fieldCentric != nil {
		eng.tuning.FieldCentric = *eng.fieldCentric
	}

	g, err := runtime.NewGraph(driver, eng.assists, runtime.Options{
		Tuning:            eng.tuning,
		PrecisionScale:    eng.precision,
		FineRotationScale: eng.fineRotation,
		Heading:           eng.heading,
	}, runtime.WithLogger(eng.logger), runtime.WithLifecycleHooks(eng.hooks))
	if err != nil {
		return nil, err
	}
	eng.graph = g
	return eng, nil
}

// Evaluate computes the bounded command for one control tick.
// It must be called exactly once per tick.
func (e *Engine) Evaluate(t domain.Tick) domain.Command {
	return e.graph.Evaluate(t)
}

// Reset clears the driver's slew history, e.g. when re-enabling the robot.
func (e *Engine) Reset() {
	e.graph.Reset()
}

// Branches lists branch names in priority order, driver first.
func (e *Engine) Branches() []string {
	return e.graph.Branches()
}

// Tuning returns the effective static tuning.
func (e *Engine) Tuning() config.Tuning {
	return e.graph.Tuning()
}
