package runtime

import (
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/aretw0/steer/pkg/branch"
	"github.com/aretw0/steer/pkg/config"
	"github.com/aretw0/steer/pkg/domain"
	"github.com/aretw0/steer/pkg/frame"
	"github.com/aretw0/steer/pkg/guard"
	"github.com/aretw0/steer/pkg/mixer"
	"github.com/aretw0/steer/pkg/shaping"
)

// DriverName is the branch name reported for the driver in events and listings.
const DriverName = "driver"

// Options are the graph options fixed for a session.
type Options struct {
	Tuning config.Tuning
	// PrecisionScale multiplies the shaped lateral and axial driver axes. Nil means 1.
	PrecisionScale domain.Scalar
	// FineRotationScale multiplies the shaped driver omega. Nil means 1.
	FineRotationScale domain.Scalar
	// Heading feeds the field-centric transform. Nil or non-finite disables it for the tick.
	Heading domain.Scalar
}

// GraphOption configures optional collaborators of a Graph.
type GraphOption func(*Graph)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) GraphOption {
	return func(g *Graph) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) GraphOption {
	return func(g *Graph) {
		g.hooks = hooks
	}
}

// Graph is the per-tick composition of driver shaping, assist branches,
// arbitration and the sink guard. It is not safe for concurrent use.
type Graph struct {
	driver  domain.Source
	assists []branch.Branch
	opts    Options

	chains    [3]*shaping.Chain
	mixer     *mixer.Mixer
	outLimits domain.Limits

	hooks  domain.LifecycleHooks
	logger *slog.Logger
}

// NewGraph validates the topology and tuning and builds a graph.
// Assists are evaluated in the given order, after the driver.
func NewGraph(driver domain.Source, assists []branch.Branch, opts Options, gopts ...GraphOption) (*Graph, error) {
	if driver == nil {
		return nil, domain.ErrNoDriver
	}
	if err := opts.Tuning.Validate(); err != nil {
		return nil, err
	}

	seen := map[string]bool{DriverName: true}
	for _, b := range assists {
		if err := b.Validate(); err != nil {
			return nil, err
		}
		if seen[b.Name] {
			return nil, fmt.Errorf("%w: %q", domain.ErrDuplicateBranch, b.Name)
		}
		seen[b.Name] = true
	}

	tun := opts.Tuning
	g := &Graph{
		driver:    driver,
		assists:   append([]branch.Branch(nil), assists...),
		opts:      opts,
		mixer:     mixer.New(tun.Mix.Strategy, tun.Mix.Policy, tun.Mix.Limits, tun.Mix.Normalize),
		outLimits: tun.OutputLimits(),
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for i, a := range domain.Axes {
		at := tun.Axis(a)
		g.chains[i] = shaping.NewChain(at.Deadband, at.Exponent, at.SlewRate)
	}
	for _, opt := range gopts {
		opt(g)
	}

	g.logger.Info("graph built",
		"branches", g.Branches(),
		"strategy", tun.Mix.Strategy.String(),
		"policy", tun.Mix.Policy.String(),
		"normalize", tun.Mix.Normalize,
		"field_centric", tun.FieldCentric,
	)
	return g, nil
}

// Evaluate computes the command for one tick. Call it exactly once per tick:
// every call advances the slew limiters.
func (g *Graph) Evaluate(t domain.Tick) domain.Command {
	driver := g.shapeDriver(t)

	g.mixer.Reset()
	g.mixer.AddContribution(mixer.Contribution{
		Name:    DriverName,
		Command: driver,
		Weight:  1,
		Role:    domain.RoleFull,
		Active:  true,
	})

	for i, b := range g.assists {
		cmd, active := b.Evaluate(t)
		var w float64
		if active {
			w = b.LiveWeight(t)
		}
		g.mixer.AddContribution(mixer.Contribution{
			Name:    b.Name,
			Command: cmd,
			Weight:  w,
			Role:    b.Role,
			Active:  active,
		})
		if g.hooks.OnBranch != nil {
			g.hooks.OnBranch(domain.BranchEvent{
				Tick:     t,
				Branch:   b.Name,
				Priority: i + 1,
				State:    branchState(active, w),
				Weight:   w,
				Command:  cmd,
			})
		}
	}

	mixed := g.mixer.Resolve()
	out, rep := guard.Inspect(mixed, g.outLimits)
	g.report(t, &rep)

	if g.hooks.OnTick != nil {
		g.hooks.OnTick(domain.TickEvent{Tick: t, Mixed: mixed, Output: out})
	}
	return out
}

func (g *Graph) shapeDriver(t domain.Tick) domain.Command {
	dt := t.Elapsed()
	raw := g.driver(t)
	trans := sample(g.opts.PrecisionScale, t, 1)
	rot := sample(g.opts.FineRotationScale, t, 1)

	shaped := domain.Command{
		Lateral: g.chains[0].Apply(raw.Lateral, dt, trans),
		Axial:   g.chains[1].Apply(raw.Axial, dt, trans),
		Omega:   g.chains[2].Apply(raw.Omega, dt, rot),
	}
	if g.opts.Tuning.FieldCentric {
		shaped = frame.Rotate(shaped, sample(g.opts.Heading, t, math.NaN()), true)
	}
	return shaped
}

func (g *Graph) report(t domain.Tick, rep *guard.Report) {
	for i := 0; i < rep.Len(); i++ {
		iv := rep.At(i)
		if iv.Reason == domain.GuardNonFinite {
			g.logger.Debug("non-finite axis neutralized", "seq", t.Seq, "axis", iv.Axis.String())
		}
		if g.hooks.OnGuard != nil {
			g.hooks.OnGuard(domain.GuardEvent{
				Tick:   t,
				Axis:   iv.Axis,
				Reason: iv.Reason,
				Input:  iv.Input,
				Output: iv.Output,
			})
		}
	}
}

// Reset clears the driver slew history. Branch filters keep their own state.
func (g *Graph) Reset() {
	for _, c := range g.chains {
		c.Reset()
	}
}

// Branches lists branch names in priority order, driver first.
func (g *Graph) Branches() []string {
	names := make([]string, 0, len(g.assists)+1)
	names = append(names, DriverName)
	for _, b := range g.assists {
		names = append(names, b.Name)
	}
	return names
}

// Tuning returns the static tuning the graph was built with.
func (g *Graph) Tuning() config.Tuning {
	return g.opts.Tuning
}

func sample(s domain.Scalar, t domain.Tick, fallback float64) float64 {
	if s == nil {
		return fallback
	}
	return s(t)
}

func branchState(active bool, w float64) domain.BranchState {
	switch {
	case !active:
		return domain.BranchSkipped
	case w == 0:
		return domain.BranchWeighted
	}
	return domain.BranchActive
}
