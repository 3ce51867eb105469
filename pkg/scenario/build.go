package scenario

import (
	"fmt"
	"sort"

	"github.com/aretw0/steer"
	"github.com/aretw0/steer/pkg/branch"
	"github.com/aretw0/steer/pkg/config"
	"github.com/aretw0/steer/pkg/domain"
)

// Setup holds everything needed to build an engine for a scenario.
type Setup struct {
	Tuning    config.Tuning
	Driver    domain.Source
	Assists   []branch.Branch
	Precision domain.Scalar
	Heading   domain.Scalar
}

// Options converts the setup into engine options.
func (st Setup) Options() []steer.Option {
	opts := []steer.Option{
		steer.WithTuning(st.Tuning),
		steer.WithAssists(st.Assists...),
	}
	if st.Precision != nil {
		opts = append(opts, steer.WithPrecisionScale(st.Precision))
	}
	if st.Heading != nil {
		opts = append(opts, steer.WithHeading(st.Heading))
	}
	return opts
}

// Build turns the script into sources and accessors driven by the tick sequence.
func (s *Scenario) Build() (Setup, error) {
	tuning, err := s.EffectiveTuning()
	if err != nil {
		return Setup{}, fmt.Errorf("scenario %q: %w", s.Name, err)
	}

	st := Setup{
		Tuning: tuning,
		Driver: s.timeline(s.Driver),
	}

	if len(s.Precision) > 0 {
		within := s.within(s.Precision)
		scale := s.PrecisionScale
		st.Precision = func(t domain.Tick) float64 {
			if within(t) {
				return scale
			}
			return 1
		}
	}

	if len(s.Heading) > 0 {
		keys := s.Heading
		st.Heading = func(t domain.Tick) float64 {
			i := lastAt(len(keys), func(i int) float64 { return keys[i].At }, s.seconds(t))
			if i < 0 {
				return 0
			}
			return keys[i].Value
		}
	}

	for _, a := range s.Assists {
		b := branch.New(a.Name, s.timeline(a.Output))
		if a.Role != "" {
			role, err := domain.ParseAxisRole(a.Role)
			if err != nil {
				return Setup{}, fmt.Errorf("%w: assist %q: %v", ErrInvalidScenario, a.Name, err)
			}
			b = b.WithRole(role)
		}
		if len(a.Active) > 0 {
			b = b.When(s.within(a.Active))
		}
		if a.Weight != nil {
			b = b.Weighted(branch.Constant(*a.Weight))
		}
		st.Assists = append(st.Assists, b)
	}
	return st, nil
}

// Engine builds an engine for the scenario. Extra options are applied last.
func (s *Scenario) Engine(extra ...steer.Option) (*steer.Engine, error) {
	st, err := s.Build()
	if err != nil {
		return nil, err
	}
	opts := append(st.Options(), steer.WithName(s.Name))
	return steer.New(st.Driver, append(opts, extra...)...)
}

// seconds maps a tick to scenario time. Tick 1 happens at t=0.
func (s *Scenario) seconds(t domain.Tick) float64 {
	if t.Seq == 0 {
		return 0
	}
	return float64(t.Seq-1) / s.TickRate
}

func (s *Scenario) timeline(keys []Keyframe) domain.Source {
	return func(t domain.Tick) domain.Command {
		i := lastAt(len(keys), func(i int) float64 { return keys[i].At }, s.seconds(t))
		if i < 0 {
			return domain.Zero
		}
		return keys[i].Command()
	}
}

func (s *Scenario) within(ws []Window) domain.Predicate {
	return func(t domain.Tick) bool {
		now := s.seconds(t)
		for _, w := range ws {
			if w.Contains(now) {
				return true
			}
		}
		return false
	}
}

// lastAt returns the index of the last key at or before now, or -1.
func lastAt(n int, at func(int) float64, now float64) int {
	return sort.Search(n, func(i int) bool { return at(i) > now }) - 1
}
