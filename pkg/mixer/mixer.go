package mixer

import (
	"math"

	"github.com/aretw0/steer/pkg/domain"
)

// Contribution is one weighted, already masked input to the mixer.
type Contribution struct {
	Name    string
	Command domain.Command
	Weight  float64
	Role    domain.AxisRole
	// Active is false for branches whose gate was closed this tick.
	Active bool
}

// Mixer combines contributions in priority order.
type Mixer struct {
	strategy  domain.MixStrategy
	policy    domain.OutputLimitPolicy
	limits    domain.Limits
	normalize bool

	sources []Contribution
}

// New creates an empty mixer.
func New(strategy domain.MixStrategy, policy domain.OutputLimitPolicy, limits domain.Limits, normalize bool) *Mixer {
	return &Mixer{
		strategy:  strategy,
		policy:    policy,
		limits:    limits,
		normalize: normalize,
		sources:   make([]Contribution, 0, 4),
	}
}

// Add appends an active, full-role contribution at the lowest priority.
func (m *Mixer) Add(cmd domain.Command, weight float64) {
	m.AddContribution(Contribution{Command: cmd, Weight: weight, Role: domain.RoleFull, Active: true})
}

// AddContribution appends c at the lowest priority.
func (m *Mixer) AddContribution(c Contribution) {
	m.sources = append(m.sources, c)
}

// Len returns the number of contributions added since the last Reset.
func (m *Mixer) Len() int {
	return len(m.sources)
}

// Reset drops all contributions, keeping the allocated capacity.
func (m *Mixer) Reset() {
	clear(m.sources)
	m.sources = m.sources[:0]
}

// Resolve mixes the contributions and applies the output limit policy.
func (m *Mixer) Resolve() domain.Command {
	var out domain.Command
	for _, a := range domain.Axes {
		var v float64
		switch m.strategy {
		case domain.PrioritySoftSaturate:
			v = m.saturate(a)
		default:
			v = m.weightedSum(a)
		}
		out = out.WithAxis(a, v)
	}
	return Limit(out, m.limits, m.policy)
}

func (m *Mixer) weightedSum(a domain.Axis) float64 {
	var sum, weights float64
	for _, c := range m.sources {
		sum += c.Command.Axis(a) * c.Weight
		if c.Active && c.Role.Allows(a) {
			weights += c.Weight
		}
	}
	if !m.normalize {
		return sum
	}
	if weights == 0 {
		return 0
	}
	return sum / weights
}

func (m *Mixer) saturate(a domain.Axis) float64 {
	limit := m.limits.Axis(a)
	var total float64
	for _, c := range m.sources {
		total = saturateStep(total, c.Command.Axis(a)*c.Weight, limit)
	}
	return total
}

// saturateStep folds one raw contribution into the running total.
func saturateStep(total, raw, limit float64) float64 {
	if raw == 0 {
		return total
	}
	if total == 0 || sameSign(total, raw) {
		return total + capped(raw, limit-math.Abs(total))
	}
	// Opposing: brake in full, then treat any overshoot as a fresh contribution.
	if math.Abs(raw) <= math.Abs(total) {
		return total + raw
	}
	return capped(total+raw, limit)
}

func sameSign(a, b float64) bool {
	return math.Signbit(a) == math.Signbit(b)
}

// capped limits the magnitude of v to headroom, never below zero.
func capped(v, headroom float64) float64 {
	if headroom <= 0 {
		return 0
	}
	if math.Abs(v) > headroom {
		return math.Copysign(headroom, v)
	}
	return v
}

// Limit applies an output limit policy to cmd.
func Limit(cmd domain.Command, limits domain.Limits, policy domain.OutputLimitPolicy) domain.Command {
	if policy == domain.PerAxisClamp {
		return domain.Command{
			Lateral: clamp(cmd.Lateral, limits.Lateral),
			Axial:   clamp(cmd.Axial, limits.Axial),
			Omega:   clamp(cmd.Omega, limits.Omega),
		}
	}
	if lim, mag := limits.Translation(), cmd.Translation(); mag > lim {
		k := lim / mag
		cmd.Lateral *= k
		cmd.Axial *= k
	}
	cmd.Omega = clamp(cmd.Omega, limits.Omega)
	return cmd
}

func clamp(v, lim float64) float64 {
	if v > lim {
		return lim
	}
	if v < -lim {
		return -lim
	}
	return v
}
