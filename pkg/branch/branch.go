// Package branch wraps a command producer with a participation gate, a live
// weight, an axis-role mask and an optional post filter.
package branch

import (
	"fmt"
	"sync/atomic"

	"github.com/aretw0/steer/pkg/domain"
)

// Branch is one independently enabled contributor to the final command.
type Branch struct {
	Name string
	// Source produces the raw contribution. It is only called when Enabled is true.
	Source domain.Source
	// Enabled gates participation. Nil means always enabled.
	Enabled domain.Predicate
	// Weight is sampled every tick. Nil means 1.0.
	Weight domain.Scalar
	Role   domain.AxisRole
	// Filter runs on the source output before masking. Optional.
	Filter domain.CommandFilter
}

// New builds an always-enabled, unit-weight, full-role branch.
func New(name string, source domain.Source) Branch {
	return Branch{Name: name, Source: source}
}

// Evaluate returns the masked contribution for t and whether the branch
// participated. A disabled branch returns the zero command without calling Source.
func (b Branch) Evaluate(t domain.Tick) (domain.Command, bool) {
	if b.Enabled != nil && !b.Enabled(t) {
		return domain.Zero, false
	}
	cmd := b.Source(t)
	if b.Filter != nil {
		cmd = b.Filter(cmd, t.Elapsed())
	}
	return b.Role.Mask(cmd), true
}

// LiveWeight samples the branch weight for t.
func (b Branch) LiveWeight(t domain.Tick) float64 {
	if b.Weight == nil {
		return 1
	}
	return b.Weight(t)
}

// Validate checks the construction-time invariants.
func (b Branch) Validate() error {
	if b.Name == "" {
		return fmt.Errorf("%w: name is required", domain.ErrInvalidBranch)
	}
	if b.Source == nil {
		return fmt.Errorf("%w: %q has no source", domain.ErrInvalidBranch, b.Name)
	}
	if !b.Role.Valid() {
		return fmt.Errorf("%w: %q has role %v", domain.ErrInvalidBranch, b.Name, b.Role)
	}
	return nil
}

// WithRole returns a copy of b with the given role.
func (b Branch) WithRole(r domain.AxisRole) Branch {
	b.Role = r
	return b
}

// WithFilter returns a copy of b with the given post filter.
func (b Branch) WithFilter(f domain.CommandFilter) Branch {
	b.Filter = f
	return b
}

// When returns a copy of b gated by p.
func (b Branch) When(p domain.Predicate) Branch {
	b.Enabled = p
	return b
}

// Weighted returns a copy of b with a live weight.
func (b Branch) Weighted(w domain.Scalar) Branch {
	b.Weight = w
	return b
}

// Always is a predicate that is always true.
func Always(domain.Tick) bool { return true }

// Never is a predicate that is always false.
func Never(domain.Tick) bool { return false }

// Constant returns a scalar that always yields v.
func Constant(v float64) domain.Scalar {
	return func(domain.Tick) float64 { return v }
}

// Toggle reads a flag updated from outside the control loop.
func Toggle(flag *atomic.Bool) domain.Predicate {
	return func(domain.Tick) bool { return flag.Load() }
}
