package dsl

import (
	"fmt"

	"github.com/aretw0/steer/pkg/branch"
	"github.com/aretw0/steer/pkg/domain"
)

// Builder manages the construction of an ordered assist list.
type Builder struct {
	order    []*BranchBuilder
	branches map[string]*BranchBuilder
}

// New creates a new branch builder.
func New() *Builder {
	return &Builder{
		branches: make(map[string]*BranchBuilder),
	}
}

// Add creates a branch at the next (lower) priority.
// If the branch already exists, it returns the existing builder and keeps its priority.
func (b *Builder) Add(name string) *BranchBuilder {
	if bb, ok := b.branches[name]; ok {
		return bb
	}
	bb := &BranchBuilder{
		branch:  branch.Branch{Name: name},
		builder: b,
	}
	b.branches[name] = bb
	b.order = append(b.order, bb)
	return bb
}

// Build validates and returns the branches in priority order.
func (b *Builder) Build() ([]branch.Branch, error) {
	out := make([]branch.Branch, 0, len(b.order))
	for _, bb := range b.order {
		if err := bb.branch.Validate(); err != nil {
			return nil, fmt.Errorf("failed to build branch list: %w", err)
		}
		out = append(out, bb.branch)
	}
	return out, nil
}

// BranchBuilder provides a fluent API for configuring a branch.
type BranchBuilder struct {
	branch  branch.Branch
	builder *Builder
}

// Source sets the producer.
func (n *BranchBuilder) Source(src domain.Source) *BranchBuilder {
	n.branch.Source = src
	return n
}

// When gates the branch. Without it the branch is always enabled.
func (n *BranchBuilder) When(p domain.Predicate) *BranchBuilder {
	n.branch.Enabled = p
	return n
}

// Weight sets a live weight.
func (n *BranchBuilder) Weight(w domain.Scalar) *BranchBuilder {
	n.branch.Weight = w
	return n
}

// FixedWeight sets a constant weight.
func (n *BranchBuilder) FixedWeight(w float64) *BranchBuilder {
	n.branch.Weight = branch.Constant(w)
	return n
}

// Role restricts the axes the branch may contribute to.
func (n *BranchBuilder) Role(r domain.AxisRole) *BranchBuilder {
	n.branch.Role = r
	return n
}

// OmegaOnly is shorthand for Role(domain.RoleOmegaOnly).
func (n *BranchBuilder) OmegaOnly() *BranchBuilder {
	return n.Role(domain.RoleOmegaOnly)
}

// TranslationOnly is shorthand for Role(domain.RoleTranslationOnly).
func (n *BranchBuilder) TranslationOnly() *BranchBuilder {
	return n.Role(domain.RoleTranslationOnly)
}

// WithFilter appends a post filter; several filters run in call order.
func (n *BranchBuilder) WithFilter(f domain.CommandFilter) *BranchBuilder {
	if prev := n.branch.Filter; prev != nil {
		n.branch.Filter = func(c domain.Command, dt float64) domain.Command {
			return f(prev(c, dt), dt)
		}
		return n
	}
	n.branch.Filter = f
	return n
}

// Then starts the next branch, for chaining.
func (n *BranchBuilder) Then(name string) *BranchBuilder {
	return n.builder.Add(name)
}

// Branch returns the branch as configured so far.
func (n *BranchBuilder) Branch() branch.Branch {
	return n.branch
}
