package dsl

import (
	"errors"
	"testing"

	"github.com/aretw0/steer/pkg/domain"
)

func src(c domain.Command) domain.Source {
	return func(domain.Tick) domain.Command { return c }
}

func TestBuilder_PriorityOrder(t *testing.T) {
	b := New()

	b.Add("aim").
		Source(src(domain.NewCommand(0, 0, 1))).
		OmegaOnly().
		Then("lock").
		Source(src(domain.NewCommand(1, 1, 0))).
		TranslationOnly().
		FixedWeight(0.5)

	b.Add("path").Source(src(domain.Zero))

	// Re-adding keeps the original priority.
	b.Add("aim").When(func(domain.Tick) bool { return false })

	branches, err := b.Build()
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}
	if len(branches) != 3 {
		t.Fatalf("Expected 3 branches, got %d", len(branches))
	}

	names := []string{branches[0].Name, branches[1].Name, branches[2].Name}
	want := []string{"aim", "lock", "path"}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("Expected branch %d to be %q, got %q", i, want[i], names[i])
		}
	}

	if branches[0].Role != domain.RoleOmegaOnly {
		t.Errorf("Expected aim role omega_only, got %v", branches[0].Role)
	}
	if _, active := branches[0].Evaluate(domain.Tick{}); active {
		t.Error("Expected aim to be gated off after re-adding with When")
	}
	if w := branches[1].LiveWeight(domain.Tick{}); w != 0.5 {
		t.Errorf("Expected lock weight 0.5, got %v", w)
	}
	if cmd, _ := branches[1].Evaluate(domain.Tick{}); cmd != domain.NewCommand(1, 1, 0) {
		t.Errorf("Unexpected lock command %+v", cmd)
	}
}

func TestBuilder_FiltersRunInOrder(t *testing.T) {
	b := New()
	b.Add("f").
		Source(src(domain.NewCommand(1, 0, 0))).
		WithFilter(func(c domain.Command, _ float64) domain.Command { return c.Scale(2) }).
		WithFilter(func(c domain.Command, _ float64) domain.Command { return c.Add(domain.NewCommand(1, 0, 0)) })

	branches, err := b.Build()
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}

	cmd, _ := branches[0].Evaluate(domain.Tick{DT: 0.02})
	if cmd.Lateral != 3 {
		t.Errorf("Expected scale then add (3), got %v", cmd.Lateral)
	}
}

func TestBuilder_MissingSource(t *testing.T) {
	b := New()
	b.Add("empty")

	_, err := b.Build()
	if !errors.Is(err, domain.ErrInvalidBranch) {
		t.Fatalf("Expected ErrInvalidBranch, got %v", err)
	}
}
