package mixer

import (
	"math"
	"testing"

	"github.com/aretw0/steer/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func priority() *Mixer {
	return New(domain.PrioritySoftSaturate, domain.PerAxisClamp, domain.UnitLimits, false)
}

func TestPrioritySoftSaturate(t *testing.T) {
	tests := []struct {
		name   string
		driver float64
		assist float64
		want   float64
	}{
		{name: "same sign fills headroom only", driver: 0.9, assist: 0.3, want: 1.0},
		{name: "opposing sign applies in full", driver: 0.9, assist: -0.3, want: 0.6},
		{name: "opposing overshoot becomes new contribution", driver: 0.5, assist: -2.0, want: -1.0},
		{name: "opposing overshoot below limit", driver: 0.5, assist: -0.8, want: -0.3},
		{name: "driver honored up to limit", driver: 1.4, assist: 0, want: 1.0},
		{name: "assist alone gets full limit", driver: 0, assist: -0.7, want: -0.7},
		{name: "negative same sign", driver: -0.8, assist: -0.5, want: -1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := priority()
			m.Add(domain.NewCommand(0, tt.driver, 0), 1)
			m.Add(domain.NewCommand(0, tt.assist, 0), 1)

			assert.InDelta(t, tt.want, m.Resolve().Axial, 1e-12)
		})
	}
}

func TestPrioritySoftSaturate_OrderMatters(t *testing.T) {
	a := priority()
	a.Add(domain.NewCommand(0, 0, 0.8), 1)
	a.Add(domain.NewCommand(0, 0, 0.8), 0.5)
	a.Add(domain.NewCommand(0, 0, -0.5), 1)

	b := priority()
	b.Add(domain.NewCommand(0, 0, -0.5), 1)
	b.Add(domain.NewCommand(0, 0, 0.8), 1)
	b.Add(domain.NewCommand(0, 0, 0.8), 0.5)

	assert.InDelta(t, 0.5, a.Resolve().Omega, 1e-12)
	assert.InDelta(t, 0.7, b.Resolve().Omega, 1e-12)
}

func TestPrioritySoftSaturate_UsesPerAxisLimit(t *testing.T) {
	m := New(domain.PrioritySoftSaturate, domain.PerAxisClamp, domain.Limits{Lateral: 0.5, Axial: 1, Omega: 2}, false)
	m.Add(domain.NewCommand(0.4, 0.4, 1.5), 1)
	m.Add(domain.NewCommand(0.4, 0.4, 1.5), 1)

	got := m.Resolve()
	assert.InDelta(t, 0.5, got.Lateral, 1e-12)
	assert.InDelta(t, 0.8, got.Axial, 1e-12)
	assert.InDelta(t, 2.0, got.Omega, 1e-12)
}

func TestWeightedSum_Normalized(t *testing.T) {
	m := New(domain.WeightedSum, domain.PerAxisClamp, domain.UnitLimits, true)
	m.Add(domain.NewCommand(0, 1.0, 0), 1)
	m.Add(domain.NewCommand(0, 0.0, 0), 1)

	assert.InDelta(t, 0.5, m.Resolve().Axial, 1e-12)
}

func TestWeightedSum_NormalizationSkipsMaskedAndInactive(t *testing.T) {
	m := New(domain.WeightedSum, domain.PerAxisClamp, domain.UnitLimits, true)
	m.Add(domain.NewCommand(0.6, 0.6, 0.2), 1)
	m.AddContribution(Contribution{Name: "aim", Command: domain.NewCommand(0, 0, 0.8), Weight: 1, Role: domain.RoleOmegaOnly, Active: true})
	m.AddContribution(Contribution{Name: "off", Weight: 3, Role: domain.RoleFull, Active: false})

	got := m.Resolve()
	assert.InDelta(t, 0.6, got.Lateral, 1e-12, "omega-only branch does not dilute translation")
	assert.InDelta(t, 0.6, got.Axial, 1e-12)
	assert.InDelta(t, 0.5, got.Omega, 1e-12)
}

func TestWeightedSum_ZeroDenominator(t *testing.T) {
	m := New(domain.WeightedSum, domain.PerAxisClamp, domain.UnitLimits, true)
	m.AddContribution(Contribution{Command: domain.NewCommand(0, 0, 0.8), Weight: 1, Role: domain.RoleOmegaOnly, Active: true})

	got := m.Resolve()
	assert.Equal(t, 0.0, got.Lateral)
	assert.Equal(t, 0.0, got.Axial)
	assert.InDelta(t, 0.8, got.Omega, 1e-12)
}

func TestWeightedSum_Raw(t *testing.T) {
	m := New(domain.WeightedSum, domain.PerAxisClamp, domain.Limits{Lateral: 5, Axial: 5, Omega: 5}, false)
	m.Add(domain.NewCommand(1, 0.5, 0), 1)
	m.Add(domain.NewCommand(1, 0.5, 1), 0.5)

	assert.Equal(t, domain.NewCommand(1.5, 0.75, 0.5), m.Resolve())
}

func TestUniformScale_PreservesRatio(t *testing.T) {
	m := New(domain.WeightedSum, domain.UniformScale, domain.UnitLimits, false)
	m.Add(domain.NewCommand(0.8, 0.8, 0), 1)

	got := m.Resolve()
	assert.InDelta(t, math.Sqrt2/2, got.Lateral, 1e-9)
	assert.InDelta(t, math.Sqrt2/2, got.Axial, 1e-9)
	assert.InDelta(t, 1.0, got.Translation(), 1e-9)
	assert.InDelta(t, 1.0, got.Lateral/got.Axial, 1e-12)
}

func TestUniformScale_OmegaIndependent(t *testing.T) {
	got := Limit(domain.NewCommand(0.3, 0.4, -1.7), domain.UnitLimits, domain.UniformScale)
	assert.Equal(t, domain.NewCommand(0.3, 0.4, -1), got, "translation within limit is untouched")
}

func TestPerAxisClamp_DoesNotPreserveRatio(t *testing.T) {
	got := Limit(domain.NewCommand(2, 0.5, -3), domain.UnitLimits, domain.PerAxisClamp)
	assert.Equal(t, domain.NewCommand(1, 0.5, -1), got)
}

func TestMixer_Reset(t *testing.T) {
	m := priority()
	m.Add(domain.NewCommand(1, 1, 1), 1)
	assert.Equal(t, 1, m.Len())

	m.Reset()
	assert.Equal(t, 0, m.Len())
	assert.Equal(t, domain.Zero, m.Resolve())
}

func TestMixer_NonFinitePassesThrough(t *testing.T) {
	m := priority()
	m.Add(domain.NewCommand(math.NaN(), 0.2, 0), 1)

	got := m.Resolve()
	assert.True(t, math.IsNaN(got.Lateral))
	assert.InDelta(t, 0.2, got.Axial, 1e-12)
}
