package shaping

import (
	"math"
	"testing"

	"github.com/aretw0/steer/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestDeadband(t *testing.T) {
	assert.Equal(t, 0.0, Deadband(0.03, 0.05))
	assert.Equal(t, 0.10, Deadband(0.10, 0.05))
	assert.Equal(t, -0.10, Deadband(-0.10, 0.05))
	assert.Equal(t, 0.0, Deadband(0.05, 0.05), "boundary is inside the band")
}

func TestCurve_PreservesSignAndEndpoints(t *testing.T) {
	for _, k := range []float64{1, 2, 3, 1.5} {
		assert.Equal(t, 1.0, Curve(1, k))
		assert.Equal(t, -1.0, Curve(-1, k))
		assert.Equal(t, 0.0, Curve(0, k))
	}
	assert.InDelta(t, 0.25, Curve(0.5, 2), 1e-12)
	assert.InDelta(t, -0.25, Curve(-0.5, 2), 1e-12)
	assert.InDelta(t, -0.125, Curve(-0.5, 3), 1e-12)
}

func TestChain_StageOrder(t *testing.T) {
	c := NewChain(0.05, 2, 0)

	assert.Equal(t, 0.0, c.Apply(0.03, 0.02, 1), "deadband runs first")
	assert.InDelta(t, 0.25*0.5, c.Apply(0.5, 0.02, 0.5), 1e-12, "curve then live scale")
	assert.InDelta(t, -0.04*0.3, c.Apply(-0.2, 0.02, 0.3), 1e-12)
}

func TestChain_Slew(t *testing.T) {
	tests := []struct {
		name string
		dt   float64
		want float64
	}{
		{name: "partial step", dt: 0.1, want: 0.2},
		{name: "no overshoot", dt: 10, want: 1.0},
		{name: "negative dt holds", dt: -1, want: 0},
		{name: "zero dt holds", dt: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewChain(0, 1, 2.0)
			assert.InDelta(t, tt.want, c.Apply(1.0, tt.dt, 1), 1e-12)
		})
	}
}

func TestChain_SlewDownwardAndReset(t *testing.T) {
	c := NewChain(0, 1, 1.0)
	c.Apply(1, 10, 1)
	assert.Equal(t, 1.0, c.Last())

	assert.InDelta(t, 0.5, c.Apply(-1, 0.5, 1), 1e-12)

	c.Reset()
	assert.Equal(t, 0.0, c.Last())
	assert.InDelta(t, -0.5, c.Apply(-1, 0.5, 1), 1e-12)
}

func TestChain_DoesNotSanitize(t *testing.T) {
	c := NewChain(0.05, 2, 0)
	assert.True(t, math.IsNaN(c.Apply(math.NaN(), 0.02, 1)))
	assert.True(t, math.IsInf(c.Apply(0.5, 0.02, math.Inf(1)), 1))
	assert.Equal(t, 4.0, c.Apply(2, 0.02, 1), "no final clamp")
}

func TestSlewLimiter_NonFiniteDoesNotPoisonHistory(t *testing.T) {
	s := SlewLimiter{Rate: 1}
	s.Step(0.5, 1)

	assert.True(t, math.IsNaN(s.Step(math.NaN(), 0.1)))
	assert.Equal(t, 0.5, s.Last())
	assert.InDelta(t, 0.6, s.Step(1, 0.1), 1e-12)
}

func TestNewChain_RaisesLowExponent(t *testing.T) {
	c := NewChain(0, 0.5, 0)
	assert.Equal(t, 1.0, c.Exponent)
	assert.Equal(t, 0.3, c.Apply(0.3, 0.02, 1))
}

func TestSlewFilter_PerAxis(t *testing.T) {
	f := SlewFilter(1, 2, 0)
	got := f(domain.NewCommand(1, 1, 1), 0.1)
	assert.InDelta(t, 0.1, got.Lateral, 1e-12)
	assert.InDelta(t, 0.2, got.Axial, 1e-12)
	assert.Equal(t, 1.0, got.Omega, "zero rate passes through")

	got = f(domain.NewCommand(1, 1, 1), 0.1)
	assert.InDelta(t, 0.2, got.Lateral, 1e-12)
	assert.InDelta(t, 0.4, got.Axial, 1e-12)
}

func TestCompose(t *testing.T) {
	f := Compose(ScaleFilter(0.5), nil, func(c domain.Command, _ float64) domain.Command {
		return c.Add(domain.NewCommand(0, 0, 1))
	})
	assert.Equal(t, domain.NewCommand(0.5, 1, 1.5), f(domain.NewCommand(1, 2, 1), 0.02))
}
