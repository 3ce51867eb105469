package shaping

import (
	"math"

	"github.com/aretw0/steer/pkg/domain"
)

// SlewLimiter bounds how fast a value may change.
// It starts from zero; the zero value with Rate 0 is a pass-through.
type SlewLimiter struct {
	// Rate is the maximum change per second. 0 disables the limiter.
	Rate float64

	prev float64
}

// Step moves toward target by at most Rate·dt and returns the new output.
// Negative or NaN dt is treated as 0. A non-finite output is returned as is
// but never stored, so one bad sample cannot poison later ticks.
func (s *SlewLimiter) Step(target, dt float64) float64 {
	out := target
	if s.Rate > 0 {
		if !(dt > 0) {
			dt = 0
		}
		maxStep := s.Rate * dt
		diff := target - s.prev
		if math.Abs(diff) > maxStep {
			diff = math.Copysign(maxStep, diff)
		}
		out = s.prev + diff
	}
	if !math.IsNaN(out) && !math.IsInf(out, 0) {
		s.prev = out
	}
	return out
}

// Last returns the previous output.
func (s *SlewLimiter) Last() float64 {
	return s.prev
}

// Reset sets the history back to zero.
func (s *SlewLimiter) Reset() {
	s.prev = 0
}

// SlewFilter returns a CommandFilter limiting each axis to its own rate.
// The returned filter owns its history; give each branch its own instance.
func SlewFilter(lateral, axial, omega float64) domain.CommandFilter {
	lims := [3]SlewLimiter{{Rate: lateral}, {Rate: axial}, {Rate: omega}}
	return func(cmd domain.Command, dt float64) domain.Command {
		for i, a := range domain.Axes {
			cmd = cmd.WithAxis(a, lims[i].Step(cmd.Axis(a), dt))
		}
		return cmd
	}
}

// Compose runs filters left to right. Nil filters are skipped.
func Compose(filters ...domain.CommandFilter) domain.CommandFilter {
	return func(cmd domain.Command, dt float64) domain.Command {
		for _, f := range filters {
			if f != nil {
				cmd = f(cmd, dt)
			}
		}
		return cmd
	}
}

// ScaleFilter multiplies a command by a constant factor.
func ScaleFilter(k float64) domain.CommandFilter {
	return func(cmd domain.Command, _ float64) domain.Command {
		return cmd.Scale(k)
	}
}
