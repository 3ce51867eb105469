// Package guard is the final, unconditional sanitizer for engine output.
//
// It is the only place in the engine where non-finite values are handled:
// NaN and ±Inf become 0, and every finite value is clamped to its axis limit.
package guard

import (
	"math"

	"github.com/aretw0/steer/pkg/domain"
)

// Intervention records a change the guard made to one axis.
type Intervention struct {
	Axis   domain.Axis
	Reason domain.GuardReason
	Input  float64
	Output float64
}

// Report lists the interventions of one Inspect call, in axis order.
type Report struct {
	items [3]Intervention
	n     int
}

// Len returns the number of interventions.
func (r *Report) Len() int { return r.n }

// At returns the i-th intervention.
func (r *Report) At(i int) Intervention { return r.items[i] }

// Clean reports whether the command passed through unchanged.
func (r *Report) Clean() bool { return r.n == 0 }

func (r *Report) add(i Intervention) {
	r.items[r.n] = i
	r.n++
}

// Guard neutralizes non-finite axes and clamps the rest to ±limit.
func Guard(cmd domain.Command, limits domain.Limits) domain.Command {
	out, _ := Inspect(cmd, limits)
	return out
}

// Inspect is Guard plus a report of what changed. It does not allocate.
func Inspect(cmd domain.Command, limits domain.Limits) (domain.Command, Report) {
	var rep Report
	for _, a := range domain.Axes {
		in := cmd.Axis(a)
		out, reason := axis(in, limits.Axis(a))
		if reason != "" {
			rep.add(Intervention{Axis: a, Reason: reason, Input: in, Output: out})
			cmd = cmd.WithAxis(a, out)
		}
	}
	return cmd, rep
}

func axis(v, lim float64) (float64, domain.GuardReason) {
	switch {
	case math.IsNaN(v) || math.IsInf(v, 0):
		return 0, domain.GuardNonFinite
	case v > lim:
		return lim, domain.GuardClamped
	case v < -lim:
		return -lim, domain.GuardClamped
	}
	return v, ""
}
