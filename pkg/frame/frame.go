// Package frame converts field-oriented driver input into the robot frame.
//
// Heading is measured in radians, counter-clockwise positive. A field-frame
// translation vector is rotated by -heading, so with the robot turned a
// quarter turn left (heading π/2) a pure lateral push of (1, 0) becomes
// (0, -1) in the robot frame. Omega is never changed.
package frame

import (
	"math"

	"github.com/aretw0/steer/pkg/domain"
)

// Rotate expresses cmd's translation in the robot frame.
// It returns cmd unchanged when disabled or when heading is not finite.
func Rotate(cmd domain.Command, heading float64, enabled bool) domain.Command {
	if !enabled || math.IsNaN(heading) || math.IsInf(heading, 0) {
		return cmd
	}
	sin, cos := math.Sincos(-heading)
	return domain.Command{
		Lateral: cmd.Lateral*cos - cmd.Axial*sin,
		Axial:   cmd.Lateral*sin + cmd.Axial*cos,
		Omega:   cmd.Omega,
	}
}
