package domain

import "math"

// Axis identifies one component of a Command.
type Axis int

const (
	AxisLateral Axis = iota
	AxisAxial
	AxisOmega
)

// Axes lists every axis in canonical order.
var Axes = [...]Axis{AxisLateral, AxisAxial, AxisOmega}

func (a Axis) String() string {
	switch a {
	case AxisLateral:
		return "lateral"
	case AxisAxial:
		return "axial"
	case AxisOmega:
		return "omega"
	default:
		return "unknown"
	}
}

// Command is a robot-centric chassis velocity intent.
// Values are normalized but unbounded until the sink guard runs.
// Methods never mutate the receiver.
type Command struct {
	Lateral float64 `json:"lateral" yaml:"lateral" mapstructure:"lateral"`
	Axial   float64 `json:"axial" yaml:"axial" mapstructure:"axial"`
	Omega   float64 `json:"omega" yaml:"omega" mapstructure:"omega"`
}

// Zero is the command that asks for no motion.
var Zero = Command{}

// NewCommand builds a Command from its three components.
func NewCommand(lateral, axial, omega float64) Command {
	return Command{Lateral: lateral, Axial: axial, Omega: omega}
}

// Axis returns the value of a single component.
func (c Command) Axis(a Axis) float64 {
	switch a {
	case AxisLateral:
		return c.Lateral
	case AxisAxial:
		return c.Axial
	case AxisOmega:
		return c.Omega
	}
	return 0
}

// WithAxis returns a copy of c with one component replaced.
func (c Command) WithAxis(a Axis, v float64) Command {
	switch a {
	case AxisLateral:
		c.Lateral = v
	case AxisAxial:
		c.Axial = v
	case AxisOmega:
		c.Omega = v
	}
	return c
}

// Add returns the component-wise sum.
func (c Command) Add(o Command) Command {
	return Command{
		Lateral: c.Lateral + o.Lateral,
		Axial:   c.Axial + o.Axial,
		Omega:   c.Omega + o.Omega,
	}
}

// Scale multiplies every component by k.
func (c Command) Scale(k float64) Command {
	return Command{Lateral: c.Lateral * k, Axial: c.Axial * k, Omega: c.Omega * k}
}

// Translation returns the magnitude of the (lateral, axial) pair.
func (c Command) Translation() float64 {
	return math.Hypot(c.Lateral, c.Axial)
}

// IsZero reports whether all components are exactly zero.
func (c Command) IsZero() bool {
	return c == Zero
}
