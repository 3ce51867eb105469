package domain

import (
	"fmt"
	"math"
)

// Limits holds a symmetric bound per axis.
type Limits struct {
	Lateral float64 `json:"lateral" yaml:"lateral" mapstructure:"lateral"`
	Axial   float64 `json:"axial" yaml:"axial" mapstructure:"axial"`
	Omega   float64 `json:"omega" yaml:"omega" mapstructure:"omega"`
}

// UnitLimits bounds every axis to [-1, 1].
var UnitLimits = Limits{Lateral: 1, Axial: 1, Omega: 1}

// Axis returns the bound for a single axis.
func (l Limits) Axis(a Axis) float64 {
	switch a {
	case AxisLateral:
		return l.Lateral
	case AxisAxial:
		return l.Axial
	case AxisOmega:
		return l.Omega
	}
	return 0
}

// Translation is the bound applied to the (lateral, axial) magnitude.
// Using the smaller axis bound keeps each component within its own limit.
func (l Limits) Translation() float64 {
	return math.Min(l.Lateral, l.Axial)
}

// Validate rejects non-positive or non-finite bounds.
func (l Limits) Validate() error {
	for _, a := range Axes {
		v := l.Axis(a)
		if !(v > 0) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s limit must be a positive finite number, got %v", ErrInvalidTuning, a, v)
		}
	}
	return nil
}
