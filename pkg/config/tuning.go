// Package config holds the static tuning of a composition graph and loads it
// from YAML or JSON files.
//
// Only values that are fixed for a session live here. Live accessors such as
// the precision scale, the heading or branch weights are wired in code.
package config

import (
	"fmt"
	"math"

	"github.com/aretw0/steer/pkg/domain"
)

// AxisTuning shapes one driver axis.
type AxisTuning struct {
	Deadband float64 `yaml:"deadband" json:"deadband" mapstructure:"deadband"`
	Exponent float64 `yaml:"exponent" json:"exponent" mapstructure:"exponent"`
	// SlewRate is the maximum change per second; 0 disables the limiter.
	SlewRate float64 `yaml:"slew_rate" json:"slew_rate" mapstructure:"slew_rate"`
	// Limit is the final bound enforced by the sink guard.
	Limit float64 `yaml:"limit" json:"limit" mapstructure:"limit"`
}

// MixTuning configures the arbiter.
type MixTuning struct {
	Strategy  domain.MixStrategy       `yaml:"strategy" json:"strategy" mapstructure:"strategy"`
	Policy    domain.OutputLimitPolicy `yaml:"policy" json:"policy" mapstructure:"policy"`
	Normalize bool                     `yaml:"normalize" json:"normalize" mapstructure:"normalize"`
	// Limits are the logical per-axis limits used while mixing.
	Limits domain.Limits `yaml:"limits" json:"limits" mapstructure:"limits"`
}

// Tuning is the file-backed part of the graph options.
type Tuning struct {
	Lateral      AxisTuning `yaml:"lateral" json:"lateral" mapstructure:"lateral"`
	Axial        AxisTuning `yaml:"axial" json:"axial" mapstructure:"axial"`
	Omega        AxisTuning `yaml:"omega" json:"omega" mapstructure:"omega"`
	Mix          MixTuning  `yaml:"mix" json:"mix" mapstructure:"mix"`
	FieldCentric bool       `yaml:"field_centric" json:"field_centric" mapstructure:"field_centric"`
}

// Default returns a tuning suitable for a normalized gamepad driver.
func Default() Tuning {
	translation := AxisTuning{Deadband: 0.05, Exponent: 2, SlewRate: 6, Limit: 1}
	return Tuning{
		Lateral: translation,
		Axial:   translation,
		Omega:   AxisTuning{Deadband: 0.05, Exponent: 2, SlewRate: 8, Limit: 1},
		Mix: MixTuning{
			Strategy: domain.PrioritySoftSaturate,
			Policy:   domain.UniformScale,
			Limits:   domain.UnitLimits,
		},
	}
}

// Axis returns the tuning for one axis.
func (t Tuning) Axis(a domain.Axis) AxisTuning {
	switch a {
	case domain.AxisLateral:
		return t.Lateral
	case domain.AxisAxial:
		return t.Axial
	default:
		return t.Omega
	}
}

// OutputLimits collects the per-axis sink guard bounds.
func (t Tuning) OutputLimits() domain.Limits {
	return domain.Limits{Lateral: t.Lateral.Limit, Axial: t.Axial.Limit, Omega: t.Omega.Limit}
}

// Validate reports the first out-of-range parameter.
func (t Tuning) Validate() error {
	for _, a := range domain.Axes {
		if err := t.Axis(a).validate(a); err != nil {
			return err
		}
	}
	if err := t.OutputLimits().Validate(); err != nil {
		return fmt.Errorf("output limits: %w", err)
	}
	if err := t.Mix.Limits.Validate(); err != nil {
		return fmt.Errorf("mix limits: %w", err)
	}
	if !t.Mix.Strategy.Valid() {
		return fmt.Errorf("%w: %v", domain.ErrUnknownStrategy, t.Mix.Strategy)
	}
	if !t.Mix.Policy.Valid() {
		return fmt.Errorf("%w: %v", domain.ErrUnknownPolicy, t.Mix.Policy)
	}
	return nil
}

func (at AxisTuning) validate(a domain.Axis) error {
	switch {
	case !(at.Deadband >= 0 && at.Deadband < 1):
		return fmt.Errorf("%w: %s deadband must be in [0, 1), got %v", domain.ErrInvalidTuning, a, at.Deadband)
	case !(at.Exponent >= 1) || math.IsInf(at.Exponent, 0):
		return fmt.Errorf("%w: %s exponent must be >= 1, got %v", domain.ErrInvalidTuning, a, at.Exponent)
	case !(at.SlewRate >= 0) || math.IsInf(at.SlewRate, 0):
		return fmt.Errorf("%w: %s slew rate must be >= 0, got %v", domain.ErrInvalidTuning, a, at.SlewRate)
	}
	return nil
}
