package domain

import "fmt"

// MixStrategy selects how the mixer combines weighted contributions.
type MixStrategy int

const (
	// WeightedSum adds every contribution, optionally normalized by the
	// participating weights.
	WeightedSum MixStrategy = iota
	// PrioritySoftSaturate honors contributions in priority order; lower
	// priorities only fill the headroom left by higher ones.
	PrioritySoftSaturate
)

func (s MixStrategy) String() string {
	switch s {
	case WeightedSum:
		return "weighted_sum"
	case PrioritySoftSaturate:
		return "priority_soft_saturate"
	default:
		return fmt.Sprintf("MixStrategy(%d)", int(s))
	}
}

// Valid reports whether s is a declared strategy.
func (s MixStrategy) Valid() bool {
	return s == WeightedSum || s == PrioritySoftSaturate
}

// ParseMixStrategy accepts the String form, case-insensitively.
func ParseMixStrategy(s string) (MixStrategy, error) {
	switch normalizeName(s) {
	case "weighted_sum", "weighted":
		return WeightedSum, nil
	case "priority_soft_saturate", "priority":
		return PrioritySoftSaturate, nil
	}
	return WeightedSum, fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
}

// OutputLimitPolicy selects how the mixed command is brought within limits.
type OutputLimitPolicy int

const (
	// UniformScale rescales the translation pair as a vector, preserving its
	// direction. Omega is limited on its own.
	UniformScale OutputLimitPolicy = iota
	// PerAxisClamp clamps each axis independently.
	PerAxisClamp
)

func (p OutputLimitPolicy) String() string {
	switch p {
	case UniformScale:
		return "uniform_scale"
	case PerAxisClamp:
		return "per_axis_clamp"
	default:
		return fmt.Sprintf("OutputLimitPolicy(%d)", int(p))
	}
}

// Valid reports whether p is a declared policy.
func (p OutputLimitPolicy) Valid() bool {
	return p == UniformScale || p == PerAxisClamp
}

// ParseOutputLimitPolicy accepts the String form, case-insensitively.
func ParseOutputLimitPolicy(s string) (OutputLimitPolicy, error) {
	switch normalizeName(s) {
	case "uniform_scale", "uniform":
		return UniformScale, nil
	case "per_axis_clamp", "clamp":
		return PerAxisClamp, nil
	}
	return UniformScale, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
}
