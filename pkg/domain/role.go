package domain

import (
	"fmt"
	"strings"
)

// AxisRole declares which Command components a branch may contribute to.
type AxisRole int

const (
	RoleFull AxisRole = iota
	RoleOmegaOnly
	RoleTranslationOnly
)

func (r AxisRole) String() string {
	switch r {
	case RoleFull:
		return "full"
	case RoleOmegaOnly:
		return "omega_only"
	case RoleTranslationOnly:
		return "translation_only"
	default:
		return fmt.Sprintf("AxisRole(%d)", int(r))
	}
}

// Valid reports whether r is one of the declared roles.
func (r AxisRole) Valid() bool {
	return r >= RoleFull && r <= RoleTranslationOnly
}

// Allows reports whether a branch with this role may produce a nonzero value on axis a.
func (r AxisRole) Allows(a Axis) bool {
	switch r {
	case RoleOmegaOnly:
		return a == AxisOmega
	case RoleTranslationOnly:
		return a != AxisOmega
	default:
		return true
	}
}

// Mask zeroes the components the role does not allow.
func (r AxisRole) Mask(c Command) Command {
	switch r {
	case RoleOmegaOnly:
		return Command{Omega: c.Omega}
	case RoleTranslationOnly:
		return Command{Lateral: c.Lateral, Axial: c.Axial}
	default:
		return c
	}
}

// ParseAxisRole accepts the String form, case-insensitively.
func ParseAxisRole(s string) (AxisRole, error) {
	switch normalizeName(s) {
	case "full", "":
		return RoleFull, nil
	case "omega_only", "omega":
		return RoleOmegaOnly, nil
	case "translation_only", "translation":
		return RoleTranslationOnly, nil
	}
	return RoleFull, fmt.Errorf("%w: %q", ErrUnknownRole, s)
}

func normalizeName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.ReplaceAll(s, "-", "_")
}
