package shaping

import "math"

// Deadband returns 0 when |x| <= db and x unchanged otherwise.
// The remaining range is not rescaled.
func Deadband(x, db float64) float64 {
	if math.Abs(x) <= db {
		return 0
	}
	return x
}

// Curve applies sign(x)·|x|^k. With k >= 1 it preserves -1, 0 and 1.
func Curve(x, k float64) float64 {
	if k == 1 || x == 0 {
		return x
	}
	return math.Copysign(math.Pow(math.Abs(x), k), x)
}

// Chain shapes one axis. The zero value passes input through unchanged.
type Chain struct {
	Deadband float64
	Exponent float64
	// SlewRate is the maximum change of output per second; 0 disables limiting.
	SlewRate float64

	slew SlewLimiter
}

// NewChain builds a chain. Exponents below 1 are raised to 1.
func NewChain(deadband, exponent, slewRate float64) *Chain {
	if !(exponent >= 1) {
		exponent = 1
	}
	return &Chain{
		Deadband: deadband,
		Exponent: exponent,
		SlewRate: slewRate,
		slew:     SlewLimiter{Rate: slewRate},
	}
}

// Apply runs deadband, curve, live scale and slew limiting on x.
func (c *Chain) Apply(x, dt, liveScale float64) float64 {
	y := Deadband(x, c.Deadband)
	exp := c.Exponent
	if exp == 0 {
		exp = 1
	}
	y = Curve(y, exp)
	y *= liveScale
	c.slew.Rate = c.SlewRate
	return c.slew.Step(y, dt)
}

// Last returns the previous output of the chain.
func (c *Chain) Last() float64 {
	return c.slew.Last()
}

// Reset clears the slew history so the next output starts from zero.
func (c *Chain) Reset() {
	c.slew.Reset()
}
