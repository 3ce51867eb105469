package domain

// Tick is one iteration of the control loop.
type Tick struct {
	// Seq increases by one per control tick.
	Seq uint64 `json:"seq" yaml:"seq"`
	// DT is the elapsed time since the previous tick, in seconds.
	DT float64 `json:"dt" yaml:"dt"`
}

// Elapsed returns DT with negative values treated as zero.
// NaN is passed through; it only ever reaches the slew limiter as "no motion".
func (t Tick) Elapsed() float64 {
	if t.DT < 0 {
		return 0
	}
	return t.DT
}

// Source produces a candidate command for a tick. It must not block.
type Source func(Tick) Command

// Predicate is a cheap, side-effect free per-tick decision.
type Predicate func(Tick) bool

// Scalar is a cheap, side-effect free per-tick value (weights, scales, heading).
type Scalar func(Tick) float64

// CommandFilter post-processes a command given the tick's elapsed seconds.
type CommandFilter func(cmd Command, dt float64) Command
