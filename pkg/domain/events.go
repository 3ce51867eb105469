package domain

// BranchState is the outcome of evaluating one branch on a tick.
type BranchState string

const (
	BranchActive   BranchState = "active"
	BranchSkipped  BranchState = "skipped"
	BranchWeighted BranchState = "zero_weight"
)

// GuardReason explains why the sink guard changed an axis value.
type GuardReason string

const (
	GuardNonFinite GuardReason = "non_finite"
	GuardClamped   GuardReason = "clamped"
)

// TickEvent is emitted once per evaluation, after the sink guard.
type TickEvent struct {
	Tick   Tick
	Mixed  Command // resolved mixer output, before the guard
	Output Command // final, bounded command
}

// BranchEvent is emitted for every assist branch on every tick.
type BranchEvent struct {
	Tick     Tick
	Branch   string
	Priority int // 0 is the driver
	State    BranchState
	Weight   float64
	Command  Command // masked contribution before weighting; zero when skipped
}

// GuardEvent is emitted for each axis the sink guard had to change.
type GuardEvent struct {
	Tick   Tick
	Axis   Axis
	Reason GuardReason
	Input  float64
	Output float64
}

// LifecycleHooks defines synchronous callbacks for engine observability.
// They run on the control-loop goroutine inside Evaluate and must return quickly.
type LifecycleHooks struct {
	OnTick   func(TickEvent)
	OnBranch func(BranchEvent)
	OnGuard  func(GuardEvent)
}

// Merge returns hooks that call h first and then other.
func (h LifecycleHooks) Merge(other LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnTick:   chain(h.OnTick, other.OnTick),
		OnBranch: chain(h.OnBranch, other.OnBranch),
		OnGuard:  chain(h.OnGuard, other.OnGuard),
	}
}

func chain[E any](a, b func(E)) func(E) {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return func(e E) {
		a(e)
		b(e)
	}
}
