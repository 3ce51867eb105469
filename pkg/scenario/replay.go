package scenario

import "github.com/aretw0/steer/pkg/domain"

// Evaluator computes one command per tick.
type Evaluator interface {
	Evaluate(domain.Tick) domain.Command
}

// Frame is one evaluated tick.
type Frame struct {
	Tick    domain.Tick    `json:"tick"`
	Command domain.Command `json:"command"`
}

// Replay evaluates n ticks at a fixed rate, starting at sequence 1.
func Replay(eng Evaluator, n int, tickRate float64) []Frame {
	if n <= 0 || !(tickRate > 0) {
		return nil
	}
	dt := 1 / tickRate
	trace := make([]Frame, 0, n)
	for i := 1; i <= n; i++ {
		tick := domain.Tick{Seq: uint64(i), DT: dt}
		trace = append(trace, Frame{Tick: tick, Command: eng.Evaluate(tick)})
	}
	return trace
}

// Replay runs the scenario for its configured number of ticks.
func (s *Scenario) Replay(eng Evaluator) []Frame {
	return Replay(eng, s.Ticks, s.TickRate)
}
