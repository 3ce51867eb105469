package cli

import (
	"github.com/aretw0/steer/internal/presentation/tui"
	"github.com/aretw0/steer/pkg/domain"
)

// TraceRow is one replayed tick as printed by simulate.
type TraceRow struct {
	Tick    domain.Tick    `json:"tick"`
	Command domain.Command `json:"command"`
	Active  []string       `json:"active,omitempty"`
	Guarded []string       `json:"guarded,omitempty"`

	guarded [3]bool
}

// Trace collects per-tick details through engine hooks.
// Hooks fire inside Evaluate with OnTick last, which closes the row.
type Trace struct {
	Rows    []TraceRow
	pending TraceRow
}

// Hooks returns the collecting hooks.
func (tr *Trace) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnBranch: func(e domain.BranchEvent) {
			if e.State == domain.BranchActive {
				tr.pending.Active = append(tr.pending.Active, e.Branch)
			}
		},
		OnGuard: func(e domain.GuardEvent) {
			tr.pending.guarded[e.Axis] = true
			tr.pending.Guarded = append(tr.pending.Guarded, e.Axis.String())
		},
		OnTick: func(e domain.TickEvent) {
			row := tr.pending
			row.Tick = e.Tick
			row.Command = e.Output
			tr.Rows = append(tr.Rows, row)
			tr.pending = TraceRow{}
		},
	}
}

func (r TraceRow) tableRow() tui.Row {
	return tui.Row{Tick: r.Tick, Command: r.Command, Guarded: r.guarded, Active: r.Active}
}
