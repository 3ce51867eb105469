package observability

import (
	"context"
	"log/slog"

	"github.com/aretw0/steer/pkg/domain"
)

// DebugHooks logs every engine event at debug level, except non-finite
// values reaching the guard, which are logged as warnings.
// The enabled check runs first so a quiet logger costs almost nothing per tick.
func DebugHooks(logger *slog.Logger) domain.LifecycleHooks {
	ctx := context.Background()
	return domain.LifecycleHooks{
		OnTick: func(e domain.TickEvent) {
			if !logger.Enabled(ctx, slog.LevelDebug) {
				return
			}
			logger.Debug("Tick",
				"seq", e.Tick.Seq,
				"dt", e.Tick.DT,
				"lateral", e.Output.Lateral,
				"axial", e.Output.Axial,
				"omega", e.Output.Omega,
			)
		},
		OnBranch: func(e domain.BranchEvent) {
			if !logger.Enabled(ctx, slog.LevelDebug) {
				return
			}
			logger.Debug("Branch", "seq", e.Tick.Seq, "branch", e.Branch, "state", string(e.State), "weight", e.Weight)
		},
		OnGuard: func(e domain.GuardEvent) {
			level := slog.LevelDebug
			if e.Reason == domain.GuardNonFinite {
				level = slog.LevelWarn
			}
			logger.Log(ctx, level, "Guard intervention",
				"seq", e.Tick.Seq,
				"axis", e.Axis.String(),
				"reason", string(e.Reason),
				"input", e.Input,
			)
		},
	}
}
