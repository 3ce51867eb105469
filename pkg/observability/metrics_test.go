package observability

import (
	"bytes"
	"log/slog"
	"math"
	"testing"

	"github.com/aretw0/steer/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Hooks(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	hooks := m.Hooks()

	tick := domain.Tick{Seq: 1, DT: 0.02}
	hooks.OnBranch(domain.BranchEvent{Tick: tick, Branch: "aim", State: domain.BranchActive})
	hooks.OnBranch(domain.BranchEvent{Tick: tick, Branch: "aim", State: domain.BranchSkipped})
	hooks.OnBranch(domain.BranchEvent{Tick: tick, Branch: "aim", State: domain.BranchSkipped})
	hooks.OnGuard(domain.GuardEvent{Tick: tick, Axis: domain.AxisOmega, Reason: domain.GuardNonFinite, Input: math.NaN()})
	hooks.OnTick(domain.TickEvent{Tick: tick, Output: domain.NewCommand(0.1, -0.5, 0)})

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Ticks))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Branches.WithLabelValues("aim", "active")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Branches.WithLabelValues("aim", "skipped")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Interventions.WithLabelValues("omega", "non_finite")))
	assert.Equal(t, -0.5, testutil.ToFloat64(m.Command.WithLabelValues("axial")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.TickInterval))

	count, err := testutil.GatherAndCount(reg, "steer_ticks_total")
	assert.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestNewMetrics_NilRegistry(t *testing.T) {
	m := NewMetrics(nil)
	m.Hooks().OnTick(domain.TickEvent{})
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Ticks))
}

func TestDebugHooks(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
	hooks := DebugHooks(logger)

	hooks.OnTick(domain.TickEvent{Tick: domain.Tick{Seq: 3}})
	assert.Empty(t, buf.String(), "debug events are dropped at info level")

	hooks.OnGuard(domain.GuardEvent{Axis: domain.AxisLateral, Reason: domain.GuardClamped, Input: 4})
	assert.Empty(t, buf.String(), "clamping is routine")

	hooks.OnGuard(domain.GuardEvent{Axis: domain.AxisLateral, Reason: domain.GuardNonFinite, Input: math.Inf(1)})
	assert.Contains(t, buf.String(), "axis=lateral")
	assert.Contains(t, buf.String(), "reason=non_finite")
}
