package observability

import (
	"github.com/aretw0/steer/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records engine events into Prometheus collectors.
type Metrics struct {
	Ticks         prometheus.Counter
	Branches      *prometheus.CounterVec
	Interventions *prometheus.CounterVec
	Command       *prometheus.GaugeVec
	TickInterval  prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg skips registration.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Ticks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "steer_ticks_total",
			Help: "Total number of evaluated control ticks",
		}),
		Branches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "steer_branch_evaluations_total",
			Help: "Assist branch evaluations by outcome",
		}, []string{"branch", "state"}),
		Interventions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "steer_guard_interventions_total",
			Help: "Axis values changed by the sink guard",
		}, []string{"axis", "reason"}),
		Command: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "steer_command",
			Help: "Last emitted command per axis",
		}, []string{"axis"}),
		TickInterval: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "steer_tick_interval_seconds",
			Help:    "Elapsed time reported by each tick",
			Buckets: []float64{0.005, 0.01, 0.02, 0.03, 0.05, 0.1, 0.25},
		}),
	}
	if reg != nil {
		reg.MustRegister(m.Ticks, m.Branches, m.Interventions, m.Command, m.TickInterval)
	}
	return m
}

// Hooks returns lifecycle hooks that feed the collectors.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnTick: func(e domain.TickEvent) {
			m.Ticks.Inc()
			m.TickInterval.Observe(e.Tick.Elapsed())
			for _, a := range domain.Axes {
				m.Command.WithLabelValues(a.String()).Set(e.Output.Axis(a))
			}
		},
		OnBranch: func(e domain.BranchEvent) {
			m.Branches.WithLabelValues(e.Branch, string(e.State)).Inc()
		},
		OnGuard: func(e domain.GuardEvent) {
			m.Interventions.WithLabelValues(e.Axis.String(), string(e.Reason)).Inc()
		},
	}
}
