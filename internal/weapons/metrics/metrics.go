package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for weapon assignment.
type Metrics struct {
	Outcomes   *prometheus.CounterVec
	Rejections *prometheus.CounterVec
	Latency    *prometheus.HistogramVec
}

// New registers the weapons metrics.
func New() *Metrics {
	return &Metrics{
		Outcomes: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "gmarm_weapon_assignment_outcomes_total",
			Help: "Weapon assignment outcomes by operation and outcome",
		}, []string{"operation", "outcome"}),

		Rejections: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "gmarm_weapon_assignment_rejections_total",
			Help: "Weapon assignment precondition failures by error code",
		}, []string{"code"}),

		Latency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "gmarm_weapon_assignment_duration_seconds",
			Help:    "Duration of assign and reassign operations",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"operation"}),
	}
}

func (m *Metrics) IncOutcome(operation, outcome string) {
	if m != nil {
		m.Outcomes.WithLabelValues(operation, outcome).Inc()
	}
}

func (m *Metrics) IncRejection(code string) {
	if m != nil {
		m.Rejections.WithLabelValues(code).Inc()
	}
}

func (m *Metrics) ObserveLatency(operation string, d time.Duration) {
	if m != nil {
		m.Latency.WithLabelValues(operation).Observe(d.Seconds())
	}
}
