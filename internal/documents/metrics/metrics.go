package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for document requirement resolution.
type Metrics struct {
	CacheLookups *prometheus.CounterVec
	FetchLatency prometheus.Histogram
}

// New registers the documents metrics.
func New() *Metrics {
	return &Metrics{
		CacheLookups: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "gmarm_document_requirements_cache_total",
			Help: "Requirement checklist cache lookups by result",
		}, []string{"result"}), // result: "hit", "miss"

		FetchLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "gmarm_document_requirements_fetch_duration_seconds",
			Help:    "Duration of backend checklist fetches",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}),
	}
}

func (m *Metrics) IncCacheLookup(result string) {
	if m != nil {
		m.CacheLookups.WithLabelValues(result).Inc()
	}
}

func (m *Metrics) ObserveFetchLatency(d time.Duration) {
	if m != nil {
		m.FetchLatency.Observe(d.Seconds())
	}
}
