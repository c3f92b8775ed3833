package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for client submissions.
type Metrics struct {
	Submissions *prometheus.CounterVec
	Duration    *prometheus.HistogramVec
	Uploads     *prometheus.CounterVec
	Statuses    *prometheus.CounterVec
}

// New registers the submission metrics.
func New() *Metrics {
	return &Metrics{
		Submissions: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "gmarm_submissions_total",
			Help: "Client submissions by flow and outcome",
		}, []string{"flow", "outcome"}),

		Duration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "gmarm_submission_duration_seconds",
			Help:    "End-to-end duration of client submissions",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}, []string{"flow"}),

		Uploads: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "gmarm_document_uploads_total",
			Help: "Document uploads by kind (upload, replace) and result",
		}, []string{"kind", "result"}),

		Statuses: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "gmarm_client_status_transitions_total",
			Help: "Client status values written by intake",
		}, []string{"status"}),
	}
}

func (m *Metrics) IncSubmission(flow, outcome string) {
	if m != nil {
		m.Submissions.WithLabelValues(flow, outcome).Inc()
	}
}

func (m *Metrics) ObserveDuration(flow string, d time.Duration) {
	if m != nil {
		m.Duration.WithLabelValues(flow).Observe(d.Seconds())
	}
}

func (m *Metrics) IncUpload(kind, result string) {
	if m != nil {
		m.Uploads.WithLabelValues(kind, result).Inc()
	}
}

func (m *Metrics) IncStatus(status string) {
	if m != nil {
		m.Statuses.WithLabelValues(status).Inc()
	}
}
