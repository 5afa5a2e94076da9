package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the decision module. Methods are
// nil-safe so tests can run with a nil *Metrics and skip registry setup.
type Metrics struct {
	// Decision outcomes by result (approved, rejection kind, internal_fault)
	Outcome *prometheus.CounterVec

	// Full evaluation latency
	EvaluateLatency prometheus.Histogram
}

// New creates a Metrics instance with all decision metrics registered on the
// default registry. Call once per process.
func New() *Metrics {
	return &Metrics{
		Outcome: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "otsus_decision_outcomes_total",
			Help: "Total decision outcomes by result",
		}, []string{"outcome"}),

		EvaluateLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "otsus_decision_evaluate_duration_seconds",
			Help:    "Duration of a full loan decision evaluation",
			Buckets: []float64{0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025},
		}),
	}
}

// IncrementOutcome records a decision outcome.
func (m *Metrics) IncrementOutcome(outcome string) {
	if m != nil {
		m.Outcome.WithLabelValues(outcome).Inc()
	}
}

// ObserveEvaluateLatency records the total evaluation duration.
func (m *Metrics) ObserveEvaluateLatency(d time.Duration) {
	if m != nil {
		m.EvaluateLatency.Observe(d.Seconds())
	}
}
