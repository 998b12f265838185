package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome label values for the comparisons counter.
const (
	OutcomeEqual    = "equal"
	OutcomeMismatch = "mismatch"
)

// Metrics holds the snapshot and comparison Prometheus metrics.
type Metrics struct {
	// Capture metrics
	SnapshotsCaptured prometheus.Counter
	CaptureErrors     prometheus.Counter
	CaptureDuration   prometheus.Histogram

	// Comparison metrics
	Comparisons   *prometheus.CounterVec
	Discrepancies prometheus.Histogram

	// Rate limiting metrics
	RateLimitHits prometheus.Counter
}

// New creates the metrics and registers them with reg. A nil reg means
// the default registerer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	factory := promauto.With(reg)

	return &Metrics{
		SnapshotsCaptured: factory.NewCounter(prometheus.CounterOpts{
			Name: "chainsnap_snapshots_captured_total",
			Help: "Total number of snapshots captured from the node",
		}),
		CaptureErrors: factory.NewCounter(prometheus.CounterOpts{
			Name: "chainsnap_capture_errors_total",
			Help: "Total number of failed snapshot captures",
		}),
		CaptureDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "chainsnap_capture_duration_seconds",
			Help:    "Duration of snapshot captures",
			Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60, 120},
		}),
		Comparisons: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "chainsnap_comparisons_total",
				Help: "Total number of snapshot comparisons by outcome",
			},
			[]string{"outcome"},
		),
		Discrepancies: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "chainsnap_comparison_discrepancies",
			Help:    "Number of discrepancies found per comparison",
			Buckets: []float64{0, 1, 5, 10, 50, 100, 500, 1000},
		}),
		RateLimitHits: factory.NewCounter(prometheus.CounterOpts{
			Name: "chainsnap_rate_limit_hits_total",
			Help: "Total requests rejected by the rate limiter",
		}),
	}
}

// ObserveCapture records one capture attempt.
func (m *Metrics) ObserveCapture(duration time.Duration, err error) {
	if err != nil {
		m.CaptureErrors.Inc()
		return
	}

	m.SnapshotsCaptured.Inc()
	m.CaptureDuration.Observe(duration.Seconds())
}

// ObserveComparison records one comparison outcome.
func (m *Metrics) ObserveComparison(equal bool, discrepancies int) {
	outcome := OutcomeMismatch
	if equal {
		outcome = OutcomeEqual
	}

	m.Comparisons.WithLabelValues(outcome).Inc()
	m.Discrepancies.Observe(float64(discrepancies))
}
