package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for holiday computation.
type Metrics struct {
	// Computation latency by jurisdiction kind
	ComputeLatency *prometheus.HistogramVec

	// Computations by country and outcome
	Computations *prometheus.CounterVec

	// Jurisdiction-years evaluated by batch precompute
	PrecomputeTasks prometheus.Counter

	// Overall batch latency
	PrecomputeLatency prometheus.Histogram
}

// New creates a new Metrics instance registered with the default registry.
func New() *Metrics {
	return &Metrics{
		ComputeLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "almanac_holidays_compute_duration_seconds",
			Help:    "Duration of holiday computation for one jurisdiction and year",
			Buckets: []float64{0.00005, 0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01},
		}, []string{"kind"}), // kind: "national", "subdivision"

		Computations: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "almanac_holidays_computations_total",
			Help: "Total holiday computations by country and outcome",
		}, []string{"country", "outcome"}),

		PrecomputeTasks: promauto.NewCounter(prometheus.CounterOpts{
			Name: "almanac_holidays_precompute_tasks_total",
			Help: "Total jurisdiction-years evaluated by batch precompute",
		}),

		PrecomputeLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "almanac_holidays_precompute_duration_seconds",
			Help:    "Duration of batch precompute requests",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
	}
}

// ObserveCompute records one computation.
func (m *Metrics) ObserveCompute(kind, country, outcome string, d time.Duration) {
	if m != nil {
		m.ComputeLatency.WithLabelValues(kind).Observe(d.Seconds())
		m.Computations.WithLabelValues(country, outcome).Inc()
	}
}

// ObservePrecompute records a batch of n tasks.
func (m *Metrics) ObservePrecompute(n int, d time.Duration) {
	if m != nil {
		m.PrecomputeTasks.Add(float64(n))
		m.PrecomputeLatency.Observe(d.Seconds())
	}
}
