// Package metrics holds the Prometheus instrumentation for the indicator
// engine. The set registers on a caller-supplied Registerer so embedding
// processes control exposure; the library never touches the default
// registry on its own.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Set holds all Prometheus metrics for the indicator engine.
type Set struct {
	ComputationsTotal *prometheus.CounterVec // labels: indicator
	ComputeDur        prometheus.Histogram
	InsufficientData  prometheus.Counter
	DegenerateValues  prometheus.Counter
}

// New builds the metric set and registers it on reg. A nil reg skips
// registration, leaving the metrics inert but usable.
func New(reg prometheus.Registerer) *Set {
	s := &Set{
		ComputationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "taengine_computations_total",
			Help: "Indicator series computed, by indicator name",
		}, []string{"indicator"}),
		ComputeDur: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "taengine_compute_duration_seconds",
			Help:    "Wall time per indicator series computation",
			Buckets: prometheus.ExponentialBuckets(0.000001, 4, 12),
		}),
		InsufficientData: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "taengine_insufficient_data_total",
			Help: "Computations rejected because the input series was too short",
		}),
		DegenerateValues: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "taengine_degenerate_values_total",
			Help: "Non-finite values produced (flat windows, all-gain runs)",
		}),
	}

	if reg != nil {
		reg.MustRegister(
			s.ComputationsTotal,
			s.ComputeDur,
			s.InsufficientData,
			s.DegenerateValues,
		)
	}

	return s
}
