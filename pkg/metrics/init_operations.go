package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initOperationMetrics(ns string) {
	r.OperationsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: ns,
			Name:      "operations_total",
			Help:      "Total number of primitive operations",
		},
		[]string{"operation", "status"},
	)

	r.OperationDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: ns,
			Name:      "operation_duration_seconds",
			Help:      "Primitive operation duration in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10), // 10µs to ~2.6s
		},
		[]string{"operation"},
	)

	r.BytesProcessed = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: ns,
			Name:      "bytes_processed_total",
			Help:      "Total bytes passed into and out of primitive operations",
		},
		[]string{"operation", "direction"},
	)
}

func (r *Registry) initOutcomeMetrics(ns string) {
	r.FailuresTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: ns,
			Name:      "failures_total",
			Help:      "Total number of typed primitive failures by kind",
		},
		[]string{"operation", "kind"},
	)

	r.VerificationResults = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: ns,
			Name:      "verification_results_total",
			Help:      "Signature verification outcomes (valid or invalid)",
		},
		[]string{"result"},
	)

	r.CompressionRatio = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Namespace: ns,
			Name:      "compression_ratio",
			Help:      "Original size divided by compressed size for compress calls",
			Buckets:   []float64{0.5, 0.9, 1, 1.5, 2, 3, 5, 10, 20, 50},
		},
	)
}
