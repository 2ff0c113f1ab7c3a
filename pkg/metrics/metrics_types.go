package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// DefaultNamespace prefixes every metric name
const DefaultNamespace = "primitives"

// Registry holds all metrics for the primitive service
type Registry struct {
	// Operation Metrics
	OperationsTotal   *prometheus.CounterVec
	OperationDuration *prometheus.HistogramVec
	BytesProcessed    *prometheus.CounterVec

	// Outcome Metrics
	FailuresTotal       *prometheus.CounterVec
	VerificationResults *prometheus.CounterVec
	CompressionRatio    prometheus.Histogram

	registry *prometheus.Registry
}

// NewRegistry creates a metrics registry under the given namespace.
// An empty namespace uses DefaultNamespace.
func NewRegistry(namespace string) *Registry {
	if namespace == "" {
		namespace = DefaultNamespace
	}

	r := &Registry{
		registry: prometheus.NewRegistry(),
	}

	r.initOperationMetrics(namespace)
	r.initOutcomeMetrics(namespace)

	return r
}

// GetPrometheusRegistry returns the underlying Prometheus registry
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}
