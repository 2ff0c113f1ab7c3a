package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Operation status label values
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// RecordOperation records one primitive call with its byte counts
func (r *Registry) RecordOperation(operation string, err error, duration time.Duration, bytesIn, bytesOut int) {
	status := StatusSuccess
	if err != nil {
		status = StatusError
	}
	r.OperationsTotal.WithLabelValues(operation, status).Inc()
	r.OperationDuration.WithLabelValues(operation).Observe(duration.Seconds())

	if bytesIn > 0 {
		r.BytesProcessed.WithLabelValues(operation, "in").Add(float64(bytesIn))
	}
	if bytesOut > 0 {
		r.BytesProcessed.WithLabelValues(operation, "out").Add(float64(bytesOut))
	}
}

// RecordFailure counts a typed failure
func (r *Registry) RecordFailure(operation, kind string) {
	r.FailuresTotal.WithLabelValues(operation, kind).Inc()
}

// RecordVerification counts a completed verification outcome
func (r *Registry) RecordVerification(valid bool) {
	if valid {
		r.VerificationResults.WithLabelValues("valid").Inc()
	} else {
		r.VerificationResults.WithLabelValues("invalid").Inc()
	}
}

// RecordCompressionRatio observes the ratio of one compress call
func (r *Registry) RecordCompressionRatio(ratio float64) {
	r.CompressionRatio.Observe(ratio)
}

// WriteTextfile writes the current metrics in text exposition format
func (r *Registry) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
