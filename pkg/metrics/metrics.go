// Copyright 2025 Certen Protocol
//
// Engine instrumentation: call counts and latencies for the five AHIBE
// operations, registered with the default Prometheus registry. This
// package serves no HTTP endpoint itself. The engine itself never imports
// this package; callers wrap their own invocations with the helpers here.

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	operationTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ahibe",
		Name:      "operation_total",
		Help:      "Count of AHIBE engine operation invocations by name and outcome.",
	}, []string{"operation", "outcome"})

	operationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "ahibe",
		Name:      "operation_duration_seconds",
		Help:      "Latency of AHIBE engine operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation"})
)

// Outcome labels recorded by ObserveOperation.
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// ObserveOperation records the duration and outcome of a single engine
// call. Typical use wraps a call site:
//
//	start := time.Now()
//	_, _, err := ahibe.Encapsulate(pp, path, rand.Reader)
//	metrics.ObserveOperation("encapsulate", start, err)
func ObserveOperation(operation string, start time.Time, err error) {
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeError
	}
	operationTotal.WithLabelValues(operation, outcome).Inc()
	operationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}
