// Package opmetrics provides the per-module operation metrics used by
// service telemetry wrappers and handler wrappers. Each module gets its
// own recorder labeled with the module name; tests use NoOp.
package opmetrics

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// OperationMetrics records attempts, outcomes, and durations of service
// operations.
type OperationMetrics interface {
	RecordOperationAttempt(ctx context.Context, operation string)
	RecordOperationSuccess(ctx context.Context, operation string)
	RecordOperationFailure(ctx context.Context, operation string)
	RecordOperationDuration(ctx context.Context, operation string, duration time.Duration)
}

// NoOp satisfies OperationMetrics and records nothing.
type NoOp struct{}

func (NoOp) RecordOperationAttempt(context.Context, string)                {}
func (NoOp) RecordOperationSuccess(context.Context, string)                {}
func (NoOp) RecordOperationFailure(context.Context, string)                {}
func (NoOp) RecordOperationDuration(context.Context, string, time.Duration) {}

// PrometheusMetrics implements OperationMetrics on a prometheus registry.
type PrometheusMetrics struct {
	module    string
	attempts  *prometheus.CounterVec
	successes *prometheus.CounterVec
	failures  *prometheus.CounterVec
	durations *prometheus.HistogramVec
}

// NewPrometheus builds and registers the operation metric vectors for one
// module. Vectors are shared process-wide through the registry; calling
// this once per module with distinct module names keeps labels disjoint.
func NewPrometheus(reg prometheus.Registerer, namespace, module string) *PrometheusMetrics {
	labels := []string{"module", "operation"}

	m := &PrometheusMetrics{
		module: module,
		attempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operation_attempts_total",
			Help:      "Service operations started.",
		}, labels),
		successes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operation_successes_total",
			Help:      "Service operations completed without error.",
		}, labels),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operation_failures_total",
			Help:      "Service operations that returned an error.",
		}, labels),
		durations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "operation_duration_seconds",
			Help:      "Service operation latency.",
			Buckets:   prometheus.DefBuckets,
		}, labels),
	}

	for _, c := range []prometheus.Collector{m.attempts, m.successes, m.failures, m.durations} {
		if err := reg.Register(c); err != nil {
			// Another module already registered the shared vector; reuse it.
			if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
				switch existing := are.ExistingCollector.(type) {
				case *prometheus.CounterVec:
					switch c {
					case m.attempts:
						m.attempts = existing
					case m.successes:
						m.successes = existing
					case m.failures:
						m.failures = existing
					}
				case *prometheus.HistogramVec:
					m.durations = existing
				}
				continue
			}
			panic(err)
		}
	}

	return m
}

func (m *PrometheusMetrics) RecordOperationAttempt(_ context.Context, operation string) {
	m.attempts.WithLabelValues(m.module, operation).Inc()
}

func (m *PrometheusMetrics) RecordOperationSuccess(_ context.Context, operation string) {
	m.successes.WithLabelValues(m.module, operation).Inc()
}

func (m *PrometheusMetrics) RecordOperationFailure(_ context.Context, operation string) {
	m.failures.WithLabelValues(m.module, operation).Inc()
}

func (m *PrometheusMetrics) RecordOperationDuration(_ context.Context, operation string, d time.Duration) {
	m.durations.WithLabelValues(m.module, operation).Observe(d.Seconds())
}
