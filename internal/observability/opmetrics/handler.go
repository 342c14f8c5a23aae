package opmetrics

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// HandlerPrometheusMetrics records event-handler outcomes; it satisfies
// the handler wrapper's Metrics interface.
type HandlerPrometheusMetrics struct {
	attempts  *prometheus.CounterVec
	successes *prometheus.CounterVec
	failures  *prometheus.CounterVec
	durations *prometheus.HistogramVec
}

// NewHandlerPrometheus builds and registers the handler metric vectors.
func NewHandlerPrometheus(reg prometheus.Registerer, namespace string) *HandlerPrometheusMetrics {
	labels := []string{"handler"}

	m := &HandlerPrometheusMetrics{
		attempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "handler_attempts_total",
			Help:      "Event handler invocations.",
		}, labels),
		successes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "handler_successes_total",
			Help:      "Event handler invocations that completed.",
		}, labels),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "handler_failures_total",
			Help:      "Event handler invocations that failed.",
		}, labels),
		durations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "handler_duration_seconds",
			Help:      "Event handler latency.",
			Buckets:   prometheus.DefBuckets,
		}, labels),
	}

	reg.MustRegister(m.attempts, m.successes, m.failures, m.durations)
	return m
}

func (m *HandlerPrometheusMetrics) RecordHandlerAttempt(_ context.Context, handlerName string) {
	m.attempts.WithLabelValues(handlerName).Inc()
}

func (m *HandlerPrometheusMetrics) RecordHandlerSuccess(_ context.Context, handlerName string) {
	m.successes.WithLabelValues(handlerName).Inc()
}

func (m *HandlerPrometheusMetrics) RecordHandlerFailure(_ context.Context, handlerName string) {
	m.failures.WithLabelValues(handlerName).Inc()
}

func (m *HandlerPrometheusMetrics) RecordHandlerDuration(_ context.Context, handlerName string, d time.Duration) {
	m.durations.WithLabelValues(handlerName).Observe(d.Seconds())
}
