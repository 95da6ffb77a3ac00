package obs

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels for resource operations.
const (
	OutcomeOK       = "ok"
	OutcomeNotFound = "not_found"
	OutcomeInvalid  = "invalid"
	OutcomeError    = "error"
)

// Metrics holds the collectors exported at /metrics.
type Metrics struct {
	reg *prometheus.Registry

	HTTPRequests  *prometheus.CounterVec
	HTTPLatency   *prometheus.HistogramVec
	ResourceCalls *prometheus.CounterVec
}

// NewMetrics registers every collector on a private registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		reg: reg,
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP requests by method and status code.",
		}, []string{"method", "status"}),
		HTTPLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method"}),
		ResourceCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "resource_operations_total",
			Help: "Mock resource operations by resource, operation and outcome.",
		}, []string{"resource", "op", "outcome"}),
	}
	reg.MustRegister(
		m.HTTPRequests,
		m.HTTPLatency,
		m.ResourceCalls,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{})
}

// ObserveHTTP records one finished request. A nil receiver is a no-op.
func (m *Metrics) ObserveHTTP(method, status string, d time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequests.WithLabelValues(method, status).Inc()
	m.HTTPLatency.WithLabelValues(method).Observe(d.Seconds())
}

// ObserveResource records one resource operation. A nil receiver is a no-op.
func (m *Metrics) ObserveResource(resource, op, outcome string) {
	if m == nil {
		return
	}
	m.ResourceCalls.WithLabelValues(resource, op, outcome).Inc()
}
