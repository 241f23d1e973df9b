package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the service's prometheus registry and collectors.
type Metrics struct {
	registry *prometheus.Registry

	// NumbersGenerated counts values served by the random-number endpoint.
	NumbersGenerated prometheus.Counter
	// RequestDuration tracks HTTP latency by path and status code.
	RequestDuration *prometheus.HistogramVec
}

// New builds a Metrics instance with its own registry so tests can run
// in parallel without collector name collisions.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		NumbersGenerated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "random_numbers_generated_total",
			Help: "Total count of random numbers served.",
		}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"path", "status"}),
	}

	registry.MustRegister(
		m.NumbersGenerated,
		m.RequestDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Handler exposes the registry in the prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
