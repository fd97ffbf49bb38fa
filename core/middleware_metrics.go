package core

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	defaultMetricName = "http_server_requests_total"
	defaultMetricHelp = "Total number of HTTP requests handled by the server, labeled by status code."
)

// MetricsOpts holds configuration options for the Metrics middleware.
type MetricsOpts struct {
	// MetricName is the name of the Prometheus counter.
	// Default: "http_server_requests_total"
	MetricName string

	// MetricHelp is the help string for the Prometheus counter.
	MetricHelp string

	// Registry is the Prometheus registry to register the metric with.
	// If nil, prometheus.DefaultRegisterer is used.
	Registry prometheus.Registerer
}

// Metrics counts handled requests by status code.
type Metrics struct {
	requestsTotal *prometheus.CounterVec
}

// NewMetrics creates the metrics middleware and registers its counter.
// It panics if registration fails (e.g. a name collision); the caller is
// responsible for keeping metric names unique per registry.
func NewMetrics(opts MetricsOpts) *Metrics {
	name := opts.MetricName
	if name == "" {
		name = defaultMetricName
	}
	help := opts.MetricHelp
	if help == "" {
		help = defaultMetricHelp
	}
	registry := opts.Registry
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}

	requestsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: name, Help: help},
		[]string{"code"},
	)
	registry.MustRegister(requestsTotal)

	return &Metrics{requestsTotal: requestsTotal}
}

func (m *Metrics) Execute(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := NewResponseRecorder(w)
		next.ServeHTTP(rec, r)
		m.requestsTotal.WithLabelValues(strconv.Itoa(rec.Status)).Inc()
	})
}
