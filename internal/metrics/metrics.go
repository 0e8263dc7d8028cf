// Package metrics exposes Prometheus metrics for the phonebook API.
//
//   - http_requests_total: requests by route, method and status
//   - http_request_duration_seconds: request latency by route and method
//   - phonebook_people: phonebook size, sampled by the jobs package
package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/forgo/phonebook/internal/middleware"
)

// unmatchedRoute labels requests the mux had no pattern for
const unmatchedRoute = "unmatched"

// Metrics holds the collectors of one registry
type Metrics struct {
	registry *prometheus.Registry

	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
	people   prometheus.Gauge
}

// New creates the collectors and registers them on a fresh registry together
// with the Go runtime and process collectors
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "http_requests_total", Help: "HTTP requests by route, method and status."},
			[]string{"path", "method", "status"},
		),
		latency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{Name: "http_request_duration_seconds", Help: "HTTP request latency in seconds.", Buckets: prometheus.DefBuckets},
			[]string{"path", "method"},
		),
		people: prometheus.NewGauge(
			prometheus.GaugeOpts{Name: "phonebook_people", Help: "Number of people in the phonebook."},
		),
	}

	m.registry.MustRegister(
		m.requests,
		m.latency,
		m.people,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Middleware records request count and latency. It must wrap the ServeMux
// directly so the matched pattern is visible once the mux returns.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		wrapped := middleware.NewStatusWriter(w)
		next.ServeHTTP(wrapped, r)

		path := routeLabel(r.Pattern)
		m.latency.WithLabelValues(path, r.Method).Observe(time.Since(start).Seconds())
		m.requests.WithLabelValues(path, r.Method, strconv.Itoa(wrapped.Status())).Inc()
	})
}

// SetPeople records the current phonebook size
func (m *Metrics) SetPeople(n int) {
	m.people.Set(float64(n))
}

// Handler serves the registry in the Prometheus text format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// routeLabel strips the method from a ServeMux pattern: "GET /api/persons/{id}"
// becomes "/api/persons/{id}"
func routeLabel(pattern string) string {
	if pattern == "" {
		return unmatchedRoute
	}
	if _, path, ok := strings.Cut(pattern, " "); ok {
		return path
	}
	return pattern
}
