package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics collects Prometheus metrics for the client platform.
type Metrics struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	cacheEvents     *prometheus.CounterVec
}

// NewMetrics initializes the registry and base metrics.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "supplyline_api_requests_total",
		Help: "Backend API requests by method and status code.",
	}, []string{"method", "code"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "supplyline_api_request_duration_seconds",
		Help:    "Backend API request duration by method.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method"})
	cacheEvents := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "supplyline_query_cache_events_total",
		Help: "Query cache hits, misses and invalidations.",
	}, []string{"event"})
	registry.MustRegister(requests, duration, cacheEvents)
	return &Metrics{
		registry:        registry,
		handler:         promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestsTotal:   requests,
		requestDuration: duration,
		cacheEvents:     cacheEvents,
	}
}

// Handler returns the http.Handler for a /metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// ObserveRequest records a completed API request. Implements restc.Recorder.
func (m *Metrics) ObserveRequest(method, _ string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.requestsTotal.WithLabelValues(method, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(method).Observe(elapsed.Seconds())
}

// ObserveCache records a query cache event. Implements store.Recorder.
func (m *Metrics) ObserveCache(event string) {
	if m == nil {
		return
	}
	m.cacheEvents.WithLabelValues(event).Inc()
}

// Registerer exposes the registry for registering custom metrics.
func (m *Metrics) Registerer() prometheus.Registerer {
	if m == nil {
		return prometheus.DefaultRegisterer
	}
	return m.registry
}
