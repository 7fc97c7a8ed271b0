// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Manager owns every collector and the registry they live in.
type Manager struct {
	namespace        string
	histogramBuckets []float64
	registry         *prometheus.Registry

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	projections     *prometheus.CounterVec
	integrityFaults prometheus.Counter
	resultWrites    *prometheus.CounterVec
	authFailures    prometheus.Counter
}

// NewManager creates a manager with its own registry so tests can build as
// many as they like without duplicate-registration panics.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "resultboard",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.NewRegistry(),
	}
	for _, opt := range opts {
		opt(m)
	}

	m.httpRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests by method, route and status code.",
	}, []string{"method", "route", "code"})

	m.httpRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency by method and route.",
		Buckets:   m.histogramBuckets,
	}, []string{"method", "route"})

	m.projections = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "disclosure",
		Name:      "projections_total",
		Help:      "Result projections served, by derived state.",
	}, []string{"state"})

	m.integrityFaults = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "disclosure",
		Name:      "integrity_faults_total",
		Help:      "Stored records whose reveal time could not be parsed.",
	})

	m.resultWrites = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "store",
		Name:      "result_writes_total",
		Help:      "Result mutations by operation.",
	}, []string{"op"})

	m.authFailures = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "auth",
		Name:      "failures_total",
		Help:      "Rejected logins and bearer tokens.",
	})

	m.registry.MustRegister(
		m.httpRequests,
		m.httpRequestDuration,
		m.projections,
		m.integrityFaults,
		m.resultWrites,
		m.authFailures,
	)
	return m
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus text format.
func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Manager) ObserveHTTP(method, route string, code int, elapsed time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(code)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ObserveProjections counts projections served by state.
func (m *Manager) ObserveProjections(pending, published int) {
	m.projections.WithLabelValues("pending").Add(float64(pending))
	m.projections.WithLabelValues("published").Add(float64(published))
}

func (m *Manager) IntegrityFault() { m.integrityFaults.Inc() }

func (m *Manager) ResultWrite(op string) { m.resultWrites.WithLabelValues(op).Inc() }

func (m *Manager) AuthFailure() { m.authFailures.Inc() }
