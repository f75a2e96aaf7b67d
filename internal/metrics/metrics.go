// Package metrics holds the Prometheus collectors for the edit lifecycle
// and HTTP traffic. All methods are safe to call on a nil *Metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/ballotwiki-backend/internal/domain"
)

const namespace = "ballotwiki"

// Conflict reasons recorded by EditConflict.
const (
	ConflictResolved = "resolved"
	ConflictStale    = "stale"
)

// Metrics is a private registry with the service's collectors.
type Metrics struct {
	registry *prometheus.Registry

	editsSubmitted  *prometheus.CounterVec
	editsSuperseded prometheus.Counter
	editsDecided    *prometheus.CounterVec
	editsConflicts  *prometheus.CounterVec
	rateLimited     prometheus.Counter

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
}

// New creates the registry and registers every collector, including the
// Go runtime and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	factory := promauto.With(reg)
	m := &Metrics{registry: reg}

	m.editsSubmitted = factory.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "edits_submitted_total",
			Help:      "edits accepted into the moderation queue",
		},
		[]string{"entity_type"},
	)
	m.editsSuperseded = factory.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "edits_superseded_total",
			Help:      "pending edits replaced by a newer submission",
		},
	)
	m.editsDecided = factory.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "edits_decided_total",
			Help:      "moderation decisions committed",
		},
		[]string{"decision"},
	)
	m.editsConflicts = factory.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "edits_conflicts_total",
			Help:      "moderation decisions refused because the edit or entity changed",
		},
		[]string{"reason"},
	)
	m.rateLimited = factory.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "edits_rate_limited_total",
			Help:      "submissions refused by the per-user rate limit",
		},
	)

	m.httpRequests = factory.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method and status code",
		},
		[]string{"method", "code"},
	)
	m.httpDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method"},
	)

	return m
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) EditSubmitted(entityType domain.EntityType) {
	if m == nil {
		return
	}
	m.editsSubmitted.WithLabelValues(string(entityType)).Inc()
}

func (m *Metrics) EditSuperseded() {
	if m == nil {
		return
	}
	m.editsSuperseded.Inc()
}

func (m *Metrics) EditDecided(decision domain.Decision) {
	if m == nil {
		return
	}
	m.editsDecided.WithLabelValues(string(decision)).Inc()
}

// EditConflict records a refused decision; reason is ConflictResolved or
// ConflictStale.
func (m *Metrics) EditConflict(reason string) {
	if m == nil {
		return
	}
	m.editsConflicts.WithLabelValues(reason).Inc()
}

func (m *Metrics) SubmissionRateLimited() {
	if m == nil {
		return
	}
	m.rateLimited.Inc()
}

// ObserveHTTP records one served request.
func (m *Metrics) ObserveHTTP(method string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method).Observe(elapsed.Seconds())
}
