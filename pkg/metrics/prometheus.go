// Package metrics provides Prometheus metrics for Schoox API client calls.
package metrics

import (
	"fmt"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Error type labels used with RecordError.
const (
	ErrorTypeTransport = "transport"
	ErrorTypeStatus    = "status"
	ErrorTypeEncode    = "encode"
)

// Manager owns the client request metrics registered on one registry.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	sizeBuckets      []float64
	enabled          bool
	constLabels      prometheus.Labels
	registry         prometheus.Registerer
	gatherer         prometheus.Gatherer

	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	responseSize    *prometheus.HistogramVec
	errors          *prometheus.CounterVec
	inFlight        prometheus.Gauge
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "schoox",
		subsystem:        "client",
		histogramBuckets: []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000, 10000},
		sizeBuckets:      prometheus.ExponentialBuckets(64, 4, 8),
		enabled:          true,
		constLabels:      prometheus.Labels{},
		registry:         prometheus.DefaultRegisterer,
		gatherer:         prometheus.DefaultGatherer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.requests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        "requests_total",
			Help:        "Total number of API requests by endpoint, method and status code",
			ConstLabels: m.constLabels,
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.requestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        "request_duration_milliseconds",
			Help:        "API request round-trip duration in milliseconds",
			Buckets:     m.histogramBuckets,
			ConstLabels: m.constLabels,
		},
		[]string{"endpoint", "method"},
	)

	m.responseSize = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        "response_size_bytes",
			Help:        "Size of API response bodies in bytes",
			Buckets:     m.sizeBuckets,
			ConstLabels: m.constLabels,
		},
		[]string{"endpoint"},
	)

	m.errors = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        "errors_total",
			Help:        "Total number of failed API requests by endpoint, method and error type",
			ConstLabels: m.constLabels,
		},
		[]string{"endpoint", "method", "error_type"},
	)

	m.inFlight = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "requests_in_flight",
		Help:        "Number of API requests currently awaiting a response",
		ConstLabels: m.constLabels,
	})
}

// RecordRequest counts a completed request and observes its duration.
func (m *Manager) RecordRequest(endpoint, method string, statusCode int, durationMs float64) {
	if m == nil || !m.enabled {
		return
	}
	m.requests.WithLabelValues(endpoint, method, strconv.Itoa(statusCode)).Inc()
	m.requestDuration.WithLabelValues(endpoint, method).Observe(durationMs)
}

// RecordResponseSize observes the size of a response body.
func (m *Manager) RecordResponseSize(endpoint string, bytes int) {
	if m == nil || !m.enabled {
		return
	}
	m.responseSize.WithLabelValues(endpoint).Observe(float64(bytes))
}

// RecordError counts a failed request.
func (m *Manager) RecordError(endpoint, method, errorType string) {
	if m == nil || !m.enabled {
		return
	}
	m.errors.WithLabelValues(endpoint, method, errorType).Inc()
}

// TrackInFlight increments the in-flight gauge and returns the matching decrement.
func (m *Manager) TrackInFlight() func() {
	if m == nil || !m.enabled {
		return func() {}
	}
	m.inFlight.Inc()
	return m.inFlight.Dec
}

// Enabled reports whether the manager records anything.
func (m *Manager) Enabled() bool {
	return m != nil && m.enabled
}

// WriteTextfile dumps the manager's gatherer in Prometheus text format,
// suitable for the node_exporter textfile collector.
func (m *Manager) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.gatherer); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteTextfile, err)
	}
	return nil
}

// Default returns the package-level manager backed by the custom registry.
func Default() *Manager {
	return globalManager
}
