// Package metrics provides Prometheus metrics for the scout hub service.
package metrics

import (
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collection label values.
const (
	CollectionPlayers = "players"
	CollectionTeams   = "teams"
)

// latencyBuckets covers sub-millisecond in-memory work up to slow HTTP calls.
var latencyBuckets = []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 25, 50, 100, 250} //nolint:gochecknoglobals // bucket layout

// Manager manages all Prometheus metrics for the scout hub service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	constLabels      map[string]string
	registry         prometheus.Registerer

	// Search metrics
	searchRequests     *prometheus.CounterVec
	searchResults      *prometheus.CounterVec
	searchEmptyQueries prometheus.Counter
	searchLatency      prometheus.Histogram

	// Ranking metrics
	leaderboardRequests *prometheus.CounterVec
	leaderboardLatency  prometheus.Histogram

	// Store metrics
	storeLoads   *prometheus.CounterVec
	storeRecords *prometheus.GaugeVec
	storeLookups *prometheus.CounterVec

	// HTTP metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Error metrics
	errorRateByComponent *prometheus.CounterVec
}

// Global metrics manager and the registry it registers on. Configure swaps both.
var (
	globalManager  atomic.Pointer[Manager]             //nolint:gochecknoglobals // intentional global for singleton metrics manager
	customRegistry atomic.Pointer[prometheus.Registry] //nolint:gochecknoglobals // custom registry avoids default Go metrics
)

// Initialize global metrics with the default namespace.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	Configure()
}

// Configure replaces the global manager with one built from opts on a fresh
// registry. Call it before handlers capture GetRegistry; series recorded on the
// previous registry are dropped.
func Configure(opts ...Option) {
	registry := prometheus.NewRegistry()
	m := NewManager(append(opts, WithPrometheusRegistry(registry))...)
	customRegistry.Store(registry)
	globalManager.Store(m)
}

func current() *Manager { return globalManager.Load() }

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "scout",
		subsystem:        "hub",
		histogramBuckets: latencyBuckets,
		constLabels:      map[string]string{},
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

func (m *Manager) counterOpts(name, help string) prometheus.CounterOpts {
	return prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: m.constLabels,
	}
}

func (m *Manager) histogramOpts(name, help string) prometheus.HistogramOpts {
	return prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: m.constLabels,
		Buckets:     m.histogramBuckets,
	}
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.searchRequests = auto.NewCounterVec(
		m.counterOpts("search_requests_total", "Total number of search requests by scope"),
		[]string{"scope"},
	)
	m.searchResults = auto.NewCounterVec(
		m.counterOpts("search_results_total", "Total number of search results returned by collection"),
		[]string{"collection"},
	)
	m.searchEmptyQueries = auto.NewCounter(
		m.counterOpts("search_empty_queries_total", "Total number of searches whose normalized query was empty"),
	)
	m.searchLatency = auto.NewHistogram(
		m.histogramOpts("search_latency_milliseconds", "Histogram of search latency in milliseconds"),
	)

	m.leaderboardRequests = auto.NewCounterVec(
		m.counterOpts("leaderboard_requests_total", "Total number of leaderboard computations by collection and stat"),
		[]string{"collection", "stat"},
	)
	m.leaderboardLatency = auto.NewHistogram(
		m.histogramOpts("leaderboard_latency_milliseconds", "Histogram of leaderboard computation latency in milliseconds"),
	)

	m.storeLoads = auto.NewCounterVec(
		m.counterOpts("store_loads_total", "Total number of dataset loads by collection and outcome"),
		[]string{"collection", "outcome"},
	)
	m.storeRecords = auto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        "store_records",
			Help:        "Number of records held by collection",
			ConstLabels: m.constLabels,
		},
		[]string{"collection"},
	)
	m.storeLookups = auto.NewCounterVec(
		m.counterOpts("store_lookups_total", "Total number of id lookups by collection and outcome"),
		[]string{"collection", "outcome"},
	)

	m.httpRequests = auto.NewCounterVec(
		m.counterOpts("http_requests_total", "Total number of HTTP requests by endpoint and method"),
		[]string{"endpoint", "method", "status_code"},
	)
	m.httpRequestDuration = auto.NewHistogramVec(
		m.histogramOpts("http_request_duration_milliseconds", "HTTP request duration in milliseconds"),
		[]string{"endpoint", "method", "status_code"},
	)

	m.errorRateByComponent = auto.NewCounterVec(
		m.counterOpts("errors_by_component_total", "Total number of errors by component and type"),
		[]string{"component", "error_type"},
	)
}

// Search Metrics Functions.

// RecordSearch records one search with its scope, per-collection result counts and latency.
func RecordSearch(scope string, players, teams int, latencyMs float64) {
	current().searchRequests.WithLabelValues(scope).Inc()
	current().searchResults.WithLabelValues(CollectionPlayers).Add(float64(players))
	current().searchResults.WithLabelValues(CollectionTeams).Add(float64(teams))
	current().searchLatency.Observe(latencyMs)
}

// RecordEmptyQuery increments the empty query counter.
func RecordEmptyQuery() {
	current().searchEmptyQueries.Inc()
}

// Ranking Metrics Functions.

// RecordLeaderboard records one leaderboard computation.
func RecordLeaderboard(collection, stat string, latencyMs float64) {
	current().leaderboardRequests.WithLabelValues(collection, stat).Inc()
	current().leaderboardLatency.Observe(latencyMs)
}

// Store Metrics Functions.

// RecordStoreLoad records a load attempt; outcome is "success" or "failure".
func RecordStoreLoad(collection, outcome string) {
	current().storeLoads.WithLabelValues(collection, outcome).Inc()
}

// UpdateStoreRecords sets the number of records held for collection.
func UpdateStoreRecords(collection string, count int) {
	current().storeRecords.WithLabelValues(collection).Set(float64(count))
}

// RecordStoreLookup records an id lookup; hit reports whether it matched.
func RecordStoreLookup(collection string, hit bool) {
	outcome := "miss"
	if hit {
		outcome = "hit"
	}
	current().storeLookups.WithLabelValues(collection, outcome).Inc()
}

// HTTP Metrics Functions.

// RecordHTTPRequest increments the HTTP request counter.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	current().httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, duration float64) {
	current().httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(duration)
}

// Error Metrics Functions.

// RecordErrorByComponent records an error with component and type labels.
func RecordErrorByComponent(component, errorType string) {
	current().errorRateByComponent.WithLabelValues(component, errorType).Inc()
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry.Load()
}
