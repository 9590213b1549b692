// Package metrics provides Prometheus metrics for the draft board service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Default metrics configuration constants.
const (
	defaultRefreshInterval = 10 * time.Second
)

// Manager owns all Prometheus metrics for the draft board service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	refreshInterval  time.Duration
	registry         prometheus.Registerer

	// Extraction metrics - the parsing pipeline.
	pagesProcessed    prometheus.Counter
	recordsExtracted  *prometheus.CounterVec
	rowsRejected      *prometheus.CounterVec
	extractionLatency prometheus.Histogram

	// Roster metrics - consolidation output.
	rostersBuilt   prometheus.Counter
	rosterSize     prometheus.Gauge
	parseCacheHits prometheus.Counter
	parseCacheMiss prometheus.Counter
	parseCacheLen  prometheus.Gauge

	// Draft metrics - session state transitions.
	draftMoves     prometheus.Counter
	draftResets    prometheus.Counter
	sessionsActive prometheus.Gauge

	// Pipeline metrics - page fan-out.
	pageQueueSize   prometheus.Gauge
	pageWorkerCount prometheus.Gauge

	// HTTP metrics.
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Error metrics.
	errorsByComponent *prometheus.CounterVec

	// System metrics.
	systemMemoryBytes prometheus.Gauge
	systemGoroutines  prometheus.Gauge
	systemGCPauseMs   prometheus.Histogram
}

// NewManager creates a metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "draftboard",
		subsystem:        "board",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		refreshInterval:  defaultRefreshInterval,
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	factory := promauto.With(m.registry)

	m.pagesProcessed = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "pages_processed_total",
		Help:      "Number of document pages run through the extraction pipeline",
	})

	m.recordsExtracted = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "records_extracted_total",
		Help:      "Number of raw player records recovered, by extractor",
	}, []string{"extractor"})

	m.rowsRejected = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "rows_rejected_total",
		Help:      "Number of candidate rows or lines rejected, by reason",
	}, []string{"reason"})

	m.extractionLatency = factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "extraction_latency_ms",
		Help:      "End-to-end document extraction latency in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.rostersBuilt = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "rosters_built_total",
		Help:      "Number of rosters consolidated from uploaded documents",
	})

	m.rosterSize = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "roster_size",
		Help:      "Size of the most recently built roster",
	})

	m.parseCacheHits = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "parse_cache_hits_total",
		Help:      "Number of document parses served from the content-addressed memo",
	})

	m.parseCacheMiss = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "parse_cache_misses_total",
		Help:      "Number of document parses that required a full extraction",
	})

	m.parseCacheLen = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "parse_cache_entries",
		Help:      "Number of rosters held by the content-addressed memo",
	})

	m.draftMoves = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "draft_moves_total",
		Help:      "Number of players moved to the drafted set",
	})

	m.draftResets = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "draft_resets_total",
		Help:      "Number of draft state resets",
	})

	m.sessionsActive = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "sessions_active",
		Help:      "Number of live draft sessions",
	})

	m.pageQueueSize = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "page_queue_size",
		Help:      "Number of pages waiting in the extraction queue",
	})

	m.pageWorkerCount = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "page_worker_count",
		Help:      "Number of extraction workers in the pipeline pool",
	})

	m.httpRequests = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_requests_total",
		Help:      "HTTP requests by endpoint, method and status code",
	}, []string{"endpoint", "method", "status"})

	m.httpRequestDuration = factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_request_duration_ms",
		Help:      "HTTP request duration in milliseconds",
		Buckets:   m.histogramBuckets,
	}, []string{"endpoint", "method", "status"})

	m.errorsByComponent = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "errors_total",
		Help:      "Errors by component and kind",
	}, []string{"component", "kind"})

	m.systemMemoryBytes = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_memory_bytes",
		Help:      "Allocated heap bytes",
	})

	m.systemGoroutines = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_goroutines",
		Help:      "Number of live goroutines",
	})

	m.systemGCPauseMs = factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_gc_pause_ms",
		Help:      "Average GC pause time in milliseconds",
		Buckets:   m.histogramBuckets,
	})
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // singleton metrics manager

// Custom registry to avoid the default Go collectors.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // singleton registry

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// GetRegistry returns the registry metrics are collected into.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

// Package-level helpers against the global manager.

func RecordPageProcessed() {
	globalManager.pagesProcessed.Inc()
}

func RecordRecordsExtracted(extractor string, n int) {
	if n > 0 {
		globalManager.recordsExtracted.WithLabelValues(extractor).Add(float64(n))
	}
}

func RecordRowRejected(reason string) {
	globalManager.rowsRejected.WithLabelValues(reason).Inc()
}

func RecordExtractionLatency(latencyMs float64) {
	globalManager.extractionLatency.Observe(latencyMs)
}

func RecordRosterBuilt(size int) {
	globalManager.rostersBuilt.Inc()
	globalManager.rosterSize.Set(float64(size))
}

func RecordParseCacheHit() {
	globalManager.parseCacheHits.Inc()
}

func RecordParseCacheMiss() {
	globalManager.parseCacheMiss.Inc()
}

func UpdateParseCacheLen(n int) {
	globalManager.parseCacheLen.Set(float64(n))
}

func RecordDraftMoves(n int) {
	if n > 0 {
		globalManager.draftMoves.Add(float64(n))
	}
}

func RecordDraftReset() {
	globalManager.draftResets.Inc()
}

func UpdateSessionsActive(n int) {
	globalManager.sessionsActive.Set(float64(n))
}

func UpdatePageQueueSize(n int) {
	globalManager.pageQueueSize.Set(float64(n))
}

func UpdatePageWorkerCount(n int) {
	globalManager.pageWorkerCount.Set(float64(n))
}

func RecordHTTPRequest(endpoint, method, status string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, status).Inc()
}

func RecordHTTPRequestDuration(endpoint, method, status string, durationMs float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, status).Observe(durationMs)
}

func RecordErrorByComponent(component, kind string) {
	globalManager.errorsByComponent.WithLabelValues(component, kind).Inc()
}

func UpdateSystemMemoryUsage(bytes uint64) {
	globalManager.systemMemoryBytes.Set(float64(bytes))
}

func UpdateSystemGoroutineCount(count int) {
	globalManager.systemGoroutines.Set(float64(count))
}

func RecordSystemGCPauseTime(pauseMs float64) {
	globalManager.systemGCPauseMs.Observe(pauseMs)
}
