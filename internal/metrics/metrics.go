// Package metrics defines the Prometheus metric collectors used across the
// service and exposes an HTTP handler for scraping.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus collectors for the service.
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	AsksTotal           *prometheus.CounterVec
	AskLatency          *prometheus.HistogramVec
	CacheHitsTotal      prometheus.Counter
	CacheMissesTotal    prometheus.Counter
	CompletionLatency   *prometheus.HistogramVec
	ExtractionJobsTotal *prometheus.CounterVec
	ExtractionDuration  prometheus.Histogram
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests by method, path, and status.",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds.",
				Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"method", "path"},
		),
		AsksTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "asks_total",
				Help: "Total ask operations by outcome (cached, answered, error).",
			},
			[]string{"outcome"},
		),
		AskLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ask_latency_seconds",
				Help:    "End-to-end ask latency in seconds.",
				Buckets: []float64{0.005, 0.025, 0.1, 0.5, 1, 2.5, 5, 10, 30, 60},
			},
			[]string{"cache_status"},
		),
		CacheHitsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "conversation_cache_hits_total",
				Help: "Total number of conversation cache hits.",
			},
		),
		CacheMissesTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "conversation_cache_misses_total",
				Help: "Total number of conversation cache misses.",
			},
		),
		CompletionLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "completion_latency_seconds",
				Help:    "Model completion latency in seconds by operation (ask, extract).",
				Buckets: []float64{0.5, 1, 2.5, 5, 10, 30, 60, 120, 180},
			},
			[]string{"operation"},
		),
		ExtractionJobsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "extraction_jobs_total",
				Help: "Total extraction job transitions by outcome (started, attached, succeeded, failed).",
			},
			[]string{"outcome"},
		),
		ExtractionDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "extraction_duration_seconds",
				Help:    "Wall-clock duration of extraction jobs in seconds.",
				Buckets: []float64{1, 5, 10, 30, 60, 120, 300, 600},
			},
		),
	}

	prometheus.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.AsksTotal,
		m.AskLatency,
		m.CacheHitsTotal,
		m.CacheMissesTotal,
		m.CompletionLatency,
		m.ExtractionJobsTotal,
		m.ExtractionDuration,
	)

	return m
}

// Handler returns the Prometheus scrape HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
