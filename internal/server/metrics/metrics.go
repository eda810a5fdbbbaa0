// Package metrics holds the Prometheus collectors of the HTTP server.
//
// Every Metrics value owns its registry, so several servers (or tests) can
// coexist in one process without duplicate registration panics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "spotmap"

// Metrics is the set of server collectors.
type Metrics struct {
	registry *prometheus.Registry

	Requests        *prometheus.CounterVec   // labels: method, route, status
	RequestDuration *prometheus.HistogramVec // labels: route
	FilterFallbacks *prometheus.CounterVec   // labels: field
	CatalogSpots    prometheus.Gauge
	CatalogRegions  prometheus.Gauge
}

// New creates and registers the server collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}, []string{"route"}),
		FilterFallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "filter_fallbacks_total",
			Help:      "Listing requests whose filter fell back to a default, by field.",
		}, []string{"field"}),
		CatalogSpots: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "catalog_spots",
			Help:      "Number of spots in the loaded catalog.",
		}),
		CatalogRegions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "catalog_regions",
			Help:      "Number of regions in the loaded catalog.",
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.Requests,
		m.RequestDuration,
		m.FilterFallbacks,
		m.CatalogSpots,
		m.CatalogRegions,
	)
	return m
}

// ObserveRequest records one served request.
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	m.Requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.RequestDuration.WithLabelValues(route).Observe(elapsed.Seconds())
}

// CacheStats is what the cache collectors read.
type CacheStats func() (items int, hits, misses uint64)

// RegisterCache exposes cache counters read at scrape time.
func (m *Metrics) RegisterCache(stats CacheStats) {
	m.registry.MustRegister(
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "cache_items",
			Help:      "Entries in the response cache.",
		}, func() float64 {
			items, _, _ := stats()
			return float64(items)
		}),
		prometheus.NewCounterFunc(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_hits_total",
			Help:      "Response cache hits.",
		}, func() float64 {
			_, hits, _ := stats()
			return float64(hits)
		}),
		prometheus.NewCounterFunc(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_misses_total",
			Help:      "Response cache misses.",
		}, func() float64 {
			_, _, misses := stats()
			return float64(misses)
		}),
	)
}

// Registry returns the registry the collectors are registered with.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
