// Package metrics holds the prometheus collectors shared across the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics bundles all prometheus collectors used by the service.
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueriesTotal  *prometheus.CounterVec
	DBQueryDuration *prometheus.HistogramVec
	DBOpenConns     *prometheus.GaugeVec
	DBIdleConns     *prometheus.GaugeVec

	OccupancyRefreshesTotal *prometheus.CounterVec
	NotifyEventsTotal       prometheus.Counter
	SSESubscribers          prometheus.Gauge
}

// New registers and returns the service metrics on the default registry.
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests.",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency.",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),

		DBQueriesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "db_queries_total",
			Help:        "Total number of database queries.",
			ConstLabels: constLabels,
		}, []string{"operation", "status"}),

		DBQueryDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query latency.",
			ConstLabels: constLabels,
			Buckets:     []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"operation"}),

		DBOpenConns: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_pool_open_connections",
			Help:        "Open connections in the database pool.",
			ConstLabels: constLabels,
		}, []string{"state"}),

		DBIdleConns: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_pool_idle_connections",
			Help:        "Idle connections in the database pool.",
			ConstLabels: constLabels,
		}, []string{"state"}),

		OccupancyRefreshesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "occupancy_refreshes_total",
			Help:        "Occupancy index refresh attempts by outcome.",
			ConstLabels: constLabels,
		}, []string{"outcome"}),

		NotifyEventsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "booking_notify_events_total",
			Help:        "Booking change notifications received.",
			ConstLabels: constLabels,
		}),

		SSESubscribers: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "booking_event_subscribers",
			Help:        "Currently connected booking event stream subscribers.",
			ConstLabels: constLabels,
		}),
	}
}
