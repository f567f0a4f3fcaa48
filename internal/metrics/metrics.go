package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pescaderia_http_requests_total",
			Help: "Total HTTP requests by method, path and status code",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pescaderia_http_request_duration_seconds",
			Help:    "HTTP request latency by method and path",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	DispatchesCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pescaderia_dispatches_created_total",
			Help: "Dispatches committed from the batch grid",
		},
	)

	DispatchesClosed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pescaderia_dispatches_closed_total",
			Help: "Dispatches settled and frozen",
		},
	)

	PurchasesRecorded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pescaderia_purchases_recorded_total",
			Help: "Supplier intake events recorded",
		},
	)

	SalesRecorded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pescaderia_sales_recorded_total",
			Help: "Counter sales committed",
		},
	)

	InsightFallbacks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pescaderia_insight_fallbacks_total",
			Help: "Insight requests served from the static fallback list",
		},
	)
)
