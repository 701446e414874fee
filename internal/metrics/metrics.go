package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "foodcourt_http_requests_total",
		Help: "HTTP requests by method, route pattern and status code.",
	}, []string{"method", "route", "status"})

	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "foodcourt_http_request_duration_seconds",
		Help:    "HTTP request latency by route pattern.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	OrdersPlaced = promauto.NewCounter(prometheus.CounterOpts{
		Name: "foodcourt_orders_placed_total",
		Help: "Orders successfully placed.",
	})

	OrdersCancelledBySweeper = promauto.NewCounter(prometheus.CounterOpts{
		Name: "foodcourt_sweeper_cancelled_total",
		Help: "Stalled orders cancelled by the sweeper.",
	})

	NotificationsDropped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "foodcourt_notifications_dropped_total",
		Help: "Notifications dropped because the dispatcher queue was full.",
	})

	CacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "foodcourt_cache_hits_total",
		Help: "Response cache hits by namespace.",
	}, []string{"namespace"})

	CacheMisses = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "foodcourt_cache_misses_total",
		Help: "Response cache misses by namespace.",
	}, []string{"namespace"})
)
