package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: Namespace + "_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    Namespace + "_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	UserInfoFetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    Namespace + "_userinfo_fetch_duration_seconds",
			Help:    "Time to fetch userinfo from the identity provider",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"outcome"},
	)

	ReconcileTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: Namespace + "_reconcile_total",
			Help: "Total number of reconcile calls by result",
		},
		[]string{"result"},
	)

	ReconcileErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: Namespace + "_reconcile_errors_total",
			Help: "Total number of failed reconcile calls",
		},
		[]string{"op"},
	)

	RefreshTasksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: Namespace + "_refresh_tasks_total",
			Help: "Total number of userinfo refreshes by trigger",
		},
		[]string{"trigger"},
	)

	RefreshQueueDepth = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: Namespace + "_refresh_queue_depth",
			Help: "Number of refresh tasks waiting in the background queue",
		},
	)
)
