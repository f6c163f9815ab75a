// Package observability provides Prometheus metrics and HTTP middleware for
// monitoring the Forkpath server.
package observability

import "github.com/prometheus/client_golang/prometheus"

// APIBuckets covers the expected latency range of a branch lookup plus
// summary rendering: sub-millisecond to a few seconds under load.
var APIBuckets = []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5}

var (
	// RequestsTotal counts all HTTP requests by method, route, and status class.
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "forkpath_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	// RequestDuration records HTTP request duration in seconds by route.
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "forkpath_request_duration_seconds",
			Help:    "Request duration",
			Buckets: APIBuckets,
		},
		[]string{"method", "route"},
	)

	// TurnsTotal counts successfully advanced conversation turns.
	TurnsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "forkpath_turns_total",
			Help: "Conversation turns advanced",
		},
	)

	// ConversationsCompletedTotal counts conversations that reached the
	// terminal marker.
	ConversationsCompletedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "forkpath_conversations_completed_total",
			Help: "Conversations completed",
		},
	)

	// InvalidAnswersTotal counts rejected answers by question ID.
	InvalidAnswersTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "forkpath_invalid_answers_total",
			Help: "Answers rejected by validation",
		},
		[]string{"question"},
	)
)

func init() {
	prometheus.MustRegister(
		RequestsTotal,
		RequestDuration,
		TurnsTotal,
		ConversationsCompletedTotal,
		InvalidAnswersTotal,
	)
}
