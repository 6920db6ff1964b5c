// Package metrics provides Prometheus metrics instrumentation.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestDuration tracks HTTP request duration on the support API.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path", "status"},
	)

	// RequestsTotal tracks total HTTP requests on the support API.
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// TurnsTotal tracks chat turns by outcome.
	TurnsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chat_turns_total",
			Help: "Total chat turns by outcome",
		},
		[]string{"status"},
	)

	// TurnDuration tracks the round-trip time of one chat turn.
	TurnDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "chat_turn_duration_seconds",
			Help:    "Chat turn round-trip duration",
			Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		},
		[]string{"status"},
	)

	// MessagesTotal tracks transcript messages by sender.
	MessagesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chat_messages_total",
			Help: "Total transcript messages appended",
		},
		[]string{"sender"},
	)

	// ConversationsTotal tracks conversations created by the support API.
	ConversationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "conversations_total",
			Help: "Total conversations created",
		},
	)

	// SignInsTotal tracks sign-in actions.
	SignInsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "chat_sign_ins_total",
			Help: "Total sign-in actions",
		},
	)

	// SignOutsTotal tracks sign-out actions.
	SignOutsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "chat_sign_outs_total",
			Help: "Total sign-out actions",
		},
	)
)

// RecordRequest records metrics for an HTTP request.
func RecordRequest(method, path, status string, duration float64) {
	RequestDuration.WithLabelValues(method, path, status).Observe(duration)
	RequestsTotal.WithLabelValues(method, path, status).Inc()
}

// RecordTurn records metrics for one chat turn.
func RecordTurn(status string, duration float64) {
	TurnsTotal.WithLabelValues(status).Inc()
	TurnDuration.WithLabelValues(status).Observe(duration)
}
