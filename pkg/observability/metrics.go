// Package observability exposes prometheus metrics, a health endpoint
// and optional OpenTelemetry tracing for the bot process.
package observability

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	messagesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kcalbot_messages_total",
			Help: "Total number of handled user messages",
		},
		[]string{"step"},
	)

	messageDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "kcalbot_message_duration_seconds",
			Help:    "Message handling duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"step"},
	)

	resolverMatchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kcalbot_resolver_matches_total",
			Help: "Total number of resolver lookups by winning strategy",
		},
		[]string{"method"},
	)

	estimatorCallsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kcalbot_estimator_calls_total",
			Help: "Total number of external estimator calls",
		},
		[]string{"provider", "status"},
	)

	ledgerItemsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kcalbot_ledger_items_total",
			Help: "Total number of committed ledger entries",
		},
		[]string{"source"},
	)

	activeSessions = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "kcalbot_active_sessions",
			Help: "Number of sessions known to the store",
		},
	)

	nutritionEntries = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "kcalbot_nutrition_entries",
			Help: "Number of entries in the nutrition table",
		},
	)

	initOnce sync.Once
)

// InitMetrics registers all metrics with the default registry.
func InitMetrics() {
	initOnce.Do(func() {
		prometheus.MustRegister(
			messagesTotal,
			messageDuration,
			resolverMatchesTotal,
			estimatorCallsTotal,
			ledgerItemsTotal,
			activeSessions,
			nutritionEntries,
		)
	})
}

// MetricsHandler returns the /metrics HTTP handler.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}

// RecordMessage records one handled message and its duration, labeled by
// the step the machine was in when the message arrived.
func RecordMessage(step string, duration time.Duration) {
	messagesTotal.WithLabelValues(step).Inc()
	messageDuration.WithLabelValues(step).Observe(duration.Seconds())
}

// RecordResolverMatch records the winning resolver strategy.
func RecordResolverMatch(method string) {
	resolverMatchesTotal.WithLabelValues(method).Inc()
}

// RecordEstimatorCall records an external estimator call outcome.
func RecordEstimatorCall(provider, status string) {
	estimatorCallsTotal.WithLabelValues(provider, status).Inc()
}

// RecordLedgerItem records a committed ledger entry by source.
func RecordLedgerItem(source string) {
	ledgerItemsTotal.WithLabelValues(source).Inc()
}

// SetActiveSessions sets the session count gauge.
func SetActiveSessions(count int) {
	activeSessions.Set(float64(count))
}

// SetNutritionEntries sets the nutrition table size gauge.
func SetNutritionEntries(count int) {
	nutritionEntries.Set(float64(count))
}
