// Package metrics declares the Prometheus collectors exported on /metrics.
//
// Collectors register with the default registry on package init via promauto.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for PostingsTotal.
const (
	OutcomeOK                = "ok"
	OutcomeInvalid           = "invalid"
	OutcomeNotFound          = "not_found"
	OutcomeForbidden         = "forbidden"
	OutcomeInsufficientFunds = "insufficient_funds"
	OutcomeError             = "error"
)

// ─── Ledger ─────────────────────────────────────────────────────────────────

// PostingsTotal counts posting attempts by transaction type and outcome.
var PostingsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "fintrack",
	Subsystem: "ledger",
	Name:      "postings_total",
	Help:      "Total transaction posting attempts by type and outcome.",
}, []string{"type", "outcome"})

// PostingDuration tracks how long a posting unit of work takes, commit included.
var PostingDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "fintrack",
	Subsystem: "ledger",
	Name:      "posting_duration_seconds",
	Help:      "Duration of transaction postings in seconds.",
	Buckets:   prometheus.DefBuckets,
}, []string{"type"})

// DebtRecordsCreated counts debt records written by equal splits.
var DebtRecordsCreated = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "fintrack",
	Subsystem: "ledger",
	Name:      "debt_records_created_total",
	Help:      "Total debt records created by group splits.",
})

// ─── Events ─────────────────────────────────────────────────────────────────

// EventPublishFailures counts post-commit events that could not be published.
var EventPublishFailures = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "fintrack",
	Subsystem: "events",
	Name:      "publish_failures_total",
	Help:      "Total events that failed to publish, by subject.",
}, []string{"subject"})

// ObservePosting records one posting attempt.
func ObservePosting(txType, outcome string, elapsed time.Duration) {
	if txType == "" {
		txType = "unknown"
	}
	PostingsTotal.WithLabelValues(txType, outcome).Inc()
	PostingDuration.WithLabelValues(txType).Observe(elapsed.Seconds())
}
