// Package usage accumulates process-lifetime AI usage counters for cost
// estimation. The tracker is constructor-injected rather than module state so
// tests can reset it and concurrent runs share one instance safely.
package usage

import (
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
)

// costPerThousandTokensUSD is the provider's approximate per-1K-token price
// for gpt-3.5-turbo.
const costPerThousandTokensUSD = 0.001

var (
	tokensUsedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "journal_ai_tokens_used_total",
			Help: "Total number of AI tokens used across all analysis calls.",
		},
	)
	apiCallsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "journal_ai_api_calls_total",
			Help: "Total number of AI API calls made.",
		},
	)
)

// Stats is a point-in-time snapshot of the counters.
type Stats struct {
	TotalTokensUsed int64   `json:"totalTokensUsed"`
	TotalAPICalls   int64   `json:"totalApiCalls"`
	EstimatedCost   float64 `json:"estimatedCost"`
}

// Tracker counts tokens and calls. Increments are atomic because concurrent
// analysis runs share the same instance. Counters live for the process
// lifetime; there is no persistence.
type Tracker struct {
	totalTokens atomic.Int64
	totalCalls  atomic.Int64
	logger      *zap.Logger
}

// NewTracker creates a usage tracker.
func NewTracker(logger *zap.Logger) *Tracker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Tracker{logger: logger.Named("UsageTracker")}
}

// Track records one API call and the tokens it consumed. Negative token
// counts are treated as zero.
func (t *Tracker) Track(tokens int) {
	if tokens < 0 {
		tokens = 0
	}
	calls := t.totalCalls.Add(1)
	t.totalTokens.Add(int64(tokens))

	apiCallsTotal.Inc()
	tokensUsedTotal.Add(float64(tokens))

	t.logger.Debug("AI API call tracked",
		zap.Int64("callNumber", calls),
		zap.Int("tokens", tokens),
	)
}

// Stats returns the current totals and the estimated cost in USD.
func (t *Tracker) Stats() Stats {
	tokens := t.totalTokens.Load()
	return Stats{
		TotalTokensUsed: tokens,
		TotalAPICalls:   t.totalCalls.Load(),
		EstimatedCost:   float64(tokens) / 1000 * costPerThousandTokensUSD,
	}
}
