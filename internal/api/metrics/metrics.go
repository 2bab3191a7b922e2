// Package metrics defines the custom Prometheus metrics for the dashboard
// API. It is the single source of truth for metric names, labels, and help
// strings; metrics register themselves with the default registry via
// promauto at package load.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "dashboard"

// LoginsTotal counts login attempts by outcome.
// Label:
//   - outcome: "success", "invalid_credentials", or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by outcome.",
	},
	[]string{"outcome"},
)

// RateLimitDeniedTotal counts requests rejected by the rate limiter.
// Label:
//   - bucket: "general" or "auth"
var RateLimitDeniedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rate_limit_denied_total",
		Help:      "Total number of requests denied by the rate limiter, by bucket.",
	},
	[]string{"bucket"},
)

// TransactionQueriesTotal counts transaction list queries.
// Label:
//   - filtered: "yes" when a status or search filter was applied, else "no"
var TransactionQueriesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "transaction_queries_total",
		Help:      "Total number of transaction list queries, by filter usage.",
	},
	[]string{"filtered"},
)
