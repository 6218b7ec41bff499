// Package metrics defines and registers the custom Prometheus metrics of the
// Empuls HR API. All metrics are registered with the default registry at
// package initialisation and exposed on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "empuls"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// TokensIssuedTotal counts bearer tokens handed out by POST /jwt.
var TokensIssuedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_issued_total",
		Help:      "Total number of bearer tokens issued.",
	},
)

// AuthRejectionsTotal counts requests rejected by the token verifier.
// Label:
//   - reason: "missing_header" or "invalid_token"
var AuthRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_rejections_total",
		Help:      "Total number of requests rejected for missing or invalid tokens.",
	},
	[]string{"reason"},
)

// GuardDenialsTotal counts requests rejected by a role guard.
// Label:
//   - required: the allowed roles joined with "|" (e.g. "HR|admin")
var GuardDenialsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "guard_denials_total",
		Help:      "Total number of requests rejected by a role guard.",
	},
	[]string{"required"},
)

// ── User and payroll metrics ──────────────────────────────────────────────────

// UsersRegisteredTotal counts signup calls.
// Label:
//   - result: "created" or "existing"
var UsersRegisteredTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Total number of signup calls, by result.",
	},
	[]string{"result"},
)

// SalaryUpdatesTotal counts salary update attempts.
// Label:
//   - result: "applied" or "rejected" (attempted decrease)
var SalaryUpdatesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "salary_updates_total",
		Help:      "Total number of salary update attempts, by result.",
	},
	[]string{"result"},
)

// PaymentsRecordedTotal counts salary disbursements stored.
var PaymentsRecordedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payments_recorded_total",
		Help:      "Total number of salary payments recorded.",
	},
)
