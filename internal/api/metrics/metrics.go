// Package metrics defines and registers all custom Prometheus metrics for
// the lubes storefront API. It is the single source of truth for metric
// names, labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "storefront"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// SignupsTotal counts completed signups.
// Label:
//   - role: the role chosen at account creation ("admin" or "customer")
var SignupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of completed signups, by role.",
	},
	[]string{"role"},
)

// GateDecisionsTotal counts access gate evaluations on protected routes.
// Label:
//   - decision: "allow", "redirect_login", or "redirect_dashboard"
var GateDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "gate_decisions_total",
		Help:      "Total number of access gate decisions, by outcome.",
	},
	[]string{"decision"},
)

// CartMutationsTotal counts cart aggregate mutations.
// Label:
//   - op: "add", "update", "remove", or "clear"
var CartMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cart_mutations_total",
		Help:      "Total number of cart mutations, by operation.",
	},
	[]string{"op"},
)

// CheckoutsTotal counts finished checkout flows.
// Label:
//   - result: "settled" or "cancelled"
var CheckoutsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "checkouts_total",
		Help:      "Total number of checkout flows that left the processing state, by result.",
	},
	[]string{"result"},
)

// CheckoutAmount observes the grand total of settled checkouts.
var CheckoutAmount = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "checkout_amount",
		Help:      "Grand total of settled checkouts, shipping and tax included.",
		Buckets:   []float64{25, 50, 100, 200, 400, 800, 1600},
	},
)
