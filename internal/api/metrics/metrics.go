// Package metrics defines and registers all custom Prometheus metrics for
// the RSVP backend. It is the single source of truth for metric names,
// labels, and help strings; metrics register with the default registry at
// import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "rsvp"

// ── Session metrics ───────────────────────────────────────────────────────────

// SessionsIssuedTotal counts fresh sessions minted for visitors that arrived
// without a verifiable token.
var SessionsIssuedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_issued_total",
		Help:      "Total number of fresh visitor sessions minted.",
	},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "mismatch", "validation_error", or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// ── Invite metrics ────────────────────────────────────────────────────────────

// InviteCodesAllocatedTotal counts successfully allocated invite codes.
var InviteCodesAllocatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "invite_codes_allocated_total",
		Help:      "Total number of invite codes allocated.",
	},
)

// InviteCodeCollisionsTotal counts allocation attempts that hit an existing
// code and retried.
var InviteCodeCollisionsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "invite_code_collisions_total",
		Help:      "Total number of invite code allocation collisions.",
	},
)

// RSVPsSubmittedTotal counts accepted guest RSVP submissions.
var RSVPsSubmittedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rsvps_submitted_total",
		Help:      "Total number of guest RSVP submissions applied.",
	},
)
