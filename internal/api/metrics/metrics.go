// Package metrics defines and registers all custom Prometheus metrics for the
// nutrition API. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics are registered with the default registry at package init via
// promauto; the /metrics endpoint is exposed by the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "nutrition"

// ── Link metrics ──────────────────────────────────────────────────────────────

// LinksRequestedTotal counts link requests that were successfully created.
var LinksRequestedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "links_requested_total",
		Help:      "Total number of client-nutritionist link requests created.",
	},
)

// LinkDecisionsTotal counts lifecycle decisions applied to links.
// Label:
//   - decision: "accepted", "rejected", or "ended"
var LinkDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "link_decisions_total",
		Help:      "Total number of link transitions applied, by decision.",
	},
	[]string{"decision"},
)

// ── Hydration sync metrics ────────────────────────────────────────────────────

// IntakeEventsProcessedTotal counts synced hydration events persisted successfully.
// Label:
//   - source: the client source reported by the sender (e.g. "wearable")
var IntakeEventsProcessedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "intake_events_processed_total",
		Help:      "Total number of hydration sync events successfully processed.",
	},
	[]string{"source"},
)

// IntakeEventsErrorsTotal counts synced hydration events that failed processing.
// Label:
//   - reason: short description of the failure (e.g. "invalid_amount", "insert_failed")
var IntakeEventsErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "intake_events_errors_total",
		Help:      "Total number of hydration sync events that failed processing.",
	},
	[]string{"reason"},
)

// IntakeDedupTotal counts deduplication decisions on the sync pipeline.
// Label:
//   - result: "hit" (duplicate, skipped) or "miss" (new event, processed)
var IntakeDedupTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "intake_dedup_total",
		Help:      "Total number of deduplication checks, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// IntakeQueueDepth tracks the number of events waiting in each worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var IntakeQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "intake_queue_depth",
		Help:      "Current number of events pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// ── Meal metrics ──────────────────────────────────────────────────────────────

// MealsCapturedTotal counts newly captured meals (idempotent replays excluded).
var MealsCapturedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "meals_captured_total",
		Help:      "Total number of meals captured.",
	},
)
