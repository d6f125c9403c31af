// Package metrics defines the custom Prometheus metrics of the salon API. It is
// the single source of truth for metric names, labels and help strings.
//
// Metrics are registered with the default registry through promauto, so
// importing the package is enough; /metrics is served by echoprometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "salon"

// ── Appointment metrics ───────────────────────────────────────────────────────

// AppointmentMutationsTotal counts successful appointment mutations.
// Labels:
//   - op: "create", "update" or "delete"
var AppointmentMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "appointment_mutations_total",
		Help:      "Total number of appointment mutations applied, by operation.",
	},
	[]string{"op"},
)

// ImportRowsTotal counts imported rows by outcome.
// Labels:
//   - outcome: "accepted", "dropped" or "rejected"
var ImportRowsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "import_rows_total",
		Help:      "Total number of rows received by bulk imports, by outcome.",
	},
	[]string{"outcome"},
)

// ImportsFailedTotal counts bulk imports that stored nothing.
var ImportsFailedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "imports_failed_total",
		Help:      "Total number of bulk imports rejected as a whole.",
	},
)

// ── Text generation metrics ──────────────────────────────────────────────────

// TextGenerationTotal counts calls to the text-generation collaborator.
// Labels:
//   - call: "generate" or "chat"
//   - result: "ok" or "error"
var TextGenerationTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "text_generation_total",
		Help:      "Total number of text-generation calls, by call type and result.",
	},
	[]string{"call", "result"},
)

// TextGenerationDuration measures the latency of text-generation calls.
var TextGenerationDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "text_generation_duration_seconds",
		Help:      "Latency of text-generation calls.",
		Buckets:   []float64{.25, .5, 1, 2, 4, 8, 16, 32},
	},
	[]string{"call"},
)

// MarketingMessagesTotal counts marketing messages requested, by kind and
// whether the fallback text was returned.
var MarketingMessagesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "marketing_messages_total",
		Help:      "Total number of marketing messages produced, by kind and fallback flag.",
	},
	[]string{"kind", "fallback"},
)

// BirthdayDigestRunsTotal counts birthday digest runs by result.
var BirthdayDigestRunsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "birthday_digest_runs_total",
		Help:      "Total number of birthday digest runs, by result.",
	},
	[]string{"result"},
)
