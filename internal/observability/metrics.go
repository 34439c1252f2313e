package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Submission outcomes used as the label on SubmissionsTotal.
const (
	OutcomeAnswered   = "answered"
	OutcomeOffline    = "offline"
	OutcomeService    = "service_error"
	OutcomeRejected   = "rejected_busy"
	OutcomeRestricted = "restricted"
)

var (
	// SubmissionsTotal counts user submissions by final outcome.
	SubmissionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "assistant",
		Name:      "submissions_total",
		Help:      "User message submissions, labeled by outcome.",
	}, []string{"outcome"})

	// GateRestrictedTotal counts sessions opened from non-allow-listed origins.
	GateRestrictedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "assistant",
		Name:      "gate_restricted_sessions_total",
		Help:      "Sessions created with the environment gate closed.",
	})

	// CompletionDuration tracks the latency of completion calls.
	CompletionDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "assistant",
		Name:      "completion_duration_seconds",
		Help:      "Latency of remote completion calls.",
		Buckets:   prometheus.DefBuckets,
	})

	// EnrichmentFailuresTotal counts failed profile-enrichment prefetches.
	EnrichmentFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "assistant",
		Name:      "enrichment_failures_total",
		Help:      "Profile enrichment fetches that did not resolve.",
	})
)
