package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HabitsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "habitual_habits_created_total",
		Help: "Total number of habits created",
	})

	HabitsArchived = promauto.NewCounter(prometheus.CounterOpts{
		Name: "habitual_habits_archived_total",
		Help: "Total number of habits archived",
	})

	// CheckInsRecorded is labelled by check-in status.
	CheckInsRecorded = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "habitual_checkins_recorded_total",
		Help: "Total number of check-ins recorded by status",
	}, []string{"status"})

	DuplicateCheckIns = promauto.NewCounter(prometheus.CounterOpts{
		Name: "habitual_checkins_duplicate_total",
		Help: "Total number of check-ins rejected because one already exists for the date",
	})

	// InsightFailures is labelled by kind: "insight" or "quote".
	InsightFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "habitual_insight_failures_total",
		Help: "Total number of generator failures replaced by fallback text",
	}, []string{"kind"})

	InsightRequestDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "habitual_insight_request_duration_seconds",
		Help:    "Latency of generator requests in seconds",
		Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 30},
	})

	QuotesPruned = promauto.NewCounter(prometheus.CounterOpts{
		Name: "habitual_quotes_pruned_total",
		Help: "Total number of stored daily quotes removed by the retention job",
	})
)
