package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	EvaluationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storecrew_evaluations_total",
			Help: "Total number of schedule evaluations run",
		},
		[]string{"verdict"},
	)

	ViolationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storecrew_violations_total",
			Help: "Total number of rule violations found across evaluations",
		},
		[]string{"rule"},
	)

	// A gauge rather than a counter: ROLE_CONTINUITY contributions are
	// penalties (<= 0) and counters reject negative deltas
	PreferenceScoreTotal = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "storecrew_preference_score_total",
			Help: "Running sum of preference score contributions across evaluations",
		},
		[]string{"category"},
	)

	EvaluationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "storecrew_evaluation_duration_seconds",
			Help: "Duration of a full schedule evaluation in seconds",
		},
	)
)

// Handler serves the default registry in Prometheus exposition format.
func Handler() http.Handler {
	return promhttp.Handler()
}
