package metrics

import (
	"log"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Standard Prometheus collectors for the sentinel service. Label values are
// category/family/level names only, never message content.
var (
	// sentinel_assessments_total (counter): total messages assessed
	AssessmentsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sentinel_assessments_total",
		Help: "Total number of messages assessed",
	})

	// sentinel_risk_level_count{level=none|low|medium|high|critical}
	RiskLevelCount = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sentinel_risk_level_count",
		Help: "Number of assessments by resulting risk level",
	}, []string{"level"})

	// sentinel_category_detected{category=immediate_risk|...}
	CategoryDetected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sentinel_category_detected",
		Help: "Number of times a keyword category contributed to an assessment",
	}, []string{"category"})

	// sentinel_modifier_applied{family=substance|isolation|means|finality}
	ModifierApplied = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sentinel_modifier_applied",
		Help: "Number of times a contextual modifier family escalated severity",
	}, []string{"family"})

	// sentinel_trend_escalations_total (counter)
	TrendEscalations = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sentinel_trend_escalations_total",
		Help: "Number of assessments escalated by the session emotional trend",
	})

	// sentinel_failsafe_total (counter): assessments that hit the fail-safe
	FailSafeTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sentinel_failsafe_total",
		Help: "Number of assessments forced to HIGH by an internal fault",
	})

	// sentinel_latency_seconds (histogram): assessment duration
	LatencyHistogram = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "sentinel_latency_seconds",
		Help:    "Assessment processing latency in seconds",
		Buckets: prometheus.DefBuckets,
	})
)

// RecordLevel increments the level counter.
func RecordLevel(level string) {
	RiskLevelCount.WithLabelValues(level).Inc()
}

// RecordCategory increments the category counter.
func RecordCategory(category string) {
	CategoryDetected.WithLabelValues(category).Inc()
}

// RecordModifier increments the modifier counter.
func RecordModifier(family string) {
	ModifierApplied.WithLabelValues(family).Inc()
}

// Init exists so mains can force collector registration explicitly.
func Init() {
	log.Println("[metrics] Prometheus collectors initialized")
}
