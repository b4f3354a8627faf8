package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	dto "github.com/prometheus/client_model/go"
)

var (
	// time to load a project and run every calculator
	ComputeDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pmcore_metrics_compute_duration_seconds",
			Help:    "Project metrics computation latency in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"operation"},
	)

	SnapshotsWritten = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pmcore_snapshots_written_total",
			Help: "Metrics snapshots written",
		},
		[]string{"trigger"}, // api, batch
	)

	TemplateInstantiations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pmcore_template_instantiations_total",
			Help: "Template instantiations by outcome",
		},
		[]string{"status"}, // success, failed
	)

	AlertsRaised = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pmcore_alerts_raised_total",
			Help: "Project alerts published",
		},
		[]string{"kind"},
	)

	// live evaluations only; backdated computations are not observed
	ProjectHealth = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "pmcore_project_health_score",
			Help:    "Health scores of live project evaluations",
			Buckets: prometheus.LinearBuckets(10, 10, 10), // 10 to 100
		},
	)
)

func ObserveCompute(operation string, d time.Duration) {
	ComputeDuration.WithLabelValues(operation).Observe(d.Seconds())
}

func RecordSnapshot(trigger string) {
	SnapshotsWritten.WithLabelValues(trigger).Inc()
}

func RecordInstantiation(err error) {
	status := "success"
	if err != nil {
		status = "failed"
	}
	TemplateInstantiations.WithLabelValues(status).Inc()
}

func RecordAlert(kind string) {
	AlertsRaised.WithLabelValues(kind).Inc()
}

func ObserveProjectHealth(score int) {
	ProjectHealth.Observe(float64(score))
}

// HealthSampleCount returns how many health scores have been observed.
func HealthSampleCount() uint64 {
	var m dto.Metric
	if err := ProjectHealth.Write(&m); err != nil {
		return 0
	}
	return m.GetHistogram().GetSampleCount()
}
