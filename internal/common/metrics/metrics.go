package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	WorkerJobsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_completed_total",
			Help: "Total number of jobs completed by worker",
		},
		[]string{"task_type"},
	)

	WorkerJobsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_failed_total",
			Help: "Total number of jobs failed by worker",
		},
		[]string{"task_type", "error_code"},
	)

	WorkerJobDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "worker_job_duration_seconds",
			Help: "Duration of job processing in seconds",
		},
		[]string{"task_type"},
	)

	WorkerJobsActive = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "worker_jobs_active",
			Help: "Number of active jobs per worker",
		},
		[]string{"task_type"},
	)
)

// GenerationMetrics records tracked generation runs.
type GenerationMetrics struct {
	RunsTotal     *prometheus.CounterVec
	RunDuration   *prometheus.HistogramVec
	PhaseFailures *prometheus.CounterVec
	CostTotal     prometheus.Counter
	RunsInFlight  prometheus.Gauge
}

// NewGenerationMetrics registers the generation collectors on reg.
func NewGenerationMetrics(reg prometheus.Registerer) *GenerationMetrics {
	factory := promauto.With(reg)
	return &GenerationMetrics{
		RunsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "generation_runs_total",
				Help: "Total number of generation runs by mode, path and outcome",
			},
			[]string{"mode", "path", "outcome"},
		),
		RunDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "generation_run_duration_seconds",
				Help:    "Duration of the generate phase in seconds",
				Buckets: []float64{0.5, 1, 5, 15, 30, 60, 120, 300},
			},
			[]string{"mode", "path"},
		),
		PhaseFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "generation_phase_failures_total",
				Help: "Failures per run phase (generate, deploy, cleanup)",
			},
			[]string{"phase"},
		),
		CostTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "generation_cost_usd_total",
				Help: "Accumulated backend cost of successful runs in USD",
			},
		),
		RunsInFlight: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "generation_runs_in_flight",
				Help: "Number of runs currently executing",
			},
		),
	}
}

// Generation is registered on the default registry and served on /metrics.
var Generation = NewGenerationMetrics(prometheus.DefaultRegisterer)

func (m *GenerationMetrics) RunStarted() {
	m.RunsInFlight.Inc()
}

// RunFinished observes one completed generate phase.
func (m *GenerationMetrics) RunFinished(mode, path string, success bool, duration time.Duration, cost float64) {
	m.RunsInFlight.Dec()
	outcome := "success"
	if !success {
		outcome = "failed"
		m.PhaseFailures.WithLabelValues("generate").Inc()
	}
	m.RunsTotal.WithLabelValues(mode, path, outcome).Inc()
	m.RunDuration.WithLabelValues(mode, path).Observe(duration.Seconds())
	if success && cost > 0 {
		m.CostTotal.Add(cost)
	}
}

func (m *GenerationMetrics) PhaseFailed(phase string) {
	m.PhaseFailures.WithLabelValues(phase).Inc()
}
