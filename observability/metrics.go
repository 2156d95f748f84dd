package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics is a prometheus instrumentation bundle shared by channels and
// pools. Every series is labeled by the component name set through
// WithName, so several pools can report into one registry.
//
// A nil *Metrics is valid and records nothing; the primitives default to
// nil so instrumentation stays opt-in.
type Metrics struct {
	tasksSubmitted *prometheus.CounterVec
	tasksCompleted *prometheus.CounterVec
	tasksFailed    *prometheus.CounterVec
	queueDepth     *prometheus.GaugeVec
	taskDuration   *prometheus.HistogramVec
}

// NewMetrics builds the bundle and registers every collector with reg.
// Registering the same bundle names twice on one registry panics, matching
// prometheus conventions.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		tasksSubmitted: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "goconc_tasks_submitted_total",
				Help: "Tasks accepted by Pool.Submit.",
			},
			[]string{"name"},
		),
		tasksCompleted: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "goconc_tasks_completed_total",
				Help: "Tasks that ran to completion without error.",
			},
			[]string{"name"},
		),
		tasksFailed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "goconc_tasks_failed_total",
				Help: "Tasks that returned an error or panicked.",
			},
			[]string{"name"},
		),
		queueDepth: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "goconc_queue_depth",
				Help: "Elements currently buffered in a channel.",
			},
			[]string{"name"},
		),
		taskDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "goconc_task_duration_seconds",
				Help:    "Wall time spent executing a task.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"name"},
		),
	}
	reg.MustRegister(m.tasksSubmitted, m.tasksCompleted, m.tasksFailed, m.queueDepth, m.taskDuration)
	return m
}

// TaskSubmitted records one accepted submission.
func (m *Metrics) TaskSubmitted(name string) {
	if m == nil {
		return
	}
	m.tasksSubmitted.WithLabelValues(name).Inc()
}

// TaskCompleted records one successful task and its duration.
func (m *Metrics) TaskCompleted(name string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.tasksCompleted.WithLabelValues(name).Inc()
	m.taskDuration.WithLabelValues(name).Observe(elapsed.Seconds())
}

// TaskFailed records one failed task and its duration.
func (m *Metrics) TaskFailed(name string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.tasksFailed.WithLabelValues(name).Inc()
	m.taskDuration.WithLabelValues(name).Observe(elapsed.Seconds())
}

// SetQueueDepth records the current buffered element count of a channel.
func (m *Metrics) SetQueueDepth(name string, depth int) {
	if m == nil {
		return
	}
	m.queueDepth.WithLabelValues(name).Set(float64(depth))
}
