package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "scheduler"

// Metrics groups the scheduling counters. A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	tasksScheduled   *prometheus.CounterVec
	slotFallbacks    prometheus.Counter
	timeAdjustments  prometheus.Counter
	statesClassified *prometheus.CounterVec
	adjustments      *prometheus.CounterVec
	operationLatency *prometheus.HistogramVec
}

// New registers all collectors on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		tasksScheduled: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tasks_scheduled_total",
			Help:      "Tasks that received a date and start time, by operation and slot source.",
		}, []string{"operation", "source"}),
		slotFallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "slot_fallbacks_total",
			Help:      "Slot searches that found a saturated day and returned the fallback time.",
		}),
		timeAdjustments: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "time_adjustments_total",
			Help:      "Explicitly requested start times that had to move.",
		}),
		statesClassified: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "user_states_total",
			Help:      "Classified user states.",
		}, []string{"state"}),
		adjustments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "adjusted_tasks_total",
			Help:      "Tasks touched by state adjustments, by state and kind of change.",
		}, []string{"state", "kind"}),
		operationLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "operation_duration_seconds",
			Help:      "Duration of plan, sweep and adjust operations.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
	}

	m.registry.MustRegister(
		m.tasksScheduled,
		m.slotFallbacks,
		m.timeAdjustments,
		m.statesClassified,
		m.adjustments,
		m.operationLatency,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry for tests.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

func (m *Metrics) TaskScheduled(operation, source string) {
	if m == nil {
		return
	}
	m.tasksScheduled.WithLabelValues(operation, source).Inc()
}

func (m *Metrics) SlotFallback() {
	if m == nil {
		return
	}
	m.slotFallbacks.Inc()
}

func (m *Metrics) TimeAdjusted() {
	if m == nil {
		return
	}
	m.timeAdjustments.Inc()
}

func (m *Metrics) StateClassified(state string) {
	if m == nil {
		return
	}
	m.statesClassified.WithLabelValues(state).Inc()
}

func (m *Metrics) TasksAdjusted(state, kind string, n int) {
	if m == nil || n == 0 {
		return
	}
	m.adjustments.WithLabelValues(state, kind).Add(float64(n))
}

func (m *Metrics) ObserveOperation(operation string, seconds float64) {
	if m == nil {
		return
	}
	m.operationLatency.WithLabelValues(operation).Observe(seconds)
}
