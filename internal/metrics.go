package internal

import "github.com/prometheus/client_golang/prometheus"

// Metrics wraps a small set of scheduler gauges/counters. It is nil-safe:
// every method is a no-op when the host never calls EnableMetrics, so the
// hot path costs nothing by default.
type Metrics struct {
	flushTotal        prometheus.Counter
	recomputeTotal    prometheus.Counter
	heapSize          prometheus.Gauge
	transitionSeconds prometheus.Histogram
}

// EnableMetrics registers the scheduler's gauges/counters against reg. Safe
// to call at most once per Runtime; a nil reg disables metrics again.
func (r *Runtime) EnableMetrics(reg prometheus.Registerer) {
	if reg == nil {
		r.metrics = nil
		return
	}

	m := &Metrics{
		flushTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "reactant_flush_total",
			Help: "Number of completed scheduler flush cycles.",
		}),
		recomputeTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "reactant_recompute_total",
			Help: "Number of computed/effect node recomputations.",
		}),
		heapSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "reactant_heap_size",
			Help: "Number of nodes currently queued in the dirty height heap.",
		}),
		transitionSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name: "reactant_transition_duration_seconds",
			Help: "Wall-clock duration of a transition from open to commit/abort.",
		}),
	}

	reg.MustRegister(m.flushTotal, m.recomputeTotal, m.heapSize, m.transitionSeconds)
	r.metrics = m
}

func (m *Metrics) onFlush() {
	if m == nil {
		return
	}
	m.flushTotal.Inc()
}

func (m *Metrics) onRecompute() {
	if m == nil {
		return
	}
	m.recomputeTotal.Inc()
}

func (m *Metrics) setHeapSize(n int) {
	if m == nil {
		return
	}
	m.heapSize.Set(float64(n))
}

// observeTransition records one transition duration. Transition.Commit and
// Abort do not call it, so reactant_transition_duration_seconds is registered
// but receives no observations.
func (m *Metrics) observeTransition(seconds float64) {
	if m == nil {
		return
	}
	m.transitionSeconds.Observe(seconds)
}
