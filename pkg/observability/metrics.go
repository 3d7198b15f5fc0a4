package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/latticekit/lattice/pkg/effect"
	"github.com/latticekit/lattice/pkg/store"
)

// Metrics bundles the runtime's Prometheus collectors.
type Metrics struct {
	dispatches       *prometheus.CounterVec
	dispatchDuration prometheus.Histogram
	effectFailures   *prometheus.CounterVec
	subscriberPanics prometheus.Counter
	events           *prometheus.CounterVec
	retriesScheduled prometheus.Counter
	giveUps          prometheus.Counter
}

// NewMetrics creates the collectors and registers them with reg.
// Pass prometheus.DefaultRegisterer for the process-wide registry, or a
// private registry in tests.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		dispatches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lattice_dispatches_total",
				Help: "Number of dispatched actions by action type.",
			},
			[]string{"action"},
		),
		dispatchDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "lattice_dispatch_duration_seconds",
				Help:    "Duration of full dispatch cycles (transition, effects, notification).",
				Buckets: prometheus.DefBuckets,
			},
		),
		effectFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lattice_effect_failures_total",
				Help: "Number of failed effect commands by command kind.",
			},
			[]string{"kind"},
		),
		subscriberPanics: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "lattice_subscriber_panics_total",
				Help: "Number of recovered subscriber panics.",
			},
		),
		events: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lattice_analytics_events_total",
				Help: "Number of analytics events by event name.",
			},
			[]string{"name"},
		),
		retriesScheduled: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "lattice_reconnect_retries_total",
				Help: "Number of scheduled reconnect retries.",
			},
		),
		giveUps: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "lattice_reconnect_give_ups_total",
				Help: "Number of times the reconnect policy exhausted its budget.",
			},
		),
	}

	collectors := []prometheus.Collector{
		m.dispatches,
		m.dispatchDuration,
		m.effectFailures,
		m.subscriberPanics,
		m.events,
		m.retriesScheduled,
		m.giveUps,
	}
	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// StoreHooks returns hooks that feed dispatch outcomes into the collectors.
func (m *Metrics) StoreHooks() store.Hooks {
	return store.Hooks{
		OnDispatch: func(action string, elapsed time.Duration) {
			m.dispatches.WithLabelValues(action).Inc()
			m.dispatchDuration.Observe(elapsed.Seconds())
		},
		OnEffectError: func(kind string, err error) {
			m.effectFailures.WithLabelValues(kind).Inc()
		},
		OnSubscriberPanic: func(token store.Token, recovered any) {
			m.subscriberPanics.Inc()
		},
	}
}

// Observe implements effect.EventSink, counting analytics events by name.
func (m *Metrics) Observe(e effect.Event) {
	m.events.WithLabelValues(e.Name).Inc()
}

// ReconnectScheduled is a reconnect.WithOnScheduled observer.
func (m *Metrics) ReconnectScheduled(attempt int, delay time.Duration) {
	m.retriesScheduled.Inc()
}

// ReconnectGaveUp is a reconnect.WithOnGiveUp observer.
func (m *Metrics) ReconnectGaveUp(err error) {
	m.giveUps.Inc()
}

// DispatchCounter exposes the dispatch counter, mainly for tests.
func (m *Metrics) DispatchCounter() *prometheus.CounterVec {
	return m.dispatches
}

// DurationHistogram exposes the dispatch duration histogram.
func (m *Metrics) DurationHistogram() prometheus.Histogram {
	return m.dispatchDuration
}

// EffectFailureCounter exposes the effect failure counter.
func (m *Metrics) EffectFailureCounter() *prometheus.CounterVec {
	return m.effectFailures
}

// SubscriberPanicCounter exposes the subscriber panic counter.
func (m *Metrics) SubscriberPanicCounter() prometheus.Counter {
	return m.subscriberPanics
}

// EventCounter exposes the analytics event counter.
func (m *Metrics) EventCounter() *prometheus.CounterVec {
	return m.events
}

// RetryCounter exposes the scheduled reconnect retry counter.
func (m *Metrics) RetryCounter() prometheus.Counter {
	return m.retriesScheduled
}

// GiveUpCounter exposes the reconnect give-up counter.
func (m *Metrics) GiveUpCounter() prometheus.Counter {
	return m.giveUps
}

var _ effect.EventSink = (*Metrics)(nil)
