package observability_test

import (
	"context"
	"testing"
	"time"

	"github.com/latticekit/lattice/pkg/domain"
	"github.com/latticekit/lattice/pkg/effect"
	"github.com/latticekit/lattice/pkg/observability"
	"github.com/latticekit/lattice/pkg/reconnect"
	"github.com/latticekit/lattice/pkg/store"
	"github.com/latticekit/lattice/pkg/translate"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMetrics(t *testing.T) *observability.Metrics {
	t.Helper()
	m, err := observability.NewMetrics(prometheus.NewRegistry())
	require.NoError(t, err)
	return m
}

func TestMetrics_RegistrationConflict(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := observability.NewMetrics(reg)
	require.NoError(t, err)

	_, err = observability.NewMetrics(reg)
	assert.Error(t, err, "double registration on one registry must fail")
}

func TestMetrics_StoreHooks(t *testing.T) {
	m := newMetrics(t)

	exec := effect.NewExecutor()
	exec.Register(effect.KindAnalytics, effect.NewAnalyticsHandler(m))
	exec.Register(effect.KindLog, effect.HandlerFunc(func(ctx context.Context, cmd effect.Command) error {
		return nil
	}))
	// KindPersist left unregistered on purpose: it must surface as a failure.

	s := store.New(domain.NewList(), domain.Transition,
		store.WithTranslator(translate.Todos),
		store.WithExecutor[domain.List, domain.Action](exec),
		store.WithActionLabeler[domain.List](func(a domain.Action) string { return string(a.Type) }),
		store.WithHooks[domain.List, domain.Action](m.StoreHooks()),
	)
	s.SubscribeFunc(func(domain.List) { panic("bad subscriber") })

	require.NoError(t, s.Dispatch(context.Background(), domain.Add("counted")))

	assert.Equal(t, float64(1), testutil.ToFloat64(m.DispatchCounter().WithLabelValues("add")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.EffectFailureCounter().WithLabelValues("persist")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.SubscriberPanicCounter()))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.EventCounter().WithLabelValues("action_dispatched")))
}

func TestMetrics_ReconnectObservers(t *testing.T) {
	m := newMetrics(t)

	p, err := reconnect.New(reconnect.Config{MaxAttempts: 2, BaseIntervalMS: 60000},
		reconnect.WithOnScheduled(m.ReconnectScheduled),
		reconnect.WithOnGiveUp(m.ReconnectGaveUp),
	)
	require.NoError(t, err)
	defer p.ForceClose()

	p.OnClose(1006, "drop")
	p.OnClose(1006, "drop")
	p.OnClose(1006, "drop")

	assert.Equal(t, float64(2), testutil.ToFloat64(m.RetryCounter()))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.GiveUpCounter()))
	assert.Equal(t, reconnect.StateGaveUp, p.State())
}

func TestMetrics_DispatchDuration(t *testing.T) {
	m := newMetrics(t)
	hooks := m.StoreHooks()
	hooks.OnDispatch("add", 5*time.Millisecond)

	count := testutil.CollectAndCount(m.DurationHistogram())
	assert.Equal(t, 1, count)
}
