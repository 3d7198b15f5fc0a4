package store_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/latticekit/lattice/pkg/domain"
	"github.com/latticekit/lattice/pkg/effect"
	"github.com/latticekit/lattice/pkg/store"
	"github.com/latticekit/lattice/pkg/translate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTodoStore(opts ...store.Option[domain.List, domain.Action]) *store.Store[domain.List, domain.Action] {
	return store.New(domain.NewList(), domain.Transition, opts...)
}

func TestStore_Dispatch(t *testing.T) {
	ctx := context.Background()

	t.Run("Applies Transition", func(t *testing.T) {
		s := newTodoStore()
		require.NoError(t, s.Dispatch(ctx, domain.Add("first")))

		state := s.State()
		require.Len(t, state.Items, 1)
		assert.Equal(t, "first", state.Items[0].Title)
		assert.Equal(t, 1, state.NextID)
	})

	t.Run("State Swap Is Wholesale", func(t *testing.T) {
		s := newTodoStore()
		require.NoError(t, s.Dispatch(ctx, domain.Add("a")))
		before := s.State()

		require.NoError(t, s.Dispatch(ctx, domain.Toggle(0)))

		// The previously observed value is untouched by later dispatches.
		assert.False(t, before.Items[0].Completed)
		assert.True(t, s.State().Items[0].Completed)
	})
}

func TestStore_SubscriberOrdering(t *testing.T) {
	ctx := context.Background()
	s := newTodoStore()

	var order []string
	for _, name := range []string{"s1", "s2", "s3"} {
		name := name
		s.SubscribeFunc(func(domain.List) {
			order = append(order, name)
		})
	}

	require.NoError(t, s.Dispatch(ctx, domain.Add("x")))
	assert.Equal(t, []string{"s1", "s2", "s3"}, order, "registration order, exactly once each")
}

func TestStore_Unsubscribe(t *testing.T) {
	ctx := context.Background()
	s := newTodoStore()

	var order []string
	t1 := s.SubscribeFunc(func(domain.List) { order = append(order, "s1") })
	s.SubscribeFunc(func(domain.List) { order = append(order, "s2") })

	assert.True(t, s.Unsubscribe(t1))
	assert.False(t, s.Unsubscribe(t1), "double unsubscribe reports not found")
	assert.Equal(t, 1, s.SubscriberCount())

	require.NoError(t, s.Dispatch(ctx, domain.Add("x")))
	assert.Equal(t, []string{"s2"}, order)
}

func TestStore_ReentrantDispatchRejected(t *testing.T) {
	ctx := context.Background()
	s := newTodoStore()

	var nested error
	s.SubscribeFunc(func(domain.List) {
		nested = s.Dispatch(ctx, domain.Add("nested"))
	})

	err := s.Dispatch(ctx, domain.Add("outer"))
	require.NoError(t, err, "outer dispatch completes normally")
	assert.ErrorIs(t, nested, store.ErrReentrantDispatch)

	state := s.State()
	require.Len(t, state.Items, 1, "the nested dispatch must not have applied")
	assert.Equal(t, "outer", state.Items[0].Title)
}

func TestStore_SubscriberPanicIsolated(t *testing.T) {
	ctx := context.Background()

	var panicked []store.Token
	s := newTodoStore(store.WithHooks[domain.List, domain.Action](store.Hooks{
		OnSubscriberPanic: func(token store.Token, _ any) {
			panicked = append(panicked, token)
		},
	}))

	var reached []string
	s.SubscribeFunc(func(domain.List) { reached = append(reached, "first") })
	bad := s.SubscribeFunc(func(domain.List) { panic("subscriber exploded") })
	s.SubscribeFunc(func(domain.List) { reached = append(reached, "last") })

	err := s.Dispatch(ctx, domain.Add("x"))
	require.NoError(t, err, "a panicking subscriber does not fail the dispatch")
	assert.Equal(t, []string{"first", "last"}, reached, "remaining subscribers still run")
	assert.Equal(t, []store.Token{bad}, panicked)
}

func TestStore_EffectFailureDoesNotRollBack(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("storage offline")

	exec := effect.NewExecutor()
	exec.Register(effect.KindPersist, effect.HandlerFunc(func(ctx context.Context, cmd effect.Command) error {
		return boom
	}))
	exec.Register(effect.KindLog, effect.HandlerFunc(func(ctx context.Context, cmd effect.Command) error {
		return nil
	}))
	exec.Register(effect.KindAnalytics, effect.HandlerFunc(func(ctx context.Context, cmd effect.Command) error {
		return nil
	}))

	var effectErrs []string
	s := store.New(domain.NewList(), domain.Transition,
		store.WithTranslator(translate.Todos),
		store.WithExecutor[domain.List, domain.Action](exec),
		store.WithHooks[domain.List, domain.Action](store.Hooks{
			OnEffectError: func(kind string, err error) {
				effectErrs = append(effectErrs, kind)
			},
		}),
	)

	var notified bool
	s.SubscribeFunc(func(domain.List) { notified = true })

	err := s.Dispatch(ctx, domain.Add("kept"))
	require.NoError(t, err, "effect failure is advisory")

	assert.Equal(t, []string{"persist"}, effectErrs)
	assert.True(t, notified, "subscribers still notified after effect failure")
	require.Len(t, s.State().Items, 1, "state swap committed despite persist failure")
}

func TestStore_CommandsExecuteInOrder(t *testing.T) {
	ctx := context.Background()

	var order []effect.Kind
	exec := effect.NewExecutor()
	record := effect.HandlerFunc(func(ctx context.Context, cmd effect.Command) error {
		order = append(order, cmd.Kind)
		return nil
	})
	exec.Register(effect.KindPersist, record)
	exec.Register(effect.KindLog, record)
	exec.Register(effect.KindAnalytics, record)

	s := store.New(domain.NewList(), domain.Transition,
		store.WithTranslator(translate.Todos),
		store.WithExecutor[domain.List, domain.Action](exec),
	)

	require.NoError(t, s.Dispatch(ctx, domain.Add("ordered")))
	assert.Equal(t, []effect.Kind{effect.KindPersist, effect.KindLog, effect.KindAnalytics}, order)
}

func TestStore_NoOpActionProducesNoCommands(t *testing.T) {
	ctx := context.Background()

	calls := 0
	exec := effect.NewExecutor()
	count := effect.HandlerFunc(func(ctx context.Context, cmd effect.Command) error {
		calls++
		return nil
	})
	exec.Register(effect.KindPersist, count)
	exec.Register(effect.KindLog, count)
	exec.Register(effect.KindAnalytics, count)

	s := store.New(domain.NewList(), domain.Transition,
		store.WithTranslator(translate.Todos),
		store.WithExecutor[domain.List, domain.Action](exec),
	)

	require.NoError(t, s.Dispatch(ctx, domain.Toggle(99)))
	assert.Zero(t, calls, "no-op transition should not reach the executor")
}

func TestStore_DispatchHook(t *testing.T) {
	ctx := context.Background()

	var labels []string
	s := store.New(domain.NewList(), domain.Transition,
		store.WithActionLabeler[domain.List](func(a domain.Action) string { return string(a.Type) }),
		store.WithHooks[domain.List, domain.Action](store.Hooks{
			OnDispatch: func(action string, _ time.Duration) {
				labels = append(labels, action)
			},
		}),
	)

	require.NoError(t, s.Dispatch(ctx, domain.Add("a")))
	require.NoError(t, s.Dispatch(ctx, domain.Toggle(0)))
	assert.Equal(t, []string{"add", "toggle"}, labels)
}
