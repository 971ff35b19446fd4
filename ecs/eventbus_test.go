package ecs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/paddleball/ecs"
)

type hit struct{ Id ecs.EntityId }
type miss struct{ Id ecs.EntityId }

func TestEventBus(t *testing.T) {
	t.Run("publish without subscribers", func(t *testing.T) {
		bus := ecs.NewEventBus()
		assert.NoError(t, ecs.Publish(bus, hit{Id: 1}))
		assert.Equal(t, 0, ecs.HandlerCount[hit](bus))
	})

	t.Run("handlers run synchronously in subscription order", func(t *testing.T) {
		bus := ecs.NewEventBus()
		var calls []string
		ecs.Subscribe(bus, func(ev hit) { calls = append(calls, "first") })
		ecs.Subscribe(bus, func(ev hit) { calls = append(calls, "second") })

		require.NoError(t, ecs.Publish(bus, hit{Id: 1}))
		assert.Equal(t, []string{"first", "second"}, calls)
		assert.Equal(t, 2, ecs.HandlerCount[hit](bus))
	})

	t.Run("events are routed by type", func(t *testing.T) {
		bus := ecs.NewEventBus()
		var hits, misses []ecs.EntityId
		ecs.Subscribe(bus, func(ev hit) { hits = append(hits, ev.Id) })
		ecs.Subscribe(bus, func(ev miss) { misses = append(misses, ev.Id) })

		require.NoError(t, ecs.Publish(bus, hit{Id: 1}))
		require.NoError(t, ecs.Publish(bus, miss{Id: 2}))
		require.NoError(t, ecs.Publish(bus, hit{Id: 3}))

		assert.Equal(t, []ecs.EntityId{1, 3}, hits)
		assert.Equal(t, []ecs.EntityId{2}, misses)
	})

	t.Run("handlers may publish other types", func(t *testing.T) {
		bus := ecs.NewEventBus()
		var order []string
		ecs.Subscribe(bus, func(ev hit) {
			order = append(order, "hit")
			assert.NoError(t, ecs.Publish(bus, miss(ev)))
			order = append(order, "hit done")
		})
		ecs.Subscribe(bus, func(ev miss) { order = append(order, "miss") })

		require.NoError(t, ecs.Publish(bus, hit{Id: 1}))
		assert.Equal(t, []string{"hit", "miss", "hit done"}, order)
	})

	t.Run("recursive publish of the same type is refused", func(t *testing.T) {
		bus := ecs.NewEventBus()
		var inner error
		calls := 0
		ecs.Subscribe(bus, func(ev hit) {
			calls++
			inner = ecs.Publish(bus, hit{Id: ev.Id + 1})
		})

		require.NoError(t, ecs.Publish(bus, hit{Id: 1}))
		assert.ErrorIs(t, inner, ecs.ErrRecursivePublish)
		assert.Equal(t, 1, calls)

		require.NoError(t, ecs.Publish(bus, hit{Id: 1}), "dispatch state is cleared afterwards")
		assert.Equal(t, 2, calls)
	})
}
