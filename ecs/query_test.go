package ecs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/paddleball/ecs"
)

func moving(x, y, dx, dy float64) ecs.Components {
	return ecs.Components{
		"position": &Position{X: x, Y: y},
		"velocity": &Velocity{DX: dx, DY: dy},
	}
}

func TestQuery(t *testing.T) {
	t.Run("zero value is usable", func(t *testing.T) {
		var q ecs.Query[movingBundle]
		assert.Equal(t, 0, q.Len())
		assert.False(t, q.Has(1))
		assert.Nil(t, q.Get(1))
		for range q.Iter() {
			t.Fatal("empty query yielded a member")
		}
	})

	t.Run("admission", func(t *testing.T) {
		var q ecs.Query[movingBundle]

		assert.True(t, q.Accepts(moving(0, 0, 1, 1)))
		assert.True(t, q.AddEntity(1, moving(0, 0, 1, 1)))
		assert.False(t, q.AddEntity(1, moving(5, 5, 1, 1)), "already a member")
		assert.False(t, q.AddEntity(2, ecs.Components{"position": &Position{}}), "missing velocity")

		assert.Equal(t, 1, q.Len())
		assert.True(t, q.Has(1))
		assert.False(t, q.Has(2))
		assert.Equal(t, 0.0, q.Get(1).Position.X, "first admission is kept")
	})

	t.Run("iterates in ascending handle order", func(t *testing.T) {
		var q ecs.Query[movingBundle]
		for _, id := range []ecs.EntityId{30, 2, 11, 100, 1} {
			require.True(t, q.AddEntity(id, moving(float64(id), 0, 0, 0)))
		}

		var ids []ecs.EntityId
		for id, item := range q.Iter() {
			ids = append(ids, id)
			assert.Equal(t, float64(id), item.Position.X)
		}
		assert.Equal(t, []ecs.EntityId{1, 2, 11, 30, 100}, ids)

		var xs []float64
		for item := range q.Values() {
			xs = append(xs, item.Position.X)
		}
		assert.Equal(t, []float64{1, 2, 11, 30, 100}, xs)
	})

	t.Run("early break", func(t *testing.T) {
		var q ecs.Query[movingBundle]
		q.AddEntity(1, moving(0, 0, 0, 0))
		q.AddEntity(2, moving(0, 0, 0, 0))

		count := 0
		for range q.Iter() {
			count++
			break
		}
		assert.Equal(t, 1, count)
	})

	t.Run("bundles share records", func(t *testing.T) {
		var a ecs.Query[movingBundle]
		var b ecs.Query[struct {
			Position *Position `ecs:"position"`
		}]

		components := moving(1, 1, 0, 0)
		require.True(t, a.AddEntity(7, components))
		require.True(t, b.AddEntity(7, components))

		a.Get(7).Position.X = 42
		assert.Equal(t, 42.0, b.Get(7).Position.X)
	})
}
