package ecs_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/plus3/paddleball/ecs"
)

// recordingSystem appends its name to a shared log on every update.
type recordingSystem struct {
	ecs.Query[healthBundle]
	name string
	log  *[]string
	err  error
}

func (s *recordingSystem) Update(float64) error {
	*s.log = append(*s.log, s.name)
	return s.err
}

func TestSystemManager(t *testing.T) {
	t.Run("updates systems in order", func(t *testing.T) {
		var calls []string
		manager := ecs.NewSystemManager(zaptest.NewLogger(t),
			&recordingSystem{name: "a", log: &calls},
			&recordingSystem{name: "b", log: &calls},
			&recordingSystem{name: "c", log: &calls},
		)

		require.NoError(t, manager.Update(0.1))
		require.NoError(t, manager.Update(0.1))
		assert.Equal(t, []string{"a", "b", "c", "a", "b", "c"}, calls)
	})

	t.Run("a failing system aborts the frame", func(t *testing.T) {
		var calls []string
		boom := errors.New("boom")
		manager := ecs.NewSystemManager(zaptest.NewLogger(t),
			&recordingSystem{name: "a", log: &calls},
			&recordingSystem{name: "b", log: &calls, err: boom},
			&recordingSystem{name: "c", log: &calls},
		)

		err := manager.Update(0.1)
		require.ErrorIs(t, err, boom)
		assert.EqualError(t, err, "recordingSystem: boom")
		assert.Equal(t, []string{"a", "b"}, calls)
	})

	t.Run("delta is passed through", func(t *testing.T) {
		movement := &MovementSystem{}
		manager := ecs.NewSystemManager(nil, movement)
		entities := ecs.NewEntityManager(manager, newTestRegistry(), nil)

		id, err := entities.CreateEntity(moving(0, 0, 10, -4))
		require.NoError(t, err)

		require.NoError(t, manager.Update(0.25))
		assert.Equal(t, &Position{X: 2.5, Y: -1}, movement.Get(id).Position)
	})

	t.Run("stats", func(t *testing.T) {
		movement := &MovementSystem{}
		health := &HealthSystem{}
		manager := ecs.NewSystemManager(nil, movement, health)

		stats := manager.Stats()
		assert.Equal(t, 2, stats.SystemCount)
		assert.Equal(t, int64(0), stats.FrameCount)
		assert.Equal(t, time.Duration(0), stats.Systems[0].MinDuration, "no executions yet")

		for range 3 {
			require.NoError(t, manager.Update(1.0/60))
		}

		stats = manager.Stats()
		assert.Equal(t, int64(3), stats.FrameCount)
		assert.Equal(t, int64(6), stats.TotalExecutions)
		require.Len(t, stats.Systems, 2)
		assert.Equal(t, "MovementSystem", stats.Systems[0].Name)
		assert.Equal(t, "HealthSystem", stats.Systems[1].Name)
		for _, s := range stats.Systems {
			assert.Equal(t, int64(3), s.ExecutionCount)
			assert.LessOrEqual(t, s.MinDuration, s.AvgDuration)
			assert.LessOrEqual(t, s.AvgDuration, s.MaxDuration)
			assert.GreaterOrEqual(t, s.TotalDuration, s.MaxDuration)
		}
		assert.Equal(t, 3, movement.UpdateCount)
	})

	t.Run("run until cancelled", func(t *testing.T) {
		movement := &MovementSystem{}
		manager := ecs.NewSystemManager(nil, movement)

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		require.NoError(t, manager.Run(ctx, time.Millisecond))
		assert.Positive(t, movement.UpdateCount)
		assert.Equal(t, int64(movement.UpdateCount), manager.Stats().FrameCount)
	})

	t.Run("run stops on error", func(t *testing.T) {
		var calls []string
		boom := errors.New("boom")
		manager := ecs.NewSystemManager(nil, &recordingSystem{name: "a", log: &calls, err: boom})

		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()

		assert.ErrorIs(t, manager.Run(ctx, time.Millisecond), boom)
		assert.Len(t, calls, 1)
	})
}
