package systems_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/plus3/paddleball/component"
	"github.com/plus3/paddleball/ecs"
	"github.com/plus3/paddleball/systems"
)

var playfield = component.Rect(0, 0, 640, 360)

type world struct {
	bus      *ecs.EventBus
	manager  *ecs.SystemManager
	entities *ecs.EntityManager

	collisions []systems.CollisionEvent
	offscreen  []systems.OffscreenEvent
}

// newWorld wires the given systems, built against a shared bus, into an entity
// manager and records every published collision and offscreen event.
func newWorld(t *testing.T, build func(bus *ecs.EventBus) []ecs.System) *world {
	t.Helper()
	log := zaptest.NewLogger(t)

	w := &world{bus: ecs.NewEventBus()}
	ecs.Subscribe(w.bus, func(ev systems.CollisionEvent) { w.collisions = append(w.collisions, ev) })
	ecs.Subscribe(w.bus, func(ev systems.OffscreenEvent) { w.offscreen = append(w.offscreen, ev) })

	w.manager = ecs.NewSystemManager(log, build(w.bus)...)
	w.entities = ecs.NewEntityManager(w.manager, component.NewRegistry(), log)
	return w
}

func newPhysicsWorld(t *testing.T) *world {
	return newWorld(t, func(bus *ecs.EventBus) []ecs.System {
		return []ecs.System{systems.NewPhysicsSystem(bus, playfield)}
	})
}

func (w *world) create(t *testing.T, components ecs.Components) ecs.EntityId {
	t.Helper()
	id, err := w.entities.CreateEntity(components)
	require.NoError(t, err)
	return id
}

func (w *world) position(t *testing.T, id ecs.EntityId) *component.Position {
	t.Helper()
	bag, ok := w.entities.Components(id)
	require.True(t, ok)
	return bag[component.KindPosition].(*component.Position)
}

func (w *world) velocity(t *testing.T, id ecs.EntityId) *component.Vector {
	t.Helper()
	bag, ok := w.entities.Components(id)
	require.True(t, ok)
	return &bag[component.KindMotion].(*component.Motion).Velocity
}

type body struct {
	x, y       float64
	bounds     component.Shape
	vx, vy     float64
	bounciness float64
	sensor     bool
}

func (b body) components() ecs.Components {
	return ecs.Components{
		component.KindPosition: component.Position{X: b.x, Y: b.y},
		component.KindBounds:   component.Bounds{Shape: b.bounds},
		component.KindMotion:   component.Motion{Velocity: component.Vector{X: b.vx, Y: b.vy}},
		component.KindPhysics:  component.Physics{IsSensor: b.sensor, Bounciness: b.bounciness},
	}
}
