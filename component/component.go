// Package component holds the plain data records attached to paddleball entities.
// Records carry no behavior beyond validation; systems mutate their fields in place.
package component

import "github.com/plus3/paddleball/ecs"

// Component kind names used as keys in an ecs.Components bag.
const (
	KindPosition      = "position"
	KindMotion        = "motion"
	KindBounds        = "bounds"
	KindMesh          = "mesh"
	KindPhysics       = "physics"
	KindInput         = "input"
	KindResetLocation = "resetLocation"
)

// Position is the current world location of an entity.
type Position struct {
	X, Y float64
}

// Point returns the position as a geometry point.
func (p Position) Point() Point {
	return Point{X: p.X, Y: p.Y}
}

// Motion holds velocity in pixels per second.
type Motion struct {
	Velocity Vector
}

// Bounds is the collision geometry of an entity, relative to its Position.
type Bounds struct {
	Shape
}

// Normalize returns the bounds translated into world space at pos.
func (b Bounds) Normalize(pos Position) Shape {
	return b.Shape.Translate(pos.Point())
}

// Mesh is the render geometry of an entity, relative to its Position.
type Mesh struct {
	Shape
}

// Physics controls how an entity takes part in collision resolution.
// Bounciness scales reflected velocity: 0 stops the axis, 1 reflects fully.
type Physics struct {
	IsSensor   bool
	Bounciness float64
}

// Input binds an entity to a player input slot; Speed is in pixels per second.
type Input struct {
	Speed float64
}

// ResetLocation is where an entity is returned to once it leaves the playfield.
type ResetLocation struct {
	X, Y float64
}

// Register adds every paddleball component kind to the registry so the
// entity manager stores them in shared arenas.
func Register(registry *ecs.ComponentRegistry) {
	ecs.RegisterComponent[Position](registry, KindPosition)
	ecs.RegisterComponent[Motion](registry, KindMotion)
	ecs.RegisterComponent[Bounds](registry, KindBounds)
	ecs.RegisterComponent[Mesh](registry, KindMesh)
	ecs.RegisterComponent[Physics](registry, KindPhysics)
	ecs.RegisterComponent[Input](registry, KindInput)
	ecs.RegisterComponent[ResetLocation](registry, KindResetLocation)
}

// NewRegistry returns a registry with all component kinds registered.
func NewRegistry() *ecs.ComponentRegistry {
	registry := ecs.NewComponentRegistry()
	Register(registry)
	return registry
}
