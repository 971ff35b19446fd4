package systems

import "github.com/plus3/paddleball/ecs"

// CollisionEvent is published once per colliding pair per frame.
// Entities are sorted ascending.
type CollisionEvent struct {
	Entities [2]ecs.EntityId
}

func (CollisionEvent) Name() string { return "collision" }

// OffscreenEvent is published when an entity's bounds leave the playfield.
type OffscreenEvent struct {
	Entity ecs.EntityId
}

func (OffscreenEvent) Name() string { return "entityIsOffscreen" }

// PauseEvent is reserved for front ends; no system in this package reacts to it.
type PauseEvent struct{}

func (PauseEvent) Name() string { return "pause" }
