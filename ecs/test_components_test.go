package ecs_test

import "github.com/plus3/paddleball/ecs"

// Common test component types
type Position struct {
	X, Y float64
}

type Velocity struct {
	DX, DY float64
}

type Health struct {
	Current int
	Max     int
}

// Shape reports itself invalid when it has no sides.
type Shape struct {
	Sides int
}

func (s Shape) Valid() bool {
	return s.Sides > 0
}

func newTestRegistry() *ecs.ComponentRegistry {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Position](registry, "position")
	ecs.RegisterComponent[Velocity](registry, "velocity")
	ecs.RegisterComponent[Health](registry, "health")
	ecs.RegisterComponent[Shape](registry, "shape")
	return registry
}

type movingBundle struct {
	Position *Position `ecs:"position"`
	Velocity *Velocity `ecs:"velocity"`
}

type healthBundle struct {
	Health *Health `ecs:"health"`
	Shape  *Shape  `ecs:"shape,optional"`
}

// MovementSystem integrates position from velocity.
type MovementSystem struct {
	ecs.Query[movingBundle]
	UpdateCount int
}

func (s *MovementSystem) Update(delta float64) error {
	s.UpdateCount++
	for item := range s.Values() {
		item.Position.X += item.Velocity.DX * delta
		item.Position.Y += item.Velocity.DY * delta
	}
	return nil
}

// HealthSystem sums the health of its members.
type HealthSystem struct {
	ecs.Query[healthBundle]
	UpdateCount int
	TotalHealth int
}

func (s *HealthSystem) Update(float64) error {
	s.UpdateCount++
	s.TotalHealth = 0
	for item := range s.Values() {
		s.TotalHealth += item.Health.Current
	}
	return nil
}
