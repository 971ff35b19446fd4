package systems

import (
	"github.com/plus3/paddleball/component"
	"github.com/plus3/paddleball/ecs"
)

type motionBundle struct {
	Position *component.Position `ecs:"position"`
	Motion   *component.Motion   `ecs:"motion"`
}

// MotionSystem integrates position from velocity.
type MotionSystem struct {
	ecs.Query[motionBundle]
}

func NewMotionSystem() *MotionSystem {
	return &MotionSystem{}
}

func (s *MotionSystem) Update(delta float64) error {
	for item := range s.Values() {
		item.Position.X += item.Motion.Velocity.X * delta
		item.Position.Y += item.Motion.Velocity.Y * delta
	}
	return nil
}
