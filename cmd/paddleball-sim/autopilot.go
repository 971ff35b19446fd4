package main

import (
	"github.com/plus3/paddleball/component"
	"github.com/plus3/paddleball/ecs"
	"github.com/plus3/paddleball/systems"
)

// Autopilot steers every paddle toward the ball's height. It reads the world
// through the entity manager, so it must be bound once the game exists.
type Autopilot struct {
	entities *ecs.EntityManager
	paddles  []ecs.EntityId
	ball     ecs.EntityId
	state    map[int]systems.PlayerInput
}

var _ systems.InputProvider = (*Autopilot)(nil)

func (a *Autopilot) Bind(entities *ecs.EntityManager, paddles []ecs.EntityId, ball ecs.EntityId) {
	a.entities = entities
	a.paddles = paddles
	a.ball = ball
	a.state = make(map[int]systems.PlayerInput, len(paddles))
}

// Poll holds a paddle still while the ball is within a quarter of its height
// from the paddle's center.
func (a *Autopilot) Poll() map[int]systems.PlayerInput {
	if a.entities == nil {
		return nil
	}

	ballY, ok := a.centerY(a.ball)
	if !ok {
		return nil
	}

	for _, id := range a.paddles {
		paddleY, ok := a.centerY(id)
		if !ok {
			continue
		}
		deadZone := a.height(id) / 4

		a.state[int(id)] = systems.PlayerInput{
			Up:   ballY < paddleY-deadZone,
			Down: ballY > paddleY+deadZone,
		}
	}
	return a.state
}

func (a *Autopilot) centerY(id ecs.EntityId) (float64, bool) {
	bag, ok := a.entities.Components(id)
	if !ok {
		return 0, false
	}
	pos, ok := bag[component.KindPosition].(*component.Position)
	if !ok {
		return 0, false
	}
	bounds, ok := bag[component.KindBounds].(*component.Bounds)
	if !ok {
		return pos.Y, true
	}
	rect, ok := bounds.Normalize(*pos).Rectangle()
	if !ok {
		return pos.Y, true
	}
	return rect.Center().Y, true
}

func (a *Autopilot) height(id ecs.EntityId) float64 {
	bag, _ := a.entities.Components(id)
	bounds, ok := bag[component.KindBounds].(*component.Bounds)
	if !ok {
		return 0
	}
	rect, _ := bounds.Rectangle()
	return rect.Size.Height
}
