package systems

import (
	"github.com/plus3/paddleball/component"
	"github.com/plus3/paddleball/ecs"
)

type resetBundle struct {
	Position      *component.Position      `ecs:"position"`
	ResetLocation *component.ResetLocation `ecs:"resetLocation"`
}

// OffscreenResetSystem returns entities to their reset location when physics
// reports them offscreen. It acts only from its event handler, inside the
// frame that published the event.
type OffscreenResetSystem struct {
	ecs.Query[resetBundle]
}

// NewOffscreenResetSystem creates the system and subscribes it to bus.
func NewOffscreenResetSystem(bus *ecs.EventBus) *OffscreenResetSystem {
	s := &OffscreenResetSystem{}
	ecs.Subscribe(bus, s.onOffscreen)
	return s
}

func (s *OffscreenResetSystem) onOffscreen(event OffscreenEvent) {
	item := s.Get(event.Entity)
	if item == nil {
		return
	}
	item.Position.X = item.ResetLocation.X
	item.Position.Y = item.ResetLocation.Y
}

// Update is a no-op.
func (s *OffscreenResetSystem) Update(float64) error {
	return nil
}
