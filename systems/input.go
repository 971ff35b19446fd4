package systems

import (
	"github.com/plus3/paddleball/component"
	"github.com/plus3/paddleball/ecs"
)

// PlayerInput is the held state of one player's controls.
type PlayerInput struct {
	Up   bool
	Down bool
}

// InputProvider reports the current controls for each player slot.
// Slots are numbered by the entity handle they drive.
type InputProvider interface {
	Poll() map[int]PlayerInput
}

// InputProviderFunc adapts a function to InputProvider.
type InputProviderFunc func() map[int]PlayerInput

func (f InputProviderFunc) Poll() map[int]PlayerInput {
	return f()
}

type inputBundle struct {
	Motion *component.Motion `ecs:"motion"`
	Input  *component.Input  `ecs:"input"`
}

// InputSystem turns player input into vertical velocity.
type InputSystem struct {
	ecs.Query[inputBundle]
	provider InputProvider
}

// NewInputSystem creates an input system reading from provider.
func NewInputSystem(provider InputProvider) *InputSystem {
	return &InputSystem{provider: provider}
}

// Update polls the provider once and sets velocity.Y for every member whose
// slot is present: -speed for up, +speed for down, 0 for neither or both.
func (s *InputSystem) Update(float64) error {
	if s.provider == nil {
		return nil
	}

	state := s.provider.Poll()
	for id, item := range s.Iter() {
		input, ok := state[int(id)]
		if !ok {
			continue
		}

		switch {
		case input.Up && !input.Down:
			item.Motion.Velocity.Y = -item.Input.Speed
		case input.Down && !input.Up:
			item.Motion.Velocity.Y = item.Input.Speed
		default:
			item.Motion.Velocity.Y = 0
		}
	}
	return nil
}
