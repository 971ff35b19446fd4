package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/paddleball/config"
	"github.com/plus3/paddleball/systems"
)

type keyPair struct {
	up, down ebiten.Key
}

// Keyboard maps held keys to player slots. Slot i+1 is driven by the i-th
// configured paddle, matching the handle that paddle is created with.
type Keyboard struct {
	slots map[int]keyPair
	state map[int]systems.PlayerInput
}

var _ systems.InputProvider = (*Keyboard)(nil)

func NewKeyboard(paddles []config.PaddleConfig) (*Keyboard, error) {
	k := &Keyboard{
		slots: make(map[int]keyPair, len(paddles)),
		state: make(map[int]systems.PlayerInput, len(paddles)),
	}

	for i, paddle := range paddles {
		var pair keyPair
		if err := pair.up.UnmarshalText([]byte(paddle.UpKey)); err != nil {
			return nil, fmt.Errorf("paddle %d up key: %w", i+1, err)
		}
		if err := pair.down.UnmarshalText([]byte(paddle.DownKey)); err != nil {
			return nil, fmt.Errorf("paddle %d down key: %w", i+1, err)
		}
		k.slots[i+1] = pair
	}
	return k, nil
}

func (k *Keyboard) Poll() map[int]systems.PlayerInput {
	for slot, pair := range k.slots {
		k.state[slot] = systems.PlayerInput{
			Up:   ebiten.IsKeyPressed(pair.up),
			Down: ebiten.IsKeyPressed(pair.down),
		}
	}
	return k.state
}
