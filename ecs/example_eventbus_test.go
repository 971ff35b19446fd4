package ecs_test

import (
	"fmt"

	"github.com/plus3/paddleball/ecs"
)

type Scored struct {
	Player int
}

// ExampleEventBus shows handlers running inside Publish, in subscription order.
func ExampleEventBus() {
	bus := ecs.NewEventBus()
	scores := map[int]int{}

	ecs.Subscribe(bus, func(ev Scored) {
		scores[ev.Player]++
	})
	ecs.Subscribe(bus, func(ev Scored) {
		fmt.Printf("player %d scored, now %d\n", ev.Player, scores[ev.Player])
	})

	_ = ecs.Publish(bus, Scored{Player: 1})
	_ = ecs.Publish(bus, Scored{Player: 2})
	_ = ecs.Publish(bus, Scored{Player: 1})

	// Output:
	// player 1 scored, now 1
	// player 2 scored, now 1
	// player 1 scored, now 2
}
