package ecs_test

import (
	"fmt"

	"github.com/plus3/paddleball/ecs"
)

// ExampleQuery shows a query used on its own. Members are visited in
// ascending handle order regardless of admission order.
func ExampleQuery() {
	var q ecs.Query[struct {
		Position *Position `ecs:"position"`
		Health   *Health   `ecs:"health,optional"`
	}]

	q.AddEntity(3, ecs.Components{"position": &Position{X: 3}})
	q.AddEntity(1, ecs.Components{"position": &Position{X: 1}, "health": &Health{Current: 9}})
	q.AddEntity(2, ecs.Components{"health": &Health{}})

	for id, item := range q.Iter() {
		if item.Health != nil {
			fmt.Printf("%d: x=%.0f health=%d\n", id, item.Position.X, item.Health.Current)
		} else {
			fmt.Printf("%d: x=%.0f\n", id, item.Position.X)
		}
	}

	// Output:
	// 1: x=1 health=9
	// 3: x=3
}
