package ecs

import (
	"errors"
	"fmt"
)

// ErrRecursivePublish is returned when an event is published from inside a
// handler already dispatching the same event type.
var ErrRecursivePublish = errors.New("ecs: recursive publish")

// DuplicateEntityError is returned when registering a handle that already
// holds a component set.
type DuplicateEntityError struct {
	Id EntityId
}

func (e *DuplicateEntityError) Error() string {
	return fmt.Sprintf("ecs: entity %d already exists", e.Id)
}
