package ecs

import "reflect"

// EventBus is a synchronous, type-keyed publish/subscribe channel.
// Publish invokes every handler for the event type in subscription order and
// returns once they have all run; nothing is queued. A handler may publish
// other event types, which re-enters the bus immediately, but publishing the
// type currently being dispatched is refused with ErrRecursivePublish.
type EventBus struct {
	handlers    map[reflect.Type][]any
	dispatching map[reflect.Type]bool
}

// NewEventBus creates an empty event bus.
func NewEventBus() *EventBus {
	return &EventBus{
		handlers:    make(map[reflect.Type][]any),
		dispatching: make(map[reflect.Type]bool),
	}
}

// Subscribe registers a handler for events of type T.
func Subscribe[T any](bus *EventBus, handler func(T)) {
	t := reflect.TypeFor[T]()
	bus.handlers[t] = append(bus.handlers[t], handler)
}

// Publish delivers event to every handler subscribed to T.
func Publish[T any](bus *EventBus, event T) error {
	t := reflect.TypeFor[T]()
	if bus.dispatching[t] {
		return ErrRecursivePublish
	}

	hs := bus.handlers[t]
	if len(hs) == 0 {
		return nil
	}

	bus.dispatching[t] = true
	defer delete(bus.dispatching, t)

	for _, h := range hs {
		h.(func(T))(event)
	}
	return nil
}

// HandlerCount returns the number of handlers subscribed to T.
func HandlerCount[T any](bus *EventBus) int {
	return len(bus.handlers[reflect.TypeFor[T]()])
}
