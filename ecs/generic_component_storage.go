package ecs

import (
	"reflect"
	"slices"
)

// iComponentStorage is a type-erased arena for one component kind.
type iComponentStorage interface {
	// Append copies item into the arena and returns a stable pointer to the copy.
	// ok is false if item is neither T nor *T.
	Append(item any) (ptr any, ok bool)
	Len() int
}

// ComponentRegistry maps component kind names to typed arenas.
// Each EntityManager owns its registry, so independent simulations never
// share component memory.
type ComponentRegistry struct {
	factories map[string]func() iComponentStorage
	types     map[string]reflect.Type
}

// NewComponentRegistry creates an empty component registry.
func NewComponentRegistry() *ComponentRegistry {
	return &ComponentRegistry{
		factories: make(map[string]func() iComponentStorage),
		types:     make(map[string]reflect.Type),
	}
}

// RegisterComponent registers record type T under the given kind name.
// Registering the same name twice replaces the earlier type.
func RegisterComponent[T any](r *ComponentRegistry, kind string) {
	r.types[kind] = reflect.TypeFor[T]()
	r.factories[kind] = func() iComponentStorage {
		return &genericComponentStorage[T]{}
	}
}

// Kinds returns the registered kind names in sorted order.
func (r *ComponentRegistry) Kinds() []string {
	kinds := make([]string, 0, len(r.types))
	for kind := range r.types {
		kinds = append(kinds, kind)
	}
	slices.Sort(kinds)
	return kinds
}

func (r *ComponentRegistry) getFactory(kind string) func() iComponentStorage {
	return r.factories[kind]
}

const (
	genericBlockSize = 64
)

// genericComponentStorage keeps records of type T in fixed-size blocks.
// Blocks are allocated individually and never moved, so pointers handed out
// by Append stay valid for the life of the arena.
type genericComponentStorage[T any] struct {
	blocks    []*[genericBlockSize]T
	nextIndex int
}

func (cs *genericComponentStorage[T]) Append(item any) (any, bool) {
	var concreteItem T
	if ptr, ok := item.(*T); ok && ptr != nil {
		concreteItem = *ptr
	} else if val, ok := item.(T); ok {
		concreteItem = val
	} else {
		return nil, false
	}

	index := cs.nextIndex
	cs.nextIndex++

	blockIdx := index / genericBlockSize
	slotIdx := index % genericBlockSize

	if blockIdx >= len(cs.blocks) {
		cs.blocks = append(cs.blocks, new([genericBlockSize]T))
	}

	slot := &cs.blocks[blockIdx][slotIdx]
	*slot = concreteItem
	return slot, true
}

func (cs *genericComponentStorage[T]) Len() int {
	return cs.nextIndex
}

// arena lazily creates one storage per registered kind.
type arena struct {
	registry *ComponentRegistry
	storages map[string]iComponentStorage
}

func newArena(registry *ComponentRegistry) *arena {
	return &arena{
		registry: registry,
		storages: make(map[string]iComponentStorage),
	}
}

// store moves every registered kind of components into the arena and returns
// a bag whose values point into it. Unregistered kinds, and values of the
// wrong type, are carried over untouched.
func (a *arena) store(components Components) Components {
	stored := make(Components, len(components))
	for kind, value := range components {
		stored[kind] = value
		if a == nil || a.registry == nil {
			continue
		}

		storage, ok := a.storages[kind]
		if !ok {
			factory := a.registry.getFactory(kind)
			if factory == nil {
				continue
			}
			storage = factory()
			a.storages[kind] = storage
		}

		if ptr, ok := storage.Append(value); ok {
			stored[kind] = ptr
		}
	}
	return stored
}

// count returns how many records of kind the arena holds.
func (a *arena) count(kind string) int {
	if a == nil {
		return 0
	}
	storage, ok := a.storages[kind]
	if !ok {
		return 0
	}
	return storage.Len()
}
