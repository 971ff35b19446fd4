package ecs

import (
	"iter"
	"slices"

	"github.com/kamstrup/intmap"
)

// Query is the working set of a system: the entities whose components matched
// its bundle type T when they were created. Membership is decided once and never
// re-evaluated. Bundles hold pointers into the shared component records, so
// writes through a Query are visible to every other system.
//
// Systems embed a Query to satisfy the Accepts and AddEntity halves of System.
// The zero value is ready to use.
type Query[T any] struct {
	view    *View[T]
	ids     []EntityId
	bundles *intmap.Map[EntityId, *T]
}

func (q *Query[T]) init() {
	if q.view != nil {
		return
	}
	q.view = NewView[T]()
	q.bundles = intmap.New[EntityId, *T](16)
}

// Accepts reports whether components satisfy the query's requirement predicate.
func (q *Query[T]) Accepts(components Components) bool {
	q.init()
	return q.view.Matches(components)
}

// AddEntity admits the entity if its components match.
// Returns false when the entity is rejected or already a member.
func (q *Query[T]) AddEntity(id EntityId, components Components) bool {
	q.init()

	if q.bundles.Has(id) {
		return false
	}

	bundle := q.view.Get(components)
	if bundle == nil {
		return false
	}

	q.bundles.Put(id, bundle)
	pos, _ := slices.BinarySearch(q.ids, id)
	q.ids = slices.Insert(q.ids, pos, id)
	return true
}

// Has reports whether id is a member.
func (q *Query[T]) Has(id EntityId) bool {
	return q.bundles.Has(id)
}

// Get returns the bundle for id, or nil if id is not a member.
func (q *Query[T]) Get(id EntityId) *T {
	bundle, ok := q.bundles.Get(id)
	if !ok {
		return nil
	}
	return bundle
}

// Len returns the number of members.
func (q *Query[T]) Len() int {
	return len(q.ids)
}

// Iter yields members in ascending handle order.
func (q *Query[T]) Iter() iter.Seq2[EntityId, *T] {
	return func(yield func(EntityId, *T) bool) {
		for _, id := range q.ids {
			bundle, _ := q.bundles.Get(id)
			if !yield(id, bundle) {
				return
			}
		}
	}
}

// Values yields member bundles in ascending handle order.
func (q *Query[T]) Values() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for _, bundle := range q.Iter() {
			if !yield(bundle) {
				return
			}
		}
	}
}
