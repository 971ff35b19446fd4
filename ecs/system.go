package ecs

// System is a unit of per-frame behavior over the entities it admitted.
// Embedding a Query provides Accepts and AddEntity; implementations add Update.
type System interface {
	// Accepts is the requirement predicate over an arbitrary component bag.
	Accepts(components Components) bool
	// AddEntity offers a newly created entity; it returns true if admitted.
	AddEntity(id EntityId, components Components) bool
	// Update advances the system by delta seconds.
	Update(delta float64) error
}
