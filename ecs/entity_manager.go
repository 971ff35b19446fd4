package ecs

import (
	"maps"

	"github.com/kamstrup/intmap"
	"go.uber.org/zap"
)

// EntityManagerStats summarizes what an EntityManager holds.
type EntityManagerStats struct {
	EntityCount int
	// RecordCounts is the number of arena records per registered kind.
	RecordCounts map[string]int
}

// EntityManager allocates entity handles, owns the authoritative handle to
// component table and offers every new entity to each system.
type EntityManager struct {
	log        *zap.Logger
	systems    *SystemManager
	registry   *ComponentRegistry
	arena      *arena
	entities   *intmap.Map[EntityId, Components]
	admissions *intmap.Map[EntityId, int]
	nextId     EntityId
}

// NewEntityManager creates a manager that fans new entities out to systems.
// With a non-nil registry, registered component kinds are copied into shared
// arenas; otherwise bag values are stored exactly as given. A nil logger
// disables logging.
func NewEntityManager(systems *SystemManager, registry *ComponentRegistry, log *zap.Logger) *EntityManager {
	if log == nil {
		log = zap.NewNop()
	}

	m := &EntityManager{
		log:        log,
		systems:    systems,
		registry:   registry,
		entities:   intmap.New[EntityId, Components](64),
		admissions: intmap.New[EntityId, int](64),
		nextId:     1,
	}
	if registry != nil {
		m.arena = newArena(registry)
	}
	return m
}

// CreateEntity registers components under the next unused handle.
func (m *EntityManager) CreateEntity(components Components) (EntityId, error) {
	id := m.nextId
	if err := m.AddEntity(id, components); err != nil {
		return 0, err
	}
	return id, nil
}

// AddEntity registers components under an explicit handle. It fails with
// *DuplicateEntityError if the handle is taken, leaving existing state intact.
// Handle 0 is never valid and is reported as a duplicate.
func (m *EntityManager) AddEntity(id EntityId, components Components) error {
	if id == 0 || m.entities.Has(id) {
		return &DuplicateEntityError{Id: id}
	}

	stored := m.arena.store(components)
	m.entities.Put(id, stored)
	if id >= m.nextId {
		m.nextId = id + 1
	}

	admitted := 0
	if m.systems != nil {
		for _, system := range m.systems.Systems() {
			if system.AddEntity(id, stored) {
				admitted++
			}
		}
	}
	m.admissions.Put(id, admitted)

	m.log.Debug("entity registered",
		zap.Stringer("entity", id),
		zap.Int("components", len(stored)),
		zap.Int("systems", admitted))

	return nil
}

// Components returns a copy of the entity's bag. The copy shares the live
// records, so field writes through it are visible to every system, but adding
// or removing keys does not change the entity.
func (m *EntityManager) Components(id EntityId) (Components, bool) {
	components, ok := m.entities.Get(id)
	if !ok {
		return nil, false
	}
	return maps.Clone(components), true
}

// Admissions returns how many systems admitted the entity.
func (m *EntityManager) Admissions(id EntityId) int {
	count, _ := m.admissions.Get(id)
	return count
}

// Len returns the number of registered entities.
func (m *EntityManager) Len() int {
	return m.entities.Len()
}

// Stats returns entity and arena record counts.
func (m *EntityManager) Stats() *EntityManagerStats {
	stats := &EntityManagerStats{
		EntityCount:  m.entities.Len(),
		RecordCounts: make(map[string]int),
	}
	if m.registry != nil {
		for _, kind := range m.registry.Kinds() {
			stats.RecordCounts[kind] = m.arena.count(kind)
		}
	}
	return stats
}
