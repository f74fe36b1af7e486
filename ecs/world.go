package ecs

import "github.com/milk9111/quizplatformer/ecs/component"

// World owns entities and their component stores.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*SparseSet
	events   EventQueue
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]*SparseSet)}
}

// CreateEntity allocates a new entity.
func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// DestroyEntity drops every component of e and retires its handle. It
// reports false for handles that are already dead.
func (w *World) DestroyEntity(e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, store := range w.stores {
		store.Remove(e)
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func (w *World) IsAlive(e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Entities returns every live entity.
func (w *World) Entities() []Entity {
	if w == nil {
		return nil
	}
	return w.entities.all()
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// AddComponent inserts or replaces the component of the given kind.
func (w *World) AddComponent(e Entity, kind component.ComponentID, value any) error {
	if w == nil || !w.entities.isAlive(e) {
		return component.ErrEntityNotAlive
	}
	if kind == 0 {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return component.ErrNilComponent
	}
	w.store(kind, true).Set(e, value)
	return nil
}

// RemoveComponent removes the component of the given kind.
func (w *World) RemoveComponent(e Entity, kind component.ComponentID) bool {
	if w == nil {
		return false
	}
	return w.store(kind, false).Remove(e)
}

// HasComponent reports whether e carries the given kind.
func (w *World) HasComponent(e Entity, kind component.ComponentID) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	return w.store(kind, false).Has(e)
}

// GetComponent returns the raw component value of the given kind.
func (w *World) GetComponent(e Entity, kind component.ComponentID) (any, bool) {
	if w == nil || !w.entities.isAlive(e) {
		return nil, false
	}
	store := w.store(kind, false)
	if !store.Has(e) {
		return nil, false
	}
	return store.Get(e), true
}

// Query returns the live entities carrying every listed kind.
func (w *World) Query(kinds ...component.Kind) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	sets := make([]*SparseSet, 0, len(kinds))
	for _, k := range kinds {
		s := w.store(k.ID(), false)
		if s == nil {
			return nil
		}
		sets = append(sets, s)
	}
	return intersect(sets...)
}

// First returns any live entity carrying the given kind.
func (w *World) First(kind component.Kind) (Entity, bool) {
	for _, e := range w.Query(kind) {
		if w.entities.isAlive(e) {
			return e, true
		}
	}
	return 0, false
}

func (w *World) store(kind component.ComponentID, create bool) *SparseSet {
	if w.stores == nil {
		w.stores = make(map[component.ComponentID]*SparseSet)
	}
	s := w.stores[kind]
	if s == nil && create {
		s = &SparseSet{}
		w.stores[kind] = s
	}
	return s
}

// intersect returns the entities present in every set, iterating the
// smallest one.
func intersect(sets ...*SparseSet) []Entity {
	smallest := sets[0]
	for _, s := range sets[1:] {
		if s.Len() < smallest.Len() {
			smallest = s
		}
	}
	out := make([]Entity, 0, smallest.Len())
	for _, e := range smallest.Entities() {
		keep := true
		for _, s := range sets {
			if s != smallest && !s.Has(e) {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, e)
		}
	}
	return out
}
