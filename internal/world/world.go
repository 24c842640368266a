// Package world provides an in-memory snapshot store satisfying the
// combat controller's WorldView. Single writer (the host's decode loop or
// the simulator), many readers.
package world

import (
	"sync"

	"github.com/eqforge/hunter/internal/model"
)

// World holds the current set of nearby spawns plus the controlled
// character's own snapshot.
type World struct {
	mu       sync.RWMutex
	self     model.EntitySnapshot
	entities map[uint16]model.EntitySnapshot
}

// New creates an empty world.
func New() *World {
	return &World{
		entities: make(map[uint16]model.EntitySnapshot),
	}
}

// SetSelf updates the controlled character's snapshot.
func (w *World) SetSelf(e model.EntitySnapshot) {
	w.mu.Lock()
	w.self = e
	w.mu.Unlock()
}

// Self returns the controlled character's snapshot.
func (w *World) Self() model.EntitySnapshot {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.self
}

// Upsert adds or replaces a spawn snapshot.
func (w *World) Upsert(e model.EntitySnapshot) {
	w.mu.Lock()
	w.entities[e.ID] = e
	w.mu.Unlock()
}

// Remove drops a spawn.
func (w *World) Remove(id uint16) {
	w.mu.Lock()
	delete(w.entities, id)
	w.mu.Unlock()
}

// Entity looks up a spawn by id.
func (w *World) Entity(id uint16) (model.EntitySnapshot, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	e, ok := w.entities[id]
	return e, ok
}

// ForEachEntity iterates all spawns. Return false from fn to stop.
// The iteration holds the read lock; fn must not call back into World
// write methods.
func (w *World) ForEachEntity(fn func(model.EntitySnapshot) bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	for _, e := range w.entities {
		if !fn(e) {
			return
		}
	}
}

// Len returns the number of tracked spawns.
func (w *World) Len() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.entities)
}
