package ecs

import "sync"

// EntityManager allocates and recycles entity handles. Freed indices are
// reused last-in-first-out; a freed index is never handed to two live
// entities at once. Index 0 is a valid entity like any other.
//
// The allocation state (next index + free list) and the liveness bitset are
// guarded by separate reader/writer locks. When both are needed the
// allocation lock is taken first.
type EntityManager struct {
	allocMu sync.RWMutex
	next    uint32
	free    []Entity

	liveMu sync.RWMutex
	alive  bitset
}

// NewEntityManager creates an empty entity manager.
func NewEntityManager() *EntityManager {
	return &EntityManager{}
}

// Create allocates an entity and marks it alive. The most recently destroyed
// index is reused first; otherwise the next unused index is taken.
func (m *EntityManager) Create() Entity {
	m.allocMu.Lock()
	var e Entity
	if n := len(m.free); n > 0 {
		e = m.free[n-1]
		m.free = m.free[:n-1]
	} else {
		e = Entity(m.next)
		m.next++
	}
	m.allocMu.Unlock()

	m.liveMu.Lock()
	m.alive.set(uint32(e))
	m.liveMu.Unlock()
	return e
}

// Destroy clears the entity's liveness bit and pushes its index onto the
// free list. Destroying an entity that is not alive is a no-op and returns
// false, so a second Destroy on the same handle reports false.
func (m *EntityManager) Destroy(e Entity) bool {
	m.allocMu.Lock()
	defer m.allocMu.Unlock()
	m.liveMu.Lock()
	defer m.liveMu.Unlock()

	if !m.alive.test(uint32(e)) {
		return false
	}
	m.alive.unset(uint32(e))
	m.free = append(m.free, e)
	return true
}

// IsAlive reports whether the entity is currently spawned. Indices beyond
// the current high-water mark are not alive.
func (m *EntityManager) IsAlive(e Entity) bool {
	m.liveMu.RLock()
	defer m.liveMu.RUnlock()
	return m.alive.test(uint32(e))
}

// AliveCount returns the number of currently live entities.
func (m *EntityManager) AliveCount() int {
	m.liveMu.RLock()
	defer m.liveMu.RUnlock()
	return m.alive.count()
}

// Alive returns a materialized snapshot of every live entity in ascending
// index order. Destroys that race with iteration of the returned slice
// neither invalidate it nor show up in it.
func (m *EntityManager) Alive() []Entity {
	m.liveMu.RLock()
	indices := m.alive.ones()
	m.liveMu.RUnlock()

	out := make([]Entity, len(indices))
	for i, idx := range indices {
		out[i] = Entity(idx)
	}
	return out
}

// Clear resets the manager to empty: index 0, no free list, no live bits.
func (m *EntityManager) Clear() {
	m.allocMu.Lock()
	defer m.allocMu.Unlock()
	m.liveMu.Lock()
	defer m.liveMu.Unlock()

	m.next = 0
	m.free = m.free[:0]
	m.alive.reset()
}
