package ecs

import (
	"reflect"
	"sort"
	"sync"
)

// resourceSlot holds at most one value of a single resource type behind its
// own reader/writer lock. Slots, like component tables, persist once created;
// removing a resource just empties its slot.
type resourceSlot struct {
	mu    sync.RWMutex
	value any
}

// ResourceManager stores one singleton value per type, independent of any
// entity. Adding a second value of a type silently replaces the first; that
// is a documented hazard, not an error, and callers that share a World must
// coordinate their resource types.
type ResourceManager struct {
	mu    sync.RWMutex
	slots map[reflect.Type]*resourceSlot
}

// NewResourceManager creates a manager with no resources.
func NewResourceManager() *ResourceManager {
	return &ResourceManager{
		slots: make(map[reflect.Type]*resourceSlot),
	}
}

func (m *ResourceManager) slot(key reflect.Type, create bool) *resourceSlot {
	m.mu.RLock()
	s, ok := m.slots[key]
	m.mu.RUnlock()
	if ok || !create {
		return s
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.slots[key]; ok {
		return s
	}
	s = &resourceSlot{}
	m.slots[key] = s
	return s
}

// Count returns the number of resources currently present.
func (m *ResourceManager) Count() int {
	return len(m.typesLocked())
}

// Types returns the types of all present resources sorted by name.
func (m *ResourceManager) Types() []reflect.Type {
	return m.typesLocked()
}

func (m *ResourceManager) typesLocked() []reflect.Type {
	m.mu.RLock()
	slots := make(map[reflect.Type]*resourceSlot, len(m.slots))
	for key, s := range m.slots {
		slots[key] = s
	}
	m.mu.RUnlock()

	out := make([]reflect.Type, 0, len(slots))
	for key, s := range slots {
		s.mu.RLock()
		present := s.value != nil
		s.mu.RUnlock()
		if present {
			out = append(out, key)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out
}

// Clear empties every slot. Slots stay registered for reuse.
func (m *ResourceManager) Clear() {
	m.mu.RLock()
	slots := make([]*resourceSlot, 0, len(m.slots))
	for _, s := range m.slots {
		slots = append(slots, s)
	}
	m.mu.RUnlock()

	for _, s := range slots {
		s.mu.Lock()
		s.value = nil
		s.mu.Unlock()
	}
}

func addResource[T any](m *ResourceManager, v T) {
	s := m.slot(reflect.TypeFor[T](), true)
	s.mu.Lock()
	s.value = v
	s.mu.Unlock()
}

func hasResource[T any](m *ResourceManager) bool {
	s := m.slot(reflect.TypeFor[T](), false)
	if s == nil {
		return false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.value.(T)
	return ok
}

func removeResource[T any](m *ResourceManager) (T, bool) {
	var zero T
	s := m.slot(reflect.TypeFor[T](), false)
	if s == nil {
		return zero, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.value.(T)
	if !ok {
		return zero, false
	}
	s.value = nil
	return v, true
}

// withResource runs fn with a read-locked pointer to a copy of the resource,
// or nil if absent. Mutations through the pointer are discarded.
func withResource[T any](m *ResourceManager, fn func(*T)) {
	s := m.slot(reflect.TypeFor[T](), false)
	if s == nil {
		fn(nil)
		return
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.value.(T)
	if !ok {
		fn(nil)
		return
	}
	fn(&v)
}

// withResourceMut runs fn while holding the slot's write lock; mutations
// through the pointer are written back before the lock is released. fn must
// not touch the same resource type again or it will deadlock.
func withResourceMut[T any](m *ResourceManager, fn func(*T)) {
	s := m.slot(reflect.TypeFor[T](), false)
	if s == nil {
		fn(nil)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.value.(T)
	if !ok {
		fn(nil)
		return
	}
	fn(&v)
	s.value = v
}
