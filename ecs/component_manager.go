package ecs

import (
	"reflect"
	"sort"
	"sync"
)

// ComponentManager maps component types to their storage tables. The outer
// type-to-table map has its own reader/writer lock; each table is locked
// independently, so operations on different component types never contend.
//
// Tables, once created, are never removed or replaced, which is why looking
// one up needs only a read lock on the outer map even when the table
// operation itself is a write.
//
// The manager does not know about entity liveness. Inserting a row for a
// dead entity creates an orphan that the World's public surface will never
// show; despawn and query both defend against it.
type ComponentManager struct {
	mu     sync.RWMutex
	tables map[reflect.Type]componentTable
}

// NewComponentManager creates a manager with no registered tables.
func NewComponentManager() *ComponentManager {
	return &ComponentManager{
		tables: make(map[reflect.Type]componentTable),
	}
}

// registerTable idempotently ensures a table exists for T and returns it.
func registerTable[T any](m *ComponentManager) *Table[T] {
	key := reflect.TypeFor[T]()

	m.mu.RLock()
	existing, ok := m.tables[key]
	m.mu.RUnlock()
	if ok {
		return existing.(*Table[T])
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.tables[key]; ok {
		return existing.(*Table[T])
	}
	t := newTable[T]()
	m.tables[key] = t
	return t
}

// tableOf looks up T's table without creating it.
func tableOf[T any](m *ComponentManager) (*Table[T], bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	t, ok := m.tables[reflect.TypeFor[T]()]
	if !ok {
		return nil, false
	}
	return t.(*Table[T]), true
}

func (m *ComponentManager) lookup(key reflect.Type) (componentTable, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	t, ok := m.tables[key]
	return t, ok
}

// insertAny routes a boxed component value to the table registered for its
// dynamic type. It fails if no such table exists: the dynamic path cannot
// create typed storage, so callers must have registered the type first.
func (m *ComponentManager) insertAny(e Entity, component any) bool {
	key := reflect.TypeOf(component)
	if key != nil && key.Kind() == reflect.Ptr {
		key = key.Elem()
	}
	t, ok := m.lookup(key)
	if !ok {
		return false
	}
	return t.insertAny(e, component)
}

// removeType removes the entity's row from the table for the given component
// type, if both exist.
func (m *ComponentManager) removeType(e Entity, key reflect.Type) bool {
	t, ok := m.lookup(key)
	if !ok {
		return false
	}
	return t.removeEntity(e)
}

// RemoveAll removes the entity's row from every registered table. Used by
// despawn.
func (m *ComponentManager) RemoveAll(e Entity) {
	m.mu.RLock()
	tables := make([]componentTable, 0, len(m.tables))
	for _, t := range m.tables {
		tables = append(tables, t)
	}
	m.mu.RUnlock()

	for _, t := range tables {
		t.removeEntity(e)
	}
}

// Types returns the registered component types sorted by name.
func (m *ComponentManager) Types() []reflect.Type {
	m.mu.RLock()
	out := make([]reflect.Type, 0, len(m.tables))
	for key := range m.tables {
		out = append(out, key)
	}
	m.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out
}

// TableCount returns the number of registered tables.
func (m *ComponentManager) TableCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.tables)
}

// componentsOf returns copies of every component value currently stored for
// the entity, in type name order.
func (m *ComponentManager) componentsOf(e Entity) []any {
	out := make([]any, 0, 4)
	for _, key := range m.Types() {
		t, ok := m.lookup(key)
		if !ok {
			continue
		}
		if v, ok := t.valueAny(e); ok {
			out = append(out, v)
		}
	}
	return out
}

// Clear empties every table's rows. The tables themselves stay registered.
func (m *ComponentManager) Clear() {
	m.mu.RLock()
	tables := make([]componentTable, 0, len(m.tables))
	for _, t := range m.tables {
		tables = append(tables, t)
	}
	m.mu.RUnlock()

	for _, t := range tables {
		t.clearRows()
	}
}

func addComponent[T any](m *ComponentManager, e Entity, v T) {
	registerTable[T](m).Put(e, v)
}

func getComponent[T any](m *ComponentManager, e Entity) (T, bool) {
	t, ok := tableOf[T](m)
	if !ok {
		var zero T
		return zero, false
	}
	return t.Get(e)
}

func hasComponent[T any](m *ComponentManager, e Entity) bool {
	t, ok := tableOf[T](m)
	return ok && t.Has(e)
}

func removeComponent[T any](m *ComponentManager, e Entity) (T, bool) {
	t, ok := tableOf[T](m)
	if !ok {
		var zero T
		return zero, false
	}
	return t.Remove(e)
}

func withComponent[T any](m *ComponentManager, e Entity, fn func(*T)) {
	t, ok := tableOf[T](m)
	if !ok {
		fn(nil)
		return
	}
	t.withRead(e, fn)
}

func withComponentMut[T any](m *ComponentManager, e Entity, fn func(*T)) {
	t, ok := tableOf[T](m)
	if !ok {
		fn(nil)
		return
	}
	t.with(e, fn)
}
