package ecs

import (
	"reflect"
	"sync"

	"github.com/kamstrup/intmap"
)

const tableInitialCapacity = 64

// componentTable is the type-erased capability surface the component manager
// holds for every registered component type: remove-by-entity, clear, and
// enough introspection for diagnostics. The concrete typed table is reached
// by a checked downcast in the generic accessors.
type componentTable interface {
	componentType() reflect.Type
	removeEntity(e Entity) bool
	insertAny(e Entity, component any) bool
	valueAny(e Entity) (any, bool)
	rowCount() int
	clearRows()
}

// Table stores one component type's rows as a map from entity to value,
// guarded by its own reader/writer lock. Tables are created lazily on first
// use and persist for the lifetime of their component manager; only rows
// come and go.
type Table[T any] struct {
	mu   sync.RWMutex
	rows *intmap.Map[Entity, T]
}

func newTable[T any]() *Table[T] {
	return &Table[T]{rows: intmap.New[Entity, T](tableInitialCapacity)}
}

// Get returns a copy of the entity's row, if present.
func (t *Table[T]) Get(e Entity) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.rows.Get(e)
}

// Put inserts or overwrites the entity's row.
func (t *Table[T]) Put(e Entity, v T) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rows.Put(e, v)
}

// Remove removes the entity's row and returns it, if present.
func (t *Table[T]) Remove(e Entity) (T, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	v, ok := t.rows.Get(e)
	if ok {
		t.rows.Del(e)
	}
	return v, ok
}

// Has reports whether the entity has a row.
func (t *Table[T]) Has(e Entity) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.rows.Get(e)
	return ok
}

// Len returns the current row count, including any rows orphaned by entities
// that died without going through the World.
func (t *Table[T]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.rows.Len()
}

// with runs fn while holding the write lock, handing it a pointer to the
// entity's row (nil if absent). Mutations through the pointer are written
// back before the lock is released. fn must not touch this table again or
// it will deadlock; other tables and resources are fair game.
func (t *Table[T]) with(e Entity, fn func(*T)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	v, ok := t.rows.Get(e)
	if !ok {
		fn(nil)
		return
	}
	fn(&v)
	t.rows.Put(e, v)
}

// withRead is the read-only variant of with: fn sees a pointer to a copy,
// mutations are discarded.
func (t *Table[T]) withRead(e Entity, fn func(*T)) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	v, ok := t.rows.Get(e)
	if !ok {
		fn(nil)
		return
	}
	fn(&v)
}

func (t *Table[T]) componentType() reflect.Type {
	return reflect.TypeFor[T]()
}

func (t *Table[T]) removeEntity(e Entity) bool {
	_, ok := t.Remove(e)
	return ok
}

// insertAny inserts a boxed component value, accepting either T or *T the
// way spawn-style call sites pass components. Values of any other type are
// rejected.
func (t *Table[T]) insertAny(e Entity, component any) bool {
	switch v := component.(type) {
	case T:
		t.Put(e, v)
		return true
	case *T:
		t.Put(e, *v)
		return true
	default:
		return false
	}
}

func (t *Table[T]) valueAny(e Entity) (any, bool) {
	v, ok := t.Get(e)
	if !ok {
		return nil, false
	}
	return v, true
}

func (t *Table[T]) rowCount() int {
	return t.Len()
}

func (t *Table[T]) clearRows() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rows.Clear()
}
