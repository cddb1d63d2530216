package ecs

import (
	"reflect"

	"github.com/rs/zerolog"
)

// World composes an entity manager, a component manager and a resource
// manager behind one facade. It is the only object external code should
// touch directly, and it is the enforcement point for the liveness
// invariant: components are only ever visible on live entities.
//
// A *World is safe to hand to concurrently running systems; every structure
// below it is guarded by its own reader/writer lock.
type World struct {
	entities   *EntityManager
	components *ComponentManager
	resources  *ResourceManager
	log        zerolog.Logger
}

// WorldOption configures a World at construction time.
type WorldOption func(*World)

// WithLogger routes the World's structured log output through the given
// logger. The default is a no-op logger.
func WithLogger(logger zerolog.Logger) WorldOption {
	return func(w *World) {
		w.log = logger
	}
}

// NewWorld creates an empty World.
func NewWorld(opts ...WorldOption) *World {
	w := &World{
		entities:   NewEntityManager(),
		components: NewComponentManager(),
		resources:  NewResourceManager(),
		log:        zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(w)
	}
	w.log.Debug().Msg("world created")
	return w
}

// Spawn allocates a live entity and returns a builder that defers component
// attachment until Build is called.
func (w *World) Spawn() *EntityBuilder {
	e := w.entities.Create()
	w.log.Trace().Uint32("entity", uint32(e)).Msg("entity spawned")
	return &EntityBuilder{world: w, entity: e}
}

// SpawnWith spawns an entity with a single component attached.
func SpawnWith[T any](w *World, component T) Entity {
	return With(w.Spawn(), component).Build()
}

// Despawn destroys the entity and drops all of its components. It returns
// false, without touching component storage, if the entity is not alive.
// From the public API the two steps are not observably separable: once
// Despawn returns true, no component of the entity is reachable through the
// World.
func (w *World) Despawn(e Entity) bool {
	if !w.entities.Destroy(e) {
		return false
	}
	w.components.RemoveAll(e)
	w.log.Trace().Uint32("entity", uint32(e)).Msg("entity despawned")
	return true
}

// IsAlive reports whether the entity is currently spawned.
func (w *World) IsAlive(e Entity) bool {
	return w.entities.IsAlive(e)
}

// EntityCount returns the number of live entities.
func (w *World) EntityCount() int {
	return w.entities.AliveCount()
}

// Entities returns a materialized snapshot of all live entities in ascending
// index order.
func (w *World) Entities() []Entity {
	return w.entities.Alive()
}

// Clear resets the World: all entities destroyed, all component rows and
// resources dropped. Component tables and resource slots stay registered.
func (w *World) Clear() {
	w.entities.Clear()
	w.components.Clear()
	w.resources.Clear()
	w.log.Debug().Msg("world cleared")
}

// ComponentTypes returns every component type a table has been registered
// for, sorted by name.
func (w *World) ComponentTypes() []reflect.Type {
	return w.components.Types()
}

// ComponentsOf returns copies of every component currently attached to the
// entity, in type name order. Dead entities have no components.
func (w *World) ComponentsOf(e Entity) []any {
	if !w.entities.IsAlive(e) {
		return nil
	}
	return w.components.componentsOf(e)
}

// Logger returns the World's logger for callers that want sub-loggers
// scoped to their own subsystem.
func (w *World) Logger() zerolog.Logger {
	return w.log
}

// addAny attaches a boxed component to a live entity. The component's type
// must already have a registered table; see RegisterComponent.
func (w *World) addAny(e Entity, component any) bool {
	if !w.entities.IsAlive(e) {
		return false
	}
	return w.components.insertAny(e, component)
}

// ReplaceComponent attaches (or overwrites) a boxed component value on a
// live entity. This is the dynamically typed counterpart of AddComponent:
// the value's type must already have a registered table, so it can never
// create new storage. Used by tooling that discovers component types at
// runtime, such as the debug UI's inspector.
func (w *World) ReplaceComponent(e Entity, component any) bool {
	return w.addAny(e, component)
}

// removeByType detaches the component of the given type from a live entity.
func (w *World) removeByType(e Entity, key reflect.Type) bool {
	if !w.entities.IsAlive(e) {
		return false
	}
	return w.components.removeType(e, key)
}

// RegisterComponent idempotently creates the storage table for T. Generic
// accessors register lazily on their own; explicit registration is only
// needed before dynamically typed attachment (EntityBuilder.WithAny,
// Commands.Spawn).
func RegisterComponent[T any](w *World) {
	registerTable[T](w.components)
}

// AddComponent attaches (or overwrites) a component on a live entity,
// registering T's table if needed. It returns false if the entity is dead.
func AddComponent[T any](w *World, e Entity, component T) bool {
	if !w.entities.IsAlive(e) {
		return false
	}
	addComponent(w.components, e, component)
	return true
}

// GetComponent returns a copy of the entity's T component. A dead entity,
// like one that never had a T, reports absence.
func GetComponent[T any](w *World, e Entity) (T, bool) {
	if !w.entities.IsAlive(e) {
		var zero T
		return zero, false
	}
	return getComponent[T](w.components, e)
}

// HasComponent reports whether a live entity has a T component.
func HasComponent[T any](w *World, e Entity) bool {
	return w.entities.IsAlive(e) && hasComponent[T](w.components, e)
}

// RemoveComponent detaches and returns the entity's T component, if the
// entity is alive and has one.
func RemoveComponent[T any](w *World, e Entity) (T, bool) {
	if !w.entities.IsAlive(e) {
		var zero T
		return zero, false
	}
	return removeComponent[T](w.components, e)
}

// WithComponent runs fn with a scoped read-only borrow of the entity's T
// component, or nil if the entity is dead or has no T. The table's read lock
// is held for the duration of fn.
func WithComponent[T any](w *World, e Entity, fn func(*T)) {
	if !w.entities.IsAlive(e) {
		fn(nil)
		return
	}
	withComponent(w.components, e, fn)
}

// WithComponentMut runs fn with a scoped mutable borrow of the entity's T
// component, or nil if the entity is dead or has no T. The table's write
// lock is held for the duration of fn, so fn must not re-enter the same
// table; touching a different table or a resource from inside fn is safe.
func WithComponentMut[T any](w *World, e Entity, fn func(*T)) {
	if !w.entities.IsAlive(e) {
		fn(nil)
		return
	}
	withComponentMut(w.components, e, fn)
}

// WithTable hands fn the typed table for T (nil if unregistered). This is
// the bulk escape hatch; prefer Query for live-entity snapshots, since raw
// tables can hold orphan rows for entities that have died.
func WithTable[T any](w *World, fn func(*Table[T])) {
	t, ok := tableOf[T](w.components)
	if !ok {
		fn(nil)
		return
	}
	fn(t)
}

// AddResource sets the World's singleton of type T, silently replacing any
// existing value.
func AddResource[T any](w *World, v T) {
	addResource(w.resources, v)
}

// HasResource reports whether a resource of type T is present.
func HasResource[T any](w *World) bool {
	return hasResource[T](w.resources)
}

// RemoveResource removes and returns the T resource, if present.
func RemoveResource[T any](w *World) (T, bool) {
	return removeResource[T](w.resources)
}

// WithResource runs fn with a scoped read-only borrow of the T resource, or
// nil if absent.
func WithResource[T any](w *World, fn func(*T)) {
	withResource(w.resources, fn)
}

// WithResourceMut runs fn with a scoped mutable borrow of the T resource, or
// nil if absent. The resource's write lock is held for the duration of fn;
// fn must not re-enter the same resource type.
func WithResourceMut[T any](w *World, fn func(*T)) {
	withResourceMut(w.resources, fn)
}
