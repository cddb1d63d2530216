package ecs

// EntityBuilder accumulates component attachments for an entity spawned via
// World.Spawn and applies them, in call order, when Build is called. The
// entity itself is already allocated and alive; only the attachments are
// deferred.
type EntityBuilder struct {
	world   *World
	entity  Entity
	pending []func(*World, Entity)
}

// With queues a component attachment on the builder. The generic path
// registers T's table lazily, so no prior RegisterComponent call is needed.
func With[T any](b *EntityBuilder, component T) *EntityBuilder {
	b.pending = append(b.pending, func(w *World, e Entity) {
		addComponent(w.components, e, component)
	})
	return b
}

// WithAny queues attachments of boxed component values. Unlike With, each
// value's type must already have a registered table; unregistered values are
// dropped at Build time.
func (b *EntityBuilder) WithAny(components ...any) *EntityBuilder {
	for _, c := range components {
		component := c
		b.pending = append(b.pending, func(w *World, e Entity) {
			w.components.insertAny(e, component)
		})
	}
	return b
}

// Entity returns the handle the builder is assembling.
func (b *EntityBuilder) Entity() Entity {
	return b.entity
}

// Build applies the queued attachments in call order and returns the entity.
func (b *EntityBuilder) Build() Entity {
	for _, attach := range b.pending {
		attach(b.world, b.entity)
	}
	b.pending = nil
	return b.entity
}
