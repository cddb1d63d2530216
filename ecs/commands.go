package ecs

import "reflect"

// Commands buffers structural World changes for execution at the end of a
// frame, keeping spawns and despawns out of system iteration. Despawns apply
// first, then component removals, additions, spawns, and finally deferred
// functions.
type Commands struct {
	spawns   []spawnCommand
	despawns []Entity
	adds     []addComponentCommand
	removes  []removeComponentCommand
	defers   []func()
}

func newCommands() *Commands {
	return &Commands{}
}

type spawnCommand struct {
	components []any
}

type addComponentCommand struct {
	entity    Entity
	component any
}

type removeComponentCommand struct {
	entity Entity
	key    reflect.Type
}

// Defer queues an arbitrary function to run after all structural changes.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Spawn queues an entity spawn with the given boxed components. Each
// component's type must have a registered table by flush time.
func (c *Commands) Spawn(components ...any) {
	c.spawns = append(c.spawns, spawnCommand{components: components})
}

// Despawn queues an entity despawn.
func (c *Commands) Despawn(e Entity) {
	c.despawns = append(c.despawns, e)
}

// AddComponent queues a component attachment.
func (c *Commands) AddComponent(e Entity, component any) {
	c.adds = append(c.adds, addComponentCommand{entity: e, component: component})
}

// RemoveComponent queues removal of the entity's component of the given
// type.
func (c *Commands) RemoveComponent(e Entity, key reflect.Type) {
	c.removes = append(c.removes, removeComponentCommand{entity: e, key: key})
}

// Flush applies all queued commands to the world and resets the buffer.
// Operations against entities despawned earlier in the same flush are
// skipped.
func (c *Commands) Flush(w *World) {
	despawned := make(map[Entity]bool)

	for _, e := range c.despawns {
		w.Despawn(e)
		despawned[e] = true
	}

	for _, cmd := range c.removes {
		if !despawned[cmd.entity] {
			w.removeByType(cmd.entity, cmd.key)
		}
	}

	for _, cmd := range c.adds {
		if !despawned[cmd.entity] {
			w.addAny(cmd.entity, cmd.component)
		}
	}

	for _, cmd := range c.spawns {
		w.Spawn().WithAny(cmd.components...).Build()
	}

	for _, fn := range c.defers {
		fn()
	}

	c.spawns = c.spawns[:0]
	c.despawns = c.despawns[:0]
	c.adds = c.adds[:0]
	c.removes = c.removes[:0]
	c.defers = c.defers[:0]
}
