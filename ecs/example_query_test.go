package ecs_test

import (
	"fmt"

	"github.com/plus3/tabula/ecs"
)

// ExampleQuery demonstrates snapshot queries over one component type. The
// result is materialized: it pairs every live entity holding the component
// with a copy of its value, in ascending entity order.
func ExampleQuery() {
	w := ecs.NewWorld()

	ecs.SpawnWith(w, Position{X: 1, Y: 1})
	ecs.SpawnWith(w, Position{X: 2, Y: 2})
	w.Spawn().Build() // no components, never matches

	for _, entry := range ecs.Query[Position](w) {
		fmt.Printf("%v at (%.0f, %.0f)\n", entry.Entity, entry.Value.X, entry.Value.Y)
	}

	// Output:
	// entity(0) at (1, 1)
	// entity(1) at (2, 2)
}

// ExampleQuery_join shows how to compose a multi-component join from
// single-type queries by intersecting on entity id.
func ExampleQuery_join() {
	w := ecs.NewWorld()

	mover := w.Spawn()
	mover = ecs.With(mover, Position{X: 0, Y: 0})
	mover = ecs.With(mover, Velocity{DX: 3, DY: 4})
	mover.Build()

	ecs.SpawnWith(w, Position{X: 9, Y: 9}) // static, no velocity

	velocities := map[ecs.Entity]Velocity{}
	for _, entry := range ecs.Query[Velocity](w) {
		velocities[entry.Entity] = entry.Value
	}

	for _, entry := range ecs.Query[Position](w) {
		v, ok := velocities[entry.Entity]
		if !ok {
			continue
		}
		fmt.Printf("%v moving at (%.0f, %.0f)\n", entry.Entity, v.DX, v.DY)
	}

	// Output:
	// entity(0) moving at (3, 4)
}
