package ecs_test

import (
	"fmt"

	"github.com/plus3/tabula/ecs"
)

// ExampleWorld demonstrates the basic API for managing entities and
// components. The World stores one sparse table per component type; an
// entity holds at most one component of each type, and components are only
// visible while their entity is alive.
func ExampleWorld() {
	w := ecs.NewWorld()

	player := w.Spawn()
	player = ecs.With(player, Position{X: 10, Y: 20})
	player = ecs.With(player, Health{Current: 100, Max: 100})
	e := player.Build()

	pos, _ := ecs.GetComponent[Position](w, e)
	fmt.Printf("Player spawned at (%.0f, %.0f)\n", pos.X, pos.Y)

	ecs.WithComponentMut(w, e, func(p *Position) {
		p.X = 15
		p.Y = 25
	})
	pos, _ = ecs.GetComponent[Position](w, e)
	fmt.Printf("Player moved to (%.0f, %.0f)\n", pos.X, pos.Y)

	w.Despawn(e)
	fmt.Printf("Player alive: %v\n", w.IsAlive(e))

	// Output:
	// Player spawned at (10, 20)
	// Player moved to (15, 25)
	// Player alive: false
}

// ExampleWorld_indexRecycling shows the free-list behavior: the most
// recently despawned index is reused first, and the recycled entity starts
// with no components.
func ExampleWorld_indexRecycling() {
	w := ecs.NewWorld()

	first := ecs.SpawnWith(w, Name{Value: "old"})
	w.Despawn(first)

	second := w.Spawn().Build()
	fmt.Printf("Index reused: %v\n", first == second)
	_, hasName := ecs.GetComponent[Name](w, second)
	fmt.Printf("Recycled entity has old data: %v\n", hasName)

	// Output:
	// Index reused: true
	// Recycled entity has old data: false
}
