package ecs_test

import (
	"testing"

	"github.com/plus3/tabula/ecs"
)

func BenchmarkSpawn(b *testing.B) {
	w := ecs.NewWorld()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ecs.SpawnWith(w, Position{X: 1.0, Y: 2.0})
	}
}

func BenchmarkSpawnWithMultipleComponents(b *testing.B) {
	w := ecs.NewWorld()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		builder := w.Spawn()
		builder = ecs.With(builder, Position{X: 1.0, Y: 2.0})
		builder = ecs.With(builder, Velocity{DX: 0.5, DY: 0.5})
		builder = ecs.With(builder, Health{Current: 100, Max: 100})
		builder.Build()
	}
}

func BenchmarkDespawn(b *testing.B) {
	w := ecs.NewWorld()
	entities := make([]ecs.Entity, b.N)
	for i := 0; i < b.N; i++ {
		entities[i] = ecs.SpawnWith(w, Position{X: 1, Y: 2})
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		w.Despawn(entities[i])
	}
}

func BenchmarkGetComponent(b *testing.B) {
	w := ecs.NewWorld()
	e := ecs.SpawnWith(w, Position{X: 1, Y: 2})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ecs.GetComponent[Position](w, e)
	}
}

func BenchmarkWithComponentMut(b *testing.B) {
	w := ecs.NewWorld()
	e := ecs.SpawnWith(w, Position{})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ecs.WithComponentMut(w, e, func(p *Position) {
			p.X++
		})
	}
}

func BenchmarkQuery1000Entities(b *testing.B) {
	w := ecs.NewWorld()
	for i := 0; i < 1000; i++ {
		ecs.SpawnWith(w, Position{X: float32(i)})
	}
	// Half the world holds an unrelated component.
	for i := 0; i < 1000; i++ {
		ecs.SpawnWith(w, Velocity{DX: float32(i)})
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ecs.Query[Position](w)
	}
}

func BenchmarkResourceMut(b *testing.B) {
	w := ecs.NewWorld()
	ecs.AddResource(w, Counter{})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ecs.WithResourceMut(w, func(c *Counter) {
			c.N++
		})
	}
}
