package ecs_test

import (
	"testing"

	"github.com/plus3/tabula/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpawnDespawnRoundTrip(t *testing.T) {
	w := ecs.NewWorld()

	e := w.Spawn().Build()
	assert.True(t, w.IsAlive(e))

	assert.True(t, w.Despawn(e))
	assert.False(t, w.IsAlive(e))
	assert.False(t, w.Despawn(e))
}

func TestSpawnBuilderAppliesInCallOrder(t *testing.T) {
	w := ecs.NewWorld()

	// Two attachments of the same type: the later call wins.
	b := w.Spawn()
	b = ecs.With(b, Score(1))
	b = ecs.With(b, Position{X: 1})
	b = ecs.With(b, Score(2))
	e := b.Build()

	score, ok := ecs.GetComponent[Score](w, e)
	require.True(t, ok)
	assert.Equal(t, Score(2), score)
	assert.True(t, ecs.HasComponent[Position](w, e))
}

func TestSpawnBuilderEntityAliveBeforeBuild(t *testing.T) {
	w := ecs.NewWorld()

	b := w.Spawn()
	assert.True(t, w.IsAlive(b.Entity()))
	assert.False(t, ecs.HasComponent[Position](w, b.Entity()))

	e := ecs.With(b, Position{X: 1}).Build()
	assert.Equal(t, b.Entity(), e)
	assert.True(t, ecs.HasComponent[Position](w, e))
}

func TestSpawnWith(t *testing.T) {
	w := ecs.NewWorld()

	e := ecs.SpawnWith(w, Health{Current: 5, Max: 10})
	assert.True(t, w.IsAlive(e))

	h, ok := ecs.GetComponent[Health](w, e)
	require.True(t, ok)
	assert.Equal(t, 5, h.Current)
}

func TestBuilderWithAnyRequiresRegistration(t *testing.T) {
	w := ecs.NewWorld()

	// Unregistered type: the attachment is dropped.
	e := w.Spawn().WithAny(Position{X: 1}).Build()
	assert.False(t, ecs.HasComponent[Position](w, e))

	ecs.RegisterComponent[Position](w)
	e2 := w.Spawn().WithAny(Position{X: 2}, &Velocity{DX: 3}).Build()

	p, ok := ecs.GetComponent[Position](w, e2)
	require.True(t, ok)
	assert.Equal(t, float32(2), p.X)

	// Pointer form is accepted too, but Velocity was never registered.
	assert.False(t, ecs.HasComponent[Velocity](w, e2))

	ecs.RegisterComponent[Velocity](w)
	e3 := w.Spawn().WithAny(&Velocity{DX: 4}).Build()
	v, ok := ecs.GetComponent[Velocity](w, e3)
	require.True(t, ok)
	assert.Equal(t, float32(4), v.DX)
}

func TestLivenessGatedAccess(t *testing.T) {
	w := ecs.NewWorld()
	e := ecs.SpawnWith(w, Position{X: 1, Y: 2})
	ecs.AddComponent(w, e, Name{Value: "ghost"})

	require.True(t, w.Despawn(e))

	assert.False(t, ecs.HasComponent[Position](w, e))
	assert.False(t, ecs.HasComponent[Name](w, e))

	_, ok := ecs.GetComponent[Position](w, e)
	assert.False(t, ok)

	ecs.WithComponent(w, e, func(p *Position) {
		assert.Nil(t, p)
	})
	ecs.WithComponentMut(w, e, func(p *Position) {
		assert.Nil(t, p)
	})

	// Mutating ops on a dead entity are no-ops.
	assert.False(t, ecs.AddComponent(w, e, Position{X: 9}))
	_, ok = ecs.RemoveComponent[Position](w, e)
	assert.False(t, ok)
}

func TestDespawnedIndexReuseStartsClean(t *testing.T) {
	w := ecs.NewWorld()

	e := ecs.SpawnWith(w, Position{X: 7})
	w.Despawn(e)

	// The recycled handle aliases the old index but sees none of its data.
	recycled := w.Spawn().Build()
	assert.Equal(t, e, recycled)
	assert.False(t, ecs.HasComponent[Position](w, recycled))
}

func TestScenarioPositionQuery(t *testing.T) {
	w := ecs.NewWorld()

	e1 := ecs.SpawnWith(w, Position{X: 0, Y: 0})
	e2 := w.Spawn().Build()

	entries := ecs.Query[Position](w)
	require.Len(t, entries, 1)
	assert.Equal(t, e1, entries[0].Entity)
	assert.Equal(t, Position{X: 0, Y: 0}, entries[0].Value)

	require.True(t, w.Despawn(e1))
	assert.Empty(t, ecs.Query[Position](w))
	assert.False(t, w.IsAlive(e1))
	assert.True(t, w.IsAlive(e2))
}

func TestScenarioScoreResource(t *testing.T) {
	w := ecs.NewWorld()

	ecs.AddResource(w, Score(0))
	ecs.WithResourceMut(w, func(s *Score) { *s += 5 })
	ecs.WithResource(w, func(s *Score) {
		require.NotNil(t, s)
		assert.Equal(t, Score(5), *s)
	})
}

func TestWorldClear(t *testing.T) {
	w := ecs.NewWorld()

	ecs.SpawnWith(w, Position{X: 1})
	ecs.SpawnWith(w, Health{Current: 1, Max: 1})
	ecs.AddResource(w, Score(3))

	w.Clear()

	assert.Equal(t, 0, w.EntityCount())
	assert.Empty(t, ecs.Query[Position](w))
	assert.False(t, ecs.HasResource[Score](w))

	// Tables survive a clear; new entities start from index 0 again.
	e := ecs.SpawnWith(w, Position{X: 2})
	assert.Equal(t, uint32(0), e.Index())
	assert.Len(t, ecs.Query[Position](w), 1)
}

func TestEntitiesSnapshot(t *testing.T) {
	w := ecs.NewWorld()

	e0 := w.Spawn().Build()
	e1 := w.Spawn().Build()
	e2 := w.Spawn().Build()
	w.Despawn(e1)

	assert.Equal(t, []ecs.Entity{e0, e2}, w.Entities())
	assert.Equal(t, 2, w.EntityCount())
}
