package ecs_test

import (
	"testing"

	"github.com/plus3/tabula/ecs"
	"github.com/stretchr/testify/assert"
)

func TestEntityManagerCreateDestroyRoundTrip(t *testing.T) {
	m := ecs.NewEntityManager()

	e := m.Create()
	assert.True(t, m.IsAlive(e))

	assert.True(t, m.Destroy(e))
	assert.False(t, m.IsAlive(e))

	// Second destroy on the same handle is a no-op
	assert.False(t, m.Destroy(e))
}

func TestEntityManagerIndexZeroIsValid(t *testing.T) {
	m := ecs.NewEntityManager()

	e := m.Create()
	assert.Equal(t, uint32(0), e.Index())
	assert.True(t, m.IsAlive(e))
}

func TestEntityManagerFreshIndicesAreSequential(t *testing.T) {
	m := ecs.NewEntityManager()

	for i := uint32(0); i < 10; i++ {
		assert.Equal(t, i, m.Create().Index())
	}
	assert.Equal(t, 10, m.AliveCount())
}

func TestEntityManagerIndexReuseIsLIFO(t *testing.T) {
	m := ecs.NewEntityManager()

	entities := make([]ecs.Entity, 5)
	for i := range entities {
		entities[i] = m.Create()
	}

	// Destroy in ascending order; the free list pops most recent first.
	m.Destroy(entities[2])
	m.Destroy(entities[4])

	assert.Equal(t, entities[4], m.Create())
	assert.Equal(t, entities[2], m.Create())

	// Free list exhausted, back to fresh indices.
	assert.Equal(t, uint32(5), m.Create().Index())
}

func TestEntityManagerRecycledEntityIsAlive(t *testing.T) {
	m := ecs.NewEntityManager()

	e := m.Create()
	m.Destroy(e)
	recycled := m.Create()

	assert.Equal(t, e, recycled)
	assert.True(t, m.IsAlive(recycled))
}

func TestEntityManagerIsAliveBeyondHighWaterMark(t *testing.T) {
	m := ecs.NewEntityManager()
	m.Create()

	assert.False(t, m.IsAlive(ecs.Entity(1)))
	assert.False(t, m.IsAlive(ecs.Entity(1_000_000)))
}

func TestEntityManagerAliveSnapshot(t *testing.T) {
	m := ecs.NewEntityManager()

	e0 := m.Create()
	e1 := m.Create()
	e2 := m.Create()
	m.Destroy(e1)

	alive := m.Alive()
	assert.Equal(t, []ecs.Entity{e0, e2}, alive)

	// Destroys after the snapshot do not reflect in it.
	m.Destroy(e0)
	assert.Equal(t, []ecs.Entity{e0, e2}, alive)
	assert.Equal(t, 1, m.AliveCount())
}

func TestEntityManagerClear(t *testing.T) {
	m := ecs.NewEntityManager()

	for i := 0; i < 8; i++ {
		m.Create()
	}
	m.Destroy(ecs.Entity(3))
	m.Clear()

	assert.Equal(t, 0, m.AliveCount())
	assert.Empty(t, m.Alive())

	// Allocation restarts at index 0 with an empty free list.
	assert.Equal(t, uint32(0), m.Create().Index())
	assert.Equal(t, uint32(1), m.Create().Index())
}
