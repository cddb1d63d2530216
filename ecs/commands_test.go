package ecs_test

import (
	"reflect"
	"testing"

	"github.com/plus3/tabula/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSystem struct {
	execute func(frame *ecs.UpdateFrame)
}

func (s *recordingSystem) Execute(frame *ecs.UpdateFrame) {
	s.execute(frame)
}

func TestCommandsDeferStructuralChanges(t *testing.T) {
	w := ecs.NewWorld()
	ecs.RegisterComponent[Position](w)
	scheduler := ecs.NewScheduler(w)

	scheduler.Register(&recordingSystem{execute: func(frame *ecs.UpdateFrame) {
		frame.Commands.Spawn(Position{X: 1})
		// Nothing is spawned until the frame's flush.
		assert.Equal(t, 0, frame.World.EntityCount())
	}})

	scheduler.Once(0.016)
	assert.Equal(t, 1, w.EntityCount())
	assert.Len(t, ecs.Query[Position](w), 1)
}

func TestCommandsDespawnWinsOverLaterOps(t *testing.T) {
	w := ecs.NewWorld()
	ecs.RegisterComponent[Position](w)
	e := ecs.SpawnWith(w, Position{X: 1})

	frameCommands := capturedCommands(w, func(c *ecs.Commands) {
		c.AddComponent(e, Position{X: 2})
		c.Despawn(e)
	})
	frameCommands.Flush(w)

	assert.False(t, w.IsAlive(e))
	assert.Empty(t, ecs.Query[Position](w))
}

// capturedCommands runs fn against a frame's command buffer without flushing,
// so tests can flush explicitly.
func capturedCommands(w *ecs.World, fn func(*ecs.Commands)) *ecs.Commands {
	var captured *ecs.Commands
	scheduler := ecs.NewScheduler(w)
	scheduler.Register(&recordingSystem{execute: func(frame *ecs.UpdateFrame) {
		captured = frame.Commands
	}})
	scheduler.Once(0)
	fn(captured)
	return captured
}

func TestCommandsRemoveComponent(t *testing.T) {
	w := ecs.NewWorld()
	e := ecs.SpawnWith(w, Position{X: 1})
	ecs.AddComponent(w, e, Velocity{DX: 2})

	c := capturedCommands(w, func(c *ecs.Commands) {
		c.RemoveComponent(e, reflect.TypeOf(Velocity{}))
	})
	c.Flush(w)

	assert.True(t, ecs.HasComponent[Position](w, e))
	assert.False(t, ecs.HasComponent[Velocity](w, e))
}

func TestCommandsAddComponent(t *testing.T) {
	w := ecs.NewWorld()
	ecs.RegisterComponent[Velocity](w)
	e := w.Spawn().Build()

	c := capturedCommands(w, func(c *ecs.Commands) {
		c.AddComponent(e, Velocity{DX: 5})
	})
	c.Flush(w)

	v, ok := ecs.GetComponent[Velocity](w, e)
	require.True(t, ok)
	assert.Equal(t, float32(5), v.DX)
}

func TestCommandsSpawnMultipleComponents(t *testing.T) {
	w := ecs.NewWorld()
	ecs.RegisterComponent[Position](w)
	ecs.RegisterComponent[Velocity](w)

	c := capturedCommands(w, func(c *ecs.Commands) {
		c.Spawn(Position{X: 1}, &Velocity{DX: 2})
	})
	c.Flush(w)

	entries := ecs.Query[Position](w)
	require.Len(t, entries, 1)
	assert.True(t, ecs.HasComponent[Velocity](w, entries[0].Entity))
}

func TestCommandsDeferRunsLast(t *testing.T) {
	w := ecs.NewWorld()
	ecs.RegisterComponent[Position](w)

	sawSpawn := false
	c := capturedCommands(w, func(c *ecs.Commands) {
		c.Spawn(Position{X: 1})
		c.Defer(func() {
			sawSpawn = len(ecs.Query[Position](w)) == 1
		})
	})
	c.Flush(w)

	assert.True(t, sawSpawn, "deferred fn should observe flushed spawns")
}

func TestCommandsBufferResetsAfterFlush(t *testing.T) {
	w := ecs.NewWorld()
	ecs.RegisterComponent[Position](w)

	c := capturedCommands(w, func(c *ecs.Commands) {
		c.Spawn(Position{})
	})
	c.Flush(w)
	assert.Equal(t, 1, w.EntityCount())

	// A second flush must not replay the spawn.
	c.Flush(w)
	assert.Equal(t, 1, w.EntityCount())
}
