package ecs

// UpdateFrame is the per-update context handed to every system: the elapsed
// time since the previous update, the shared World, and a command buffer for
// structural changes that should apply after all systems have run.
type UpdateFrame struct {
	DeltaTime float64
	Commands  *Commands
	World     *World
}

func newUpdateFrame(dt float64, world *World) *UpdateFrame {
	return &UpdateFrame{
		DeltaTime: dt,
		Commands:  newCommands(),
		World:     world,
	}
}
