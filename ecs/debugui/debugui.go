// Package debugui provides immediate-mode GUI integration for ECS
// applications using Dear ImGui. It manages ImGui rendering and input state
// through ECS components, systems and resources.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/tabula/ecs"
)

// ImguiItem is a component that holds a Dear ImGui render function.
// Attach this to entities that should render ImGui widgets each frame.
type ImguiItem struct {
	Render func()
}

// ImguiInputState tracks Dear ImGui's input capture state as a World
// resource. Use this to determine if ImGui is consuming mouse or keyboard
// input before feeding events to game systems.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem queries all ImguiItem components and defers their render
// functions to the end of the frame. It also refreshes the ImguiInputState
// resource with the current capture state.
type ImguiSystem struct{}

// Execute updates input state and queues all ImGui render functions.
func (ImguiSystem) Execute(frame *ecs.UpdateFrame) {
	state := ImguiInputState{
		WantCaptureMouse:    imgui.CurrentIO().WantCaptureMouse(),
		WantCaptureKeyboard: imgui.CurrentIO().WantCaptureKeyboard(),
	}
	ecs.AddResource(frame.World, state)

	for _, entry := range ecs.Query[ImguiItem](frame.World) {
		frame.Commands.Defer(entry.Value.Render)
	}
}
