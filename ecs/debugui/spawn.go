package debugui

import "github.com/plus3/tabula/ecs"

// SpawnDebugUI creates one entity per debug window, each carrying an
// ImguiItem whose render closure owns the window state. The entity browser
// feeds its selection into the component inspector. Pass a nil scheduler to
// omit system timings from the performance window.
func SpawnDebugUI(w *ecs.World, scheduler *ecs.Scheduler) {
	browser := NewEntityBrowserComponent(100)
	inspector := NewComponentInspectorComponent()
	tables := NewTableViewerComponent()
	queries := NewQueryInspectorComponent()
	perf := NewPerformanceStatsComponent(120, scheduler)
	timer := NewFrameTimer()

	ecs.SpawnWith(w, ImguiItem{Render: func() {
		browser.Render(w)
		selected, ok := browser.GetSelectedEntity()
		inspector.Render(w, selected, ok)
	}})
	ecs.SpawnWith(w, ImguiItem{Render: func() {
		tables.Render(w)
	}})
	ecs.SpawnWith(w, ImguiItem{Render: func() {
		queries.Render(w)
	}})
	ecs.SpawnWith(w, ImguiItem{Render: func() {
		perf.Render(w, timer.GetDeltaTime())
	}})
}

func RegisterDebugUIComponents(w *ecs.World) {
	ecs.RegisterComponent[ImguiItem](w)
	ecs.RegisterComponent[EntityBrowserComponent](w)
	ecs.RegisterComponent[ComponentInspectorComponent](w)
	ecs.RegisterComponent[TableViewerComponent](w)
	ecs.RegisterComponent[QueryInspectorComponent](w)
	ecs.RegisterComponent[PerformanceStatsComponent](w)
}
