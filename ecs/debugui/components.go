package debugui

import "github.com/plus3/tabula/ecs"

type EntityBrowserComponent struct {
	cache              *EntityBrowserCache
	selectedEntity     ecs.Entity
	hasSelection       bool
	filterText         string
	maxEntitiesPerPage int
	currentPage        int
}

type ComponentInspectorComponent struct {
	selectedEntity ecs.Entity
	hasSelection   bool
}

type TableViewerComponent struct {
	cache *TableViewerCache
}

type QueryInspectorComponent struct {
	selectedComponentTypes map[string]bool
}

type PerformanceStatsComponent struct {
	historyFrames int
	frameHistory  []float32
	frameIndex    int
	scheduler     *ecs.Scheduler
}
