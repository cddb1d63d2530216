package debugui

import (
	"fmt"
	"sort"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/tabula/ecs"
)

type TableViewerCache struct {
	tables        []ecs.TableStats
	sortColumn    int
	sortAscending bool
}

func NewTableViewerComponent() TableViewerComponent {
	return TableViewerComponent{
		cache: &TableViewerCache{
			sortColumn:    1,
			sortAscending: false,
		},
	}
}

func (tv *TableViewerComponent) Render(world *ecs.World) {
	if !imgui.BeginV("Table Viewer", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	stats := world.Stats()
	tv.cache.tables = stats.Tables
	tv.sortTables()

	imgui.Text(fmt.Sprintf("Entities: %d  Tables: %d  Resources: %d",
		stats.EntityCount, stats.TableCount, stats.ResourceCount))
	imgui.Separator()

	maxRows := 0
	for _, t := range tv.cache.tables {
		if t.Rows > maxRows {
			maxRows = t.Rows
		}
	}

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsScrollY
	if imgui.BeginTableV("ComponentTables", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Component Type")
		imgui.TableSetupColumn("Rows")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			tv.cache.sortColumn = int(spec.ColumnIndex())
			tv.cache.sortAscending = spec.SortDirection() == imgui.SortDirectionAscending
			tv.sortTables()
			sortSpecs.SetSpecsDirty(false)
		}

		for _, t := range tv.cache.tables {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			imgui.Text(t.Type)

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", t.Rows))

			if maxRows > 0 {
				barWidth := float32(t.Rows) / float32(maxRows) * 80.0
				imgui.SameLine()
				drawList := imgui.WindowDrawList()
				pos := imgui.CursorScreenPos()
				color := imgui.ColorU32Vec4(imgui.NewVec4(0.2, 0.6, 0.8, 0.6))
				drawList.AddRectFilled(pos, imgui.NewVec2(pos.X+barWidth, pos.Y+10), color)
			}
		}

		imgui.EndTable()
	}

	if len(stats.ResourceTypes) > 0 {
		imgui.Separator()
		if imgui.TreeNodeStr("Resources") {
			for _, rt := range stats.ResourceTypes {
				imgui.BulletText(rt)
			}
			imgui.TreePop()
		}
	}

	imgui.End()
}

func (tv *TableViewerComponent) sortTables() {
	sort.Slice(tv.cache.tables, func(i, j int) bool {
		a, b := tv.cache.tables[i], tv.cache.tables[j]
		var less bool

		switch tv.cache.sortColumn {
		case 0:
			less = a.Type < b.Type
		default:
			less = a.Rows < b.Rows
		}

		if !tv.cache.sortAscending {
			return !less
		}
		return less
	})
}
