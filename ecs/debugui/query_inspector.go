package debugui

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/tabula/ecs"
)

const queryInspectorMaxDetailRows = 200

func NewQueryInspectorComponent() QueryInspectorComponent {
	return QueryInspectorComponent{
		selectedComponentTypes: make(map[string]bool),
	}
}

func (qi *QueryInspectorComponent) Render(world *ecs.World) {
	if !imgui.BeginV("Query Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Text("Select Component Types:")
	imgui.Separator()

	if imgui.Button("Clear All") {
		qi.selectedComponentTypes = make(map[string]bool)
	}

	for _, compType := range world.ComponentTypes() {
		name := compType.String()
		selected := qi.selectedComponentTypes[name]
		if imgui.Checkbox(name, &selected) {
			if selected {
				qi.selectedComponentTypes[name] = true
			} else {
				delete(qi.selectedComponentTypes, name)
			}
		}
	}

	imgui.Separator()

	if len(qi.selectedComponentTypes) == 0 {
		imgui.Text("No component types selected")
		imgui.End()
		return
	}

	type match struct {
		entity     ecs.Entity
		components []string
	}

	matches := make([]match, 0)
	for _, e := range world.Entities() {
		names := componentTypeNames(world.ComponentsOf(e))
		if !hasAllTypes(names, qi.selectedComponentTypes) {
			continue
		}
		matches = append(matches, match{entity: e, components: names})
	}

	imgui.Text(fmt.Sprintf("Matching Entities: %d", len(matches)))

	if imgui.TreeNodeStr("Entity Details") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("QueryMatchTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Entity")
			imgui.TableSetupColumn("All Components")
			imgui.TableHeadersRow()

			for i, m := range matches {
				if i >= queryInspectorMaxDetailRows {
					break
				}
				imgui.TableNextRow()

				imgui.TableSetColumnIndex(0)
				imgui.Text(m.entity.String())

				imgui.TableSetColumnIndex(1)
				imgui.Text(strings.Join(m.components, ", "))
			}

			imgui.EndTable()
		}
		if len(matches) > queryInspectorMaxDetailRows {
			imgui.Text(fmt.Sprintf("... and %d more", len(matches)-queryInspectorMaxDetailRows))
		}
		imgui.TreePop()
	}

	imgui.End()
}

func componentTypeNames(components []any) []string {
	names := make([]string, len(components))
	for i, c := range components {
		names[i] = reflect.TypeOf(c).String()
	}
	return names
}

func hasAllTypes(names []string, required map[string]bool) bool {
	present := make(map[string]bool, len(names))
	for _, n := range names {
		present[n] = true
	}
	for r := range required {
		if !present[r] {
			return false
		}
	}
	return true
}
