package debugui

import (
	"fmt"
	"reflect"

	"github.com/AllenDang/cimgui-go/imgui"
	json "github.com/goccy/go-json"
	"github.com/plus3/tabula/ecs"
)

func NewComponentInspectorComponent() ComponentInspectorComponent {
	return ComponentInspectorComponent{}
}

func (ci *ComponentInspectorComponent) Render(world *ecs.World, selected ecs.Entity, hasSelection bool) {
	if !imgui.BeginV("Component Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	ci.selectedEntity = selected
	ci.hasSelection = hasSelection

	if !ci.hasSelection {
		imgui.Text("No entity selected")
		imgui.End()
		return
	}

	if !world.IsAlive(ci.selectedEntity) {
		imgui.Text(fmt.Sprintf("%s is no longer alive", ci.selectedEntity))
		imgui.End()
		return
	}

	components := world.ComponentsOf(ci.selectedEntity)

	imgui.Text(ci.selectedEntity.String())
	imgui.Text(fmt.Sprintf("Components: %d", len(components)))
	imgui.Separator()

	for _, component := range components {
		compType := reflect.TypeOf(component)
		if imgui.TreeNodeStr(compType.String()) {
			ci.renderComponent(world, component, compType)
			imgui.TreePop()
		}
	}

	imgui.End()
}

func (ci *ComponentInspectorComponent) renderComponent(world *ecs.World, component any, compType reflect.Type) {
	val := reflect.ValueOf(component)
	if val.Kind() != reflect.Struct {
		imgui.Text(fmt.Sprintf("value: %v", component))
		return
	}

	fields := globalReflectionCache.GetFields(compType)
	if len(fields) == 0 {
		imgui.Text("(no exported fields)")
		return
	}

	for _, field := range fields {
		fieldVal := val.Field(field.Index)
		if field.IsPointer && !fieldVal.IsNil() {
			fieldVal = fieldVal.Elem()
		}
		ci.renderField(world, compType, field, fieldVal)
	}
}

func (ci *ComponentInspectorComponent) renderField(world *ecs.World, compType reflect.Type, field FieldInfo, val reflect.Value) {
	if !val.IsValid() {
		imgui.Text(fmt.Sprintf("%s: <invalid>", field.Name))
		return
	}

	if field.IsPointer && val.Kind() == reflect.Ptr && val.IsNil() {
		imgui.Text(fmt.Sprintf("%s: nil", field.Name))
		return
	}

	label := fmt.Sprintf("##%s.%s", compType.String(), field.Name)

	switch val.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v := int32(val.Int())
		imgui.Text(fmt.Sprintf("%s:", field.Name))
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputInt(label, &v) {
			ci.updateField(world, compType, field.Index, func(f reflect.Value) {
				f.SetInt(int64(v))
			})
		}

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v := int32(val.Uint())
		imgui.Text(fmt.Sprintf("%s:", field.Name))
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputInt(label, &v) {
			if v >= 0 {
				ci.updateField(world, compType, field.Index, func(f reflect.Value) {
					f.SetUint(uint64(v))
				})
			}
		}

	case reflect.Float32, reflect.Float64:
		v := float32(val.Float())
		imgui.Text(fmt.Sprintf("%s:", field.Name))
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputFloat(label, &v) {
			ci.updateField(world, compType, field.Index, func(f reflect.Value) {
				f.SetFloat(float64(v))
			})
		}

	case reflect.Bool:
		v := val.Bool()
		if imgui.Checkbox(fmt.Sprintf("%s%s", field.Name, label), &v) {
			ci.updateField(world, compType, field.Index, func(f reflect.Value) {
				f.SetBool(v)
			})
		}

	case reflect.String:
		v := val.String()
		imgui.Text(fmt.Sprintf("%s:", field.Name))
		imgui.SameLine()
		imgui.SetNextItemWidth(200)
		if imgui.InputTextWithHint(label, "", &v, imgui.InputTextFlagsNone, nil) {
			ci.updateField(world, compType, field.Index, func(f reflect.Value) {
				f.SetString(v)
			})
		}

	case reflect.Struct, reflect.Slice, reflect.Map:
		if imgui.TreeNodeStr(field.Name) {
			imgui.TextWrapped(dumpJSON(val.Interface()))
			imgui.TreePop()
		}

	default:
		imgui.Text(fmt.Sprintf("%s: %v", field.Name, val.Interface()))
	}
}

// updateField re-reads the live component value, mutates one top-level field
// on a copy, and writes the copy back. Tables hand out copies, so editing the
// reflected value in place would be lost without the write-back.
func (ci *ComponentInspectorComponent) updateField(world *ecs.World, compType reflect.Type, fieldIdx int, set func(reflect.Value)) {
	var current any
	for _, c := range world.ComponentsOf(ci.selectedEntity) {
		if reflect.TypeOf(c) == compType {
			current = c
			break
		}
	}
	if current == nil {
		return
	}

	boxed := reflect.New(compType).Elem()
	boxed.Set(reflect.ValueOf(current))

	field := boxed.Field(fieldIdx)
	if !field.CanSet() {
		return
	}
	set(field)

	world.ReplaceComponent(ci.selectedEntity, boxed.Interface())
}

func dumpJSON(v any) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}
