// Command ecs-stress-gen emits the generated component and system set used
// by cmd/ecs-stress. Regenerate with:
//
//	go run ./cmd/ecs-stress-gen -components 16 -systems 8 -out cmd/ecs-stress/components_gen.go
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"text/template"

	"github.com/rotisserie/eris"
	"golang.org/x/tools/imports"
)

const fileTemplate = `// Code generated by ecs-stress-gen. DO NOT EDIT.

package main

import (
	"math/rand"

	"github.com/plus3/tabula/ecs"
)

const (
	GeneratedComponentCount = {{len .Components}}
	GeneratedSystemCount    = {{len .Systems}}
)

{{range .Components}}
type {{.Name}} struct {
	X     float64
	Y     float64
	Ticks int64
}
{{end}}

func RegisterAllGeneratedComponents(w *ecs.World) {
{{- range .Components}}
	ecs.RegisterComponent[{{.Name}}](w)
{{- end}}
}

var generatedComponentFactories = []func() any{
{{- range .Components}}
	func() any { return {{.Name}}{X: rand.Float64(), Y: rand.Float64()} },
{{- end}}
}

// RandomComponentSet returns n freshly built components of distinct random types.
func RandomComponentSet(n int) []any {
	if n > len(generatedComponentFactories) {
		n = len(generatedComponentFactories)
	}
	components := make([]any, 0, n)
	for _, idx := range rand.Perm(len(generatedComponentFactories))[:n] {
		components = append(components, generatedComponentFactories[idx]())
	}
	return components
}

// SpawnRandomEntity spawns one entity carrying n distinct random components.
func SpawnRandomEntity(w *ecs.World, n int) ecs.Entity {
	return w.Spawn().WithAny(RandomComponentSet(n)...).Build()
}

{{range .Systems}}
type {{.Name}} struct{}

func ({{.Name}}) Execute(frame *ecs.UpdateFrame) {
	for _, e := range ecs.QueryEntities[{{.Target}}](frame.World) {
		ecs.WithComponentMut(frame.World, e, func(c *{{.Target}}) {
			if c == nil {
				return
			}
			c.X += c.Y * frame.DeltaTime
			c.Ticks++
		})
	}
}
{{end}}

func RegisterAllGeneratedSystems(s *ecs.Scheduler) {
{{- range .Systems}}
	s.Register({{.Name}}{})
{{- end}}
}
`

type componentSpec struct {
	Name string
}

type systemSpec struct {
	Name   string
	Target string
}

func main() {
	componentCount := flag.Int("components", 16, "Number of component types to generate.")
	systemCount := flag.Int("systems", 8, "Number of systems to generate.")
	out := flag.String("out", "cmd/ecs-stress/components_gen.go", "Output file path.")
	flag.Parse()

	if err := run(*componentCount, *systemCount, *out); err != nil {
		fmt.Fprintf(os.Stderr, "ecs-stress-gen: %v\n", err)
		os.Exit(1)
	}
}

func run(componentCount, systemCount int, out string) error {
	if componentCount < 1 || systemCount < 1 {
		return eris.New("component and system counts must be positive")
	}

	data := struct {
		Components []componentSpec
		Systems    []systemSpec
	}{}
	for i := 0; i < componentCount; i++ {
		data.Components = append(data.Components, componentSpec{
			Name: fmt.Sprintf("Comp%02d", i),
		})
	}
	for i := 0; i < systemCount; i++ {
		data.Systems = append(data.Systems, systemSpec{
			Name:   fmt.Sprintf("System%02d", i),
			Target: fmt.Sprintf("Comp%02d", (i*2)%componentCount),
		})
	}

	tmpl, err := template.New("components_gen").Parse(fileTemplate)
	if err != nil {
		return eris.Wrap(err, "parsing template")
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return eris.Wrap(err, "rendering template")
	}

	formatted, err := imports.Process(out, buf.Bytes(), nil)
	if err != nil {
		return eris.Wrap(err, "formatting generated source")
	}

	if err := os.WriteFile(out, formatted, 0o644); err != nil {
		return eris.Wrapf(err, "writing %q", out)
	}
	return nil
}
