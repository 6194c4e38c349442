package main

import (
	"bytes"
	"fmt"
	"go/format"
	"text/template"
)

// templateData is the input passed to genTemplate.
type templateData struct {
	Package    string
	Dimensions []DimensionSpec
	Laws       []law
}

// render executes genTemplate and gofmt-formats the result.
func render(spec Spec) ([]byte, error) {
	data := templateData{
		Package:    spec.Package,
		Dimensions: spec.Dimensions,
		Laws:       deriveLaws(spec.Dimensions),
	}

	var buf bytes.Buffer
	if err := genTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("unitgen: execute template: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("unitgen: format generated source: %w", err)
	}
	return src, nil
}

// genTemplate is the Go source template for the generated table.
var genTemplate = template.Must(
	template.New("unitgen").Parse(`// Code generated by unitgen; DO NOT EDIT.

package {{.Package}}

import "golang.org/x/exp/constraints"
{{range .Dimensions}}
// {{.Unit}} tags {{.Name}} quantities: {{.Exponents}}.
type {{.Unit}} struct{}

// Dimension implements Unit.
func ({{.Unit}}) Dimension() Dimension {
	return Dimension{Metre: {{.Metre}}, Kilogram: {{.Kilogram}}, Second: {{.Second}}}
}

// Symbol implements Unit.
func ({{.Unit}}) Symbol() string { return {{printf "%q" .Symbol}} }

func ({{.Unit}}) unit() {}

// {{.Name}} is a quantity tagged with {{.Unit}}.
type {{.Name}} = Value[{{.Unit}}]

// {{.Constructor}} builds a {{.Name}} from a floating-point magnitude.
func {{.Constructor}}[F constraints.Float](magnitude F) {{.Name}} {
	return {{.Name}}{magnitude: float64(magnitude)}
}
{{end}}
{{- range .Laws}}
// {{.Name}} {{.Verb}} {{.Left.Name}} by {{.Right.Name}}, yielding {{.Result.Name}}.
func {{.Name}}(a {{.Left.Name}}, b {{.Right.Name}}) {{.Result.Name}} {
	return {{.Result.Name}}{magnitude: a.magnitude {{.Op}} b.magnitude}
}
{{end}}
var laws = []Law{
{{- range .Laws}}
	{Name: "{{.Name}}", Op: {{.OpConst}}, Left: {{.Left.Unit}}{}.Dimension(), Right: {{.Right.Unit}}{}.Dimension(), Result: {{.Result.Unit}}{}.Dimension(), Eval: func(a, b float64) Quantity { return {{.Name}}({{.Left.Constructor}}(a), {{.Right.Constructor}}(b)) }},
{{- end}}
}
`),
)
