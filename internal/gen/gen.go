// Package gen renders the per-type registration file of package numtrait from
// a typespec.Table.
package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"strconv"
	"strings"
	"text/template"

	"github.com/roach88/numtrait/internal/typespec"
)

// Header is the first line of every rendered file.
const Header = "// Code generated by numtrait gen. DO NOT EDIT."

var registryTemplate = template.Must(template.New("registry").Parse(`{{.Header}}

package {{.Package}}

import (
	"math"
{{- if .NeedsBits}}
	"math/bits"
{{- end}}
)

const (
	KindInvalid Kind = iota
{{- range .Types}}
	Kind{{.Name}}
{{- end}}
)
{{range .Types}}
// {{.Name}} is the registered {{.Underlying}} type.
type {{.Name}} {{.Underlying}}

// Kind reports Kind{{.Name}}.
func ({{.Name}}) Kind() Kind { return Kind{{.Name}} }

// Width reports the bit width of {{.Name}}.
func ({{.Name}}) Width() int { return {{.Width}} }
{{if .Float}}
// Rem returns the floating-point remainder of x/y.
func (x {{.Name}}) Rem(y {{.Name}}) {{.Name}} {
	return {{.Name}}(math.Mod(float64(x), float64(y)))
}
{{else}}
// Min reports the smallest {{.Name}}.
func ({{.Name}}) Min() {{.Name}} { return {{.Min}} }

// Max reports the largest {{.Name}}.
func ({{.Name}}) Max() {{.Name}} { return {{.Max}} }

// Zero reports the additive identity of {{.Name}}.
func ({{.Name}}) Zero() {{.Name}} { return 0 }

// One reports the multiplicative identity of {{.Name}}.
func ({{.Name}}) One() {{.Name}} { return 1 }
{{if .Signed}}
// DropSign reinterprets the bits of x as {{.Pair}}.
func (x {{.Name}}) DropSign() {{.Pair}} { return {{.Pair}}(x) }
{{else}}
// AddSign reinterprets the bits of x as {{.Pair}}.
func (x {{.Name}}) AddSign() {{.Pair}} { return {{.Pair}}(x) }
{{end}}
{{- end}}
{{- end}}
// registry is indexed by Kind-1. Derived capabilities are added on lookup.
var registry = []Info{
{{- range .Types}}
	{Kind: Kind{{.Name}}, Name: "{{.Name}}", Underlying: "{{.Underlying}}", Width: {{.Width}}, Caps: {{.Caps}}{{if .Pair}}, Counterpart: Kind{{.Pair}}{{end}}},
{{- end}}
}
`))

// typeView is the template view of one primitive.
type typeView struct {
	Name       string
	Underlying string
	Width      string
	Min        string
	Max        string
	Pair       string
	Caps       string
	Float      bool
	Signed     bool
}

type fileView struct {
	Header    string
	Package   string
	NeedsBits bool
	Types     []typeView
}

// Render produces the gofmt-formatted registration file for table.
// The table must pass typespec.Validate.
func Render(table *typespec.Table) ([]byte, error) {
	if errs := typespec.Validate(table); len(errs) > 0 {
		return nil, fmt.Errorf("render: invalid table: %w", errs[0])
	}

	view := fileView{Header: Header, Package: table.Package}
	for _, p := range table.Primitives {
		if p.IsPointerWidth() {
			view.NeedsBits = true
		}
		view.Types = append(view.Types, newTypeView(p))
	}

	var buf bytes.Buffer
	if err := registryTemplate.Execute(&buf, view); err != nil {
		return nil, fmt.Errorf("render: execute template: %w", err)
	}

	out, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("render: gofmt: %w", err)
	}
	return out, nil
}

func newTypeView(p typespec.Primitive) typeView {
	v := typeView{
		Name:       p.Name,
		Underlying: p.Underlying,
		Width:      strconv.Itoa(p.Width),
		Pair:       p.Pair,
	}
	suffix := strconv.Itoa(p.Width)
	if p.IsPointerWidth() {
		v.Width = "bits.UintSize"
		suffix = ""
	}

	caps := []string{}
	switch p.Class {
	case typespec.ClassFloat:
		v.Float = true
		v.Signed = true
		caps = append(caps, "CapFloat", "CapSigned")
	case typespec.ClassInt:
		v.Signed = true
		v.Min = "math.MinInt" + suffix
		v.Max = "math.MaxInt" + suffix
		caps = append(caps, "CapInteger", "CapSigned", "CapDropSign")
	case typespec.ClassUint:
		v.Min = "0"
		v.Max = "math.MaxUint" + suffix
		caps = append(caps, "CapInteger", "CapUnsigned", "CapAddSign")
	}
	v.Caps = strings.Join(caps, " | ")
	return v
}
