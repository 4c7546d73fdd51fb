// Package specs renders the technical specification of a product as an
// HTML table.
//
// The row tables are read-only. Rows that depend on the product's state
// (the SD card capacity of a smartphone) are filtered per call, so Render
// is safe for concurrent use.
package specs

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/nikolayk812/storefront/internal/domain"
)

// Row is one label/value line of a specification table.
type Row struct {
	Label string
	Value string
}

type field[T domain.Product] struct {
	label string
	value func(T) string
	// show reports whether the row applies to the product; nil means always.
	show func(T) bool
}

const LabelSDVolumeMax = "Max SD card capacity"

var notebookFields = []field[*domain.Notebook]{
	{label: "Diagonal", value: func(n *domain.Notebook) string { return n.Diagonal }},
	{label: "Display type", value: func(n *domain.Notebook) string { return n.DisplayType }},
	{label: "Processor frequency", value: func(n *domain.Notebook) string { return n.ProcessorFreq }},
	{label: "RAM", value: func(n *domain.Notebook) string { return n.RAM }},
	{label: "Video card", value: func(n *domain.Notebook) string { return n.Video }},
	{label: "Battery life", value: func(n *domain.Notebook) string { return n.TimeWithoutCharge }},
}

var smartphoneFields = []field[*domain.Smartphone]{
	{label: "Diagonal", value: func(s *domain.Smartphone) string { return s.Diagonal }},
	{label: "Display type", value: func(s *domain.Smartphone) string { return s.DisplayType }},
	{label: "Screen resolution", value: func(s *domain.Smartphone) string { return s.Resolution }},
	{label: "Battery capacity", value: func(s *domain.Smartphone) string { return s.AccumVolume }},
	{label: "RAM", value: func(s *domain.Smartphone) string { return s.RAM }},
	{label: "SD card", value: func(s *domain.Smartphone) string { return yesNo(s.SD) }},
	{
		label: LabelSDVolumeMax,
		value: func(s *domain.Smartphone) string { return deref(s.SDVolumeMax) },
		show:  func(s *domain.Smartphone) bool { return s.SD },
	},
	{label: "Main camera MP", value: func(s *domain.Smartphone) string { return s.MainCamMP }},
	{label: "Front camera MP", value: func(s *domain.Smartphone) string { return s.FrontalCamMP }},
}

var tableTmpl = template.Must(template.New("spec").Parse(`<table class="table">
  <tbody>
{{- range .}}
    <tr>
      <td>{{.Label}}</td>
      <td>{{.Value}}</td>
    </tr>
{{- end}}
  </tbody>
</table>
`))

// Rows returns the specification rows of p in display order.
func Rows(p domain.Product) ([]Row, error) {
	switch v := p.(type) {
	case *domain.Notebook:
		return rows(v, notebookFields), nil
	case *domain.Smartphone:
		return rows(v, smartphoneFields), nil
	default:
		return nil, fmt.Errorf("no specification table for %T", p)
	}
}

// Render returns the specification table of p. Labels and values are
// HTML-escaped.
func Render(p domain.Product) (template.HTML, error) {
	rs, err := Rows(p)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tableTmpl.Execute(&buf, rs); err != nil {
		return "", fmt.Errorf("tableTmpl.Execute: %w", err)
	}

	return template.HTML(buf.String()), nil
}

func rows[T domain.Product](p T, fields []field[T]) []Row {
	out := make([]Row, 0, len(fields))
	for _, f := range fields {
		if f.show != nil && !f.show(p) {
			continue
		}
		out = append(out, Row{Label: f.label, Value: f.value(p)})
	}
	return out
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
