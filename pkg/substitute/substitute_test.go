package substitute_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csabourin/inkscape-plugin-CSVColumnExporter/pkg/document"
	"github.com/csabourin/inkscape-plugin-CSVColumnExporter/pkg/substitute"
	"github.com/csabourin/inkscape-plugin-CSVColumnExporter/pkg/table"
)

func TestString(t *testing.T) {
	full := table.NewRow(1, map[string]string{"name": "Ann", "city": "Paris"})
	partial := table.NewRow(2, map[string]string{"name": "Ann"})

	tests := []struct {
		name   string
		in     string
		values substitute.Values
		want   string
	}{
		{"all keys", "Hello {{name}}, visit {{city}}!", full, "Hello Ann, visit Paris!"},
		{"missing key stays literal", "Hello {{name}}, visit {{city}}!", partial, "Hello Ann, visit {{city}}!"},
		{"case and spaces in key", "{{ NAME }}/{{City}}", full, "Ann/Paris"},
		{"repeated", "{{name}}{{name}}-{{name}}", full, "AnnAnn-Ann"},
		{"no placeholders", "plain text", full, "plain text"},
		{"empty key", "{{}}", full, "{{}}"},
		{"single braces", "{name}", full, "{name}"},
		{"triple braces", "{{{name}}}", full, "{Ann}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, substitute.String(tt.in, tt.values))
		})
	}
}

func TestString_ValuesAreNotRescanned(t *testing.T) {
	row := table.NewRow(1, map[string]string{"a": "{{b}}", "b": "B"})
	assert.Equal(t, "{{b}} B", substitute.String("{{a}} {{b}}", row))
}

func TestString_Idempotent(t *testing.T) {
	row := table.NewRow(1, map[string]string{"name": "Ann", "city": "Paris"})
	inputs := []string{
		"Hello {{name}}, visit {{city}}!",
		"{{unknown}} and {{name}}",
		"nothing here",
	}
	for _, in := range inputs {
		once := substitute.String(in, row)
		assert.Equal(t, once, substitute.String(once, row), "input %q", in)
	}
}

const card = `<svg xmlns="http://www.w3.org/2000/svg">
  <text id="{{ID}}" class="label">Hello {{name}}, visit {{city}}!</text>
  <g data-city="{{city}}"><title>{{name}}</title></g>
</svg>`

func TestDocument(t *testing.T) {
	tpl, err := document.Parse([]byte(card))
	require.NoError(t, err)
	clone := tpl.Clone()

	row := table.NewRow(1, map[string]string{"name": "Ann", "id": "card-1"})
	stats := substitute.Document(clone, row)

	var buf bytes.Buffer
	_, err = clone.WriteTo(&buf)
	require.NoError(t, err)
	out := buf.String()

	assert.Contains(t, out, `<text id="card-1" class="label">Hello Ann, visit {{city}}!</text>`)
	assert.Contains(t, out, `<g data-city="{{city}}"><title>Ann</title></g>`)
	assert.Equal(t, substitute.Stats{Texts: 2, Attrs: 1}, stats)
	assert.Equal(t, 3, stats.Changed())

	var tags []string
	clone.Walk(func(n document.Node) { tags = append(tags, n.Tag()) })
	assert.Equal(t, []string{"svg", "text", "g", "title"}, tags, "structure is untouched")

	var original bytes.Buffer
	_, err = tpl.WriteTo(&original)
	require.NoError(t, err)
	assert.Equal(t, card, original.String(), "template is untouched")
}

func TestPlaceholders(t *testing.T) {
	tpl, err := document.Parse([]byte(card))
	require.NoError(t, err)

	assert.Equal(t, []string{"id", "name", "city"}, substitute.Placeholders(tpl))
}

func TestDocument_Comments(t *testing.T) {
	tpl, err := document.Parse([]byte(`<svg><!-- card for {{Name}} --><g><!--{{name}}--></g></svg>`))
	require.NoError(t, err)

	stats := substitute.Document(tpl, table.NewRow(1, map[string]string{"name": "Ann"}))

	var buf bytes.Buffer
	_, err = tpl.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, `<svg><!-- card for Ann --><g><!--Ann--></g></svg>`, buf.String())
	assert.Equal(t, 2, stats.Texts)
}
