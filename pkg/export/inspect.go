package export

import (
	"github.com/csabourin/inkscape-plugin-CSVColumnExporter/pkg/document"
	"github.com/csabourin/inkscape-plugin-CSVColumnExporter/pkg/filesystem"
	"github.com/csabourin/inkscape-plugin-CSVColumnExporter/pkg/logging"
	"github.com/csabourin/inkscape-plugin-CSVColumnExporter/pkg/substitute"
	"github.com/csabourin/inkscape-plugin-CSVColumnExporter/pkg/table"
)

// PlaceholderMatch tells whether a template placeholder has a column.
type PlaceholderMatch struct {
	Key     string `json:"key"`
	Column  string `json:"column,omitempty"`
	Matched bool   `json:"matched"`
}

// Inspection compares the placeholders of a template with the columns of a
// table without writing anything.
type Inspection struct {
	Source       string             `json:"source"`
	Headers      []string           `json:"headers"`
	Placeholders []PlaceholderMatch `json:"placeholders"`
	// Unused lists columns no placeholder refers to, as raw headers.
	Unused []string `json:"unused,omitempty"`
}

// Unmatched returns the placeholder keys that no column provides.
func (i *Inspection) Unmatched() []string {
	var keys []string
	for _, p := range i.Placeholders {
		if !p.Matched {
			keys = append(keys, p.Key)
		}
	}
	return keys
}

// Inspect reads the header of source and reports, for every placeholder in
// doc, which column would fill it.
func Inspect(fsys filesystem.FS, source string, opts table.Options, doc document.Document) (*Inspection, error) {
	logger := logging.GetLogger("export.Inspect")

	header, err := table.ReadHeader(fsys, source, opts)
	if err != nil {
		return nil, err
	}

	ins := &Inspection{Source: source, Headers: header.Raw()}
	used := make(map[string]bool)
	for _, key := range substitute.Placeholders(doc) {
		match := PlaceholderMatch{Key: key}
		if raw, ok := header.Original(key); ok {
			match.Column = raw
			match.Matched = true
			used[key] = true
		}
		ins.Placeholders = append(ins.Placeholders, match)
	}
	for _, key := range header.Keys() {
		if !used[key] {
			raw, _ := header.Original(key)
			ins.Unused = append(ins.Unused, raw)
		}
	}

	logger.Debug().
		Int("placeholders", len(ins.Placeholders)).
		Strs("unmatched", ins.Unmatched()).
		Msg("Template inspected")
	return ins, nil
}
