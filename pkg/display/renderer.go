package display

import (
	"fmt"
	"io"

	"github.com/csabourin/inkscape-plugin-CSVColumnExporter/pkg/export"
)

// Renderer writes the output of csvexport commands. It receives export
// events as an export.Reporter.
type Renderer interface {
	export.Reporter

	// Inspection renders the result of the inspect command.
	Inspection(ins *export.Inspection)

	// Error renders a failure that happened outside an export run.
	Error(err error)

	// Err returns the first write error, if any.
	Err() error
}

// New creates a renderer for format. FormatAuto is resolved against w.
func New(format Format, w io.Writer, noColor bool) (Renderer, error) {
	switch Resolve(format, w, noColor) {
	case FormatTerminal:
		return NewTerminal(w), nil
	case FormatText:
		return NewText(w), nil
	case FormatJSON:
		return NewJSON(w), nil
	default:
		return nil, fmt.Errorf("unknown format: %v", format)
	}
}

var (
	_ Renderer = (*StreamRenderer)(nil)
	_ Renderer = (*JSONRenderer)(nil)
)
