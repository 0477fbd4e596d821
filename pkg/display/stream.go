package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/csabourin/inkscape-plugin-CSVColumnExporter/pkg/errors"
	"github.com/csabourin/inkscape-plugin-CSVColumnExporter/pkg/export"
	"github.com/csabourin/inkscape-plugin-CSVColumnExporter/pkg/style"
)

// StreamRenderer prints one line per event as it happens. The terminal and
// text formats differ only in how markup tags are turned into output.
type StreamRenderer struct {
	w      io.Writer
	markup func(string) string
	err    error
}

// NewTerminal creates a renderer with styled output.
func NewTerminal(w io.Writer) *StreamRenderer {
	return &StreamRenderer{w: w, markup: style.NewMarkup(style.Default).Render}
}

// NewText creates a renderer with plain output.
func NewText(w io.Writer) *StreamRenderer {
	return &StreamRenderer{w: w, markup: style.NewMarkup(style.Default).Strip}
}

func (r *StreamRenderer) line(format string, args ...interface{}) {
	if r.err != nil {
		return
	}
	// Markup applies to the message template only; arguments are row data
	// and are printed as they are.
	msg := r.markup(format)
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	_, r.err = fmt.Fprintln(r.w, msg)
}

func (r *StreamRenderer) Headers(source string, raw []string) {
	r.line(MsgColumnsHeader)
	if len(raw) == 0 {
		r.line(MsgNoColumns)
	}
	for _, h := range raw {
		r.line(MsgColumnItem, h)
	}
}

func (r *StreamRenderer) PreviewOnly() {
	r.line(MsgPreviewOnly)
}

func (r *StreamRenderer) DirCreated(dir string) {
	r.line(MsgDirCreated, dir)
}

func (r *StreamRenderer) Row(outcome export.RowOutcome) {
	switch outcome.Kind {
	case export.Emitted:
		r.line(MsgExported, outcome.Path)
	case export.Skipped:
		r.line(MsgSkipped, outcome.Detail)
	}
}

func (r *StreamRenderer) Done(result *export.Result) {
	switch result.Status {
	case export.StatusCompleted:
		r.line(MsgComplete, result.Written, result.Skipped)
		r.line(MsgOutputDir, result.OutputDir)
	case export.StatusAborted:
		r.line(MsgAborted, result.Cause)
		if result.Written > 0 {
			r.line(MsgPartial, result.Written)
		}
	}
}

func (r *StreamRenderer) Inspection(ins *export.Inspection) {
	r.Headers(ins.Source, ins.Headers)
	r.line("")
	r.line(MsgPlaceholdersHeader)
	if len(ins.Placeholders) == 0 {
		r.line(MsgNoPlaceholders)
	}
	for _, p := range ins.Placeholders {
		if p.Matched {
			r.line(MsgPlaceholderMatched, p.Key, p.Column)
		} else {
			r.line(MsgPlaceholderMissing, p.Key)
		}
	}
	if len(ins.Unused) > 0 {
		r.line(MsgUnusedColumns, strings.Join(ins.Unused, ", "))
	}
}

func (r *StreamRenderer) Error(err error) {
	r.line(MsgError, errors.Describe(err))
}

func (r *StreamRenderer) Err() error { return r.err }
