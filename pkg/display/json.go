package display

import (
	"encoding/json"
	"io"

	"github.com/csabourin/inkscape-plugin-CSVColumnExporter/pkg/errors"
	"github.com/csabourin/inkscape-plugin-CSVColumnExporter/pkg/export"
)

// JSONRenderer emits one JSON document per command: the run result, the
// inspection, or the error. Intermediate export events are not printed;
// they are all part of the final result.
type JSONRenderer struct {
	encoder *json.Encoder
	err     error
}

// ErrorDocument is the JSON shape of a failure.
type ErrorDocument struct {
	Error   string                 `json:"error"`
	Code    string                 `json:"code"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// NewJSON creates a JSON renderer
func NewJSON(w io.Writer) *JSONRenderer {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return &JSONRenderer{encoder: encoder}
}

func (r *JSONRenderer) encode(v interface{}) {
	if r.err == nil {
		r.err = r.encoder.Encode(v)
	}
}

func (r *JSONRenderer) Headers(string, []string) {}
func (r *JSONRenderer) PreviewOnly()             {}
func (r *JSONRenderer) DirCreated(string)        {}
func (r *JSONRenderer) Row(export.RowOutcome)    {}

func (r *JSONRenderer) Done(result *export.Result) { r.encode(result) }

func (r *JSONRenderer) Inspection(ins *export.Inspection) { r.encode(ins) }

func (r *JSONRenderer) Error(err error) {
	doc := ErrorDocument{
		Error:   err.Error(),
		Code:    string(errors.GetErrorCode(err)),
		Details: errors.GetErrorDetails(err),
	}
	r.encode(doc)
}

func (r *JSONRenderer) Err() error { return r.err }
