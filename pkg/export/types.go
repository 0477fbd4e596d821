package export

import (
	"io/fs"

	"github.com/csabourin/inkscape-plugin-CSVColumnExporter/pkg/document"
	"github.com/csabourin/inkscape-plugin-CSVColumnExporter/pkg/filesystem"
	"github.com/csabourin/inkscape-plugin-CSVColumnExporter/pkg/table"
)

// DefaultExtension is appended to every derived stem.
const DefaultExtension = ".svg"

// Options configures a single export run.
type Options struct {
	// Source is the path of the table.
	Source string
	// Table controls how the source is decoded.
	Table table.Options
	// Template is cloned once per emitted row. Not needed in preview mode.
	Template document.Document
	// Column names the column whose value becomes the file name.
	Column string
	// OutputDir receives the generated files.
	OutputDir string
	// Extension of output files, ".svg" when empty.
	Extension string
	// Substitute enables {{key}} placeholder rewriting.
	Substitute bool
	// Preview lists the headers and stops before exporting anything.
	Preview bool
	// Strict requires an exact column match and an existing OutputDir.
	Strict bool
	// Indent re-indents output documents when greater than zero.
	Indent int
	// DirMode and FileMode default to 0755 and 0644.
	DirMode  fs.FileMode
	FileMode fs.FileMode

	FS       filesystem.FS
	Reporter Reporter
}

// OutcomeKind tells whether a row produced a file.
type OutcomeKind string

const (
	Emitted OutcomeKind = "emitted"
	Skipped OutcomeKind = "skipped"
)

// SkipReason explains a skipped row.
type SkipReason string

const (
	SkipMalformed   SkipReason = "malformed"
	SkipEmptyColumn SkipReason = "empty-column"
)

// RowOutcome is the result of processing one row.
type RowOutcome struct {
	Row    int         `json:"row"`
	Kind   OutcomeKind `json:"kind"`
	Path   string      `json:"path,omitempty"`
	Stem   string      `json:"stem,omitempty"`
	Reason SkipReason  `json:"reason,omitempty"`
	Detail string      `json:"detail,omitempty"`
}

// Status is the final state of a run.
type Status string

const (
	StatusCompleted Status = "completed"
	StatusPreviewed Status = "previewed"
	StatusAborted   Status = "aborted"
)

// Result summarizes a run. It is returned even when the run aborts.
type Result struct {
	Status     Status       `json:"status"`
	Source     string       `json:"source"`
	Headers    []string     `json:"headers,omitempty"`
	Column     string       `json:"column,omitempty"`
	OutputDir  string       `json:"outputDir,omitempty"`
	DirCreated bool         `json:"dirCreated,omitempty"`
	Written    int          `json:"written"`
	Skipped    int          `json:"skipped"`
	Outcomes   []RowOutcome `json:"outcomes,omitempty"`
	Cause      string       `json:"cause,omitempty"`
	CauseCode  string       `json:"causeCode,omitempty"`
}

// Files returns the paths written by the run, in row order.
func (r *Result) Files() []string {
	var files []string
	for _, o := range r.Outcomes {
		if o.Kind == Emitted {
			files = append(files, o.Path)
		}
	}
	return files
}
