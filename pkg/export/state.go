package export

import (
	"bytes"
	"fmt"
	"io/fs"

	"github.com/rs/zerolog"

	"github.com/csabourin/inkscape-plugin-CSVColumnExporter/pkg/document"
	"github.com/csabourin/inkscape-plugin-CSVColumnExporter/pkg/errors"
	"github.com/csabourin/inkscape-plugin-CSVColumnExporter/pkg/filesystem"
	"github.com/csabourin/inkscape-plugin-CSVColumnExporter/pkg/naming"
	"github.com/csabourin/inkscape-plugin-CSVColumnExporter/pkg/substitute"
	"github.com/csabourin/inkscape-plugin-CSVColumnExporter/pkg/table"
)

// RunState carries everything a run mutates while processing rows: the
// stem record and the counters. One RunState serves exactly one run.
type RunState struct {
	fs         filesystem.FS
	template   document.Document
	column     string
	label      string
	substitute bool
	indent     int
	fileMode   fs.FileMode
	namer      *naming.Namer
	logger     zerolog.Logger

	written int
	skipped int
}

// NewRunState prepares the per-run state for writing into dir. column is
// the resolved row key and label the name the user asked for.
func NewRunState(opts Options, column, label string, logger zerolog.Logger) *RunState {
	fsys := opts.FS
	return &RunState{
		fs:         fsys,
		template:   opts.Template,
		column:     column,
		label:      label,
		substitute: opts.Substitute,
		indent:     opts.Indent,
		fileMode:   opts.FileMode,
		namer:      naming.NewNamer(opts.OutputDir, opts.Extension, fsys.Exists),
		logger:     logger,
	}
}

// Written is the number of files written so far.
func (s *RunState) Written() int { return s.written }

// Skipped is the number of rows skipped so far.
func (s *RunState) Skipped() int { return s.skipped }

// Skip records a skipped row.
func (s *RunState) Skip(row int, reason SkipReason, detail string) RowOutcome {
	s.skipped++
	s.logger.Info().
		Int("row", row).
		Str("reason", string(reason)).
		Msg(detail)
	return RowOutcome{Row: row, Kind: Skipped, Reason: reason, Detail: detail}
}

// Process turns one row into an output file. Rows without a value in the
// filename column are skipped; failures to name, serialize or write the
// file are returned as errors and end the run.
func (s *RunState) Process(row table.Row) (RowOutcome, error) {
	value, ok := row.Lookup(s.column)
	if !ok || value == "" {
		return s.Skip(row.Index, SkipEmptyColumn,
			fmt.Sprintf("Row %d missing or empty value for column '%s'. Skipping.", row.Index, s.label)), nil
	}

	stem, err := s.namer.Next(value)
	if err != nil {
		return RowOutcome{}, errors.Wrapf(err, errors.ErrFileWrite, "cannot check output path for row %d", row.Index).
			WithDetail("row", row.Index)
	}
	path := s.namer.Path(stem)

	doc := s.template.Clone()
	if s.substitute {
		stats := substitute.Document(doc, row)
		s.logger.Trace().
			Int("row", row.Index).
			Int("texts", stats.Texts).
			Int("attrs", stats.Attrs).
			Msg("Placeholders substituted")
	}
	if s.indent > 0 {
		if ind, ok := doc.(document.Indenter); ok {
			ind.Indent(s.indent)
		}
	}

	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return RowOutcome{}, errors.Wrapf(err, errors.ErrTemplateWrite, "cannot serialize document for row %d", row.Index).
			WithDetail("row", row.Index)
	}

	if err := s.fs.WriteFile(path, buf.Bytes(), s.fileMode); err != nil {
		return RowOutcome{}, errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", path).
			WithDetail("row", row.Index).
			WithDetail("path", path)
	}

	s.written++
	s.logger.Debug().
		Int("row", row.Index).
		Str("path", path).
		Int("bytes", buf.Len()).
		Msg("Exported")
	return RowOutcome{Row: row.Index, Kind: Emitted, Path: path, Stem: stem}, nil
}
