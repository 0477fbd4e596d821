package table

import (
	stderrors "errors"
	"io"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/csabourin/inkscape-plugin-CSVColumnExporter/pkg/errors"
	"github.com/csabourin/inkscape-plugin-CSVColumnExporter/pkg/filesystem"
	"github.com/csabourin/inkscape-plugin-CSVColumnExporter/pkg/logging"
)

// Options controls how a source is decoded.
type Options struct {
	// Delimiter separates fields of a text source. Zero means ','.
	Delimiter rune
	// Sheet names the worksheet of an .xlsx source. Empty means the first.
	Sheet string
}

// recordSource yields raw records one at a time. A *RecordError marks a
// record that could not be decoded while leaving the source usable.
type recordSource interface {
	Read() ([]string, error)
	Close() error
}

// RecordError reports a record the decoder rejected.
type RecordError struct {
	Err error
}

func (e *RecordError) Error() string { return e.Err.Error() }
func (e *RecordError) Unwrap() error { return e.Err }

// Reader produces Row records from a tabular source.
type Reader struct {
	path   string
	header *Header
	src    recordSource
	index  int
	logger zerolog.Logger
}

// Open reads the header row of the source at path and returns a Reader
// positioned at the first data row.
func Open(fsys filesystem.FS, path string, opts Options) (*Reader, error) {
	logger := logging.GetLogger("table.Reader").With().Str("source", path).Logger()

	if strings.TrimSpace(path) == "" || !filesystem.IsRegularFile(fsys, path) {
		return nil, errors.Newf(errors.ErrSourceNotFound, "CSV file not found: %s", path).
			WithDetail("path", path)
	}

	f, err := fsys.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrSourceNotFound, "cannot open source %s", path).
			WithDetail("path", path)
	}

	var src recordSource
	if IsWorkbook(path) {
		xs, err := newXLSXSource(f, opts.Sheet)
		if err != nil {
			return nil, err
		}
		src = xs
	} else {
		src = newCSVSource(f, opts.Delimiter)
	}

	raw, err := src.Read()
	if err != nil {
		_ = src.Close()
		if err == io.EOF {
			return nil, errors.Newf(errors.ErrNoHeaders, "no headers found in %s", path).
				WithDetail("path", path)
		}
		return nil, errors.Wrapf(err, errors.ErrSourceRead, "cannot read header row of %s", path).
			WithDetail("path", path)
	}

	header, err := NewHeader(raw)
	if err != nil {
		_ = src.Close()
		if exportErr, ok := err.(*errors.ExportError); ok {
			exportErr.WithDetail("path", path)
		}
		return nil, err
	}

	logger.Debug().
		Strs("headers", header.Raw()).
		Strs("keys", header.Keys()).
		Msg("Header row decoded")

	return &Reader{
		path:   path,
		header: header,
		src:    src,
		logger: logger,
	}, nil
}

// IsWorkbook reports whether path names an Excel workbook rather than a
// delimited text file.
func IsWorkbook(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return true
	}
	return false
}

// Header returns the column layout of the source.
func (r *Reader) Header() *Header {
	return r.header
}

// Path returns the source path the reader was opened with.
func (r *Reader) Path() string {
	return r.path
}

// Next returns the next data row. It returns io.EOF after the last row.
//
// A record the decoder rejects yields a Row carrying only its Index and an
// error coded ErrMalformedRow; calling Next again continues with the
// following record. Any other error means the source cannot be read further.
func (r *Reader) Next() (Row, error) {
	record, err := r.src.Read()
	if err == io.EOF {
		return Row{}, io.EOF
	}
	r.index++

	if err != nil {
		var recErr *RecordError
		if stderrors.As(err, &recErr) {
			r.logger.Debug().Err(recErr.Err).Int("row", r.index).Msg("Malformed record")
			return Row{Index: r.index}, errors.Wrapf(recErr.Err, errors.ErrMalformedRow, "row %d is malformed", r.index).
				WithDetail("row", r.index)
		}
		return Row{Index: r.index}, errors.Wrapf(err, errors.ErrSourceRead, "cannot read row %d of %s", r.index, r.path).
			WithDetail("row", r.index)
	}

	return r.decode(record), nil
}

// decode zips a record against the header. Missing trailing cells become
// empty strings and cells beyond the header width are dropped.
func (r *Reader) decode(record []string) Row {
	row := Row{
		Index:  r.index,
		keys:   make([]string, 0, len(r.header.positions)),
		values: make(map[string]string, len(r.header.positions)),
	}
	for i := 0; i < r.header.Len(); i++ {
		key := r.header.keyAt(i)
		if key == "" {
			continue
		}
		var value string
		if i < len(record) {
			value = strings.TrimSpace(record[i])
		}
		row.keys = append(row.keys, key)
		row.values[key] = value
	}
	if len(record) > r.header.Len() {
		r.logger.Trace().
			Int("row", r.index).
			Int("extra", len(record)-r.header.Len()).
			Msg("Dropping cells beyond header width")
	}
	return row
}

// Close releases the underlying source.
func (r *Reader) Close() error {
	return r.src.Close()
}

// ReadHeader opens the source only to decode its header row.
func ReadHeader(fsys filesystem.FS, path string, opts Options) (*Header, error) {
	r, err := Open(fsys, path, opts)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Close() }()
	return r.Header(), nil
}
