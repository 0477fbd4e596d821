package table

import (
	"encoding/csv"
	stderrors "errors"
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// csvSource decodes delimited text. A leading byte-order mark is consumed
// before the csv decoder sees the first header.
type csvSource struct {
	r      *csv.Reader
	closer io.Closer
}

func newCSVSource(rc io.ReadCloser, delimiter rune) *csvSource {
	stripped := transform.NewReader(rc, unicode.BOMOverride(transform.Nop))

	r := csv.NewReader(stripped)
	if delimiter != 0 {
		r.Comma = delimiter
	}
	// Ragged rows are padded by the Reader instead of rejected here.
	r.FieldsPerRecord = -1

	return &csvSource{r: r, closer: rc}
}

func (s *csvSource) Read() ([]string, error) {
	record, err := s.r.Read()
	if err != nil {
		var parseErr *csv.ParseError
		if stderrors.As(err, &parseErr) {
			return nil, &RecordError{Err: err}
		}
		return nil, err
	}
	return record, nil
}

func (s *csvSource) Close() error {
	return s.closer.Close()
}
