package table

import (
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/csabourin/inkscape-plugin-CSVColumnExporter/pkg/errors"
)

// xlsxSource streams the rows of one worksheet.
type xlsxSource struct {
	file   *excelize.File
	rows   *excelize.Rows
	closer io.Closer
}

func newXLSXSource(rc io.ReadCloser, sheet string) (*xlsxSource, error) {
	f, err := excelize.OpenReader(rc)
	if err != nil {
		_ = rc.Close()
		return nil, errors.Wrap(err, errors.ErrSourceRead, "failed to open Excel workbook")
	}

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			_ = f.Close()
			_ = rc.Close()
			return nil, errors.New(errors.ErrNoHeaders, "workbook has no sheets")
		}
		sheet = sheets[0]
	}

	rows, err := f.Rows(sheet)
	if err != nil {
		_ = f.Close()
		_ = rc.Close()
		return nil, errors.Wrapf(err, errors.ErrSourceRead, "failed to read sheet %q", sheet).
			WithDetail("sheet", sheet)
	}

	return &xlsxSource{file: f, rows: rows, closer: rc}, nil
}

func (s *xlsxSource) Read() ([]string, error) {
	if !s.rows.Next() {
		if err := s.rows.Error(); err != nil {
			return nil, err
		}
		return nil, io.EOF
	}
	cols, err := s.rows.Columns()
	if err != nil {
		return nil, &RecordError{Err: err}
	}
	return cols, nil
}

func (s *xlsxSource) Close() error {
	_ = s.rows.Close()
	_ = s.file.Close()
	return s.closer.Close()
}
