package export_test

import (
	"io"
	"testing"

	"github.com/rs/zerolog"

	"github.com/csabourin/inkscape-plugin-CSVColumnExporter/pkg/filesystem"
	"github.com/csabourin/inkscape-plugin-CSVColumnExporter/pkg/table"
)

func zerologDiscard() zerolog.Logger {
	return zerolog.Nop()
}

func readRows(t *testing.T, fsys filesystem.FS, path string) ([]table.Row, error) {
	t.Helper()
	r, err := table.Open(fsys, path, table.Options{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Close() }()

	var rows []table.Row
	for {
		row, err := r.Next()
		if err == io.EOF {
			return rows, nil
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
}
