package display

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csabourin/inkscape-plugin-CSVColumnExporter/pkg/errors"
	"github.com/csabourin/inkscape-plugin-CSVColumnExporter/pkg/export"
)

func TestJSONRenderer_OnlyFinalResult(t *testing.T) {
	var buf bytes.Buffer
	r := NewJSON(&buf)

	r.Headers("people.csv", []string{"Name"})
	r.Row(export.RowOutcome{Row: 1, Kind: export.Emitted, Path: "/out/Ann.svg"})
	r.Done(&export.Result{
		Status:   export.StatusCompleted,
		Source:   "people.csv",
		Written:  1,
		Outcomes: []export.RowOutcome{{Row: 1, Kind: export.Emitted, Path: "/out/Ann.svg", Stem: "Ann"}},
	})
	require.NoError(t, r.Err())

	var got export.Result
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, export.StatusCompleted, got.Status)
	assert.Equal(t, []string{"/out/Ann.svg"}, got.Files())
}

func TestJSONRenderer_Error(t *testing.T) {
	var buf bytes.Buffer
	r := NewJSON(&buf)

	r.Error(errors.New(errors.ErrSourceNotFound, "CSV file not found: x.csv").WithDetail("path", "x.csv"))

	var doc ErrorDocument
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "SOURCE_NOT_FOUND", doc.Code)
	assert.Equal(t, "x.csv", doc.Details["path"])
	assert.Contains(t, doc.Error, "CSV file not found")
}

func TestJSONRenderer_PlainError(t *testing.T) {
	var buf bytes.Buffer
	r := NewJSON(&buf)

	r.Error(stderrors.New("boom"))

	assert.JSONEq(t, `{"error":"boom","code":"UNKNOWN"}`, buf.String())
}
