package table_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csabourin/inkscape-plugin-CSVColumnExporter/pkg/errors"
	"github.com/csabourin/inkscape-plugin-CSVColumnExporter/pkg/table"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Name", "name"},
		{"  City  ", "city"},
		{"ZIP Code", "zip code"},
		{"ÉCOLE", "école"},
		{"", ""},
		{"   ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, table.Normalize(tt.in))
		})
	}
}

func TestNewHeader_RejectsDuplicates(t *testing.T) {
	_, err := table.NewHeader([]string{"Name", "City", "name "})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrDuplicateHeader))
	assert.Equal(t, "name", errors.GetErrorDetails(err)["column"])
	assert.Equal(t, []int{1, 3}, errors.GetErrorDetails(err)["positions"])
}

func TestHeader_Resolve(t *testing.T) {
	h, err := table.NewHeader([]string{" Name ", "City"})
	require.NoError(t, err)

	tests := []struct {
		name    string
		column  string
		strict  bool
		want    string
		wantErr bool
	}{
		{name: "exact", column: "Name", want: "name"},
		{name: "case and space insensitive", column: "  nAmE ", want: "name"},
		{name: "unknown", column: "Country", wantErr: true},
		{name: "strict exact", column: "City", strict: true, want: "city"},
		{name: "strict trims", column: " Name", strict: true, want: "name"},
		{name: "strict case mismatch", column: "city", strict: true, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := h.Resolve(tt.column, tt.strict)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, errors.ErrColumnNotFound))
				assert.Equal(t, []string{"name", "city"}, errors.GetErrorDetails(err)["available"])
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewRow(t *testing.T) {
	row := table.NewRow(7, map[string]string{"Name": "Ann", " CITY ": "Paris"})

	assert.Equal(t, 7, row.Index)
	assert.Equal(t, []string{"city", "name"}, row.Keys())
	assert.Equal(t, 2, row.Len())
	assert.Equal(t, "Paris", row.Get("city"))
	assert.Equal(t, "", row.Get("country"))

	_, ok := row.Lookup("country")
	assert.False(t, ok)

	m := row.Map()
	m["name"] = "changed"
	assert.Equal(t, "Ann", row.Get("name"), "Map must return a copy")
}
