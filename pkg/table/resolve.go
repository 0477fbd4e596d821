package table

import (
	"strings"

	"github.com/csabourin/inkscape-plugin-CSVColumnExporter/pkg/errors"
)

// Resolve maps a user-supplied column name to the row key to read.
//
// By default the name is normalized and compared against the normalized
// headers. With strict set, the trimmed name must equal a trimmed raw header
// exactly, case included.
func (h *Header) Resolve(name string, strict bool) (string, error) {
	if strict {
		want := strings.TrimSpace(name)
		for i, cell := range h.raw {
			if h.normalized[i] != "" && strings.TrimSpace(cell) == want {
				return h.normalized[i], nil
			}
		}
	} else if key := Normalize(name); h.Has(key) {
		return key, nil
	}

	return "", errors.Newf(errors.ErrColumnNotFound, "column %q not found", name).
		WithDetail("available", h.Keys()).
		WithDetail("strict", strict)
}
