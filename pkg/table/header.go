package table

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/csabourin/inkscape-plugin-CSVColumnExporter/pkg/errors"
)

// Normalize returns the lookup form of a column name: trimmed and case-folded.
func Normalize(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}

// Header describes the column layout of a source.
type Header struct {
	raw        []string
	normalized []string
	positions  map[string]int
}

// NewHeader builds a Header from the raw header cells of a source.
// Blank cells keep their position but are not addressable by name.
func NewHeader(raw []string) (*Header, error) {
	h := &Header{
		raw:        append([]string(nil), raw...),
		normalized: make([]string, len(raw)),
		positions:  make(map[string]int, len(raw)),
	}

	for i, cell := range raw {
		key := Normalize(cell)
		if key == "" {
			continue
		}
		if prev, dup := h.positions[key]; dup {
			return nil, errors.Newf(errors.ErrDuplicateHeader,
				"columns %q and %q both normalize to %q", strings.TrimSpace(raw[prev]), strings.TrimSpace(cell), key).
				WithDetail("column", key).
				WithDetail("positions", []int{prev + 1, i + 1})
		}
		h.normalized[i] = key
		h.positions[key] = i
	}

	if len(h.positions) == 0 {
		return nil, errors.New(errors.ErrNoHeaders, "no headers found in source")
	}
	return h, nil
}

// Raw returns the header cells as they appear in the source.
func (h *Header) Raw() []string {
	return append([]string(nil), h.raw...)
}

// Len is the number of header cells, blank ones included.
func (h *Header) Len() int {
	return len(h.raw)
}

// Keys returns the normalized column names in source order.
func (h *Header) Keys() []string {
	keys := make([]string, 0, len(h.positions))
	for _, key := range h.normalized {
		if key != "" {
			keys = append(keys, key)
		}
	}
	return keys
}

// Original returns the raw header text for a normalized key.
func (h *Header) Original(key string) (string, bool) {
	i, ok := h.positions[key]
	if !ok {
		return "", false
	}
	return h.raw[i], true
}

// Has reports whether key is a normalized column name of the source.
func (h *Header) Has(key string) bool {
	_, ok := h.positions[key]
	return ok
}

// keyAt returns the normalized key of column i, or "" for blank and
// out-of-range columns.
func (h *Header) keyAt(i int) string {
	if i < 0 || i >= len(h.normalized) {
		return ""
	}
	return h.normalized[i]
}
