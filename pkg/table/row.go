package table

import "sort"

// Row is one decoded data row keyed by normalized column name.
type Row struct {
	// Index is the 1-based position of the row among data rows.
	Index  int
	keys   []string
	values map[string]string
}

// NewRow builds a Row from an arbitrary mapping. Keys are normalized and
// sorted; values are kept as given.
func NewRow(index int, values map[string]string) Row {
	r := Row{Index: index, values: make(map[string]string, len(values))}
	for k, v := range values {
		key := Normalize(k)
		if _, seen := r.values[key]; !seen {
			r.keys = append(r.keys, key)
		}
		r.values[key] = v
	}
	sort.Strings(r.keys)
	return r
}

// Get returns the value for key, or "" when the row has no such column.
func (r Row) Get(key string) string {
	return r.values[key]
}

// Lookup returns the value for key and whether the column exists.
func (r Row) Lookup(key string) (string, bool) {
	v, ok := r.values[key]
	return v, ok
}

// Keys returns the row's column keys in source order.
func (r Row) Keys() []string {
	return append([]string(nil), r.keys...)
}

// Len is the number of columns in the row.
func (r Row) Len() int {
	return len(r.keys)
}

// Map returns a copy of the row's values.
func (r Row) Map() map[string]string {
	m := make(map[string]string, len(r.values))
	for k, v := range r.values {
		m[k] = v
	}
	return m
}
