// Package table reads tabular data sources into row records.
//
// A source is a comma-delimited text file (optionally BOM-prefixed) or an
// .xlsx workbook. The first row holds the column headers; every following
// row is decoded positionally against them. Headers are normalized by
// trimming and Unicode case folding, and a source whose headers collide
// after normalization is rejected.
//
// Rows are produced lazily by Reader.Next. A row the decoder cannot parse is
// reported with an ErrMalformedRow-coded error; the reader stays usable and
// the caller decides whether to skip it.
package table
