// Package export turns a template document and a table into one output
// file per row.
//
// Run reads the table header, resolves the filename column once, prepares
// the output directory and then processes rows strictly one at a time:
// clone the template, optionally substitute placeholders, derive a unique
// stem, write the file. Each row ends as either Emitted or Skipped. A run
// ends Completed, Previewed or Aborted; aborts are returned as coded errors
// from pkg/errors and never swallowed as row skips.
package export
