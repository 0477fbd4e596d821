// Package display renders the diagnostic stream of csvexport commands.
//
// A Renderer receives the events of an export run (it satisfies
// export.Reporter) plus the results of the other commands, and writes them
// in one of three formats: styled terminal output, plain text, or JSON.
package display
