// Package filesystem provides the filesystem abstraction used by csvexport.
//
// All table reads and document writes go through FS so that the export
// pipeline can run against the real disk or an in-memory filesystem.
package filesystem
