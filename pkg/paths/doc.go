// Package paths provides centralized path handling for csvexport.
// It follows the XDG Base Directory specification for configuration, state
// and the scratch folder used when no output directory is given.
package paths
