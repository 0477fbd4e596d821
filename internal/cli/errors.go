package cli

import (
	stderrors "errors"
	"fmt"
	"io"

	"github.com/csabourin/inkscape-plugin-CSVColumnExporter/pkg/errors"
)

// reportedError is an error that a renderer already showed to the user.
type reportedError struct{ err error }

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

func reported(err error) error {
	if err == nil {
		return nil
	}
	return &reportedError{err: err}
}

// PrintError writes err to w unless it was already rendered.
func PrintError(w io.Writer, err error) {
	var r *reportedError
	if stderrors.As(err, &r) {
		return
	}
	_, _ = fmt.Fprintf(w, "Error: %s\n", errors.Describe(err))
}
