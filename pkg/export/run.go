package export

import (
	"context"
	"fmt"
	"io"
	"runtime/debug"
	"strings"

	"github.com/csabourin/inkscape-plugin-CSVColumnExporter/pkg/errors"
	"github.com/csabourin/inkscape-plugin-CSVColumnExporter/pkg/filesystem"
	"github.com/csabourin/inkscape-plugin-CSVColumnExporter/pkg/logging"
	"github.com/csabourin/inkscape-plugin-CSVColumnExporter/pkg/table"
)

// Run executes one export. The returned Result is never nil; when the run
// aborts its Status is StatusAborted and the error carries the cause.
// Files written before an abort are left in place.
func Run(ctx context.Context, opts Options) (result *Result, err error) {
	logger := logging.GetLogger("export.Run")
	done := logging.LogOperationStart(logger, "export")
	defer done()

	opts = withDefaults(opts)
	result = &Result{Source: opts.Source, OutputDir: opts.OutputDir}

	defer func() {
		if r := recover(); r != nil {
			logger.Error().
				Interface("panic", r).
				Bytes("stack", debug.Stack()).
				Msg("Unexpected failure during export")
			err = errors.Newf(errors.ErrInternal, "unexpected failure: %v", r)
		}
		if err != nil {
			result.Status = StatusAborted
			result.Cause = errors.Describe(err)
			result.CauseCode = string(errors.GetErrorCode(err))
		}
		opts.Reporter.Done(result)
	}()

	reader, err := table.Open(opts.FS, opts.Source, opts.Table)
	if err != nil {
		return result, err
	}
	defer func() { _ = reader.Close() }()

	header := reader.Header()
	result.Headers = header.Raw()
	opts.Reporter.Headers(opts.Source, result.Headers)

	if opts.Preview {
		logger.Info().Strs("headers", result.Headers).Msg("Preview mode, nothing exported")
		opts.Reporter.PreviewOnly()
		result.Status = StatusPreviewed
		return result, nil
	}

	if opts.Template == nil {
		return result, errors.New(errors.ErrInvalidInput, "no template document to export")
	}

	column, err := header.Resolve(opts.Column, opts.Strict)
	if err != nil {
		return result, err
	}
	result.Column = column

	created, err := prepareDir(opts)
	if err != nil {
		return result, err
	}
	if created {
		result.DirCreated = true
		opts.Reporter.DirCreated(opts.OutputDir)
	}

	logger.Info().
		Str("source", opts.Source).
		Str("column", column).
		Str("outputDir", opts.OutputDir).
		Bool("substitute", opts.Substitute).
		Msg("Starting export")

	state := NewRunState(opts, column, opts.Column, logger)
	for {
		if ctxErr := ctx.Err(); ctxErr != nil {
			err = errors.Wrap(ctxErr, errors.ErrCanceled, "export canceled")
			break
		}

		row, readErr := reader.Next()
		if readErr == io.EOF {
			break
		}

		var outcome RowOutcome
		switch {
		case errors.IsErrorCode(readErr, errors.ErrMalformedRow):
			outcome = state.Skip(row.Index, SkipMalformed,
				fmt.Sprintf("Skipping row %d: empty or malformed.", row.Index))
		case readErr != nil:
			err = readErr
		default:
			outcome, err = state.Process(row)
		}
		if err != nil {
			break
		}

		result.Outcomes = append(result.Outcomes, outcome)
		opts.Reporter.Row(outcome)
	}

	result.Written = state.Written()
	result.Skipped = state.Skipped()
	if err != nil {
		return result, err
	}

	result.Status = StatusCompleted
	logger.Info().
		Int("written", result.Written).
		Int("skipped", result.Skipped).
		Msg("Export complete")
	return result, nil
}

// prepareDir makes sure the output directory exists, creating it unless the
// run is strict. It reports whether the directory was created.
func prepareDir(opts Options) (bool, error) {
	dir := opts.OutputDir
	if strings.TrimSpace(dir) == "" {
		return false, errors.New(errors.ErrInvalidInput, "no output directory given")
	}

	info, err := opts.FS.Stat(dir)
	switch {
	case err == nil && info.IsDir():
		return false, nil
	case err == nil:
		return false, errors.Newf(errors.ErrDirCreate, "output path %s is not a directory", dir).
			WithDetail("path", dir)
	case !filesystem.IsNotExist(err):
		return false, errors.Wrapf(err, errors.ErrDirCreate, "cannot inspect output folder %s", dir).
			WithDetail("path", dir)
	case opts.Strict:
		return false, errors.Newf(errors.ErrDirNotFound, "output folder not found: %s", dir).
			WithDetail("path", dir)
	}

	if err := opts.FS.MkdirAll(dir, opts.DirMode); err != nil {
		return false, errors.Wrapf(err, errors.ErrDirCreate, "cannot create output folder %s", dir).
			WithDetail("path", dir)
	}
	return true, nil
}

func withDefaults(opts Options) Options {
	if opts.FS == nil {
		opts.FS = filesystem.NewOS()
	}
	if opts.Reporter == nil {
		opts.Reporter = NopReporter{}
	}
	if opts.Extension == "" {
		opts.Extension = DefaultExtension
	} else if !strings.HasPrefix(opts.Extension, ".") {
		opts.Extension = "." + opts.Extension
	}
	if opts.DirMode == 0 {
		opts.DirMode = 0755
	}
	if opts.FileMode == 0 {
		opts.FileMode = 0644
	}
	return opts
}
