package export_test

import (
	"bytes"
	"context"
	stderrors "errors"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csabourin/inkscape-plugin-CSVColumnExporter/pkg/document"
	"github.com/csabourin/inkscape-plugin-CSVColumnExporter/pkg/errors"
	"github.com/csabourin/inkscape-plugin-CSVColumnExporter/pkg/export"
	"github.com/csabourin/inkscape-plugin-CSVColumnExporter/pkg/filesystem"
)

const greeting = `<svg xmlns="http://www.w3.org/2000/svg"><text id="t-{{name}}">Hello {{name}}, visit {{city}}!</text></svg>`

const people = "Name,City\nAnn,Paris\n,\nZoe,Lyon\n"

type fixture struct {
	fs       filesystem.FS
	template *document.SVG
	recorder *export.Recorder
}

func newFixture(t *testing.T, csv string) *fixture {
	t.Helper()
	fsys := filesystem.NewMemory()
	require.NoError(t, fsys.MkdirAll("/data", 0755))
	require.NoError(t, fsys.WriteFile("/data/people.csv", []byte(csv), 0644))

	tpl, err := document.Parse([]byte(greeting))
	require.NoError(t, err)

	return &fixture{fs: fsys, template: tpl, recorder: &export.Recorder{}}
}

func (f *fixture) options() export.Options {
	return export.Options{
		Source:    "/data/people.csv",
		Template:  f.template,
		Column:    "Name",
		OutputDir: "/out/cards",
		FS:        f.fs,
		Reporter:  f.recorder,
	}
}

func (f *fixture) read(t *testing.T, path string) string {
	t.Helper()
	data, err := f.fs.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestRun_WritesOneFilePerRowAndSkipsEmptyNames(t *testing.T) {
	f := newFixture(t, people)

	res, err := export.Run(context.Background(), f.options())
	require.NoError(t, err)

	assert.Equal(t, export.StatusCompleted, res.Status)
	assert.Equal(t, 2, res.Written)
	assert.Equal(t, 1, res.Skipped)
	assert.Equal(t, "name", res.Column)
	assert.True(t, res.DirCreated)
	assert.Equal(t, []string{
		filepath.Join("/out/cards", "Ann.svg"),
		filepath.Join("/out/cards", "Zoe.svg"),
	}, res.Files())

	require.Len(t, res.Outcomes, 3)
	skip := res.Outcomes[1]
	assert.Equal(t, export.Skipped, skip.Kind)
	assert.Equal(t, 2, skip.Row)
	assert.Equal(t, export.SkipEmptyColumn, skip.Reason)
	assert.Contains(t, skip.Detail, "Row 2 missing or empty value for column 'Name'")

	assert.Equal(t, []string{"Name", "City"}, f.recorder.RawHeaders)
	assert.Equal(t, []string{"/out/cards"}, f.recorder.Dirs)
	assert.Len(t, f.recorder.Rows, 3)
	assert.Same(t, res, f.recorder.Result)
}

func TestRun_WithoutSubstitutionOutputMatchesTemplate(t *testing.T) {
	f := newFixture(t, people)

	_, err := export.Run(context.Background(), f.options())
	require.NoError(t, err)

	want, err := f.template.Bytes()
	require.NoError(t, err)
	assert.Equal(t, string(want), f.read(t, "/out/cards/Ann.svg"))
}

func TestRun_Substitution(t *testing.T) {
	f := newFixture(t, "Name,City\nAnn,Paris\nBob\n")
	opts := f.options()
	opts.Substitute = true

	_, err := export.Run(context.Background(), opts)
	require.NoError(t, err)

	assert.Contains(t, f.read(t, "/out/cards/Ann.svg"), `<text id="t-Ann">Hello Ann, visit Paris!</text>`)
	// Bob's city cell is empty, not missing, so it substitutes to "".
	assert.Contains(t, f.read(t, "/out/cards/Bob.svg"), `Hello Bob, visit !`)

	orig, err := f.template.Bytes()
	require.NoError(t, err)
	assert.Equal(t, greeting, string(orig), "template must stay untouched")
}

func TestRun_SubstitutionLeavesUnknownPlaceholders(t *testing.T) {
	f := newFixture(t, "Name\nAnn\n")
	opts := f.options()
	opts.Substitute = true

	_, err := export.Run(context.Background(), opts)
	require.NoError(t, err)

	assert.Contains(t, f.read(t, "/out/cards/Ann.svg"), "Hello Ann, visit {{city}}!")
}

func TestRun_SecondRunDoesNotOverwrite(t *testing.T) {
	f := newFixture(t, people)

	_, err := export.Run(context.Background(), f.options())
	require.NoError(t, err)

	second := &export.Recorder{}
	opts := f.options()
	opts.Reporter = second
	res, err := export.Run(context.Background(), opts)
	require.NoError(t, err)

	assert.False(t, res.DirCreated)
	assert.Empty(t, second.Dirs)
	assert.Equal(t, []string{
		filepath.Join("/out/cards", "Ann_1.svg"),
		filepath.Join("/out/cards", "Zoe_1.svg"),
	}, res.Files())
}

func TestRun_SanitizedCollisionsWithinRun(t *testing.T) {
	f := newFixture(t, "Name\nItem\nItem\nA/B\nA:B\n")

	res, err := export.Run(context.Background(), f.options())
	require.NoError(t, err)

	var stems []string
	for _, o := range res.Outcomes {
		stems = append(stems, o.Stem)
	}
	assert.Equal(t, []string{"Item", "Item_1", "A_B", "A_B_1"}, stems)
}

func TestRun_MalformedRowIsSkipped(t *testing.T) {
	f := newFixture(t, "Name,City\nAnn,\"Par\"is\"\nZoe,Lyon\n")

	res, err := export.Run(context.Background(), f.options())
	require.NoError(t, err)

	assert.Equal(t, 1, res.Written)
	assert.Equal(t, 1, res.Skipped)
	assert.Equal(t, export.SkipMalformed, res.Outcomes[0].Reason)
	assert.Equal(t, "Skipping row 1: empty or malformed.", res.Outcomes[0].Detail)
}

func TestRun_SkipsAreNotWarnings(t *testing.T) {
	var logs bytes.Buffer
	prevLogger, prevLevel := log.Logger, zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = prevLogger
		zerolog.SetGlobalLevel(prevLevel)
	})
	log.Logger = zerolog.New(&logs)
	zerolog.SetGlobalLevel(zerolog.WarnLevel)

	f := newFixture(t, people)
	res, err := export.Run(context.Background(), f.options())
	require.NoError(t, err)
	require.Equal(t, 1, res.Skipped)

	assert.NotContains(t, logs.String(), "Skipping", "skipped rows are reported by the renderer, not the warn log")
}

func TestRun_Preview(t *testing.T) {
	f := newFixture(t, people)
	opts := f.options()
	opts.Preview = true
	opts.Template = nil

	res, err := export.Run(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, export.StatusPreviewed, res.Status)
	assert.Equal(t, []string{"Name", "City"}, res.Headers)
	assert.Equal(t, 1, f.recorder.Previews)
	assert.Zero(t, res.Written)

	exists, err := f.fs.Exists("/out/cards")
	require.NoError(t, err)
	assert.False(t, exists, "preview must not create the output folder")
}

func TestRun_FatalConditions(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*export.Options)
		code   errors.ErrorCode
	}{
		{"missing source", func(o *export.Options) { o.Source = "/data/nope.csv" }, errors.ErrSourceNotFound},
		{"unknown column", func(o *export.Options) { o.Column = "Country" }, errors.ErrColumnNotFound},
		{"strict column case", func(o *export.Options) { o.Column = "name"; o.Strict = true }, errors.ErrColumnNotFound},
		{"strict missing folder", func(o *export.Options) { o.Strict = true }, errors.ErrDirNotFound},
		{"output is a file", func(o *export.Options) { o.OutputDir = "/data/people.csv" }, errors.ErrDirCreate},
		{"no output dir", func(o *export.Options) { o.OutputDir = " " }, errors.ErrInvalidInput},
		{"no template", func(o *export.Options) { o.Template = nil }, errors.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, people)
			opts := f.options()
			tt.mutate(&opts)

			res, err := export.Run(context.Background(), opts)
			require.Error(t, err)
			assert.Equal(t, tt.code, errors.GetErrorCode(err), "got %v", err)

			require.NotNil(t, res)
			assert.Equal(t, export.StatusAborted, res.Status)
			assert.Equal(t, string(tt.code), res.CauseCode)
			assert.NotEmpty(t, res.Cause)
			assert.Zero(t, res.Written)
			assert.Same(t, res, f.recorder.Result)
		})
	}
}

func TestRun_ColumnNotFoundListsHeaders(t *testing.T) {
	f := newFixture(t, people)
	opts := f.options()
	opts.Column = "Nmae"

	res, err := export.Run(context.Background(), opts)
	require.Error(t, err)
	assert.Equal(t, []string{"name", "city"}, errors.GetErrorDetails(err)["available"])
	assert.Contains(t, res.Cause, "available: name, city")
}

// faultyFS fails selected operations of an in-memory filesystem.
type faultyFS struct {
	filesystem.FS
	mkdirErr   error
	failWrites map[string]bool
}

func (f *faultyFS) MkdirAll(path string, perm fs.FileMode) error {
	if f.mkdirErr != nil {
		return f.mkdirErr
	}
	return f.FS.MkdirAll(path, perm)
}

func (f *faultyFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	if f.failWrites[filepath.Base(name)] {
		return stderrors.New("disk full")
	}
	return f.FS.WriteFile(name, data, perm)
}

func TestRun_DirCreateFailureIsFatal(t *testing.T) {
	f := newFixture(t, people)
	opts := f.options()
	opts.FS = &faultyFS{FS: f.fs, mkdirErr: stderrors.New("permission denied")}

	res, err := export.Run(context.Background(), opts)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrDirCreate))
	assert.Contains(t, res.Cause, "permission denied")
	assert.Empty(t, res.Outcomes)
}

func TestRun_WriteFailureAbortsAndKeepsEarlierFiles(t *testing.T) {
	f := newFixture(t, people)
	opts := f.options()
	opts.FS = &faultyFS{FS: f.fs, failWrites: map[string]bool{"Zoe.svg": true}}

	res, err := export.Run(context.Background(), opts)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileWrite))
	assert.Equal(t, export.StatusAborted, res.Status)
	assert.Equal(t, 1, res.Written)
	assert.Equal(t, 1, res.Skipped)

	_ = f.read(t, "/out/cards/Ann.svg")
}

// panicking is a template whose Clone blows up.
type panicking struct{ document.Document }

func (panicking) Clone() document.Document { panic("clone exploded") }

func TestRun_UnexpectedPanicBecomesInternalError(t *testing.T) {
	f := newFixture(t, people)
	opts := f.options()
	opts.Template = panicking{}

	res, err := export.Run(context.Background(), opts)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInternal))
	assert.Contains(t, err.Error(), "clone exploded")
	assert.Equal(t, export.StatusAborted, res.Status)
	assert.Same(t, res, f.recorder.Result)
}

func TestRun_Canceled(t *testing.T) {
	f := newFixture(t, people)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := export.Run(ctx, f.options())
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrCanceled))
	assert.True(t, stderrors.Is(err, context.Canceled))
	assert.Zero(t, res.Written)
}

func TestRun_ExtensionAndIndent(t *testing.T) {
	f := newFixture(t, "Name\nAnn\n")
	opts := f.options()
	opts.Extension = "xml"
	opts.Indent = 2

	res, err := export.Run(context.Background(), opts)
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join("/out/cards", "Ann.xml")}, res.Files())

	out := f.read(t, "/out/cards/Ann.xml")
	assert.True(t, strings.HasPrefix(out, "<svg"))
	assert.Contains(t, out, "\n  <text")
}

func TestRunState_Process(t *testing.T) {
	f := newFixture(t, people)
	opts := f.options()
	opts.Extension = ".svg"
	opts.FileMode = 0644
	require.NoError(t, f.fs.MkdirAll(opts.OutputDir, 0755))

	state := export.NewRunState(opts, "name", "Name", zerologDiscard())
	r, err := readRows(t, f.fs, "/data/people.csv")
	require.NoError(t, err)

	var kinds []export.OutcomeKind
	for _, row := range r {
		o, err := state.Process(row)
		require.NoError(t, err)
		kinds = append(kinds, o.Kind)
	}

	assert.Equal(t, []export.OutcomeKind{export.Emitted, export.Skipped, export.Emitted}, kinds)
	assert.Equal(t, 2, state.Written())
	assert.Equal(t, 1, state.Skipped())
}

func TestRun_OnDiskCreatesNestedFolder(t *testing.T) {
	dir := t.TempDir()
	osfs := filesystem.NewOS()
	src := filepath.Join(dir, "people.csv")
	require.NoError(t, osfs.WriteFile(src, []byte(people), 0644))

	tpl, err := document.Parse([]byte(greeting))
	require.NoError(t, err)

	out := filepath.Join(dir, "a", "b", "c")
	opts := export.Options{Source: src, Template: tpl, Column: "name", OutputDir: out, Substitute: true}

	res, err := export.Run(context.Background(), opts)
	require.NoError(t, err)
	assert.True(t, res.DirCreated)
	assert.Equal(t, 2, res.Written)
	assert.True(t, filesystem.IsRegularFile(osfs, filepath.Join(out, "Zoe.svg")))
}
