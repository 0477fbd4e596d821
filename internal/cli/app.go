package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/csabourin/inkscape-plugin-CSVColumnExporter/pkg/config"
	"github.com/csabourin/inkscape-plugin-CSVColumnExporter/pkg/display"
	"github.com/csabourin/inkscape-plugin-CSVColumnExporter/pkg/errors"
	"github.com/csabourin/inkscape-plugin-CSVColumnExporter/pkg/filesystem"
	"github.com/csabourin/inkscape-plugin-CSVColumnExporter/pkg/table"
)

// globalOptions holds the persistent flags of the root command.
type globalOptions struct {
	verbosity  int
	format     string
	noColor    bool
	configFile string

	// fs and now are replaced in tests.
	fs  filesystem.FS
	now func() time.Time
}

func newGlobalOptions() *globalOptions {
	return &globalOptions{fs: filesystem.NewOS(), now: time.Now}
}

// binding ties a command-line flag to a configuration key.
type binding struct {
	flag string
	key  string
}

var globalBindings = []binding{
	{"format", "ui.format"},
	{"no-color", "ui.no_color"},
}

// overrides collects the flags the user actually set, keyed by
// configuration key, so they win over every other layer.
func overrides(cmd *cobra.Command, bindings []binding) map[string]interface{} {
	out := make(map[string]interface{})
	flags := cmd.Flags()
	for _, b := range append(globalBindings, bindings...) {
		f := flags.Lookup(b.flag)
		if f == nil || !f.Changed {
			continue
		}
		out[b.key] = f.Value.String()
	}
	return out
}

// session is what every command needs once flags are parsed: the effective
// configuration and a renderer for the diagnostic stream.
type session struct {
	cfg      *config.Config
	renderer display.Renderer
	fs       filesystem.FS
	now      func() time.Time
}

func (g *globalOptions) open(cmd *cobra.Command, bindings []binding) (*session, error) {
	cfg, err := config.Load(config.LoadOptions{
		UserFile:  g.configFile,
		Overrides: overrides(cmd, bindings),
	})
	if err != nil {
		return nil, err
	}

	format, err := display.ParseFormat(cfg.UI.Format)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigValid, "invalid output format")
	}
	renderer, err := display.New(format, cmd.OutOrStdout(), cfg.UI.NoColor)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigValid, "cannot create renderer")
	}

	return &session{cfg: cfg, renderer: renderer, fs: g.fs, now: g.now}, nil
}

func (s *session) tableOptions() table.Options {
	return table.Options{
		Delimiter: s.cfg.Table.DelimiterRune(),
		Sheet:     s.cfg.Table.Sheet,
	}
}

// fail renders err and marks it as reported.
func (s *session) fail(err error) error {
	s.renderer.Error(err)
	return reported(err)
}
