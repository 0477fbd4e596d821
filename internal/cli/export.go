package cli

import (
	"github.com/spf13/cobra"

	"github.com/csabourin/inkscape-plugin-CSVColumnExporter/pkg/document"
	"github.com/csabourin/inkscape-plugin-CSVColumnExporter/pkg/errors"
	"github.com/csabourin/inkscape-plugin-CSVColumnExporter/pkg/export"
	"github.com/csabourin/inkscape-plugin-CSVColumnExporter/pkg/logging"
	"github.com/csabourin/inkscape-plugin-CSVColumnExporter/pkg/paths"
)

var tableBindings = []binding{
	{"delimiter", "table.delimiter"},
	{"sheet", "table.sheet"},
}

var exportBindings = append([]binding{
	{"out", "output.dir"},
	{"extension", "output.extension"},
	{"indent", "output.indent"},
	{"substitute", "run.substitute"},
	{"strict", "run.strict"},
}, tableBindings...)

func addTableFlags(cmd *cobra.Command, csvPath *string) {
	cmd.Flags().StringVar(csvPath, "csv", "", MsgFlagCSV)
	cmd.Flags().String("delimiter", ",", MsgFlagDelimiter)
	cmd.Flags().String("sheet", "", MsgFlagSheet)
	_ = cmd.MarkFlagFilename("csv", "csv", "xlsx", "xlsm", "tsv", "txt")
}

// templateCompletion offers SVG and XML files for the template argument.
func templateCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return []string{"svg", "xml"}, cobra.ShellCompDirectiveFilterFileExt
}

func newExportCmd(g *globalOptions) *cobra.Command {
	var (
		csvPath string
		column  string
		preview bool
	)

	cmd := &cobra.Command{
		Use:               "export --csv <table> --column <name> [flags] <template.svg>",
		Short:             MsgExportShort,
		Long:              MsgExportLong,
		Example:           MsgExportExample,
		GroupID:           "core",
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: templateCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := g.open(cmd, exportBindings)
			if err != nil {
				return err
			}
			logger := logging.GetLogger("cli.export")

			if csvPath == "" {
				return s.fail(errors.New(errors.ErrInvalidInput, MsgErrNoCSV))
			}

			opts := export.Options{
				Source:     csvPath,
				Table:      s.tableOptions(),
				Column:     column,
				Extension:  s.cfg.Output.Extension,
				Substitute: s.cfg.Run.Substitute,
				Preview:    preview,
				Strict:     s.cfg.Run.Strict,
				Indent:     s.cfg.Output.Indent,
				DirMode:    s.cfg.Output.DirPerm(),
				FileMode:   s.cfg.Output.FilePerm(),
				FS:         s.fs,
				Reporter:   s.renderer,
			}

			if !preview {
				if len(args) == 0 {
					return s.fail(errors.New(errors.ErrInvalidInput, MsgErrNoTemplate))
				}
				if column == "" {
					return s.fail(errors.New(errors.ErrInvalidInput, MsgErrNoColumn))
				}
				tpl, err := document.Load(s.fs, args[0])
				if err != nil {
					return s.fail(err)
				}
				opts.Template = tpl
				opts.OutputDir = paths.ResolveOutputDir(s.cfg.Output.Dir, s.now())
			}

			logger.Debug().
				Str("source", opts.Source).
				Str("column", opts.Column).
				Str("outputDir", opts.OutputDir).
				Bool("preview", preview).
				Msg("Running export")

			if _, err := export.Run(cmd.Context(), opts); err != nil {
				// The renderer printed the abort as part of the result.
				return reported(err)
			}
			return s.renderer.Err()
		},
	}

	addTableFlags(cmd, &csvPath)
	cmd.Flags().StringVar(&column, "column", "", MsgFlagColumn)
	cmd.Flags().StringP("out", "o", "", MsgFlagOut)
	cmd.Flags().Bool("substitute", false, MsgFlagSubstitute)
	cmd.Flags().BoolVar(&preview, "preview", false, MsgFlagPreview)
	cmd.Flags().Bool("strict", false, MsgFlagStrict)
	cmd.Flags().String("extension", ".svg", MsgFlagExtension)
	cmd.Flags().Int("indent", 0, MsgFlagIndent)
	_ = cmd.MarkFlagDirname("out")

	return cmd
}

func newPreviewCmd(g *globalOptions) *cobra.Command {
	var csvPath string

	cmd := &cobra.Command{
		Use:     "preview --csv <table>",
		Short:   MsgPreviewShort,
		Long:    MsgPreviewLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := g.open(cmd, tableBindings)
			if err != nil {
				return err
			}
			if csvPath == "" {
				return s.fail(errors.New(errors.ErrInvalidInput, MsgErrNoCSV))
			}

			_, err = export.Run(cmd.Context(), export.Options{
				Source:   csvPath,
				Table:    s.tableOptions(),
				Preview:  true,
				FS:       s.fs,
				Reporter: s.renderer,
			})
			if err != nil {
				return reported(err)
			}
			return s.renderer.Err()
		},
	}

	addTableFlags(cmd, &csvPath)
	return cmd
}

func newInspectCmd(g *globalOptions) *cobra.Command {
	var csvPath string

	cmd := &cobra.Command{
		Use:               "inspect --csv <table> <template.svg>",
		Short:             MsgInspectShort,
		Long:              MsgInspectLong,
		GroupID:           "core",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: templateCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := g.open(cmd, tableBindings)
			if err != nil {
				return err
			}
			if csvPath == "" {
				return s.fail(errors.New(errors.ErrInvalidInput, MsgErrNoCSV))
			}

			tpl, err := document.Load(s.fs, args[0])
			if err != nil {
				return s.fail(err)
			}
			ins, err := export.Inspect(s.fs, csvPath, s.tableOptions(), tpl)
			if err != nil {
				return s.fail(err)
			}
			s.renderer.Inspection(ins)
			return s.renderer.Err()
		},
	}

	addTableFlags(cmd, &csvPath)
	return cmd
}
