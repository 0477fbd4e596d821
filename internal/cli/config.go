package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/csabourin/inkscape-plugin-CSVColumnExporter/pkg/config"
	"github.com/csabourin/inkscape-plugin-CSVColumnExporter/pkg/errors"
	"github.com/csabourin/inkscape-plugin-CSVColumnExporter/pkg/paths"
)

func newConfigCmd(g *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		GroupID: "misc",
	}
	cmd.AddCommand(newConfigInitCmd(g))
	cmd.AddCommand(newConfigShowCmd(g))
	return cmd
}

func newConfigInitCmd(g *globalOptions) *cobra.Command {
	var (
		force bool
		path  string
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: MsgConfigInitShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			target := path
			if target == "" {
				target = g.configFile
			}
			if target == "" {
				target = paths.ConfigFile()
			}
			target = paths.ExpandHome(target)

			exists, err := g.fs.Exists(target)
			if err != nil {
				return errors.Wrapf(err, errors.ErrFileWrite, "cannot check %s", target)
			}
			if exists && !force {
				return errors.Newf(errors.ErrFileExists, MsgErrConfigExist, target).
					WithDetail("path", target)
			}
			if err := g.fs.MkdirAll(filepath.Dir(target), 0755); err != nil {
				return errors.Wrapf(err, errors.ErrDirCreate, "cannot create %s", filepath.Dir(target))
			}
			if err := g.fs.WriteFile(target, []byte(config.GenerateConfigContent()), 0644); err != nil {
				return errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", target).
					WithDetail("path", target)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), MsgConfigWritten, target)
			return err
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, MsgFlagForce)
	cmd.Flags().StringVar(&path, "path", "", MsgFlagConfigPath)
	return cmd
}

func newConfigShowCmd(g *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: MsgConfigShowShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(config.LoadOptions{
				UserFile:  g.configFile,
				Overrides: overrides(cmd, nil),
			})
			if err != nil {
				return err
			}
			data, err := config.Marshal(cfg)
			if err != nil {
				return errors.Wrap(err, errors.ErrInternal, "cannot render configuration")
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
