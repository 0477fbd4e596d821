package cli

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/csabourin/inkscape-plugin-CSVColumnExporter/pkg/cobrax/topics"
)

//go:embed topics/*.md
var topicFiles embed.FS

// initTopics replaces the help command with the topic-aware one.
func initTopics(rootCmd *cobra.Command) error {
	sub, err := fs.Sub(topicFiles, "topics")
	if err != nil {
		return err
	}
	_, err = topics.Initialize(rootCmd, sub, topics.Options{
		Extensions: []string{".md"},
		Renderer:   topics.NewGlamourRenderer(stdoutIsTerminal()),
	})
	return err
}

func newTopicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "topics",
		Short:   MsgTopicsShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			helpCmd, _, err := cmd.Root().Find([]string{"help"})
			if err != nil || helpCmd.Run == nil {
				return fmt.Errorf("help command not found")
			}
			helpCmd.SetOut(cmd.OutOrStdout())
			helpCmd.Run(helpCmd, []string{"topics"})
			return nil
		},
	}
}
