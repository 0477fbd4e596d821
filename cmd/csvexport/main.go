package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/csabourin/inkscape-plugin-CSVColumnExporter/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := cli.NewRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		cli.PrintError(rootCmd.ErrOrStderr(), err)
		stop()
		os.Exit(1)
	}
}
