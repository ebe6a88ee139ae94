package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "descriptor-generator",
		Short: "Generate metric descriptor catalogues from nested metric samples",
		Long: `descriptor-generator walks a nested metrics document and renders a
display descriptor for every key path, interior nodes included.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		newGenerateCmd(),
		newPathsCmd(),
		&cobra.Command{
			Use:   "version",
			Short: "Print the version",
			Args:  cobra.NoArgs,
			Run: func(cmd *cobra.Command, _ []string) {
				fmt.Fprintln(cmd.OutOrStdout(), version)
			},
		},
	)

	return rootCmd
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func inputArg(args []string) string {
	if len(args) == 0 {
		return "-"
	}

	return args[0]
}
