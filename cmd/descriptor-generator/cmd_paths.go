package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"metric-descriptor-generator/internal/flatten"
	"metric-descriptor-generator/internal/nested"
)

func newPathsCmd() *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "paths [input]",
		Short: "Print the flattened key paths of the input, one per line",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolveConfig(cmd)
			if err != nil {
				return err
			}

			m, err := loadInput(cmd.InOrStdin(), inputArg(args), cfg.LoadOptions()...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for path := range flatten.Walk(m, "") {
				fmt.Fprintln(out, path)
			}

			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "generator config file (YAML)")
	flags.StringVar(&opts.unsupported, "unsupported", nested.UnsupportedReject.String(), "handling of sequence values: reject or leaf")

	return cmd
}
