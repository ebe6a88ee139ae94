package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"metric-descriptor-generator/internal/catalog"
	"metric-descriptor-generator/internal/config"
	"metric-descriptor-generator/internal/descriptor"
	"metric-descriptor-generator/internal/nested"
	"metric-descriptor-generator/internal/watch"
)

type generateOptions struct {
	configPath  string
	output      string
	prefix      string
	helpText    string
	hint        string
	unsupported string
	watch       bool
	verbose     bool
}

func newGenerateCmd() *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate [input]",
		Short: "Render a descriptor for every key path of the input",
		Long: `Render a descriptor for every key path of the input document.
The input is a JSON or YAML file, or stdin when omitted or "-".`,
		Aliases: []string{"gen"},
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts, inputArg(args))
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "generator config file (YAML)")
	flags.StringVarP(&opts.output, "output", "o", "", "write the catalogue to this file instead of stdout")
	flags.StringVar(&opts.prefix, "prefix", descriptor.DefaultNamespacePrefix, "namespace prefix stripped from descriptor names")
	flags.StringVar(&opts.helpText, "help-text", descriptor.DefaultHelpText, "help text placed in every descriptor")
	flags.StringVar(&opts.hint, "hint", descriptor.DefaultHint, "hint placed in every descriptor")
	flags.StringVar(&opts.unsupported, "unsupported", nested.UnsupportedReject.String(), "handling of sequence values: reject or leaf")
	flags.BoolVarP(&opts.watch, "watch", "w", false, "regenerate whenever the input file changes")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log every emitted descriptor")

	return cmd
}

// resolveConfig loads the config file, if any, and applies explicitly set
// flags on top. Flags a command does not define are left to the config.
func (o *generateOptions) resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()

	if o.configPath != "" {
		loaded, err := config.LoadFile(o.configPath)
		if err != nil {
			return nil, err
		}

		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("prefix") {
		cfg.NamespacePrefix = &o.prefix
	}

	if flags.Changed("help-text") {
		cfg.HelpText = &o.helpText
	}

	if flags.Changed("hint") {
		cfg.Hint = o.hint
	}

	if flags.Changed("unsupported") {
		cfg.UnsupportedValues = o.unsupported
	}

	if flags.Changed("output") {
		cfg.Output = o.output
	}

	err := cfg.Validate()
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func runGenerate(cmd *cobra.Command, opts *generateOptions, input string) error {
	if opts.watch && input == "-" {
		return errors.New("--watch needs an input file")
	}

	cfg, err := opts.resolveConfig(cmd)
	if err != nil {
		return err
	}

	logger := newLogger(cmd.ErrOrStderr(), opts.verbose)
	gen := catalog.New(descriptor.NewRenderer(cfg.RendererOptions()...), catalog.WithLogger(logger))

	regenerate := func(ctx context.Context) error {
		m, err := loadInput(cmd.InOrStdin(), input, cfg.LoadOptions()...)
		if err != nil {
			return err
		}

		return emit(ctx, gen, m, cfg.Output, cmd.OutOrStdout())
	}

	err = regenerate(cmd.Context())
	if err != nil {
		return err
	}

	if !opts.watch {
		return nil
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("watching input", slog.String("path", input))

	return watch.Watch(ctx, input, regenerate, watch.WithLogger(logger))
}

func loadInput(stdin io.Reader, input string, opts ...nested.Option) (*nested.Map, error) {
	if input == "-" {
		return nested.Load(stdin, opts...)
	}

	return nested.LoadFile(input, opts...)
}

func emit(ctx context.Context, gen *catalog.Generator, m *nested.Map, output string, stdout io.Writer) error {
	if output == "" {
		_, err := gen.Generate(ctx, m, catalog.NewWriterSink(stdout))
		return err
	}

	sink := &catalog.CollectSink{}

	_, err := gen.Generate(ctx, m, sink)
	if err != nil {
		return err
	}

	err = catalog.WriteFile(output, sink.Blocks)
	if err != nil {
		return fmt.Errorf("saving catalogue: %w", err)
	}

	return nil
}
