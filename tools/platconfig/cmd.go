package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kylin-x-kernel/axplat-crates/internal/log"
)

type generateOptions struct {
	Input   string
	Output  string
	Package string
	Watch   bool
}

func newRootCommand(ctx context.Context) *cobra.Command {
	logOpts := log.NewOptions()
	logOpts.Name = "platconfig"

	root := &cobra.Command{
		Use:          "platconfig",
		Short:        "Generate board constants from platform.toml",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := log.NewLogger(logOpts)
			if err != nil {
				return err
			}
			log.SetStd(l)
			return nil
		},
	}
	logOpts.AddFlags(root.PersistentFlags())

	root.AddCommand(newGenerateCommand(ctx))
	return root
}

func newGenerateCommand(ctx context.Context) *cobra.Command {
	opts := &generateOptions{Input: "platform.toml", Output: "config.go"}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write the Go constants for one board",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := generate(opts); err != nil {
				return err
			}
			if !opts.Watch {
				return nil
			}
			return watch(ctx, opts.Input, func() error { return generate(opts) })
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&opts.Input, "input", opts.Input, "The board description to read.")
	fs.StringVar(&opts.Output, "output", opts.Output, "The Go file to write; '-' writes to stdout.")
	fs.StringVar(&opts.Package, "package", opts.Package, "Override the package name from the board description.")
	fs.BoolVar(&opts.Watch, "watch", opts.Watch, "Regenerate whenever the input changes.")

	return cmd
}

func generate(opts *generateOptions) error {
	data, err := os.ReadFile(opts.Input)
	if err != nil {
		return err
	}

	cfg, err := parseConfig(data)
	if err != nil {
		return fmt.Errorf("%s: %w", opts.Input, err)
	}
	if opts.Package != "" {
		cfg.Package = opts.Package
	}

	src, err := render(cfg, filepath.Base(opts.Input))
	if err != nil {
		return fmt.Errorf("%s: %w", opts.Input, err)
	}

	if opts.Output == "-" {
		_, err = os.Stdout.Write(src)
		return err
	}

	if prev, err := os.ReadFile(opts.Output); err == nil && string(prev) == string(src) {
		log.Debug("output is up to date", "output", opts.Output)
		return nil
	}
	if err = os.WriteFile(opts.Output, src, 0o644); err != nil {
		return err
	}

	log.Info("generated board constants", "platform", cfg.Platform, "output", opts.Output)
	return nil
}
