package main

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/kylin-x-kernel/axplat-crates/internal/log"
)

type checkOptions struct {
	Root     string
	BoardDir string
	Packages []string
	Jobs     int
}

func newRootCommand(ctx context.Context) *cobra.Command {
	opts := &checkOptions{
		Root:     ".",
		BoardDir: "plat/board",
		Packages: []string{"plat/...", "kernel/kmain"},
		Jobs:     runtime.NumCPU(),
	}
	logOpts := log.NewOptions()
	logOpts.Name = "platcheck"

	cmd := &cobra.Command{
		Use:          "platcheck",
		Short:        "Check that the platform packages build with exactly one plat_* tag",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := log.NewLogger(logOpts)
			if err != nil {
				return err
			}
			log.SetStd(l)
			defer l.Sync()

			return check(ctx, loadPackages, opts)
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&opts.Root, "root", opts.Root, "The module root.")
	fs.StringVar(&opts.BoardDir, "board-dir", opts.BoardDir, "The package holding the board bindings, relative to the root.")
	fs.StringSliceVar(&opts.Packages, "packages", opts.Packages, "The packages to type-check, relative to the root.")
	fs.IntVar(&opts.Jobs, "jobs", opts.Jobs, "The number of tag sets checked concurrently.")
	logOpts.AddFlags(fs)

	return cmd
}

func check(ctx context.Context, load loadFunc, opts *checkOptions) error {
	if opts.Jobs < 1 {
		return fmt.Errorf("--jobs must be at least 1; got %d", opts.Jobs)
	}

	modPath, err := modulePath(opts.Root)
	if err != nil {
		return err
	}

	boards, err := discoverBoards(filepath.Join(opts.Root, opts.BoardDir))
	if err != nil {
		return err
	}
	log.Info("discovered boards", "module", modPath, "boards", boards)

	patterns := make([]string, len(opts.Packages))
	for i, pkg := range opts.Packages {
		patterns[i] = modPath + "/" + pkg
	}

	results, err := runMatrix(ctx, load, opts.Root, buildMatrix(boards), patterns, opts.Jobs)
	if err != nil {
		return err
	}

	var failed int
	for _, res := range results {
		if res.Passed() {
			log.Info("tag set behaves as expected", "tags", res.Set.String(), "expect", res.Set.Expect.String())
			continue
		}

		failed++
		log.Warn("unexpected build outcome", "tags", res.Set.String(), "expect", res.Set.Expect.String(), "errors", res.Errors)
	}

	if failed != 0 {
		return fmt.Errorf("%d of %d tag sets did not behave as expected", failed, len(results))
	}
	return nil
}
