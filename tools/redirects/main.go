// Command redirects patches the kernel image so that selected runtime
// functions jump to kernel replacements. Replacements are Go functions
// annotated with //go:redirect-from <runtime symbol>.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kylin-x-kernel/axplat-crates/internal/log"
)

type options struct {
	Root string
	Dir  string
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &options{Root: ".", Dir: "kernel"}
	logOpts := log.NewOptions()
	logOpts.Name = "redirects"

	root := &cobra.Command{
		Use:          "redirects",
		Short:        "Manage the kernel's runtime redirect table",
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
	pfs := root.PersistentFlags()
	pfs.StringVar(&opts.Root, "root", opts.Root, "The module root.")
	pfs.StringVar(&opts.Dir, "dir", opts.Dir, "The directory, relative to the root, scanned for annotations.")
	logOpts.AddFlags(pfs)

	root.AddCommand(
		&cobra.Command{
			Use:   "count",
			Short: "Print the number of redirects",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				redirects, err := load(opts)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d", len(redirects))
				return nil
			},
		},
		&cobra.Command{
			Use:   "populate-table KERNEL_IMAGE",
			Short: "Write the redirect table into a linked kernel image",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				redirects, err := load(opts)
				if err != nil {
					return err
				}
				if err = elfResolveRedirectSymbols(redirects, args[0]); err != nil {
					return err
				}
				if err = elfWriteRedirectTable(redirects, args[0]); err != nil {
					return err
				}

				for _, r := range redirects {
					log.Info("redirect", "src", r.src, "dst", r.dst, "srcVMA", r.srcVMA, "dstVMA", r.dstVMA)
				}
				return nil
			},
		},
	)

	return root
}

func load(opts *options) ([]*redirect, error) {
	modPath, err := modulePath(opts.Root)
	if err != nil {
		return nil, err
	}

	goFiles, err := collectGoFiles(opts.Root, opts.Dir)
	if err != nil {
		return nil, err
	}

	return findRedirects(opts.Root, modPath, goFiles)
}
