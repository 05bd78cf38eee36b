package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/go/packages"

	"github.com/kylin-x-kernel/axplat-crates/internal/log"
)

// result is the outcome of checking one tag set.
type result struct {
	Set    tagSet
	Errors []string
}

// Passed reports whether the errors match the expected outcome.
func (r result) Passed() bool {
	return r.Set.Expect.matches(r.Errors)
}

// loadFunc type-checks patterns under tags and returns the errors found.
type loadFunc func(ctx context.Context, dir string, tags, patterns []string) ([]string, error)

// modulePath returns the module path declared in dir/go.mod.
func modulePath(dir string) (string, error) {
	gomod := filepath.Join(dir, "go.mod")
	data, err := os.ReadFile(gomod)
	if err != nil {
		return "", err
	}

	path := modfile.ModulePath(data)
	if path == "" {
		return "", fmt.Errorf("%s: no module directive", gomod)
	}
	return path, nil
}

// runMatrix checks every tag set, at most jobs at a time. Results are
// returned in matrix order.
func runMatrix(ctx context.Context, load loadFunc, dir string, matrix []tagSet, patterns []string, jobs int) ([]result, error) {
	results := make([]result, len(matrix))

	logger := log.WithName("matrix")

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, set := range matrix {
		g.Go(func() error {
			setLog := logger.WithValues("tags", set.String(), "expect", set.Expect.String())
			setLog.Debug("type-checking")

			errs, err := load(ctx, dir, set.Tags, patterns)
			if err != nil {
				return fmt.Errorf("loading with tags %s: %w", set, err)
			}

			results[i] = result{Set: set, Errors: errs}
			setLog.Debug("checked tag set", "errors", len(errs))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// loadPackages type-checks patterns with go/packages and flattens the
// package errors of the whole import graph.
func loadPackages(ctx context.Context, dir string, tags, patterns []string) ([]string, error) {
	cfg := &packages.Config{
		Context: ctx,
		Mode:    packages.NeedName | packages.NeedFiles | packages.NeedImports | packages.NeedDeps | packages.NeedTypes,
		Dir:     dir,
		Tests:   false,
	}
	if len(tags) != 0 {
		cfg.BuildFlags = []string{"-tags=" + strings.Join(tags, ",")}
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, err
	}

	var errs []string
	seen := make(map[string]bool)
	packages.Visit(pkgs, nil, func(pkg *packages.Package) {
		for _, pkgErr := range pkg.Errors {
			msg := pkgErr.Error()
			if !seen[msg] {
				seen[msg] = true
				errs = append(errs, msg)
			}
		}
	})
	return errs, nil
}
