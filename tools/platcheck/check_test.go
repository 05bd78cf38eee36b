package main

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
)

// fakeLoad behaves like a correct tree: no board is unbound and more than
// one board conflicts.
func fakeLoad(_ context.Context, _ string, tags, _ []string) ([]string, error) {
	var boards int
	for _, tag := range tags {
		if strings.HasPrefix(tag, boardTagPrefix) {
			boards++
		}
	}

	switch boards {
	case 0:
		return []string{"undefined: platform_not_selected_build_with_exactly_one_plat_tag"}, nil
	case 1:
		return nil, nil
	default:
		return []string{"Console redeclared in this block"}, nil
	}
}

func testOptions() *checkOptions {
	return &checkOptions{
		Root:     "../..",
		BoardDir: "plat/board",
		Packages: []string{"plat/..."},
		Jobs:     2,
	}
}

func TestModulePath(t *testing.T) {
	path, err := modulePath("../..")
	if err != nil {
		t.Fatal(err)
	}
	if exp := "github.com/kylin-x-kernel/axplat-crates"; path != exp {
		t.Fatalf("expected module path %q; got %q", exp, path)
	}

	if _, err = modulePath(t.TempDir()); err == nil {
		t.Fatal("expected an error for a directory without go.mod")
	}
}

func TestCheck(t *testing.T) {
	t.Run("all sets as expected", func(t *testing.T) {
		var patterns atomic.Value
		load := func(ctx context.Context, dir string, tags, pkgs []string) ([]string, error) {
			patterns.Store(pkgs)
			return fakeLoad(ctx, dir, tags, pkgs)
		}

		if err := check(context.Background(), load, testOptions()); err != nil {
			t.Fatal(err)
		}

		got := patterns.Load().([]string)
		if len(got) != 1 || got[0] != "github.com/kylin-x-kernel/axplat-crates/plat/..." {
			t.Fatalf("expected module-qualified patterns; got %v", got)
		}
	})

	t.Run("conflicts go unnoticed", func(t *testing.T) {
		load := func(context.Context, string, []string, []string) ([]string, error) { return nil, nil }

		err := check(context.Background(), load, testOptions())
		if err == nil || !strings.Contains(err.Error(), "did not behave as expected") {
			t.Fatalf("expected a mismatch error; got %v", err)
		}
	})

	t.Run("loader failure", func(t *testing.T) {
		loadErr := errors.New("go list failed")
		load := func(context.Context, string, []string, []string) ([]string, error) { return nil, loadErr }

		if err := check(context.Background(), load, testOptions()); !errors.Is(err, loadErr) {
			t.Fatalf("expected the loader error to be returned; got %v", err)
		}
	})

	t.Run("bad jobs", func(t *testing.T) {
		opts := testOptions()
		opts.Jobs = 0
		if err := check(context.Background(), fakeLoad, opts); err == nil {
			t.Fatal("expected an error for --jobs=0")
		}
	})
}

func TestRunMatrixKeepsOrder(t *testing.T) {
	matrix := buildMatrix([]string{"plat_a", "plat_b"})
	results, err := runMatrix(context.Background(), fakeLoad, ".", matrix, nil, 3)
	if err != nil {
		t.Fatal(err)
	}

	for i, res := range results {
		if !reflectTags(res.Set.Tags, matrix[i].Tags) {
			t.Fatalf("[result %d] expected tags %v; got %v", i, matrix[i].Tags, res.Set.Tags)
		}
		if !res.Passed() {
			t.Errorf("[result %d] expected tag set %s to pass", i, res.Set)
		}
	}
}

func reflectTags(a, b []string) bool {
	return strings.Join(a, ",") == strings.Join(b, ",")
}

// TestLoadPackages runs the real type checker over the tree under the whole
// tag matrix.
func TestLoadPackages(t *testing.T) {
	if testing.Short() {
		t.Skip("type-checks the tree once per tag set")
	}

	if err := check(context.Background(), loadPackages, testOptions()); err != nil {
		t.Fatal(err)
	}
}

// Two boards must never build, whichever one the host architecture favours.
func TestLoadPackagesRejectsEveryBoardPair(t *testing.T) {
	if testing.Short() {
		t.Skip("type-checks the tree once per board pair")
	}

	modPath, err := modulePath("../..")
	if err != nil {
		t.Fatal(err)
	}
	boards, err := discoverBoards("../../plat/board")
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < len(boards); i++ {
		for j := i + 1; j < len(boards); j++ {
			tags := []string{boards[i], boards[j]}
			errs, err := loadPackages(context.Background(), "../..", tags, []string{modPath + "/plat/..."})
			if err != nil {
				t.Fatal(err)
			}
			if !expectConflict.matches(errs) {
				t.Errorf("expected tags %v to fail with a redeclaration; got %v", tags, errs)
			}
		}
	}
}
