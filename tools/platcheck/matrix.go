package main

import (
	"fmt"
	"go/build"
	"go/build/constraint"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const (
	boardTagPrefix = "plat_"
	irqTag         = "irq"
)

// outcome is the expected result of type-checking under a tag set.
type outcome int

const (
	// expectOK means the packages must type-check cleanly.
	expectOK outcome = iota

	// expectUnbound means no platform was selected.
	expectUnbound

	// expectConflict means more than one platform was selected.
	expectConflict
)

func (o outcome) String() string {
	switch o {
	case expectOK:
		return "ok"
	case expectUnbound:
		return "unbound"
	case expectConflict:
		return "conflict"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// matches reports whether the type errors collected for a tag set are the
// ones o predicts.
func (o outcome) matches(errs []string) bool {
	switch o {
	case expectOK:
		return len(errs) == 0
	case expectUnbound:
		return containsAny(errs, "platform_not_selected")
	case expectConflict:
		return containsAny(errs, "redeclared")
	}
	return false
}

func containsAny(errs []string, substr string) bool {
	for _, err := range errs {
		if strings.Contains(err, substr) {
			return true
		}
	}
	return false
}

// tagSet is one entry of the check matrix.
type tagSet struct {
	Tags   []string
	Expect outcome
}

func (ts tagSet) String() string {
	if len(ts.Tags) == 0 {
		return "(no tags)"
	}
	return strings.Join(ts.Tags, ",")
}

// discoverBoards returns the board tags named by the build constraints of the
// Go files in dir. A file counts as a board binding when its constraint is a
// single plat_* tag.
func discoverBoards(dir string) ([]string, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.go"))
	if err != nil {
		return nil, err
	}

	var boards []string
	for _, file := range files {
		if strings.HasSuffix(file, "_test.go") {
			continue
		}

		expr, err := fileConstraint(file)
		if err != nil {
			return nil, err
		}
		if tag, ok := expr.(*constraint.TagExpr); ok && strings.HasPrefix(tag.Tag, boardTagPrefix) {
			if err := checkPortable(file, tag.Tag); err != nil {
				return nil, err
			}
			boards = append(boards, tag.Tag)
		}
	}

	if len(boards) == 0 {
		return nil, fmt.Errorf("%s: no %s* board bindings found", dir, boardTagPrefix)
	}
	sort.Strings(boards)
	return boards, nil
}

// hostTargets are the GOOS/GOARCH pairs a board binding must build for. The
// kernel cross-compiles every board from any of them.
var hostTargets = [][2]string{
	{"linux", "amd64"},
	{"linux", "arm64"},
	{"linux", "riscv64"},
	{"darwin", "arm64"},
	{"windows", "amd64"},
}

// checkPortable reports an error if file is excluded for some host target
// when only tag is set. A file name ending in a GOOS or GOARCH (for example
// board_x_riscv64.go) carries an implicit constraint that hides the binding
// on every other target.
func checkPortable(file, tag string) error {
	dir, name := filepath.Split(file)
	for _, target := range hostTargets {
		ctx := build.Default
		ctx.GOOS, ctx.GOARCH = target[0], target[1]
		ctx.BuildTags = []string{tag}

		match, err := ctx.MatchFile(dir, name)
		if err != nil {
			return err
		}
		if !match {
			return fmt.Errorf("%s: not built for %s/%s with -tags %s; rename it so it does not end in a GOOS or GOARCH", file, target[0], target[1], tag)
		}
	}
	return nil
}

// fileConstraint returns the //go:build expression of file, or nil if it has
// none.
func fileConstraint(file string) (constraint.Expr, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "package ") {
			break
		}
		if !constraint.IsGoBuild(line) {
			continue
		}

		expr, err := constraint.Parse(line)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", file, err)
		}
		return expr, nil
	}
	return nil, nil
}

// buildMatrix returns the tag sets to check: no board, each board alone,
// each board with irq, and every pair of boards.
func buildMatrix(boards []string) []tagSet {
	matrix := []tagSet{
		{Tags: nil, Expect: expectUnbound},
		{Tags: []string{irqTag}, Expect: expectUnbound},
	}

	for _, board := range boards {
		matrix = append(matrix,
			tagSet{Tags: []string{board}, Expect: expectOK},
			tagSet{Tags: []string{board, irqTag}, Expect: expectOK},
		)
	}

	for i := 0; i < len(boards); i++ {
		for j := i + 1; j < len(boards); j++ {
			matrix = append(matrix, tagSet{Tags: []string{boards[i], boards[j]}, Expect: expectConflict})
		}
	}

	return matrix
}
