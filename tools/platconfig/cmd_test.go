package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
)

const testBoard = `platform = "test-board"
arch = "aarch64"
package = "testboard"

[devices]
uart-paddr = 0x9000000
`

func TestGenerateCommand(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "platform.toml")
	output := filepath.Join(dir, "config.go")
	if err := os.WriteFile(input, []byte(testBoard), 0o644); err != nil {
		t.Fatal(err)
	}

	cmd := newRootCommand(context.Background())
	cmd.SetArgs([]string{"generate", "--input", input, "--output", output, "--package", "other", "--log.level", "error"})
	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}

	got, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	for _, exp := range []string{"package other\n", "UARTPaddr = 0x9000000\n", `Platform = "test-board"`} {
		if !strings.Contains(string(got), exp) {
			t.Errorf("expected output to contain %q; got:\n%s", exp, got)
		}
	}
}

func TestGenerateMissingInput(t *testing.T) {
	opts := &generateOptions{Input: filepath.Join(t.TempDir(), "missing.toml"), Output: "-"}
	if err := generate(opts); err == nil {
		t.Fatal("expected an error for a missing input")
	}
}

func TestRelevant(t *testing.T) {
	path := filepath.Clean("/boards/x/platform.toml")

	specs := []struct {
		ev  fsnotify.Event
		exp bool
	}{
		{fsnotify.Event{Name: path, Op: fsnotify.Write}, true},
		{fsnotify.Event{Name: path, Op: fsnotify.Create}, true},
		{fsnotify.Event{Name: path, Op: fsnotify.Chmod}, false},
		{fsnotify.Event{Name: "/boards/x/config.go", Op: fsnotify.Write}, false},
	}

	for specIndex, spec := range specs {
		if got := relevant(spec.ev, path); got != spec.exp {
			t.Errorf("[spec %d] expected %t; got %t", specIndex, spec.exp, got)
		}
	}
}

func TestWatchStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- watch(ctx, filepath.Join(t.TempDir(), "platform.toml"), func() error { return nil })
	}()

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatal(err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not return after cancel")
	}
}
