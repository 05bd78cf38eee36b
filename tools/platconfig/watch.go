package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/kylin-x-kernel/axplat-crates/internal/log"
)

// watch calls regen every time path is written. The parent directory is
// watched since editors often replace files instead of writing them in
// place. Errors from regen are logged and do not stop the watch.
func watch(ctx context.Context, path string, regen func() error) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	path = filepath.Clean(path)
	if err = w.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watching %s: %w", path, err)
	}
	log.Info("watching for changes", "input", path)

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !relevant(ev, path) {
				continue
			}
			if err := regen(); err != nil {
				log.Error(err, "regeneration failed", "input", path)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Error(err, "watcher error")
		}
	}
}

func relevant(ev fsnotify.Event, path string) bool {
	return filepath.Clean(ev.Name) == path && ev.Op&(fsnotify.Write|fsnotify.Create) != 0
}
