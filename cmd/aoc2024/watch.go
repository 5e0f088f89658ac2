package main

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/katalvlaran/aoc2024/internal/ctxlog"
)

// watchDebounce collapses the burst of events an editor save produces.
const watchDebounce = 300 * time.Millisecond

// watchInput calls solve once, then again after every write to path, until
// ctx is done. Events closer together than debounce trigger a single call.
// A failing solve is logged and watching continues.
//
// The parent directory is watched rather than the file so that editors which
// save by renaming a temporary file are still seen.
func watchInput(ctx context.Context, path string, debounce time.Duration, solve func() error) error {
	logger := ctxlog.FromContext(ctx)

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer w.Close()
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch: %w", err)
	}

	attempt := func() {
		if err := solve(); err != nil {
			logger.Error("solve failed", "path", path, "error", err)
		}
	}
	attempt()
	logger.Info("watching input", "path", path)

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			logger.Info("watch stopped", "path", path)
			return nil

		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			// Debounce: restart the timer on each change.
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(debounce)
			fire = timer.C

		case <-fire:
			fire = nil
			logger.Info("input changed, solving", "path", path)
			attempt()

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Error("watcher error", "error", err)
		}
	}
}
