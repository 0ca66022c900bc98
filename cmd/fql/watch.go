package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchAndRun re-reads path and runs runOnce each time it changes, debounced
// by cfg's configured interval so a burst of writes from an editor's atomic
// save doesn't re-parse the same content twice. Runs once immediately before
// watching so the first invocation doesn't wait on an edit.
func watchAndRun(path string, cfg *config, runOnce func(cfg *config, filter string) (int, error)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		return fmt.Errorf("watching %s: %w", path, err)
	}

	runFile := func() error {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		_, err = runOnce(cfg, string(data))
		return err
	}

	if err := runFile(); err != nil {
		return err
	}

	var debounce *time.Timer
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(cfg.debounce(), func() {
				_ = runFile()
			})
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watching %s: %w", path, err)
		}
	}
}
