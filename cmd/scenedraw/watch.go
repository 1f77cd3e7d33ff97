package main

import (
	"context"
	"path/filepath"

	"github.com/benoitkugler/scenedraw/scene"
	"github.com/fsnotify/fsnotify"
)

// watch calls `render` each time the file at `path` is written,
// until the context is done.
// The directory is watched, so that editors replacing the file
// are supported.
func watch(ctx context.Context, path string, render func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if err = watcher.Add(filepath.Dir(abs)); err != nil {
		return err
	}
	printInfo("watching " + path)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create {
				scene.Logger().Debug("source changed", "op", event.Op.String())
				render()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			scene.Logger().Warn("watcher", "err", err)
		}
	}
}
