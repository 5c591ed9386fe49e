package resource

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/colorstacknyu/colorstack-site/internal/domain"
)

// Watch calls fn with the parsed file once, then again each time it changes,
// until ctx is done. A parse failure is passed to fn and watching continues.
//
// The parent directory is watched so that editors which replace the file
// on save are still seen.
func Watch(ctx context.Context, path string, fn func([]domain.Resource, error)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("resources watcher: %w", err)
	}
	defer w.Close()

	target := filepath.Clean(path)
	if err := w.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("resources watcher add %s: %w", filepath.Dir(target), err)
	}

	fn(LoadFile(target))

	for {
		select {
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
				fn(LoadFile(target))
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			slog.Warn("resources watcher error", "path", target, "err", err)
		case <-ctx.Done():
			return nil
		}
	}
}
