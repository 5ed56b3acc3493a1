package storage

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// internalWriteWindow is how long after an internal write events on a
// store file are still attributed to that write rather than to an
// external editor.
const internalWriteWindow = 2 * time.Second

// ChangeCallback is called with the store file path when an
// out-of-band modification is detected.
type ChangeCallback func(path string)

// Watch starts an fsnotify watcher over the directories holding the
// given store files and runs until ctx is cancelled. The store is the
// only sanctioned writer of its file; any write, remove, or rename not
// attributable to a recent internal write is logged as an out-of-band
// edit and reported through cb (if non-nil).
func Watch(ctx context.Context, stores []*File, logger *slog.Logger, cb ChangeCallback) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	tracked := make(map[string]*File, len(stores))
	dirs := make(map[string]struct{})
	for _, s := range stores {
		tracked[s.Path()] = s
		dirs[filepath.Dir(s.Path())] = struct{}{}
	}
	for dir := range dirs {
		if err := w.Add(dir); err != nil {
			return err
		}
	}

	logger.Info("watcher: started", slog.Int("files", len(tracked)))

	for {
		select {
		case <-ctx.Done():
			logger.Info("watcher: stopped")
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			// Our own atomic writes go through temp files in the same
			// directory; ignore them.
			if strings.Contains(filepath.Base(ev.Name), ".keepintouch-tmp-") {
				continue
			}
			store, ok := tracked[ev.Name]
			if !ok {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if time.Since(store.LastWrite()) < internalWriteWindow {
				logger.Debug("watcher: internal write", slog.String("path", ev.Name))
				continue
			}
			logger.Warn("watcher: store file modified outside the service",
				slog.String("path", ev.Name),
				slog.String("op", ev.Op.String()))
			if cb != nil {
				cb(ev.Name)
			}

		case watchErr, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Error("watcher: error", slog.String("error", watchErr.Error()))
		}
	}
}
