package console

import (
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/DBst-23/DBst-23/internal/status"
)

// changeDebounce coalesces bursts of filesystem events (the workflow
// commits several files at once) into a single refresh.
const changeDebounce = 500 * time.Millisecond

// dirWatcher pushes a signal on Changes whenever a watched data directory
// changes, debounced. It is strictly an accelerator for the periodic
// refresh: when it cannot be set up the console just falls back to the
// tick, so every constructor failure is non-fatal.
type dirWatcher struct {
	fs      *fsnotify.Watcher
	changes chan struct{}
	done    chan struct{}
}

// watchDataDirs watches the target directories that exist under root.
// Returns nil when no directory can be watched; callers must treat a nil
// watcher as "tick-only refresh".
func watchDataDirs(root string, targets []status.Target, logger *slog.Logger) *dirWatcher {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		logger.Debug("fsnotify unavailable, refreshing on tick only", "error", err)
		return nil
	}

	watching := 0
	for _, t := range targets {
		dir := filepath.Join(root, t.Path)
		if _, err := os.Stat(dir); err != nil {
			continue // the workflow has not created it yet
		}
		if err := fw.Add(dir); err != nil {
			logger.Debug("cannot watch data directory", "dir", dir, "error", err)
			continue
		}
		watching++
	}
	if watching == 0 {
		_ = fw.Close()
		return nil
	}

	w := &dirWatcher{
		fs:      fw,
		changes: make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
	go w.run()
	return w
}

func (w *dirWatcher) run() {
	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case _, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if timer == nil {
				timer = time.NewTimer(changeDebounce)
				fire = timer.C
			} else {
				timer.Reset(changeDebounce)
			}
		case <-fire:
			timer = nil
			fire = nil
			select {
			case w.changes <- struct{}{}:
			default: // a refresh is already pending
			}
		case _, ok := <-w.fs.Errors:
			if !ok {
				return
			}
		case <-w.done:
			return
		}
	}
}

// Changes returns the debounced change signal channel.
func (w *dirWatcher) Changes() <-chan struct{} {
	return w.changes
}

// Close stops the watcher. Safe to call on a nil receiver.
func (w *dirWatcher) Close() {
	if w == nil {
		return
	}
	close(w.done)
	_ = w.fs.Close()
}
