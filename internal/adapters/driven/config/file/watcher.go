package file

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/aufbau/internal/logger"
)

// DefaultDebounce coalesces bursts of writes from editors into one reload.
const DefaultDebounce = 200 * time.Millisecond

// Watcher reports changes to a single settings file.
//
// The parent directory is watched rather than the file, so editors that
// replace the file by rename keep triggering events.
type Watcher struct {
	path     string
	debounce time.Duration
	watcher  *fsnotify.Watcher
}

// NewWatcher starts watching the directory containing path.
func NewWatcher(path string, debounce time.Duration) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := w.Add(filepath.Dir(path)); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(path), err)
	}

	return &Watcher{
		path:     filepath.Clean(path),
		debounce: debounce,
		watcher:  w,
	}, nil
}

// Run calls onChange after the file is written, created or replaced, until
// ctx is done. The watcher is closed when Run returns.
func (w *Watcher) Run(ctx context.Context, onChange func()) {
	defer w.Close()

	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.relevant(event) {
				continue
			}
			logger.Debug("settings file %s: %s", event.Op, event.Name)

			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(w.debounce, onChange)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logger.Warn("settings watcher: %v", err)
		}
	}
}

// Close stops the underlying watcher.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}
