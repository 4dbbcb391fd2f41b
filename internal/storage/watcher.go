package storage

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports changes to a single scenario file, debounced so editors
// that write in bursts trigger one reload.
type Watcher struct {
	path     string
	fs       *fsnotify.Watcher
	debounce time.Duration

	OnChange func(path string) error
	OnError  func(err error)
}

// NewWatcher creates a watcher for one file. The parent directory is watched
// rather than the file itself; editors that replace files atomically would
// otherwise drop the watch.
func NewWatcher(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving watch path: %w", err)
	}
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := fs.Add(filepath.Dir(abs)); err != nil {
		_ = fs.Close()
		return nil, fmt.Errorf("watching directory: %w", err)
	}
	return &Watcher{
		path:     abs,
		fs:       fs,
		debounce: 500 * time.Millisecond,
	}, nil
}

// Run blocks delivering change callbacks until the context is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	var timer *time.Timer
	for {
		select {
		case <-ctx.Done():
			_ = w.fs.Close()
			return ctx.Err()

		case event, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil || abs != w.path {
				continue
			}

			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(w.debounce, func() {
				if w.OnChange == nil {
					return
				}
				if err := w.OnChange(w.path); err != nil && w.OnError != nil {
					w.OnError(err)
				}
			})

		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			if w.OnError != nil {
				w.OnError(err)
			}
		}
	}
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	return w.fs.Close()
}
