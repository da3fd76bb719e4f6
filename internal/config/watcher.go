package config

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/hashicorp/go-hclog"
)

// Watcher reloads a configuration file whenever it is written and passes
// each valid result to a callback. Invalid files are logged and skipped.
type Watcher struct {
	path     string
	logger   hclog.Logger
	onChange func(*Config)

	watcher *fsnotify.Watcher
	wg      sync.WaitGroup
}

// NewWatcher creates a watcher for path. onChange is called from the
// watcher goroutine.
func NewWatcher(path string, logger hclog.Logger, onChange func(*Config)) *Watcher {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Watcher{
		path:     path,
		logger:   logger,
		onChange: onChange,
	}
}

// Start begins watching until ctx is cancelled or Stop is called.
// The parent directory is watched so editors that replace the file
// are still picked up.
func (w *Watcher) Start(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}

	dir := filepath.Dir(w.path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	w.watcher = watcher

	w.wg.Add(1)
	go w.loop(ctx)

	w.logger.Debug("watching for changes", "path", w.path)
	return nil
}

// Stop closes the underlying watcher and waits for the loop to exit.
func (w *Watcher) Stop() {
	if w.watcher != nil {
		w.watcher.Close()
	}
	w.wg.Wait()
}

func (w *Watcher) loop(ctx context.Context) {
	defer w.wg.Done()
	name := filepath.Base(w.path)

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != name {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				w.logger.Debug("change detected", "event", event.Op.String())
				w.reload()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("watcher error", "error", err)

		case <-ctx.Done():
			return
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := Load(w.path, w.logger)
	if err != nil {
		w.logger.Warn("ignoring invalid configuration", "error", err)
		return
	}
	w.onChange(cfg)
}
