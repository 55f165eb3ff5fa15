package config

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// reloadDelay is how long the file must be quiet before it is reloaded, so an
// editor's write-then-rename settles into one reload.
const reloadDelay = 100 * time.Millisecond

// Watcher reloads a tuning file whenever it changes on disk. Reloaded configs
// arrive on Updates and failures on Errors; both are closed after Close.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
	updates chan *Config
	errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

// NewWatcher starts watching the tuning file at path.
func NewWatcher(path string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config: watch %s: %w", path, err)
	}

	// Watch the directory: editors often replace the file instead of writing it.
	if err := w.Add(filepath.Dir(path)); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("config: watch %s: %w", path, err)
	}

	watcher := &Watcher{
		path:    filepath.Clean(path),
		watcher: w,
		updates: make(chan *Config, 4),
		errors:  make(chan error, 4),
		closeCh: make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

// Path returns the watched file.
func (w *Watcher) Path() string {
	return w.path
}

// Updates delivers each successfully reloaded config.
func (w *Watcher) Updates() <-chan *Config {
	return w.updates
}

// Errors delivers reload and watch failures.
func (w *Watcher) Errors() <-chan error {
	return w.errors
}

// Close stops watching.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.updates)
	defer close(w.errors)

	timer := time.NewTimer(reloadDelay)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			timer.Reset(reloadDelay)
		case <-timer.C:
			config, err := Load(w.path)
			if err != nil {
				w.sendError(err)
				continue
			}
			select {
			case w.updates <- config:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.sendError(fmt.Errorf("config: watch %s: %w", w.path, err))
		case <-w.closeCh:
			return
		}
	}
}

// sendError never blocks the watch loop; when nobody drains Errors the oldest
// failures are the ones kept.
func (w *Watcher) sendError(err error) {
	select {
	case w.errors <- err:
	default:
	}
}
