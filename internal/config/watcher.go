package config

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/Iron-Ham/taskmemo/internal/errors"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// watchDebounce collapses the burst of events editors emit for one save.
const watchDebounce = 50 * time.Millisecond

// Watcher reloads the config file whenever it changes on disk and reports
// the result to a callback.
type Watcher struct {
	watcher *fsnotify.Watcher
	v       *viper.Viper
	path    string

	onChange func(*Config, error)

	mu       sync.Mutex
	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewWatcher creates a Watcher for the config file at path, reloading into v.
// The parent directory is watched rather than the file itself, so that
// editors which replace the file on save are still observed.
func NewWatcher(v *viper.Viper, path string) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := watcher.Add(filepath.Dir(path)); err != nil {
		_ = watcher.Close()
		return nil, err
	}

	return &Watcher{
		watcher: watcher,
		v:       v,
		path:    filepath.Clean(path),
		stopCh:  make(chan struct{}),
	}, nil
}

// OnChange sets the callback invoked after each reload. The callback runs on
// the watcher goroutine; err is non-nil when the file could not be read or
// the new values failed validation.
func (w *Watcher) OnChange(cb func(*Config, error)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onChange = cb
}

// Start begins watching for changes.
func (w *Watcher) Start() {
	go w.watchLoop()
}

// Stop stops the watcher and releases its resources. It is safe to call
// more than once.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.stopCh)
		_ = w.watcher.Close()
	})
}

func (w *Watcher) watchLoop() {
	debounceTimer := time.NewTimer(0)
	<-debounceTimer.C // drain initial timer
	pending := false

	for {
		select {
		case <-w.stopCh:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			pending = true
			debounceTimer.Reset(watchDebounce)

		case <-debounceTimer.C:
			if pending {
				pending = false
				w.reload()
			}

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
		}
	}
}

func (w *Watcher) reload() {
	w.mu.Lock()
	cb := w.onChange
	w.mu.Unlock()

	if cb == nil {
		return
	}

	w.v.SetConfigFile(w.path)
	if err := w.v.ReadInConfig(); err != nil {
		cb(nil, errors.NewConfigError("failed to read config file", err).WithPath(w.path))
		return
	}
	cb(LoadFrom(w.v))
}
