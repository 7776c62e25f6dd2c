package manifest

import (
	"context"
	"os"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"uniconsole/pkg/logging"
)

// DefaultDebounce is how long the watcher waits for further changes before
// reloading.
const DefaultDebounce = 250 * time.Millisecond

// Watcher calls a reload function when YAML files in a manifest directory are
// created, written, removed or renamed. Bursts of changes are debounced into a
// single reload.
type Watcher struct {
	mu sync.Mutex

	// dir is the manifest directory
	dir string

	// reload is called after changes settle
	reload func()

	// debounceInterval is how long to wait for additional changes
	debounceInterval time.Duration

	// pending is the debounce timer for the next reload
	pending *time.Timer

	watcher *fsnotify.Watcher
	stopCh  chan struct{}
	done    chan struct{}
	running bool
}

// NewWatcher creates a watcher for dir.
func NewWatcher(dir string, debounceInterval time.Duration, reload func()) *Watcher {
	if debounceInterval <= 0 {
		debounceInterval = DefaultDebounce
	}
	return &Watcher{
		dir:              dir,
		reload:           reload,
		debounceInterval: debounceInterval,
	}
}

// Start begins watching. The directory is created if missing.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		return nil
	}

	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := watcher.Add(w.dir); err != nil {
		watcher.Close()
		return err
	}

	w.watcher = watcher
	w.stopCh = make(chan struct{})
	w.done = make(chan struct{})
	w.running = true

	go w.processEvents(ctx, watcher, w.stopCh, w.done)

	logging.Info("Watcher", "Watching %s for manifest changes", w.dir)
	return nil
}

// processEvents handles filesystem events until stopped.
func (w *Watcher) processEvents(ctx context.Context, watcher *fsnotify.Watcher, stopCh, done chan struct{}) {
	defer close(done)

	for {
		select {
		case <-ctx.Done():
			w.cancelPending()
			return

		case <-stopCh:
			w.cancelPending()
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			w.handleFsEvent(event)

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			logging.Error("Watcher", err, "Filesystem watcher error")
		}
	}
}

// handleFsEvent schedules a reload for relevant events.
func (w *Watcher) handleFsEvent(event fsnotify.Event) {
	if !isYAMLFile(event.Name) {
		return
	}
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return
	}

	logging.Debug("Watcher", "Manifest changed: %s (%s)", event.Name, event.Op)
	w.debounce()
}

// debounce restarts the reload timer.
func (w *Watcher) debounce() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.pending != nil {
		w.pending.Stop()
	}
	w.pending = time.AfterFunc(w.debounceInterval, func() {
		w.mu.Lock()
		w.pending = nil
		running := w.running
		w.mu.Unlock()

		if running {
			w.reload()
		}
	})
}

// cancelPending stops a scheduled reload.
func (w *Watcher) cancelPending() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.pending != nil {
		w.pending.Stop()
		w.pending = nil
	}
}

// Stop stops watching and waits for the event loop to exit.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = false
	close(w.stopCh)
	watcher, done := w.watcher, w.done
	w.watcher = nil
	w.mu.Unlock()

	<-done
	err := watcher.Close()
	if err != nil {
		logging.Error("Watcher", err, "Error closing filesystem watcher")
	}

	logging.Info("Watcher", "Stopped watching %s", w.dir)
	return err
}
