package datasource

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/vanderheijden86/nestviz/pkg/debug"
)

// staleDebounce coalesces the burst of events an editor save produces.
const staleDebounce = 250 * time.Millisecond

// StaleWatcher flags when a file-backed source changes on disk after loading.
// It only raises a notice for the status bar; the loaded graph is never
// mutated or reloaded. The watcher watches the parent directory so
// rename-style saves are caught too.
type StaleWatcher struct {
	path    string
	onStale func()

	fw    *fsnotify.Watcher
	timer *time.Timer

	mu    sync.Mutex
	stale bool
	done  chan struct{}
}

// WatchForStaleness starts watching the source. Returns nil (no watcher, no
// error surfaced to the user) when the source is not file-backed or the
// watcher cannot start; staleness is a courtesy, not a requirement.
func WatchForStaleness(src Source, onStale func()) *StaleWatcher {
	if !src.Watchable() {
		return nil
	}
	abs, err := filepath.Abs(src.Location)
	if err != nil {
		debug.Log("datasource: staleness watch disabled: %v", err)
		return nil
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		debug.Log("datasource: staleness watch disabled: %v", err)
		return nil
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		debug.Log("datasource: staleness watch disabled: %v", err)
		fw.Close()
		return nil
	}

	w := &StaleWatcher{path: abs, onStale: onStale, fw: fw, done: make(chan struct{})}
	go w.run()
	return w
}

func (w *StaleWatcher) run() {
	defer close(w.done)
	for {
		select {
		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) {
				w.markAfterDebounce()
			}
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			debug.Log("datasource: staleness watch error: %v", err)
		}
	}
}

func (w *StaleWatcher) markAfterDebounce() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(staleDebounce, func() {
		w.mu.Lock()
		already := w.stale
		w.stale = true
		w.mu.Unlock()
		if !already && w.onStale != nil {
			w.onStale()
		}
	})
}

// Stale reports whether the source has changed since it was loaded.
func (w *StaleWatcher) Stale() bool {
	if w == nil {
		return false
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.stale
}

// Close stops the watcher.
func (w *StaleWatcher) Close() {
	if w == nil {
		return
	}
	w.fw.Close()
	<-w.done
	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()
}
