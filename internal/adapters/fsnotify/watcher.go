// Package fsnotify implements the ports.Watcher interface using github.com/fsnotify/fsnotify.
// It watches the directory holding a single design file, so editors that save
// through a temp file and rename are still seen, and debounces bursts of events
// into one callback once the file has been quiet for the debounce interval.
package fsnotify

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/corey/mechsize/internal/ports"
	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is used when NewWatcher is given a non-positive interval.
const DefaultDebounce = 100 * time.Millisecond

// Watcher implements ports.Watcher using fsnotify.
type Watcher struct {
	fw       *fsnotify.Watcher
	debounce time.Duration
	errs     func(error)
	done     chan struct{}
	wg       sync.WaitGroup
	stopped  bool
	mu       sync.Mutex
}

var _ ports.Watcher = (*Watcher)(nil)

// NewWatcher creates a watcher that fires at most once per debounce interval
// of quiet.
func NewWatcher(debounce time.Duration) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{
		fw:       fw,
		debounce: debounce,
		done:     make(chan struct{}),
	}, nil
}

// OnError registers a callback for errors reported by the underlying
// watcher. Without one they are dropped. Must be called before Watch.
func (w *Watcher) OnError(fn func(error)) {
	w.errs = fn
}

// Watch starts monitoring path. onChange is called with the absolute path.
func (w *Watcher) Watch(path string, onChange func(filePath string)) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if err := w.fw.Add(filepath.Dir(absPath)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(absPath), err)
	}

	w.wg.Add(1)
	go w.loop(absPath, onChange)
	return nil
}

func (w *Watcher) loop(absPath string, onChange func(string)) {
	defer w.wg.Done()

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case event, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if !relevant(event, absPath) {
				continue
			}
			// Trailing-edge debounce: every event pushes the deadline out.
			timer.Reset(w.debounce)

		case <-timer.C:
			onChange(absPath)

		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			if w.errs != nil {
				w.errs(err)
			}

		case <-w.done:
			return
		}
	}
}

// Stop ends monitoring and releases all resources. It waits for the event
// loop to exit, so it must not be called from inside onChange.
// Safe to call multiple times.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return nil
	}
	w.stopped = true
	close(w.done)
	w.mu.Unlock()

	err := w.fw.Close()
	w.wg.Wait()
	return err
}

// relevant reports whether event concerns the watched file. Swap and backup
// files written next to it by editors have other names and are dropped here.
func relevant(event fsnotify.Event, absPath string) bool {
	if filepath.Clean(event.Name) != absPath {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
		event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename)
}
