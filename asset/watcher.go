package asset

import (
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/teranos/atlas/errors"
	"github.com/teranos/atlas/logger"
)

// Watcher invalidates provider caches when card files under the store's
// directory roots change on disk. It is an optional layer: without it,
// callers invalidate manually via Store.ClearCache.
type Watcher struct {
	store   *Store
	watcher *fsnotify.Watcher

	mu             sync.Mutex
	callbacks      []func()
	debounceTimer  *time.Timer
	debouncePeriod time.Duration
}

// NewWatcher creates a watcher over every directory provider currently
// registered with the store. Providers added after construction are not
// picked up.
func NewWatcher(store *Store) (*Watcher, error) {
	roots := store.directoryRoots()
	if len(roots) == 0 {
		return nil, errors.New("the store has no directory providers to watch")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create fsnotify watcher")
	}

	for _, root := range roots {
		if err := watcher.Add(root); err != nil {
			watcher.Close()
			return nil, errors.Wrapf(err, "failed to watch asset directory %s", root)
		}
	}

	return &Watcher{
		store:          store,
		watcher:        watcher,
		debouncePeriod: 500 * time.Millisecond, // debounce rapid file changes
	}, nil
}

// OnInvalidate registers a callback fired after the caches have been
// cleared in response to a change.
func (w *Watcher) OnInvalidate(callback func()) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.callbacks = append(w.callbacks, callback)
}

// Start begins watching in a background goroutine.
func (w *Watcher) Start() {
	go w.watchLoop()
}

// Stop stops watching.
func (w *Watcher) Stop() error {
	return w.watcher.Close()
}

func (w *Watcher) watchLoop() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if !isCardFile(event.Name) {
				continue
			}

			logger.Debugw("Asset watcher detected change",
				"file", event.Name,
				"op", event.Op.String())
			w.scheduleInvalidate()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logger.Warnw("Asset watcher error",
				"error", err)
		}
	}
}

func (w *Watcher) scheduleInvalidate() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}

	w.debounceTimer = time.AfterFunc(w.debouncePeriod, w.invalidate)
}

func (w *Watcher) invalidate() {
	w.store.ClearCache()

	logger.Infow("Asset provider caches cleared after directory change")

	w.mu.Lock()
	callbacks := make([]func(), len(w.callbacks))
	copy(callbacks, w.callbacks)
	w.mu.Unlock()

	for _, callback := range callbacks {
		callback()
	}
}
