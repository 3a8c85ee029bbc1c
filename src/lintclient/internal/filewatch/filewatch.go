// Package filewatch runs a debounced callback when files in watched directories change.
package filewatch

import (
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

const _relevantOps = fsnotify.Create | fsnotify.Write | fsnotify.Remove | fsnotify.Rename

// Options configure a Watcher.
type Options struct {
	// Match selects the paths of interest. All paths match when nil.
	Match func(path string) bool
	// OnChange is called once per path after changes to it have settled for Debounce.
	OnChange func(path string)
	Debounce time.Duration
}

// Watcher watches directories rather than files, so that atomic replacements by rename are observed.
type Watcher struct {
	watcher *fsnotify.Watcher
	logger  *zap.SugaredLogger
	opts    Options

	closer   chan struct{}
	loopDone chan struct{}
	once     sync.Once

	debounceMu     sync.Mutex
	debounceTimers map[string]*time.Timer
	pending        sync.WaitGroup
}

// New starts a Watcher with no directories.
func New(logger *zap.SugaredLogger, opts Options) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	fw := &Watcher{
		watcher:        w,
		logger:         logger,
		opts:           opts,
		closer:         make(chan struct{}),
		loopDone:       make(chan struct{}),
		debounceTimers: make(map[string]*time.Timer),
	}
	go fw.handleChanges()
	return fw, nil
}

// Add watches a directory.
func (w *Watcher) Add(dir string) error {
	return w.watcher.Add(dir)
}

// Dispose stops watching, cancels pending callbacks and waits for running ones.
func (w *Watcher) Dispose() error {
	var err error
	w.once.Do(func() {
		close(w.closer)
		<-w.loopDone

		w.debounceMu.Lock()
		for path, timer := range w.debounceTimers {
			if timer.Stop() {
				w.pending.Done()
			}
			delete(w.debounceTimers, path)
		}
		w.debounceMu.Unlock()
		w.pending.Wait()

		err = w.watcher.Close()
	})
	return err
}

func (w *Watcher) handleChanges() {
	defer close(w.loopDone)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !event.Has(_relevantOps) {
				continue
			}
			if w.opts.Match != nil && !w.opts.Match(event.Name) {
				continue
			}
			w.handleDebounce(event.Name)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warnf("Failure in file watcher: %v", err)
		case <-w.closer:
			return
		}
	}
}

func (w *Watcher) handleDebounce(path string) {
	w.debounceMu.Lock()
	defer w.debounceMu.Unlock()

	if timer, exists := w.debounceTimers[path]; exists && timer.Stop() {
		w.pending.Done()
	}

	w.pending.Add(1)
	w.debounceTimers[path] = time.AfterFunc(w.opts.Debounce, func() {
		defer w.pending.Done()
		w.debounceMu.Lock()
		delete(w.debounceTimers, path)
		w.debounceMu.Unlock()

		w.opts.OnChange(path)
	})
}
