package shader

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports changes to a set of shader source files.
//
// The parent directories are watched rather than the files, so editors that
// save by writing a temporary file and renaming it over the original are
// still seen. Events for other files in those directories are ignored.
type Watcher struct {
	watcher *fsnotify.Watcher
	logger  *slog.Logger
	files   map[string]bool
	changed chan struct{}
	done    chan struct{}
	wg      sync.WaitGroup
	once    sync.Once
}

// NewWatcher starts watching paths. A nil logger discards watcher errors.
func NewWatcher(logger *slog.Logger, paths ...string) (*Watcher, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("shader: create watcher: %w", err)
	}

	w := &Watcher{
		watcher: fw,
		logger:  logger,
		files:   make(map[string]bool),
		changed: make(chan struct{}, 1),
		done:    make(chan struct{}),
	}

	dirs := make(map[string]bool)
	for _, path := range paths {
		abs, err := filepath.Abs(path)
		if err != nil {
			fw.Close()
			return nil, fmt.Errorf("shader: watch %q: %w", path, err)
		}
		w.files[abs] = true
		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		if err := fw.Add(dir); err != nil {
			fw.Close()
			return nil, fmt.Errorf("shader: watch %q: %w", dir, err)
		}
		dirs[dir] = true
	}

	w.wg.Add(1)
	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	defer w.wg.Done()
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil || !w.files[abs] {
				continue
			}
			w.logger.Debug("shader source changed", "path", abs, "op", event.Op.String())
			w.notify()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("shader watcher error", "err", err)
		}
	}
}

// notify coalesces bursts of events into a single pending signal.
func (w *Watcher) notify() {
	select {
	case w.changed <- struct{}{}:
	default:
	}
}

// Changed receives a value when a watched file has changed since the last
// receive.
func (w *Watcher) Changed() <-chan struct{} {
	return w.changed
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.watcher.Close()
		w.wg.Wait()
	})
	return err
}
