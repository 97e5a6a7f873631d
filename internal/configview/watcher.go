package configview

import (
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/telnet2/go-practice/go-cmdkit/internal/logging"
)

// Watcher reloads a File view whenever the backing file changes on disk.
// The parent directory is watched rather than the file itself, which
// survives editors that replace the file on save.
type Watcher struct {
	watcher *fsnotify.Watcher
	file    *File
	stopCh  chan struct{}
	doneCh  chan struct{}
	started bool
	mu      sync.Mutex
}

// NewWatcher creates a watcher for the given file view.
func NewWatcher(file *File) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := w.Add(filepath.Dir(file.Path())); err != nil {
		w.Close()
		return nil, err
	}

	return &Watcher{
		watcher: w,
		file:    file,
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}, nil
}

// Start begins watching in a background goroutine. Calling Start more
// than once is a no-op.
func (w *Watcher) Start() {
	w.mu.Lock()
	if w.started {
		w.mu.Unlock()
		return
	}
	w.started = true
	w.mu.Unlock()
	go w.run()
}

// Stop ends watching and waits for the background goroutine to exit.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	started := w.started
	w.mu.Unlock()

	err := w.watcher.Close()
	if started {
		close(w.stopCh)
		<-w.doneCh
	}
	return err
}

func (w *Watcher) run() {
	defer close(w.doneCh)

	target := filepath.Clean(w.file.Path())
	for {
		select {
		case <-w.stopCh:
			return
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if err := w.file.Reload(); err != nil {
				logging.Warn().Err(err).Str("path", target).Msg("configuration reload failed")
				continue
			}
			logging.Info().Str("path", target).Msg("configuration reloaded")
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logging.Error().Err(err).Msg("configuration watcher error")
		}
	}
}
