// Package watcher triggers a callback when a watched file is rewritten,
// debouncing the bursts of events editors produce on save.
package watcher

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// FileWatcher watches a single file for changes
type FileWatcher struct {
	watcher  *fsnotify.Watcher
	debounce time.Duration

	mu       sync.Mutex
	path     string
	callback func(string)
	timer    *time.Timer
	onError  func(error)
}

// New creates a file watcher with the given debounce interval
func New(debounce time.Duration) (*FileWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	return &FileWatcher{
		watcher:  watcher,
		debounce: debounce,
	}, nil
}

// OnError registers a handler for watch errors. Without one, errors are
// dropped.
func (fw *FileWatcher) OnError(handler func(error)) {
	fw.mu.Lock()
	defer fw.mu.Unlock()
	fw.onError = handler
}

// Watch registers the file and the callback invoked after it changes.
// Watching the parent directory keeps the watch alive across the
// rename-and-replace saves most editors perform.
func (fw *FileWatcher) Watch(file string, callback func(string)) error {
	absPath, err := filepath.Abs(file)
	if err != nil {
		return fmt.Errorf("failed to resolve path %s: %w", file, err)
	}
	if err := fw.watcher.Add(filepath.Dir(absPath)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", absPath, err)
	}

	fw.mu.Lock()
	fw.path = absPath
	fw.callback = callback
	fw.mu.Unlock()
	return nil
}

// Start begins dispatching file change events
func (fw *FileWatcher) Start() {
	go func() {
		for {
			select {
			case event, ok := <-fw.watcher.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
					fw.handleChange(event.Name)
				}

			case err, ok := <-fw.watcher.Errors:
				if !ok {
					return
				}
				fw.mu.Lock()
				handler := fw.onError
				fw.mu.Unlock()
				if handler != nil {
					handler(err)
				}
			}
		}
	}()
}

// handleChange debounces events for the watched file
func (fw *FileWatcher) handleChange(path string) {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	if fw.callback == nil || path != fw.path {
		return
	}
	if fw.timer != nil {
		fw.timer.Stop()
	}
	callback, watched := fw.callback, fw.path
	fw.timer = time.AfterFunc(fw.debounce, func() {
		callback(watched)
	})
}

// Close stops the watcher
func (fw *FileWatcher) Close() error {
	return fw.watcher.Close()
}
