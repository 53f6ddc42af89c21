// Package watch provides file watching functionality for configuration changes.
package watch

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher watches a set of files for changes
type Watcher struct {
	files    map[string]bool
	callback func() error
	watcher  *fsnotify.Watcher
	done     chan bool
}

// NewWatcher creates a new watcher over the given files. A
// configuration and its includes are watched together, one change to
// any of them triggers the callback.
func NewWatcher(files []string, callback func() error) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	watched := make(map[string]bool, len(files))
	dirs := make(map[string]bool)
	for _, file := range files {
		absPath, err := filepath.Abs(file)
		if err != nil {
			watcher.Close()
			return nil, fmt.Errorf("failed to get absolute path: %w", err)
		}
		watched[absPath] = true
		dirs[filepath.Dir(absPath)] = true
	}

	// Watch the directories containing the files, editors replace
	// files instead of writing them in place
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			watcher.Close()
			return nil, fmt.Errorf("failed to watch directory: %w", err)
		}
	}

	return &Watcher{
		files:    watched,
		callback: callback,
		watcher:  watcher,
		done:     make(chan bool),
	}, nil
}

// Start starts watching the files
func (w *Watcher) Start() error {
	// Initial callback if needed
	if err := w.callback(); err != nil {
		return fmt.Errorf("initial callback failed: %w", err)
	}

	go func() {
		debounceTimer := time.NewTimer(500 * time.Millisecond)
		debounceTimer.Stop()
		var debounceCh <-chan time.Time

		for {
			select {
			case event, ok := <-w.watcher.Events:
				if !ok {
					return
				}

				// Check if a watched file was modified or replaced
				if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
					eventPath, err := filepath.Abs(event.Name)
					if err == nil && w.files[eventPath] {
						// Debounce: reset timer on each event
						debounceTimer.Reset(500 * time.Millisecond)
						debounceCh = debounceTimer.C
					}
				}

			case <-debounceCh:
				// A file was modified, trigger callback
				if err := w.callback(); err != nil {
					fmt.Fprintf(os.Stderr, "Watch callback error: %v\n", err)
				}
				debounceCh = nil

			case err, ok := <-w.watcher.Errors:
				if !ok {
					return
				}
				fmt.Fprintf(os.Stderr, "Watch error: %v\n", err)

			case <-w.done:
				return
			}
		}
	}()

	return nil
}

// Stop stops watching the files
func (w *Watcher) Stop() error {
	close(w.done)
	return w.watcher.Close()
}
