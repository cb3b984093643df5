package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ChangeEvent represents a filesystem change to a requirement document.
type ChangeEvent struct {
	Path       string
	ChangeType string // "create", "write", "remove", "rename"
}

// FSWatcher watches a directory tree for filesystem changes using fsnotify.
// Events are filtered before they reach the callback, so editor noise and
// workspace-internal writes never trigger a reassessment.
type FSWatcher struct {
	watcher  *fsnotify.Watcher
	filter   *PatternFilter
	debounce time.Duration
	onChange func(ChangeEvent)
}

// NewFSWatcher creates a new filesystem watcher. A nil filter passes
// every event through.
func NewFSWatcher(debounce time.Duration, filter *PatternFilter, onChange func(ChangeEvent)) (*FSWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}
	if debounce == 0 {
		debounce = 500 * time.Millisecond
	}
	return &FSWatcher{
		watcher:  w,
		filter:   filter,
		debounce: debounce,
		onChange: onChange,
	}, nil
}

// NewDocumentWatcher creates a watcher preconfigured for requirement
// documents: markdown and YAML files, ignoring the .strategist workspace
// and version control internals.
func NewDocumentWatcher(debounce time.Duration, onChange func(ChangeEvent)) (*FSWatcher, error) {
	filter := NewPatternFilter(
		[]string{"*.md", "*.markdown", "*.yaml", "*.yml"},
		DefaultExcludes,
	)
	return NewFSWatcher(debounce, filter, onChange)
}

// WatchRecursive adds a directory and all its subdirectories to the
// watcher, skipping hidden directories and the strategist workspace.
func (w *FSWatcher) WatchRecursive(root string) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if !info.IsDir() {
			return nil
		}
		if skipDir(info.Name()) && path != root {
			return filepath.SkipDir
		}
		if err := w.watcher.Add(path); err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
		return nil
	})
}

// Run starts the event loop. It blocks until the context is cancelled.
func (w *FSWatcher) Run(ctx context.Context) error {
	defer w.watcher.Close() //nolint:errcheck

	debouncer := NewDebouncer(w.debounce, func(ev ChangeEvent) {
		if w.onChange != nil {
			w.onChange(ev)
		}
	})
	defer debouncer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			changeType := opToChangeType(event.Op)
			if changeType == "" {
				continue
			}

			// If a new directory was created, watch it recursively
			if event.Op.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					_ = w.WatchRecursive(event.Name)
				}
			}

			if w.filter != nil && !w.filter.Matches(event.Name) {
				continue
			}

			debouncer.Trigger(ChangeEvent{Path: event.Name, ChangeType: changeType})

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watcher error: %w", err)
		}
	}
}

func skipDir(name string) bool {
	return name == ".strategist" || name == ".git" || strings.HasPrefix(name, ".")
}

func opToChangeType(op fsnotify.Op) string {
	switch {
	case op.Has(fsnotify.Create):
		return "create"
	case op.Has(fsnotify.Write):
		return "write"
	case op.Has(fsnotify.Remove):
		return "remove"
	case op.Has(fsnotify.Rename):
		return "rename"
	default:
		return ""
	}
}
