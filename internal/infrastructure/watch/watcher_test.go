package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"
)

func TestFSWatcher_DetectsFileWrite(t *testing.T) {
	dir := t.TempDir()

	// Create a file before starting the watcher
	testFile := filepath.Join(dir, "stories.md")
	if err := os.WriteFile(testFile, []byte("initial"), 0600); err != nil {
		t.Fatal(err)
	}

	var eventCount atomic.Int32
	var lastChange ChangeEvent

	w, err := NewFSWatcher(50*time.Millisecond, nil, func(e ChangeEvent) {
		eventCount.Add(1)
		lastChange = e
	})
	if err != nil {
		t.Fatal(err)
	}

	if err := w.WatchRecursive(dir); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		_ = w.Run(ctx)
	}()

	// Give watcher time to start
	time.Sleep(50 * time.Millisecond)

	// Modify the file
	if err := os.WriteFile(testFile, []byte("modified"), 0600); err != nil {
		t.Fatal(err)
	}

	// Wait for debounce
	time.Sleep(200 * time.Millisecond)
	cancel()

	if eventCount.Load() == 0 {
		t.Error("expected at least one change event")
	}
	if lastChange.ChangeType == "" {
		t.Error("expected a non-empty change type")
	}
}

func TestDocumentWatcher_IgnoresUnrelatedFiles(t *testing.T) {
	dir := t.TempDir()

	var eventCount atomic.Int32

	w, err := NewDocumentWatcher(50*time.Millisecond, func(e ChangeEvent) {
		eventCount.Add(1)
	})
	if err != nil {
		t.Fatal(err)
	}

	if err := w.WatchRecursive(dir); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		_ = w.Run(ctx)
	}()

	time.Sleep(50 * time.Millisecond)

	// A non-document file must not trigger the callback
	if err := os.WriteFile(filepath.Join(dir, "build.log"), []byte("noise"), 0600); err != nil {
		t.Fatal(err)
	}

	time.Sleep(200 * time.Millisecond)

	if eventCount.Load() != 0 {
		t.Errorf("expected no events for non-document file, got %d", eventCount.Load())
	}

	// A markdown document must trigger it
	if err := os.WriteFile(filepath.Join(dir, "spec.md"), []byte("# Spec"), 0600); err != nil {
		t.Fatal(err)
	}

	time.Sleep(200 * time.Millisecond)
	cancel()

	if eventCount.Load() == 0 {
		t.Error("expected a change event for markdown document")
	}
}

func TestFSWatcher_DetectsNewFile(t *testing.T) {
	dir := t.TempDir()

	var eventCount atomic.Int32

	w, err := NewDocumentWatcher(50*time.Millisecond, func(e ChangeEvent) {
		eventCount.Add(1)
	})
	if err != nil {
		t.Fatal(err)
	}

	if err := w.WatchRecursive(dir); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		_ = w.Run(ctx)
	}()

	time.Sleep(50 * time.Millisecond)

	// Create a new document
	newFile := filepath.Join(dir, "new-stories.md")
	if err := os.WriteFile(newFile, []byte("## New story"), 0600); err != nil {
		t.Fatal(err)
	}

	time.Sleep(200 * time.Millisecond)
	cancel()

	if eventCount.Load() == 0 {
		t.Error("expected at least one change event for new file")
	}
}

func TestFSWatcher_ContextCancellation(t *testing.T) {
	dir := t.TempDir()

	w, err := NewFSWatcher(50*time.Millisecond, nil, func(e ChangeEvent) {})
	if err != nil {
		t.Fatal(err)
	}

	if err := w.WatchRecursive(dir); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx)
	}()

	cancel()

	select {
	case err := <-done:
		if err != context.Canceled {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Error("watcher did not stop after context cancellation")
	}
}
