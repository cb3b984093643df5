package watch

import (
	"sync"
	"testing"
	"time"
)

func TestDebouncer_CoalescesRapidTriggers(t *testing.T) {
	var mu sync.Mutex
	var delivered []ChangeEvent
	d := NewDebouncer(50*time.Millisecond, func(ev ChangeEvent) {
		mu.Lock()
		delivered = append(delivered, ev)
		mu.Unlock()
	})
	defer d.Stop()

	for i := 0; i < 10; i++ {
		d.Trigger(ChangeEvent{Path: "docs/stories.md", ChangeType: "write"})
		time.Sleep(10 * time.Millisecond)
	}
	d.Trigger(ChangeEvent{Path: "docs/specs.md", ChangeType: "create"})

	// Wait for debounce window to expire
	time.Sleep(100 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if len(delivered) != 1 {
		t.Fatalf("expected 1 callback invocation, got %d", len(delivered))
	}
	// The coalesced callback carries the last event, not the first.
	if delivered[0].Path != "docs/specs.md" || delivered[0].ChangeType != "create" {
		t.Errorf("delivered %+v, want last triggered event", delivered[0])
	}
}

func TestDebouncer_Stop(t *testing.T) {
	var mu sync.Mutex
	count := 0
	d := NewDebouncer(50*time.Millisecond, func(ChangeEvent) {
		mu.Lock()
		count++
		mu.Unlock()
	})

	d.Trigger(ChangeEvent{Path: "docs/stories.md", ChangeType: "write"})
	d.Stop()

	time.Sleep(100 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if count != 0 {
		t.Errorf("expected 0 callback invocations after stop, got %d", count)
	}
}
