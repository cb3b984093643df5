// Package watch provides filesystem watching with debounce support.
package watch

import (
	"sync"
	"time"
)

// Debouncer coalesces rapid change events into a single callback
// invocation carrying the most recent event. The pending event is guarded
// by the mutex so trigger and callback goroutines never race on it.
type Debouncer struct {
	window   time.Duration
	mu       sync.Mutex
	timer    *time.Timer
	pending  ChangeEvent
	callback func(ChangeEvent)
}

// NewDebouncer creates a debouncer with the given window duration.
func NewDebouncer(window time.Duration, callback func(ChangeEvent)) *Debouncer {
	return &Debouncer{
		window:   window,
		callback: callback,
	}
}

// Trigger records the event and resets the debounce timer. The callback
// fires with the last recorded event after the window elapses with no
// further triggers.
func (d *Debouncer) Trigger(ev ChangeEvent) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.pending = ev
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, func() {
		d.mu.Lock()
		last := d.pending
		d.mu.Unlock()
		d.callback(last)
	})
}

// Stop cancels any pending callback.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
}
