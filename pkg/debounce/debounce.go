// Package debounce coalesces bursts of events into a single trailing
// callback invocation.
package debounce

import (
	"sync"
	"time"
)

// DefaultDuration is the debounce window used when none is specified.
const DefaultDuration = 250 * time.Millisecond

type state int

const (
	stateIdle state = iota
	statePending
)

// Debouncer runs at most one callback per quiet period. Each Trigger
// reschedules the pending timer, so only the last callback of a burst runs,
// one debounce window after the burst ends.
//
// The debouncer is a two-state machine: Idle (no timer armed) and Pending
// (a timer armed for the most recent Trigger). A generation counter
// invalidates timers that fire concurrently with a newer Trigger or with
// Cancel, so a stale callback can never run after either.
type Debouncer struct {
	duration time.Duration

	mu    sync.Mutex
	state state
	timer *time.Timer
	gen   uint64
}

// New creates a Debouncer with the given window. A non-positive duration
// falls back to DefaultDuration.
func New(duration time.Duration) *Debouncer {
	if duration <= 0 {
		duration = DefaultDuration
	}
	return &Debouncer{duration: duration}
}

// Trigger schedules callback to run once the debounce window elapses with no
// further Trigger calls. A Trigger while Pending discards the previously
// scheduled callback.
func (d *Debouncer) Trigger(callback func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.gen++
	gen := d.gen

	if d.state == statePending && d.timer != nil {
		d.timer.Stop()
	}
	d.state = statePending
	d.timer = time.AfterFunc(d.duration, func() {
		d.mu.Lock()
		if gen != d.gen {
			// A newer Trigger or a Cancel superseded this timer while it
			// was firing; Stop alone cannot prevent that race.
			d.mu.Unlock()
			return
		}
		d.state = stateIdle
		d.timer = nil
		d.mu.Unlock()

		callback()
	})
}

// Cancel drops any pending callback and returns the debouncer to Idle.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.gen++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.state = stateIdle
}

// Pending reports whether a callback is currently scheduled.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state == statePending
}

// Duration returns the debounce window.
func (d *Debouncer) Duration() time.Duration {
	return d.duration
}
