package sched

import (
	"sync"
	"time"
)

// Dispatch runs a task on the owner's event loop. Timer callbacks never touch
// session state directly; they hand the task to Dispatch.
type Dispatch func(task func())

// Inline runs tasks immediately on the calling goroutine.
func Inline(task func()) { task() }

// Debouncer runs only the most recent task, after a quiet period. A newer
// Trigger or a Cancel supersedes any pending task; superseded tasks never run.
type Debouncer struct {
	clock    Clock
	delay    time.Duration
	dispatch Dispatch

	mu    sync.Mutex
	gen   uint64
	timer Timer
}

// NewDebouncer creates a debouncer. A nil dispatch runs tasks inline.
func NewDebouncer(clock Clock, delay time.Duration, dispatch Dispatch) *Debouncer {
	if dispatch == nil {
		dispatch = Inline
	}
	return &Debouncer{clock: clock, delay: delay, dispatch: dispatch}
}

// Trigger schedules task after the delay, replacing whatever was pending.
func (d *Debouncer) Trigger(task func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopLocked()
	d.gen++
	gen := d.gen
	d.timer = d.clock.AfterFunc(d.delay, func() {
		d.dispatch(func() {
			// The task may have been superseded after the timer fired but
			// before the event loop got to it.
			if !d.claim(gen) {
				return
			}
			task()
		})
	})
}

// Cancel drops the pending task, if any.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopLocked()
	d.gen++
}

// Pending reports whether a task is waiting to run.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}

func (d *Debouncer) claim(gen uint64) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if gen != d.gen {
		return false
	}
	d.timer = nil
	return true
}

func (d *Debouncer) stopLocked() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Guard is a reentrancy flag: at most one holder at a time.
type Guard struct {
	mu   sync.Mutex
	held bool
}

// TryAcquire takes the guard and reports whether it was free.
func (g *Guard) TryAcquire() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.held {
		return false
	}
	g.held = true
	return true
}

// Release frees the guard.
func (g *Guard) Release() {
	g.mu.Lock()
	g.held = false
	g.mu.Unlock()
}

// Held reports whether the guard is taken.
func (g *Guard) Held() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.held
}
