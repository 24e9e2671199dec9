// Package debounce coalesces bursts of change notifications into a single
// deferred call.
package debounce

import (
	"sync"
	"time"
)

// Default timings. A trigger arriving more than DefaultIdle after the last
// run is dispatched at once; otherwise it waits DefaultDelay.
const (
	DefaultIdle  = 750 * time.Millisecond
	DefaultDelay = 800 * time.Millisecond
)

// Option configures a Task.
type Option func(*Task)

// WithIdle sets the quiet period after which a trigger runs immediately.
func WithIdle(d time.Duration) Option {
	return func(t *Task) {
		t.idle = d
	}
}

// WithDelay sets how long a trigger inside the quiet period waits.
func WithDelay(d time.Duration) Option {
	return func(t *Task) {
		t.delay = d
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(t *Task) {
		if now != nil {
			t.now = now
		}
	}
}

// Task is a single-slot deferred call. At most one run is pending at any
// time; triggers that arrive while one is pending are absorbed by it.
//
// Runs of fn never overlap.
type Task struct {
	fn    func()
	idle  time.Duration
	delay time.Duration
	now   func() time.Time

	mu      sync.Mutex
	timer   *time.Timer
	pending bool
	stopped bool
	last    time.Time

	runMu    sync.Mutex
	inflight sync.WaitGroup
}

// New creates a Task that calls fn.
func New(fn func(), opts ...Option) *Task {
	t := &Task{
		fn:    fn,
		idle:  DefaultIdle,
		delay: DefaultDelay,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Trigger schedules a run unless one is already pending. It reports the
// delay chosen, or -1 if the trigger was absorbed.
func (t *Task) Trigger() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.pending || t.stopped {
		return -1
	}
	d := t.delay
	if t.now().Sub(t.last) > t.idle {
		d = 0
	}
	t.pending = true
	t.timer = time.AfterFunc(d, t.fire)
	return d
}

// Pending reports whether a run is scheduled.
func (t *Task) Pending() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.pending
}

// Flush runs a pending call synchronously. It does nothing if no call is
// pending.
func (t *Task) Flush() {
	if t.cancel() {
		t.run()
	}
}

// Run cancels any pending call and runs fn synchronously.
func (t *Task) Run() {
	t.cancel()
	t.run()
}

// Stop cancels any pending call, rejects further triggers and waits for a
// timer-started run to finish.
func (t *Task) Stop() {
	t.mu.Lock()
	t.stopped = true
	t.mu.Unlock()
	t.cancel()
	t.inflight.Wait()
}

// cancel clears the pending slot and reports whether it was set.
func (t *Task) cancel() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.pending {
		return false
	}
	t.pending = false
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	return true
}

func (t *Task) fire() {
	t.mu.Lock()
	if !t.pending {
		t.mu.Unlock()
		return
	}
	t.pending = false
	t.timer = nil
	t.inflight.Add(1)
	t.mu.Unlock()

	defer t.inflight.Done()
	t.run()
}

func (t *Task) run() {
	t.runMu.Lock()
	defer t.runMu.Unlock()

	t.mu.Lock()
	t.last = t.now()
	t.mu.Unlock()

	t.fn()
}
