package ui

import (
	"sync"
	"time"
)

// Debouncer runs only the last of a burst of calls, once the burst has been
// quiet for the configured duration.
type Debouncer struct {
	mu       sync.Mutex
	timer    *time.Timer
	duration time.Duration
	seq      uint64
}

// NewDebouncer creates a debouncer with the given quiet period.
func NewDebouncer(duration time.Duration) *Debouncer {
	return &Debouncer{duration: duration}
}

// Debounce schedules fn, replacing anything still pending.
func (d *Debouncer) Debounce(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.seq++
	seq := d.seq
	d.timer = time.AfterFunc(d.duration, func() {
		d.mu.Lock()
		current := seq == d.seq
		if current {
			d.timer = nil
		}
		d.mu.Unlock()
		if current {
			fn()
		}
	})
}

// Pending reports whether a call is scheduled.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}

// Cancel drops the pending call, if any. After Cancel returns, a call whose
// timer already fired but has not yet started will not run.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.seq++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// ResizeDebouncer coalesces terminal size changes and skips sizes that
// equal the last one applied.
type ResizeDebouncer struct {
	debouncer *Debouncer
	apply     func(width, height int)

	mu          sync.Mutex
	lastW       int
	lastH       int
	pendW       int
	pendH       int
	appliedOnce bool
}

// NewResizeDebouncer creates a debouncer that calls apply with the settled size.
func NewResizeDebouncer(duration time.Duration, apply func(width, height int)) *ResizeDebouncer {
	return &ResizeDebouncer{debouncer: NewDebouncer(duration), apply: apply}
}

// Resize records a new size and schedules apply.
func (rd *ResizeDebouncer) Resize(width, height int) {
	rd.mu.Lock()
	rd.pendW, rd.pendH = width, height
	rd.mu.Unlock()

	rd.debouncer.Debounce(func() {
		rd.mu.Lock()
		w, h := rd.pendW, rd.pendH
		unchanged := rd.appliedOnce && w == rd.lastW && h == rd.lastH
		rd.lastW, rd.lastH = w, h
		rd.appliedOnce = true
		rd.mu.Unlock()

		if !unchanged {
			rd.apply(w, h)
		}
	})
}

// LastSize returns the last applied size.
func (rd *ResizeDebouncer) LastSize() (width, height int) {
	rd.mu.Lock()
	defer rd.mu.Unlock()
	return rd.lastW, rd.lastH
}

// Cancel drops a pending resize.
func (rd *ResizeDebouncer) Cancel() {
	rd.debouncer.Cancel()
}

// DefaultResizeDuration is how long the terminal size must settle before the
// backdrop is resized.
const DefaultResizeDuration = 150 * time.Millisecond
