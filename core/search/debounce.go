// Copyright 2024 - 2026, the VisageFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package search

import (
	"sync"
	"time"
)

// DefaultDebounce is the delay between the last submitted query and its
// delivery.
const DefaultDebounce = 300 * time.Millisecond

// Debouncer delivers only the last query of a burst, on the trailing edge of
// the delay. Every Submit restarts the timer, so a steady stream of
// keystrokes produces a single delivery once the stream pauses.
type Debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
	fn    func(string)
}

// NewDebouncer returns a debouncer that calls fn with the settled query.
// A non-positive delay applies DefaultDebounce. fn runs on the timer's
// goroutine.
func NewDebouncer(delay time.Duration, fn func(string)) *Debouncer {
	if delay <= 0 {
		delay = DefaultDebounce
	}

	return &Debouncer{
		delay: delay,
		fn:    fn,
	}
}

// Submit schedules query for delivery, superseding any pending one.
func (d *Debouncer) Submit(query string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}

	d.timer = time.AfterFunc(d.delay, func() {
		d.fn(query)
	})
}

// Stop cancels any pending delivery. A stopped debouncer accepts new
// submissions.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
