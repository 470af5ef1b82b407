package services

import (
	"context"
	"sync"
	"time"

	"github.com/phongnickchinh/tripsearch-cli/internal/core/domain"
	"github.com/phongnickchinh/tripsearch-cli/internal/logger"
)

// Debouncer coalesces bursts of calls into one invocation. It holds a
// single pending slot: scheduling a new call cancels any call still
// waiting out its delay (last keystroke wins). Superseded calls return
// domain.ErrSuperseded instead of hanging, so every caller gets a
// definite outcome.
//
// Once a call's delay has elapsed and its function is running, a newer
// call no longer cancels it; in-flight work runs to completion and the
// caller discards stale results.
type Debouncer struct {
	mu      sync.Mutex
	delay   time.Duration
	pending *pendingCall
}

type pendingCall struct {
	cancel context.CancelCauseFunc
}

// NewDebouncer creates a debouncer with the given delay.
// A delay of zero or less disables debouncing: calls run immediately.
func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Delay returns the configured debounce delay.
func (d *Debouncer) Delay() time.Duration {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.delay
}

// SetDelay updates the debounce delay. Calls already waiting keep the
// delay they started with.
func (d *Debouncer) SetDelay(delay time.Duration) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.delay = delay
}

// Do waits out the debounce delay and then runs fn. If a newer Do call
// arrives during the wait, this call is cancelled and returns
// domain.ErrSuperseded. Cancelling ctx during the wait returns ctx.Err().
func (d *Debouncer) Do(ctx context.Context, fn func(context.Context) error) error {
	d.mu.Lock()
	delay := d.delay
	if delay <= 0 {
		d.mu.Unlock()
		return fn(ctx)
	}

	// Cancel whichever call is still waiting; last keystroke wins.
	if d.pending != nil {
		d.pending.cancel(domain.ErrSuperseded)
	}
	waitCtx, cancel := context.WithCancelCause(ctx)
	call := &pendingCall{cancel: cancel}
	d.pending = call
	d.mu.Unlock()

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-waitCtx.Done():
		cause := context.Cause(waitCtx)
		if cause == domain.ErrSuperseded {
			logger.Debug("Debounced call superseded before firing")
			return domain.ErrSuperseded
		}
		return ctx.Err()
	case <-timer.C:
	}

	// This call fired; free the slot if it is still ours so a newer
	// call does not cancel work that already started.
	d.mu.Lock()
	if d.pending == call {
		d.pending = nil
	}
	d.mu.Unlock()
	cancel(nil)

	return fn(ctx)
}
