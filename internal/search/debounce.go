package search

import "time"

// Debouncer coalesces bursts of free-text edits into a single request.
//
// Every edit calls Bump and schedules a timer carrying the returned token.
// When a timer fires, Fire reports whether its token is still the newest;
// older timers are ignored, so only the last edit within the delay is sent.
type Debouncer struct {
	delay time.Duration
	token uint64
	fired bool
}

// NewDebouncer returns a debouncer with a fixed delay.
func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Delay is the quiet period before a bumped token may fire.
func (d *Debouncer) Delay() time.Duration { return d.delay }

// Bump invalidates every outstanding token and returns a new one.
func (d *Debouncer) Bump() uint64 {
	d.token++
	d.fired = false
	return d.token
}

// Cancel drops the pending token, if any. Used when a request is sent
// immediately, which already covers the pending query.
func (d *Debouncer) Cancel() {
	d.fired = true
}

// Fire reports whether token is current and has not fired yet.
func (d *Debouncer) Fire(token uint64) bool {
	if token != d.token || d.fired {
		return false
	}
	d.fired = true
	return true
}

// Pending reports whether a bumped token is still waiting to fire.
func (d *Debouncer) Pending() bool { return !d.fired && d.token > 0 }
