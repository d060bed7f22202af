package snake

import "time"

// Timer is a repeating fixed-interval gate. It accumulates elapsed time and
// fires at most once per Advance, carrying any remainder over to later calls.
type Timer struct {
	interval time.Duration
	elapsed  time.Duration
}

// NewTimer creates a timer that fires every interval.
func NewTimer(interval time.Duration) Timer {
	return Timer{interval: interval}
}

// Advance adds dt and reports whether the interval was crossed. On a fire
// the interval is subtracted, not zeroed. A backlog of several intervals is
// still drained one fire per call.
func (t *Timer) Advance(dt time.Duration) bool {
	if t.interval <= 0 {
		return false
	}
	t.elapsed += dt
	if t.elapsed < t.interval {
		return false
	}
	t.elapsed -= t.interval
	return true
}

// Interval returns the firing interval.
func (t *Timer) Interval() time.Duration {
	return t.interval
}

// SetInterval changes the firing interval, keeping accumulated time.
func (t *Timer) SetInterval(d time.Duration) {
	t.interval = d
}

// Elapsed returns the time accumulated toward the next fire.
func (t *Timer) Elapsed() time.Duration {
	return t.elapsed
}

// Reset discards accumulated time.
func (t *Timer) Reset() {
	t.elapsed = 0
}
