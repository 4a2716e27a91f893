package game

// Ticker paces a loop at a fixed rate. Time is read and waited on through
// now and wait, both in seconds, so any timer can drive it.
type Ticker struct {
	interval float64
	next     float64
	started  bool
	now      func() float64
	wait     func(seconds float64)
}

func NewTicker(rate int, now func() float64, wait func(seconds float64)) *Ticker {
	return &Ticker{interval: 1 / float64(rate), now: now, wait: wait}
}

// Tick waits for whatever is left of the current interval. The first call
// returns immediately. A tick that overran starts the next interval from
// now instead of trying to catch up.
func (t *Ticker) Tick() {
	now := t.now()
	if !t.started {
		t.started = true
		t.next = now
	}
	if remaining := t.next - now; remaining > 0 {
		t.wait(remaining)
		now = t.next
	}
	t.next = now + t.interval
}
