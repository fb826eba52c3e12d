package entity

import (
	"fmt"
	"time"
)

// LowTimeSeconds is the remaining time at or below which the countdown is shown as low
const LowTimeSeconds = 10

// Timer is a per-level countdown in whole seconds.
// It only advances while running and decrements once per interval.
type Timer struct {
	remaining int
	interval  time.Duration
	acc       time.Duration
	running   bool
}

// NewTimer creates a stopped countdown. A non-positive interval means one second.
func NewTimer(seconds int, interval time.Duration) *Timer {
	if interval <= 0 {
		interval = time.Second
	}
	if seconds < 0 {
		seconds = 0
	}
	return &Timer{remaining: seconds, interval: interval}
}

// Start resumes the countdown
func (t *Timer) Start() {
	t.running = true
}

// Stop halts the countdown and drops any partial interval
func (t *Timer) Stop() {
	t.running = false
	t.acc = 0
}

// Running reports whether the countdown is active
func (t *Timer) Running() bool {
	return t.running
}

// Time returns the remaining seconds
func (t *Timer) Time() int {
	return t.remaining
}

// Interval returns the tick interval
func (t *Timer) Interval() time.Duration {
	return t.interval
}

// Decrease removes one second, never going below zero
func (t *Timer) Decrease() {
	if t.remaining > 0 {
		t.remaining--
	}
}

// Reset stops the countdown and sets the remaining time
func (t *Timer) Reset(seconds int) {
	if seconds < 0 {
		seconds = 0
	}
	t.Stop()
	t.remaining = seconds
}

// Decorated returns the remaining time as m:ss
func (t *Timer) Decorated() string {
	return DecorateSeconds(t.remaining)
}

// Low reports whether the remaining time is in the warning range
func (t *Timer) Low() bool {
	return t.remaining <= LowTimeSeconds
}

// Advance accumulates dt seconds and returns how many whole intervals passed.
// A stopped timer accumulates nothing.
func (t *Timer) Advance(dt float64) int {
	if !t.running || dt <= 0 {
		return 0
	}
	t.acc += time.Duration(dt * float64(time.Second))
	n := 0
	for t.acc >= t.interval {
		t.acc -= t.interval
		n++
	}
	return n
}

// Tick processes one interval. It returns true exactly once: when the
// countdown reaches zero, at which point the timer stops itself.
func (t *Timer) Tick() bool {
	if !t.running {
		return false
	}
	if t.remaining == 0 {
		t.Stop()
		return true
	}
	t.Decrease()
	if t.remaining == 0 {
		t.Stop()
		return true
	}
	return false
}

// DecorateSeconds formats seconds as m:ss
func DecorateSeconds(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
