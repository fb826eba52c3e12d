package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimer_TickFiresOnceAtZero(t *testing.T) {
	for _, n := range []int{1, 2, 5, 60} {
		timer := NewTimer(n, time.Second)
		timer.Start()

		fired := 0
		firedAt := -1
		for i := 0; i < n+10; i++ {
			if timer.Tick() {
				fired++
				firedAt = timer.Time()
			}
			if fired == 0 {
				assert.Greater(t, timer.Time(), 0, "no failure before reaching zero")
			}
		}

		assert.Equal(t, 1, fired, "exactly one expiry for N=%d", n)
		assert.Equal(t, 0, firedAt)
		assert.False(t, timer.Running(), "timer stops itself")
	}
}

func TestTimer_TickAtZeroFiresImmediately(t *testing.T) {
	timer := NewTimer(0, time.Second)
	timer.Start()

	assert.True(t, timer.Tick())
	assert.False(t, timer.Tick())
}

func TestTimer_TickStopped(t *testing.T) {
	timer := NewTimer(3, time.Second)

	assert.False(t, timer.Tick())
	assert.Equal(t, 3, timer.Time(), "stopped timer does not decrement")
}

func TestTimer_Advance(t *testing.T) {
	timer := NewTimer(60, 20*time.Millisecond)

	assert.Equal(t, 0, timer.Advance(0.1), "stopped timer accumulates nothing")

	timer.Start()
	assert.Equal(t, 0, timer.Advance(0.01))
	assert.Equal(t, 1, timer.Advance(0.01))
	assert.Equal(t, 5, timer.Advance(0.1))

	timer.Stop()
	timer.Start()
	assert.Equal(t, 0, timer.Advance(0.019), "stop drops the partial interval")
}

func TestTimer_DefaultInterval(t *testing.T) {
	timer := NewTimer(10, 0)
	assert.Equal(t, time.Second, timer.Interval())
}

func TestTimer_Decorated(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "0:00"},
		{9, "0:09"},
		{60, "1:00"},
		{75, "1:15"},
		{600, "10:00"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, NewTimer(tt.seconds, time.Second).Decorated())
		})
	}
	assert.Equal(t, "0:00", DecorateSeconds(-4))
}

func TestTimer_Low(t *testing.T) {
	assert.False(t, NewTimer(11, time.Second).Low())
	assert.True(t, NewTimer(10, time.Second).Low())
	assert.True(t, NewTimer(0, time.Second).Low())
}

func TestTimer_ResetAndDecrease(t *testing.T) {
	timer := NewTimer(1, time.Second)
	timer.Start()
	timer.Decrease()
	timer.Decrease()
	assert.Equal(t, 0, timer.Time(), "never below zero")

	timer.Reset(45)
	assert.Equal(t, 45, timer.Time())
	assert.False(t, timer.Running())

	timer.Reset(-3)
	assert.Equal(t, 0, timer.Time())
}
