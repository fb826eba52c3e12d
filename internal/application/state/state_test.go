package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelState_String(t *testing.T) {
	tests := []struct {
		state    LevelState
		expected string
	}{
		{StateWaiting, "Waiting"},
		{StatePlaying, "Playing"},
		{StatePaused, "Paused"},
		{StateFailed, "Failed"},
		{StateCompleted, "Completed"},
		{LevelState(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.state.String())
		})
	}
}

func TestLevelState_Terminal(t *testing.T) {
	assert.False(t, StateWaiting.Terminal())
	assert.False(t, StatePlaying.Terminal())
	assert.False(t, StatePaused.Terminal())
	assert.True(t, StateFailed.Terminal())
	assert.True(t, StateCompleted.Terminal())
}

func TestLevelStateConstants(t *testing.T) {
	// Verify the iota ordering
	assert.Equal(t, LevelState(0), StateWaiting)
	assert.Equal(t, LevelState(1), StatePlaying)
	assert.Equal(t, LevelState(2), StatePaused)
	assert.Equal(t, LevelState(3), StateFailed)
	assert.Equal(t, LevelState(4), StateCompleted)
}
