package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pryahin/Mort/internal/domain/entity"
)

func TestIntentsFrom(t *testing.T) {
	tests := []struct {
		name  string
		input InputState
		want  []Intent
	}{
		{
			name:  "no input",
			input: InputState{},
			want:  nil,
		},
		{
			name:  "walk right",
			input: InputState{Right: true},
			want:  []Intent{WalkIntent{Direction: entity.DirRight}},
		},
		{
			name:  "walk left",
			input: InputState{Left: true},
			want:  []Intent{WalkIntent{Direction: entity.DirLeft}},
		},
		{
			name:  "right wins over left",
			input: InputState{Left: true, Right: true},
			want:  []Intent{WalkIntent{Direction: entity.DirRight}},
		},
		{
			name:  "up is reported",
			input: InputState{Up: true},
			want:  []Intent{JumpIntent{}},
		},
		{
			name:  "pause comes first",
			input: InputState{Left: true, Up: true, Pause: true},
			want: []Intent{
				PauseIntent{},
				WalkIntent{Direction: entity.DirLeft},
				JumpIntent{},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IntentsFrom(tt.input))
		})
	}
}

func TestInputState_Any(t *testing.T) {
	assert.False(t, InputState{}.Any())
	assert.True(t, InputState{Left: true}.Any())
	assert.True(t, InputState{Right: true}.Any())
	assert.True(t, InputState{Up: true}.Any())
	assert.True(t, InputState{Pause: true}.Any())
}

func TestDefaultKeyBindings(t *testing.T) {
	keys := DefaultKeyBindings()

	assert.NotEmpty(t, keys.Left)
	assert.NotEmpty(t, keys.Right)
	assert.NotEmpty(t, keys.Up)
	assert.NotEmpty(t, keys.Pause)
}
