package system

import "github.com/pryahin/Mort/internal/domain/entity"

// Intent represents an action the player wants to perform
type Intent interface {
	isIntent()
}

// WalkIntent queues a walk in a direction, turning the player first if needed
type WalkIntent struct {
	Direction entity.Direction
}

func (WalkIntent) isIntent() {}

// JumpIntent is accepted from input but has no effect on the player
type JumpIntent struct{}

func (JumpIntent) isIntent() {}

// PauseIntent toggles the pause state of a level
type PauseIntent struct{}

func (PauseIntent) isIntent() {}

// IntentsFrom translates one frame of input into intents.
// Pause comes first so a paused level ignores the rest of the frame.
func IntentsFrom(input InputState) []Intent {
	var intents []Intent
	if input.Pause {
		intents = append(intents, PauseIntent{})
	}
	if input.Right {
		intents = append(intents, WalkIntent{Direction: entity.DirRight})
	} else if input.Left {
		intents = append(intents, WalkIntent{Direction: entity.DirLeft})
	}
	if input.Up {
		intents = append(intents, JumpIntent{})
	}
	return intents
}
