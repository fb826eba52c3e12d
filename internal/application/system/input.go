package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// KeyBindings maps actions to keys. Any key in a list triggers the action.
type KeyBindings struct {
	Left  []ebiten.Key
	Right []ebiten.Key
	Up    []ebiten.Key
	Pause []ebiten.Key
}

// DefaultKeyBindings returns arrows and WASD, with Space as an alternative for up
func DefaultKeyBindings() KeyBindings {
	return KeyBindings{
		Left:  []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft},
		Right: []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight},
		Up:    []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp, ebiten.KeySpace},
		Pause: []ebiten.Key{ebiten.KeyEscape},
	}
}

// InputSystem samples discrete key presses once per frame
type InputSystem struct {
	keys KeyBindings
}

// NewInputSystem creates a new input system
func NewInputSystem(keys KeyBindings) *InputSystem {
	return &InputSystem{keys: keys}
}

// InputState holds the keys pressed this frame.
// Only presses count: holding a key does not repeat it.
type InputState struct {
	Left  bool
	Right bool
	Up    bool
	Pause bool

	// Abandon gives up the level. It is set by the level scene, not by a key binding.
	Abandon bool
}

// Any reports whether any key was pressed
func (s InputState) Any() bool {
	return s.Left || s.Right || s.Up || s.Pause
}

// GetInput reads the current input state
func (s *InputSystem) GetInput() InputState {
	return InputState{
		Left:  justPressed(s.keys.Left),
		Right: justPressed(s.keys.Right),
		Up:    justPressed(s.keys.Up),
		Pause: justPressed(s.keys.Pause),
	}
}

func justPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}
