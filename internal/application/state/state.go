package state

// LevelState represents the lifecycle of one attempt at a level
type LevelState int

const (
	StateWaiting LevelState = iota // Level shown, countdown not started yet
	StatePlaying
	StatePaused
	StateFailed
	StateCompleted
)

// String returns the string representation of the level state
func (s LevelState) String() string {
	switch s {
	case StateWaiting:
		return "Waiting"
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateFailed:
		return "Failed"
	case StateCompleted:
		return "Completed"
	default:
		return "Unknown"
	}
}

// Terminal reports whether the attempt is over
func (s LevelState) Terminal() bool {
	return s == StateFailed || s == StateCompleted
}
