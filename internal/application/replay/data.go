package replay

// FormatVersion is written into every recording
const FormatVersion = "2.0"

// FrameInput records the key presses of a single frame
type FrameInput struct {
	F int  `json:"f"`           // Frame number
	L bool `json:"l,omitempty"` // Left
	R bool `json:"r,omitempty"` // Right
	U bool `json:"u,omitempty"` // Up
	P bool `json:"p,omitempty"` // Pause
	A bool `json:"a,omitempty"` // Abandon
}

// ReplayData contains all data needed to replay a level attempt.
// The simulation has no randomness, so the level and frame rate are enough.
type ReplayData struct {
	Version   string       `json:"version"`
	Level     string       `json:"level"`
	Framerate int          `json:"framerate"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}
