package config

// SettingsConfig is the root config for settings.json
type SettingsConfig struct {
	Display DisplayConfig `json:"display"`
	Motion  MotionConfig  `json:"motion"`
	Player  PlayerConfig  `json:"player"`
	Hub     HubConfig     `json:"hub"`
	Score   ScoreConfig   `json:"score"`
	Levels  []string      `json:"levels"` // Level file names under levels/, in hub order
}

type DisplayConfig struct {
	Title        string `json:"title"`
	ScreenWidth  int    `json:"screenWidth"`
	ScreenHeight int    `json:"screenHeight"`
	Scale        int    `json:"scale"`
	Framerate    int    `json:"framerate"`
}

// MotionConfig tunes the per-tick player motion. All values are in pixels per tick.
type MotionConfig struct {
	BobStep          float64 `json:"bobStep"`
	BobAmplitude     float64 `json:"bobAmplitude"`
	FallStep         float64 `json:"fallStep"`
	WalkStep         float64 `json:"walkStep"`  // Distance queued by one key press
	WalkSpeed        float64 `json:"walkSpeed"` // Distance covered per tick while walking
	LandingTolerance float64 `json:"landingTolerance"`
}

type PlayerConfig struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// HubConfig lays out the level-selection screen
type HubConfig struct {
	Clocks       []RectConfig `json:"clocks"`       // One clickable area per level
	OutcomeDelay float64      `json:"outcomeDelay"` // Seconds the outcome overlay stays before returning
}

type ScoreConfig struct {
	Multiplier int `json:"multiplier"` // Points per remaining second
}

type RectConfig struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

type PositionConfig struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}
