package config

// LevelConfig is the root config for a level JSON file
type LevelConfig struct {
	ID             string           `json:"id"`
	Name           string           `json:"name"`
	TimeBudget     int              `json:"timeBudget"`     // Countdown length in seconds
	TickIntervalMs int              `json:"tickIntervalMs"` // Countdown step, 1000 when omitted
	Size           LevelSizeConfig  `json:"size"`
	PlayerSpawn    PositionConfig   `json:"playerSpawn"`
	FailY          float64          `json:"failY"`
	Goal           RectConfig       `json:"goal"`
	Rows           []BlockRowConfig `json:"rows"`
	Blocks         []RectConfig     `json:"blocks"`
}

type LevelSizeConfig struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// BlockRowConfig places Count blocks of the same size left to right,
// starting at X and advancing by Spacing.
type BlockRowConfig struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Count   int     `json:"count"`
	Spacing float64 `json:"spacing"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
}

// BlockCount returns the number of blocks the level will build
func (c *LevelConfig) BlockCount() int {
	n := len(c.Blocks)
	for _, row := range c.Rows {
		if row.Count > 0 {
			n += row.Count
		}
	}
	return n
}
