package system

import (
	"time"

	"github.com/jakecoffman/cp"
	"github.com/pryahin/Mort/internal/domain/entity"
	"github.com/pryahin/Mort/internal/infrastructure/config"
)

// LoadLevel converts a LevelConfig into a Level entity.
// id is the level's position in the hub.
func LoadLevel(id int, cfg *config.LevelConfig) *entity.Level {
	blocks := make([]entity.Block, 0, cfg.BlockCount())
	for _, row := range cfg.Rows {
		for i := 0; i < row.Count; i++ {
			x := row.X + float64(i)*row.Spacing
			blocks = append(blocks, entity.NewBlock(x, row.Y, row.Width, row.Height))
		}
	}
	for _, b := range cfg.Blocks {
		blocks = append(blocks, entity.NewBlock(b.X, b.Y, b.W, b.H))
	}

	interval := time.Second
	if cfg.TickIntervalMs > 0 {
		interval = time.Duration(cfg.TickIntervalMs) * time.Millisecond
	}

	failY := cfg.FailY
	if failY <= 0 {
		failY = cfg.Size.Height
	}

	var goal cp.BB
	if cfg.Goal.W > 0 && cfg.Goal.H > 0 {
		goal = cp.BB{L: cfg.Goal.X, B: cfg.Goal.Y, R: cfg.Goal.X + cfg.Goal.W, T: cfg.Goal.Y + cfg.Goal.H}
	}

	return &entity.Level{
		ID:           id,
		Name:         cfg.Name,
		Blocks:       blocks,
		SpawnX:       cfg.PlayerSpawn.X,
		SpawnY:       cfg.PlayerSpawn.Y,
		Width:        cfg.Size.Width,
		Height:       cfg.Size.Height,
		FailY:        failY,
		Goal:         goal,
		TimeBudget:   cfg.TimeBudget,
		TickInterval: interval,
	}
}

// SpawnPlayer places a fresh player at the level's spawn point
func SpawnPlayer(level *entity.Level, cfg config.PlayerConfig) *entity.Player {
	return entity.NewPlayer(level.SpawnX, level.SpawnY, cfg.Width, cfg.Height)
}

// LoadLevels converts every level config, keeping hub order
func LoadLevels(cfgs []*config.LevelConfig) []*entity.Level {
	levels := make([]*entity.Level, 0, len(cfgs))
	for i, cfg := range cfgs {
		levels = append(levels, LoadLevel(i, cfg))
	}
	return levels
}
