package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks the loaded configuration for values the game cannot run with
func Validate(cfg *GameConfig) error {
	if cfg == nil || cfg.Settings == nil {
		return fmt.Errorf("%w: missing settings", ErrInvalidConfig)
	}
	s := cfg.Settings

	if s.Display.ScreenWidth <= 0 || s.Display.ScreenHeight <= 0 {
		return fmt.Errorf("%w: screen size %dx%d", ErrInvalidConfig, s.Display.ScreenWidth, s.Display.ScreenHeight)
	}
	if s.Display.Framerate <= 0 {
		return fmt.Errorf("%w: framerate %d", ErrInvalidConfig, s.Display.Framerate)
	}
	if s.Player.Width <= 0 || s.Player.Height <= 0 {
		return fmt.Errorf("%w: player size %vx%v", ErrInvalidConfig, s.Player.Width, s.Player.Height)
	}

	m := s.Motion
	if m.LandingTolerance <= 0 {
		return fmt.Errorf("%w: landing tolerance %v", ErrInvalidConfig, m.LandingTolerance)
	}
	// A larger step could carry a falling player through the landing window
	if m.FallStep <= 0 || m.FallStep > 2*m.LandingTolerance {
		return fmt.Errorf("%w: fall step %v must be in (0, %v]", ErrInvalidConfig, m.FallStep, 2*m.LandingTolerance)
	}
	if m.BobStep < 0 || m.BobAmplitude < 0 || m.WalkSpeed <= 0 || m.WalkStep <= 0 {
		return fmt.Errorf("%w: negative motion values", ErrInvalidConfig)
	}

	if len(cfg.Levels) == 0 {
		return fmt.Errorf("%w: no levels", ErrInvalidConfig)
	}
	if len(s.Hub.Clocks) < len(cfg.Levels) {
		return fmt.Errorf("%w: %d clock slots for %d levels", ErrInvalidConfig, len(s.Hub.Clocks), len(cfg.Levels))
	}
	for _, level := range cfg.Levels {
		if err := ValidateLevel(level); err != nil {
			return err
		}
	}
	return nil
}

// ValidateLevel checks a single level config
func ValidateLevel(level *LevelConfig) error {
	if level.TimeBudget <= 0 {
		return fmt.Errorf("%w: level %s: time budget %d", ErrInvalidConfig, level.ID, level.TimeBudget)
	}
	if level.BlockCount() == 0 {
		return fmt.Errorf("%w: level %s: no blocks", ErrInvalidConfig, level.ID)
	}
	if level.Size.Width <= 0 || level.Size.Height <= 0 {
		return fmt.Errorf("%w: level %s: size %vx%v", ErrInvalidConfig, level.ID, level.Size.Width, level.Size.Height)
	}
	return nil
}
