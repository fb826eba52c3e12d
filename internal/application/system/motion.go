package system

import (
	"math"

	"github.com/pryahin/Mort/internal/domain/entity"
	"github.com/pryahin/Mort/internal/infrastructure/config"
)

// StepResult reports what happened to the player during one motion step
type StepResult struct {
	Landed      bool // Falling player came to rest on a block
	Fell        bool // Falling player crossed the level's fail line
	ReachedGoal bool
}

// MotionSystem advances the player by one fixed tick.
// There is no velocity: grounded players bob in place, airborne players
// drop by a constant step, and horizontal motion follows queued walks.
type MotionSystem struct {
	config config.MotionConfig
	level  *entity.Level
}

// NewMotionSystem creates a new motion system
func NewMotionSystem(cfg config.MotionConfig, level *entity.Level) *MotionSystem {
	if cfg.LandingTolerance <= 0 {
		cfg.LandingTolerance = entity.LandingTolerance
	}
	return &MotionSystem{
		config: cfg,
		level:  level,
	}
}

// Update applies one tick of motion to the player
func (s *MotionSystem) Update(player *entity.Player) StepResult {
	var res StepResult

	if player.Falling() {
		player.Y += s.config.FallStep
	} else {
		s.advanceBob(player)
	}

	s.moveX(player)

	res.Landed = s.resolveSupport(player)

	if player.Falling() && player.Y >= s.level.FailY {
		res.Fell = true
		return res
	}

	res.ReachedGoal = s.level.ReachedGoal(player)
	return res
}

// advanceBob moves the hover offset one step, turning around at the amplitude
func (s *MotionSystem) advanceBob(player *entity.Player) {
	amp := s.config.BobAmplitude
	if amp <= 0 || s.config.BobStep <= 0 {
		player.Bob = 0
		return
	}

	if player.Bob >= amp {
		player.BobRising = false
	} else if player.Bob <= -amp {
		player.BobRising = true
	}

	if player.BobRising {
		player.Bob = math.Min(player.Bob+s.config.BobStep, amp)
	} else {
		player.Bob = math.Max(player.Bob-s.config.BobStep, -amp)
	}
}

// moveX walks the player toward its target, stopping at the level edges
func (s *MotionSystem) moveX(player *entity.Player) {
	if !player.Walking() {
		return
	}

	next := player.TargetX
	if dx := player.TargetX - player.X; math.Abs(dx) > s.config.WalkSpeed {
		next = player.X + math.Copysign(s.config.WalkSpeed, dx)
	}

	x := s.level.ClampX(next, player.W)
	if x != next {
		// Pinned against an edge, drop the rest of the walk
		player.TargetX = x
	}
	player.X = x
}

// resolveSupport classifies the player as normal when a block's top edge is
// within the landing tolerance of its bottom edge, falling otherwise.
// Returns true when a falling player lands.
func (s *MotionSystem) resolveSupport(player *entity.Player) bool {
	block, ok := s.level.Supporting(player, s.config.LandingTolerance)
	if !ok {
		if !player.Falling() {
			player.State = entity.MotionFalling
			player.Bob = 0
		}
		return false
	}

	landed := player.Falling()
	player.State = entity.MotionNormal
	player.Y = block.Top() - player.H
	return landed
}
