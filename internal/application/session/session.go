// Package session runs one attempt at a level without any rendering.
//
// A Session consumes one InputState and one fixed time step per frame.
// Given the same level, configuration and input stream it always reaches
// the same outcome, which is what replays rely on.
package session

import (
	"log"

	"github.com/pryahin/Mort/internal/application/state"
	"github.com/pryahin/Mort/internal/application/system"
	"github.com/pryahin/Mort/internal/domain/entity"
	"github.com/pryahin/Mort/internal/infrastructure/config"
)

// Session is a single attempt at a level
type Session struct {
	level    *entity.Level
	player   *entity.Player
	timer    *entity.Timer
	motion   *system.MotionSystem
	walkStep float64

	state   state.LevelState
	outcome Outcome
	reason  Reason
	frames  int
}

// New creates a session waiting for its first input.
// timer is the countdown handed out by the level's clock; a nil timer
// gets a fresh countdown from the level's budget.
func New(level *entity.Level, timer *entity.Timer, motion config.MotionConfig, player config.PlayerConfig) *Session {
	if timer == nil {
		timer = entity.NewTimer(level.TimeBudget, level.TickInterval)
	}
	return &Session{
		level:    level,
		player:   system.SpawnPlayer(level, player),
		timer:    timer,
		motion:   system.NewMotionSystem(motion, level),
		walkStep: motion.WalkStep,
		state:    state.StateWaiting,
	}
}

// Update handles one frame: input first, then one simulation step
func (s *Session) Update(input system.InputState, dt float64) Outcome {
	s.HandleInput(input)
	return s.Step(dt)
}

// HandleInput applies the key presses of one frame.
// The first press of the level starts the countdown.
func (s *Session) HandleInput(input system.InputState) {
	if input.Abandon {
		s.Abandon()
		return
	}
	if s.state.Terminal() || !input.Any() {
		return
	}

	if s.state == state.StateWaiting {
		s.state = state.StatePlaying
		s.timer.Start()
	}

	for _, intent := range system.IntentsFrom(input) {
		switch it := intent.(type) {
		case system.PauseIntent:
			s.togglePause()
		case system.WalkIntent:
			if s.state == state.StatePaused {
				continue
			}
			s.player.Walk(it.Direction, s.walkStep)
		case system.JumpIntent:
			// Accepted and ignored: the player cannot jump
		}
	}
}

func (s *Session) togglePause() {
	switch s.state {
	case state.StatePlaying:
		s.state = state.StatePaused
		s.timer.Stop()
	case state.StatePaused:
		s.state = state.StatePlaying
		s.timer.Start()
	}
}

// Step advances the simulation by dt seconds and returns the outcome so far.
// Once an outcome is reached further steps do nothing.
func (s *Session) Step(dt float64) Outcome {
	if s.state.Terminal() || s.state == state.StatePaused {
		return s.outcome
	}
	s.frames++

	for n := s.timer.Advance(dt); n > 0; n-- {
		if s.timer.Tick() {
			s.fail(ReasonTime)
			return s.outcome
		}
	}

	res := s.motion.Update(s.player)
	switch {
	case res.Fell:
		s.fail(ReasonFell)
	case res.ReachedGoal:
		s.complete()
	}
	return s.outcome
}

// Abandon gives up the attempt. It fails the level unless it already has an outcome.
func (s *Session) Abandon() {
	if s.state.Terminal() {
		return
	}
	s.fail(ReasonAbandoned)
}

func (s *Session) fail(reason Reason) {
	s.timer.Stop()
	s.state = state.StateFailed
	s.outcome = OutcomeFailed
	s.reason = reason
	log.Printf("[Session] Level %q failed (%s) after %d frames", s.level.Name, reason, s.frames)
}

func (s *Session) complete() {
	s.timer.Stop()
	s.state = state.StateCompleted
	s.outcome = OutcomeCompleted
	log.Printf("[Session] Level %q completed with %s left", s.level.Name, s.timer.Decorated())
}

// Level returns the level being played
func (s *Session) Level() *entity.Level {
	return s.level
}

// Player returns the player
func (s *Session) Player() *entity.Player {
	return s.player
}

// Timer returns the level countdown
func (s *Session) Timer() *entity.Timer {
	return s.timer
}

// State returns the lifecycle state
func (s *Session) State() state.LevelState {
	return s.state
}

// Outcome returns how the attempt ended, OutcomeNone while it is still going
func (s *Session) Outcome() Outcome {
	return s.outcome
}

// Reason returns why the attempt failed
func (s *Session) Reason() Reason {
	return s.reason
}

// Done reports whether the attempt has an outcome
func (s *Session) Done() bool {
	return s.outcome != OutcomeNone
}

// Frames returns the number of simulated steps
func (s *Session) Frames() int {
	return s.frames
}
