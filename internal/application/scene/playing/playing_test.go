package playing

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pryahin/Mort/internal/application/replay"
	"github.com/pryahin/Mort/internal/application/scene"
	"github.com/pryahin/Mort/internal/application/session"
	"github.com/pryahin/Mort/internal/application/system"
	"github.com/pryahin/Mort/internal/domain/entity"
	"github.com/pryahin/Mort/internal/infrastructure/config"
)

const testDT = 0.02

// createTestConfig creates a minimal config for testing
func createTestConfig() *config.SettingsConfig {
	return &config.SettingsConfig{
		Display: config.DisplayConfig{
			ScreenWidth:  960,
			ScreenHeight: 540,
			Scale:        1,
			Framerate:    50,
		},
		Motion: config.MotionConfig{
			BobStep:          1,
			BobAmplitude:     14,
			FallStep:         4,
			WalkStep:         43,
			WalkSpeed:        3,
			LandingTolerance: 3,
		},
		Player: config.PlayerConfig{Width: 48, Height: 64},
		Hub:    config.HubConfig{OutcomeDelay: 1},
	}
}

func createTestSession(cfg *config.SettingsConfig) *session.Session {
	level := &entity.Level{
		Name:         "test",
		Width:        960,
		Height:       540,
		SpawnX:       20,
		SpawnY:       389,
		FailY:        540,
		Blocks:       []entity.Block{entity.NewBlock(0, 453, 960, 40)},
		Goal:         cp.BB{L: 200, B: 333, R: 260, T: 453},
		TimeBudget:   30,
		TickInterval: time.Second,
	}
	return session.New(level, nil, cfg.Motion, cfg.Player)
}

// backScene stands in for the hub
type backScene struct{}

func (backScene) Update(float64) (scene.Scene, error) { return nil, nil }
func (backScene) Draw(*ebiten.Image)                  {}
func (backScene) OnEnter()                            {}
func (backScene) OnExit()                             {}

type finishCall struct {
	outcome   session.Outcome
	remaining int
}

func createTestPlaying(t *testing.T, recordPath string) (*Playing, *[]finishCall) {
	t.Helper()
	cfg := createTestConfig()
	var calls []finishCall
	finish := func(outcome session.Outcome, remaining int) {
		calls = append(calls, finishCall{outcome, remaining})
	}
	return New(createTestSession(cfg), cfg, "test", backScene{}, finish, recordPath), &calls
}

func TestPlaying_ImplementsScene(t *testing.T) {
	// Compile-time check that Playing implements scene.Scene
	var _ scene.Scene = (*Playing)(nil)
}

func TestNewPlaying(t *testing.T) {
	p, calls := createTestPlaying(t, "")

	assert.NotNil(t, p.Session())
	assert.Nil(t, p.recorder)
	assert.Empty(t, *calls)
	assert.NotPanics(t, p.OnEnter)
}

func TestPlaying_Update_ReturnsNilWhilePlaying(t *testing.T) {
	p, _ := createTestPlaying(t, "")

	next, err := p.Update(testDT)

	assert.NoError(t, err)
	assert.Nil(t, next, "Should return nil when continuing to play")
}

func TestPlaying_WithRecorder(t *testing.T) {
	p, _ := createTestPlaying(t, filepath.Join(t.TempDir(), "replay.json"))
	require.NotNil(t, p.recorder)

	p.step(system.InputState{Right: true}, testDT)
	p.step(system.InputState{}, testDT)

	assert.Equal(t, 2, p.recorder.FrameCount())
	assert.Equal(t, replay.FrameInput{F: 0, R: true}, p.recorder.Data().Frames[0])
}

func TestPlaying_OnExitAbandons(t *testing.T) {
	p, calls := createTestPlaying(t, "")
	p.step(system.InputState{Right: true}, testDT)

	p.OnExit()
	p.OnExit()

	require.Len(t, *calls, 1, "outcome is reported once")
	assert.Equal(t, session.OutcomeFailed, (*calls)[0].outcome)
	assert.Equal(t, session.ReasonAbandoned, p.Session().Reason())
}

func TestPlaying_ReturnsAfterOutcome(t *testing.T) {
	p, calls := createTestPlaying(t, "")

	for i := 0; i < 4; i++ {
		p.step(system.InputState{Right: true}, testDT)
	}
	for i := 0; i < 1000 && !p.Session().Done(); i++ {
		p.step(system.InputState{}, testDT)
	}
	require.Equal(t, session.OutcomeCompleted, p.Session().Outcome())

	// The overlay stays up for the outcome delay
	var next scene.Scene
	frames := 0
	for next == nil && frames < 1000 {
		next = p.updateOutcome(testDT)
		frames++
	}

	assert.Equal(t, backScene{}, next)
	assert.GreaterOrEqual(t, frames, 49)
	require.Len(t, *calls, 1)
	assert.Equal(t, finishCall{session.OutcomeCompleted, 30}, (*calls)[0])

	// Leaving the scene afterwards does not report again
	p.OnExit()
	assert.Len(t, *calls, 1)
	assert.Equal(t, session.OutcomeCompleted, p.Session().Outcome())
}

func TestPlaying_OnExitWithRecorder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "replay.json")
	p, _ := createTestPlaying(t, path)

	p.step(system.InputState{Right: true}, testDT)
	p.step(system.InputState{}, testDT)

	p.OnExit()

	_, err := os.Stat(path)
	require.NoError(t, err)

	data, err := replay.LoadReplay(path)
	require.NoError(t, err)
	assert.Equal(t, "test", data.Level)
	require.Len(t, data.Frames, 3, "leaving the level is recorded as a frame")
	assert.Equal(t, replay.FrameInput{F: 2, A: true}, data.Frames[2])
}

func TestPlaying_GiveUpIsRecorded(t *testing.T) {
	p, calls := createTestPlaying(t, filepath.Join(t.TempDir(), "replay.json"))
	p.step(system.InputState{Right: true}, testDT)
	p.step(system.InputState{Pause: true}, testDT)

	p.step(system.InputState{Abandon: true}, testDT)
	p.OnExit()

	frames := p.recorder.Data().Frames
	require.Len(t, frames, 3, "no second abandon once the attempt is over")
	assert.True(t, frames[2].A)
	require.Len(t, *calls, 1)
	assert.Equal(t, session.OutcomeFailed, (*calls)[0].outcome)

	// The recording replays to the same outcome
	replayed := createTestSession(createTestConfig())
	replayer := replay.NewReplayer(p.recorder.Data())
	for {
		input, ok := replayer.GetInput()
		if !ok {
			break
		}
		replayed.Update(input, replayer.DT())
	}
	assert.Equal(t, session.OutcomeFailed, replayed.Outcome())
	assert.Equal(t, session.ReasonAbandoned, replayed.Reason())
	assert.Equal(t, p.Session().Frames(), replayed.Frames())
}
