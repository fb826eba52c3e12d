package replay

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pryahin/Mort/internal/application/session"
	"github.com/pryahin/Mort/internal/application/system"
	"github.com/pryahin/Mort/internal/infrastructure/config"
)

const maxFrames = 10000

// createTestReplayData creates replay data of an idle player
func createTestReplayData(frames int) ReplayData {
	data := ReplayData{
		Version:   FormatVersion,
		Level:     "test",
		Framerate: 50,
		Frames:    make([]FrameInput, frames),
	}
	for i := range data.Frames {
		data.Frames[i] = FrameInput{F: i}
	}
	return data
}

func TestRecorder_RecordFrame(t *testing.T) {
	rec := NewRecorder("level1", 50)

	rec.RecordFrame(system.InputState{Left: true})
	rec.RecordFrame(system.InputState{})
	rec.RecordFrame(system.InputState{Right: true, Up: true, Pause: true})
	rec.RecordFrame(system.InputState{Abandon: true})

	data := rec.Data()
	assert.Equal(t, FormatVersion, data.Version)
	assert.Equal(t, "level1", data.Level)
	assert.Equal(t, 50, data.Framerate)
	require.Len(t, data.Frames, 4)
	assert.Equal(t, FrameInput{F: 0, L: true}, data.Frames[0])
	assert.Equal(t, FrameInput{F: 1}, data.Frames[1])
	assert.Equal(t, FrameInput{F: 2, R: true, U: true, P: true}, data.Frames[2])
	assert.Equal(t, FrameInput{F: 3, A: true}, data.Frames[3])
}

func TestRecorder_Stop(t *testing.T) {
	rec := NewRecorder("level1", 50)
	rec.RecordFrame(system.InputState{})
	rec.Stop()
	rec.RecordFrame(system.InputState{})

	assert.False(t, rec.IsRecording())
	assert.Equal(t, 1, rec.FrameCount())
}

func TestRecorder_SaveEmpty(t *testing.T) {
	rec := NewRecorder("level1", 50)
	err := rec.Save(filepath.Join(t.TempDir(), "empty.json"))
	assert.Error(t, err)
}

func TestReplayer_GetInput(t *testing.T) {
	data := ReplayData{
		Version: FormatVersion,
		Level:   "test",
		Frames: []FrameInput{
			{F: 0, L: true},
			{F: 1, R: true, U: true},
			{F: 2, P: true},
			{F: 3, A: true},
		},
	}

	replayer := NewReplayer(data)

	// Frame 0
	input, ok := replayer.GetInput()
	require.True(t, ok)
	assert.Equal(t, system.InputState{Left: true}, input)

	// Frame 1
	input, ok = replayer.GetInput()
	require.True(t, ok)
	assert.Equal(t, system.InputState{Right: true, Up: true}, input)

	// Frame 2
	input, ok = replayer.GetInput()
	require.True(t, ok)
	assert.Equal(t, system.InputState{Pause: true}, input)

	// Frame 3
	input, ok = replayer.GetInput()
	require.True(t, ok)
	assert.Equal(t, system.InputState{Abandon: true}, input)

	// End of frames
	_, ok = replayer.GetInput()
	assert.False(t, ok)
}

func TestReplayer_CurrentFrame(t *testing.T) {
	replayer := NewReplayer(createTestReplayData(5))

	assert.Equal(t, 0, replayer.CurrentFrame())

	replayer.GetInput()
	assert.Equal(t, 1, replayer.CurrentFrame())

	replayer.GetInput()
	replayer.GetInput()
	assert.Equal(t, 3, replayer.CurrentFrame())
	assert.Equal(t, 5, replayer.TotalFrames())
}

func TestReplayer_DT(t *testing.T) {
	assert.InDelta(t, 0.02, NewReplayer(ReplayData{Framerate: 50}).DT(), 1e-12)
	assert.InDelta(t, 0.02, NewReplayer(ReplayData{}).DT(), 1e-12)
	assert.InDelta(t, 1.0/60.0, NewReplayer(ReplayData{Framerate: 60}).DT(), 1e-12)
}

func createTestSession(t *testing.T) *session.Session {
	t.Helper()
	cfg, err := config.NewLoader("../../../cmd/mort/configs").LoadAll()
	require.NoError(t, err)

	level := system.LoadLevel(0, cfg.Levels[0])
	return session.New(level, nil, cfg.Settings.Motion, cfg.Settings.Player)
}

// TestReplay_Deterministic records an attempt, saves it and plays it back
// into a fresh session.
func TestReplay_Deterministic(t *testing.T) {
	recorded := createTestSession(t)
	rec := NewRecorder("level1", 50)
	dt := 1.0 / 50.0

	for frame := 0; frame < maxFrames && !recorded.Done(); frame++ {
		var input system.InputState
		switch {
		case frame == 5:
			input.Up = true
		case frame%20 == 0:
			input.Right = true
		}
		rec.RecordFrame(input)
		recorded.Update(input, dt)
	}
	require.Equal(t, session.OutcomeCompleted, recorded.Outcome())

	path := filepath.Join(t.TempDir(), "replay.json")
	require.NoError(t, rec.Save(path))

	data, err := LoadReplay(path)
	require.NoError(t, err)
	assert.Equal(t, "level1", data.Level)

	replayer := NewReplayer(*data)
	replayed := createTestSession(t)
	for {
		input, ok := replayer.GetInput()
		if !ok {
			break
		}
		replayed.Update(input, replayer.DT())
	}

	assert.Equal(t, recorded.Outcome(), replayed.Outcome())
	assert.Equal(t, recorded.Reason(), replayed.Reason())
	assert.Equal(t, recorded.Frames(), replayed.Frames())
	assert.Equal(t, recorded.Player().X, replayed.Player().X)
	assert.Equal(t, recorded.Player().Y, replayed.Player().Y)
	assert.Equal(t, recorded.Timer().Time(), replayed.Timer().Time())
}

func TestLoadReplay_MissingFile(t *testing.T) {
	_, err := LoadReplay(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
