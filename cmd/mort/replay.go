package main

import (
	"fmt"
	"log"

	"github.com/pryahin/Mort/internal/application/replay"
	"github.com/pryahin/Mort/internal/application/session"
	"github.com/pryahin/Mort/internal/application/system"
	"github.com/pryahin/Mort/internal/infrastructure/config"
)

// ReplayResult summarizes a recorded attempt played back without a window
type ReplayResult struct {
	Level     string
	Outcome   session.Outcome
	Reason    session.Reason
	Frames    int
	Remaining int

	// Inputs is how many recorded frames were played out of Total
	Inputs int
	Total  int
}

func (r ReplayResult) String() string {
	outcome := r.Outcome.String()
	if r.Reason != session.ReasonNone {
		outcome = fmt.Sprintf("%s (%s)", r.Outcome, r.Reason)
	}
	return fmt.Sprintf("%s: %s after %d frames, %ds left, %d/%d inputs played",
		r.Level, outcome, r.Frames, r.Remaining, r.Inputs, r.Total)
}

// playReplay runs the recorded inputs against the level they were recorded on
func playReplay(cfg *config.GameConfig, data replay.ReplayData) (ReplayResult, error) {
	id := -1
	for i, level := range cfg.Levels {
		if level.ID == data.Level {
			id = i
			break
		}
	}
	if id < 0 {
		return ReplayResult{}, fmt.Errorf("replay level %q not found", data.Level)
	}

	level := system.LoadLevel(id, cfg.Levels[id])
	sess := session.New(level, nil, cfg.Settings.Motion, cfg.Settings.Player)
	replayer := replay.NewReplayer(data)

	for !sess.Done() {
		input, ok := replayer.GetInput()
		if !ok {
			break
		}
		sess.Update(input, replayer.DT())
	}

	return ReplayResult{
		Level:     data.Level,
		Outcome:   sess.Outcome(),
		Reason:    sess.Reason(),
		Frames:    sess.Frames(),
		Remaining: sess.Timer().Time(),
		Inputs:    replayer.CurrentFrame(),
		Total:     replayer.TotalFrames(),
	}, nil
}

// runReplay loads a replay file and logs how the attempt ends
func runReplay(cfg *config.GameConfig, filename string) error {
	data, err := replay.LoadReplay(filename)
	if err != nil {
		return err
	}
	result, err := playReplay(cfg, *data)
	if err != nil {
		return err
	}
	log.Printf("[Replay] %s", result)
	return nil
}
