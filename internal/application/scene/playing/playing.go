// Package playing provides the level scene.
package playing

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/pryahin/Mort/internal/application/replay"
	"github.com/pryahin/Mort/internal/application/scene"
	"github.com/pryahin/Mort/internal/application/session"
	"github.com/pryahin/Mort/internal/application/state"
	"github.com/pryahin/Mort/internal/application/system"
	"github.com/pryahin/Mort/internal/infrastructure/config"
)

// Colors for rendering
var (
	colorBG        = color.RGBA{26, 26, 46, 255}
	colorBlock     = color.RGBA{80, 80, 100, 255}
	colorBlockTop  = color.RGBA{120, 120, 150, 255}
	colorPlayer    = color.RGBA{220, 220, 235, 255}
	colorFace      = color.RGBA{40, 40, 60, 255}
	colorGoal      = color.RGBA{255, 215, 0, 110}
	colorFailLine  = color.RGBA{200, 50, 50, 160}
	colorTimer     = color.RGBA{230, 230, 230, 255}
	colorTimerLow  = color.RGBA{230, 60, 60, 255}
	colorSucceeded = color.RGBA{60, 160, 60, 180}
	colorFailed    = color.RGBA{100, 0, 0, 180}
)

// FinishFunc receives the outcome of the attempt and the seconds left on the countdown
type FinishFunc func(outcome session.Outcome, remaining int)

// Playing is the level scene. It feeds input into a session and draws it.
type Playing struct {
	session     *session.Session
	levelID     string
	inputSystem *system.InputSystem
	screenW     int
	screenH     int

	back   scene.Scene
	finish FinishFunc

	// outcomeDelay is how long the outcome overlay stays before returning
	outcomeDelay float64
	outcomeShown float64
	reported     bool

	// Input recording
	recorder       *replay.Recorder
	recordFilename string
}

// New creates a level scene for sess. back is the scene shown once the
// attempt is over and finish is called exactly once with its outcome.
// If recordPath is not empty, input is recorded.
func New(sess *session.Session, cfg *config.SettingsConfig, levelID string, back scene.Scene, finish FinishFunc, recordPath string) *Playing {
	p := &Playing{
		session:        sess,
		levelID:        levelID,
		inputSystem:    system.NewInputSystem(system.DefaultKeyBindings()),
		screenW:        cfg.Display.ScreenWidth,
		screenH:        cfg.Display.ScreenHeight,
		back:           back,
		finish:         finish,
		outcomeDelay:   cfg.Hub.OutcomeDelay,
		recordFilename: recordPath,
	}

	if recordPath != "" {
		p.recorder = replay.NewRecorder(levelID, cfg.Display.Framerate)
		log.Printf("Recording enabled: %s", recordPath)
	}

	return p
}

// Update proceeds the level (implements scene.Scene)
func (p *Playing) Update(dt float64) (scene.Scene, error) {
	if p.session.Done() {
		return p.updateOutcome(dt), nil
	}

	// Q gives up while paused
	if p.session.State() == state.StatePaused && inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		p.step(system.InputState{Abandon: true}, dt)
		return nil, nil
	}

	p.step(p.inputSystem.GetInput(), dt)
	return nil, nil
}

// step feeds one frame of input into the session
func (p *Playing) step(input system.InputState, dt float64) {
	if p.recorder != nil {
		p.recorder.RecordFrame(input)
	}
	p.session.Update(input, dt)
}

// updateOutcome keeps the overlay up for the outcome delay or until a key is pressed
func (p *Playing) updateOutcome(dt float64) scene.Scene {
	p.outcomeShown += dt
	skip := p.outcomeShown > 0.5 && len(inpututil.AppendJustPressedKeys(nil)) > 0
	if p.outcomeShown < p.outcomeDelay && !skip {
		return nil
	}
	p.report()
	return p.back
}

// report hands the outcome to the hub once
func (p *Playing) report() {
	if p.reported {
		return
	}
	p.reported = true
	if p.finish != nil {
		p.finish(p.session.Outcome(), p.session.Timer().Time())
	}
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil || p.recorder.FrameCount() == 0 {
		return
	}

	filename := p.recordFilename
	if filename == "" {
		filename = replay.GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		log.Printf("Failed to save recording: %v", err)
	} else {
		log.Printf("Recording saved: %s (%d frames)", filename, p.recorder.FrameCount())
	}
	p.recorder.Stop()
}

// Draw renders the level
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	p.drawLevel(screen)
	p.drawPlayer(screen)
	p.drawUI(screen)

	switch p.session.State() {
	case state.StatePaused:
		p.drawPauseOverlay(screen)
	case state.StateCompleted, state.StateFailed:
		p.drawOutcomeOverlay(screen)
	}
}

func (p *Playing) drawLevel(screen *ebiten.Image) {
	level := p.session.Level()

	g := level.Goal
	if g.R > g.L && g.T > g.B {
		ebitenutil.DrawRect(screen, g.L, g.B, g.R-g.L, g.T-g.B, colorGoal)
	}

	for _, b := range level.Blocks {
		ebitenutil.DrawRect(screen, b.X, b.Y, b.W, b.H, colorBlock)
		ebitenutil.DrawRect(screen, b.X, b.Y, b.W, 2, colorBlockTop)
	}

	if level.FailY < float64(p.screenH) {
		ebitenutil.DrawLine(screen, 0, level.FailY, float64(p.screenW), level.FailY, colorFailLine)
	}
}

func (p *Playing) drawPlayer(screen *ebiten.Image) {
	pl := p.session.Player()

	// The bob only moves the sprite, never the box
	x, boxY := float64(pl.PixelX()), float64(pl.PixelY())
	y := boxY - pl.Bob
	ebitenutil.DrawRect(screen, x, y, pl.W, pl.H, colorPlayer)

	// Eye on the facing side
	eyeX := x + pl.W - 14
	if pl.Direction < 0 {
		eyeX = x + 6
	}
	ebitenutil.DrawRect(screen, eyeX, y+12, 8, 8, colorFace)

	// Draw hitbox debug
	if ebiten.IsKeyPressed(ebiten.KeyTab) {
		ebitenutil.DrawRect(screen, x, boxY, pl.W, pl.H, color.RGBA{100, 100, 200, 100})
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s x=%.0f y=%.0f", pl.State, pl.X, pl.Y), 10, p.screenH-20)
	}
}

func (p *Playing) drawUI(screen *ebiten.Image) {
	timer := p.session.Timer()
	timerColor := colorTimer
	if timer.Low() {
		timerColor = colorTimerLow
	}
	decorated := timer.Decorated()
	scene.DrawText(screen, decorated, float64(p.screenW)-scene.TextWidth(decorated)-12, 12, timerColor)
	scene.DrawText(screen, p.session.Level().Name, 10, 12, colorTimer)

	if p.session.State() == state.StateWaiting {
		scene.DrawTextCentered(screen, "Press a key to start the clock", float64(p.screenW)/2, 60, colorTimer)
	}

	debugText := "A/D: Walk | ESC: Pause | Tab: Hitbox"
	ebitenutil.DebugPrintAt(screen, debugText, 10, 30)
}

func (p *Playing) drawPauseOverlay(screen *ebiten.Image) {
	overlay := color.RGBA{0, 0, 0, 128}
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), overlay)

	text := "PAUSED\n\nPress ESC to resume\nPress Q to give up"
	scene.DrawTextCentered(screen, text, float64(p.screenW)/2, float64(p.screenH)/2-30, color.White)
}

func (p *Playing) drawOutcomeOverlay(screen *ebiten.Image) {
	overlay := colorFailed
	text := "YOU FAILED"
	switch {
	case p.session.Outcome() == session.OutcomeCompleted:
		overlay = colorSucceeded
		text = fmt.Sprintf("LEVEL COMPLETE\n\n%s left", p.session.Timer().Decorated())
	case p.session.Reason() == session.ReasonTime:
		text = "TIME IS UP"
	case p.session.Reason() == session.ReasonFell:
		text = "YOU FELL"
	}
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), overlay)
	scene.DrawTextCentered(screen, text, float64(p.screenW)/2, float64(p.screenH)/2-20, color.White)
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	log.Printf("[Playing] Entering level %s", p.levelID)
}

// OnExit is called when leaving this scene.
// Leaving before the attempt is over counts as giving up.
func (p *Playing) OnExit() {
	if !p.session.Done() {
		p.step(system.InputState{Abandon: true}, 0)
	}
	p.report()
	p.saveRecording()
}

// Session returns the running session
func (p *Playing) Session() *session.Session {
	return p.session
}
