// Package hub provides the level-selection scene.
//
// The hub shows one clock per level. Clicking a playable clock launches its
// level; when the attempt ends the hub records the outcome on the clock and
// credits the remaining time to the player's score.
package hub

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/pryahin/Mort/internal/application/clock"
	"github.com/pryahin/Mort/internal/application/profile"
	"github.com/pryahin/Mort/internal/application/scene"
	"github.com/pryahin/Mort/internal/application/scene/naming"
	"github.com/pryahin/Mort/internal/application/scene/playing"
	"github.com/pryahin/Mort/internal/application/session"
	"github.com/pryahin/Mort/internal/application/system"
	"github.com/pryahin/Mort/internal/domain/entity"
	"github.com/pryahin/Mort/internal/infrastructure/config"
)

// Colors for rendering
var (
	colorBG       = color.RGBA{16, 16, 28, 255}
	colorText     = color.RGBA{230, 230, 230, 255}
	colorDim      = color.RGBA{140, 140, 160, 255}
	colorNormal   = color.RGBA{70, 70, 90, 255}
	colorHover    = color.RGBA{110, 110, 150, 255}
	colorRunning  = color.RGBA{200, 170, 60, 255}
	colorSucceed  = color.RGBA{60, 160, 60, 255}
	colorFailed   = color.RGBA{170, 50, 50, 255}
	colorTimeOK   = color.RGBA{120, 230, 120, 255}
	colorTimeBad  = color.RGBA{240, 90, 90, 255}
	colorClockRim = color.RGBA{20, 20, 30, 255}
)

// levelKeys launch levels from the keyboard
var levelKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5}

// Options wires the hub to the rest of the game
type Options struct {
	Config  *config.GameConfig
	Loader  *config.Loader
	Watcher *config.Watcher // nil when hot reload is off
	Clocks  *clock.Clocks
	Profile *profile.Profile

	// RecordPath records every level attempt to this file when set
	RecordPath string
}

// Hub is the level-selection scene
type Hub struct {
	opts     Options
	settings *config.SettingsConfig
	levels   []*entity.Level
	hovered  int
	message  string
}

// New creates the hub for the loaded levels
func New(opts Options) *Hub {
	return &Hub{
		opts:     opts,
		settings: opts.Config.Settings,
		levels:   system.LoadLevels(opts.Config.Levels),
		hovered:  -1,
	}
}

// Update handles hub input (implements scene.Scene)
func (h *Hub) Update(_ float64) (scene.Scene, error) {
	h.pollWatcher()

	h.SetHovered(h.ClockAt(ebiten.CursorPosition()))

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && h.hovered >= 0 {
		if next := h.Launch(h.hovered); next != nil {
			return next, nil
		}
	}
	for i, key := range levelKeys {
		if i < len(h.levels) && inpututil.IsKeyJustPressed(key) {
			if next := h.Launch(i); next != nil {
				return next, nil
			}
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		return naming.New(h.opts.Profile, h.settings.Display.ScreenWidth, h.settings.Display.ScreenHeight,
			func() scene.Scene { return h }), nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return nil, ebiten.Termination
	}
	return nil, nil
}

// ClockAt returns the level whose clock contains the point, or -1
func (h *Hub) ClockAt(x, y int) int {
	fx, fy := float64(x), float64(y)
	for i := range h.levels {
		r := h.settings.Hub.Clocks[i]
		if fx >= r.X && fx < r.X+r.W && fy >= r.Y && fy < r.Y+r.H {
			return i
		}
	}
	return -1
}

// SetHovered moves the hover highlight to level id, -1 for none
func (h *Hub) SetHovered(id int) {
	if id == h.hovered {
		return
	}
	if h.hovered >= 0 {
		_ = h.opts.Clocks.Unhover(h.hovered)
	}
	h.hovered = id
	if id >= 0 {
		_ = h.opts.Clocks.Hover(id)
	}
}

// Launch starts level id. It returns nil and keeps a message for display
// when the level cannot be played.
func (h *Hub) Launch(id int) scene.Scene {
	if id < 0 || id >= len(h.levels) {
		return nil
	}
	h.SetHovered(-1)

	timer, err := h.opts.Clocks.Stop(id)
	if err != nil {
		h.message = fmt.Sprintf("%s: %v", h.levels[id].Name, err)
		log.Printf("[Hub] Cannot launch level %d: %v", id, err)
		return nil
	}
	h.message = ""

	sess := session.New(h.levels[id], timer, h.settings.Motion, h.settings.Player)
	finish := func(outcome session.Outcome, remaining int) {
		if err := h.RecordOutcome(id, outcome, remaining); err != nil {
			log.Printf("[Hub] Failed to record level %d: %v", id, err)
		}
	}
	return playing.New(sess, h.settings, h.opts.Config.Levels[id].ID, h, finish, h.opts.RecordPath)
}

// RecordOutcome finishes the level's clock and credits the score of a completed level
func (h *Hub) RecordOutcome(id int, outcome session.Outcome, remaining int) error {
	switch outcome {
	case session.OutcomeCompleted:
		if err := h.opts.Clocks.Succeed(id); err != nil {
			return err
		}
		if err := h.opts.Profile.AddScore(remaining); err != nil {
			log.Printf("[Hub] Failed to save score: %v", err)
		}
		h.message = fmt.Sprintf("%s complete! +%d", h.levels[id].Name, remaining*h.settings.Score.Multiplier)
	default:
		if err := h.opts.Clocks.Fail(id); err != nil {
			return err
		}
		h.message = fmt.Sprintf("%s failed", h.levels[id].Name)
	}
	return h.opts.Clocks.Write()
}

// pollWatcher reloads levels changed on disk
func (h *Hub) pollWatcher() {
	if h.opts.Watcher == nil {
		return
	}
	for _, name := range h.opts.Watcher.Poll() {
		if err := h.Reload(name); err != nil {
			log.Printf("[Hub] Reload of %s failed: %v", name, err)
		}
	}
}

// Reload reads level name from disk again. Levels not listed in the
// settings are ignored. Clocks already played keep their budget.
func (h *Hub) Reload(name string) error {
	id := -1
	for i, n := range h.settings.Levels {
		if n == name {
			id = i
			break
		}
	}
	if id < 0 || id >= len(h.levels) {
		return nil
	}

	cfg, err := h.opts.Loader.LoadLevel(name)
	if err != nil {
		return err
	}
	if err := config.ValidateLevel(cfg); err != nil {
		return err
	}

	h.opts.Config.Levels[id] = cfg
	h.levels[id] = system.LoadLevel(id, cfg)
	if err := h.opts.Clocks.SetBudget(id, clock.BudgetFor(h.levels[id])); err != nil {
		return err
	}
	log.Printf("[Hub] Reloaded level %s", name)
	return nil
}

// Levels returns the playable levels in hub order
func (h *Hub) Levels() []*entity.Level {
	return h.levels
}

// Message returns the last status line
func (h *Hub) Message() string {
	return h.message
}

// Draw renders the hub
func (h *Hub) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	w := float64(h.settings.Display.ScreenWidth)
	scene.DrawTextCentered(screen, fmt.Sprintf("Hello, %s", h.opts.Profile.Username()), w/2, 40, colorText)
	scene.DrawTextCentered(screen, fmt.Sprintf("Score: %d", h.opts.Profile.Score()), w/2, 64, colorDim)

	for i, level := range h.levels {
		h.drawClock(screen, i, level)
	}

	if h.message != "" {
		scene.DrawTextCentered(screen, h.message, w/2, 410, colorText)
	}

	debugText := "Click or 1-3: Play | N: Change name | ESC: Quit"
	ebitenutil.DebugPrintAt(screen, debugText, 10, h.settings.Display.ScreenHeight-20)
}

func (h *Hub) drawClock(screen *ebiten.Image, id int, level *entity.Level) {
	r := h.settings.Hub.Clocks[id]
	clocks := h.opts.Clocks
	st := clocks.State(id)

	face := colorNormal
	switch st {
	case clock.StateHover:
		face = colorHover
	case clock.StateRunning:
		face = colorRunning
	case clock.StateSucceed:
		face = colorSucceed
	case clock.StateFailed:
		face = colorFailed
	}

	cx, cy := r.X+r.W/2, r.Y+r.H/2
	radius := min(r.W, r.H) / 2
	ebitenutil.DrawCircle(screen, cx, cy, radius, colorClockRim)
	ebitenutil.DrawCircle(screen, cx, cy, radius-4, face)

	timeColor := colorText
	switch {
	case st == clock.StateSucceed:
		timeColor = colorTimeOK
	case st == clock.StateFailed || clocks.Low(id):
		timeColor = colorTimeBad
	}
	scene.DrawTextCentered(screen, clocks.Decorated(id), cx, cy-6, timeColor)
	scene.DrawTextCentered(screen, level.Name, cx, r.Y+r.H+12, colorDim)
}

// OnEnter is called when entering this scene
func (h *Hub) OnEnter() {
	h.SetHovered(-1)
}

// OnExit saves the clocks
func (h *Hub) OnExit() {
	if err := h.opts.Clocks.Write(); err != nil {
		log.Printf("[Hub] Failed to save clocks: %v", err)
	}
}
