// Package naming provides the scene where the player introduces themselves.
package naming

import (
	"image/color"
	"log"
	"sync"
	"unicode"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.design/x/clipboard"

	"github.com/pryahin/Mort/internal/application/profile"
	"github.com/pryahin/Mort/internal/application/scene"
	"github.com/pryahin/Mort/internal/domain/entity"
)

var (
	colorBG     = color.RGBA{16, 16, 28, 255}
	colorField  = color.RGBA{50, 50, 70, 255}
	colorText   = color.RGBA{230, 230, 230, 255}
	colorError  = color.RGBA{230, 60, 60, 255}
	colorPrompt = color.RGBA{160, 160, 190, 255}
)

// maxInputRunes caps the field a little above the name limit so the
// too-long error can still be shown
const maxInputRunes = entity.MaxUsernameLength + 6

var (
	clipboardOnce sync.Once
	clipboardOK   bool
)

// clipboardReady initializes the system clipboard once.
// Headless sessions have none and paste is disabled.
func clipboardReady() bool {
	clipboardOnce.Do(func() {
		if err := clipboard.Init(); err != nil {
			log.Printf("[Naming] Clipboard unavailable: %v", err)
			return
		}
		clipboardOK = true
	})
	return clipboardOK
}

// Naming asks for a username and stores it in the profile
type Naming struct {
	profile *profile.Profile
	next    func() scene.Scene
	screenW int
	screenH int

	input []rune
	err   error
	blink int
}

// New creates the naming scene. next builds the scene shown after a valid name.
func New(p *profile.Profile, screenW, screenH int, next func() scene.Scene) *Naming {
	return &Naming{
		profile: p,
		next:    next,
		screenW: screenW,
		screenH: screenH,
		input:   []rune(p.Username()),
	}
}

// Update handles typing (implements scene.Scene)
func (n *Naming) Update(_ float64) (scene.Scene, error) {
	n.blink++

	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		n.backspace()
	}
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
	if ctrl && inpututil.IsKeyJustPressed(ebiten.KeyV) && clipboardReady() {
		n.Type(string(clipboard.Read(clipboard.FmtText)))
	} else {
		n.TypeRunes(ebiten.AppendInputChars(nil))
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) {
		if n.Submit() {
			return n.next(), nil
		}
	}
	return nil, nil
}

// Type appends printable characters of s to the field
func (n *Naming) Type(s string) {
	n.TypeRunes([]rune(s))
}

// TypeRunes appends printable runes to the field
func (n *Naming) TypeRunes(runes []rune) {
	for _, r := range runes {
		if len(n.input) >= maxInputRunes {
			return
		}
		if unicode.IsPrint(r) {
			n.input = append(n.input, r)
			n.err = nil
		}
	}
}

func (n *Naming) backspace() {
	if len(n.input) > 0 {
		n.input = n.input[:len(n.input)-1]
		n.err = nil
	}
}

// Submit validates the field and renames the profile.
// It returns false and keeps the error for display when the name is rejected.
func (n *Naming) Submit() bool {
	if err := n.profile.Rename(string(n.input)); err != nil {
		n.err = err
		log.Printf("[Naming] Rejected name %q: %v", string(n.input), err)
		return false
	}
	n.err = nil
	return true
}

// Input returns the current field contents
func (n *Naming) Input() string {
	return string(n.input)
}

// Err returns the last validation error
func (n *Naming) Err() error {
	return n.err
}

// Draw renders the name field
func (n *Naming) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	cx := float64(n.screenW) / 2
	cy := float64(n.screenH) / 2

	scene.DrawTextCentered(screen, "Who are you?", cx, cy-60, colorText)

	fieldW := 200.0
	ebitenutil.DrawRect(screen, cx-fieldW/2, cy-12, fieldW, 28, colorField)

	value := string(n.input)
	if (n.blink/25)%2 == 0 {
		value += "_"
	}
	scene.DrawText(screen, value, cx-fieldW/2+8, cy-4, colorText)

	if n.err != nil {
		scene.DrawTextCentered(screen, n.err.Error(), cx, cy+30, colorError)
	}
	scene.DrawTextCentered(screen, "Enter: confirm | Ctrl+V: paste", cx, float64(n.screenH)-40, colorPrompt)
}

// OnEnter is called when entering this scene
func (n *Naming) OnEnter() {}

// OnExit is called when leaving this scene
func (n *Naming) OnExit() {}
