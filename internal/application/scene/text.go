package scene

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// face is the only font: a fixed 7x13 bitmap face
var face = text.NewGoXFace(basicfont.Face7x13)

// LineHeight is the height of one line of DrawText output
const LineHeight = 13

// DrawText draws s with its top-left corner at x, y
func DrawText(screen *ebiten.Image, s string, x, y float64, clr color.Color) {
	drawText(screen, s, x, y, clr, text.AlignStart)
}

// DrawTextCentered draws s with every line centered horizontally on cx
func DrawTextCentered(screen *ebiten.Image, s string, cx, y float64, clr color.Color) {
	drawText(screen, s, cx, y, clr, text.AlignCenter)
}

// TextWidth returns the width of the widest line of s
func TextWidth(s string) float64 {
	w, _ := text.Measure(s, face, LineHeight+3)
	return w
}

func drawText(screen *ebiten.Image, s string, x, y float64, clr color.Color, align text.Align) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.LineSpacing = LineHeight + 3
	op.PrimaryAlign = align
	text.Draw(screen, s, face, op)
}
