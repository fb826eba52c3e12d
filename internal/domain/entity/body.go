package entity

import "github.com/jakecoffman/cp"

// Body is an axis-aligned rectangle in level coordinates.
// X, Y is the top-left corner and Y grows downward.
type Body struct {
	X, Y float64
	W, H float64
}

// Box returns the body's bounding box.
// B holds the smaller y (top edge) and T the larger y (bottom edge).
func (b Body) Box() cp.BB {
	return cp.BB{L: b.X, B: b.Y, R: b.X + b.W, T: b.Y + b.H}
}

// Top returns the y of the top edge
func (b Body) Top() float64 {
	return b.Y
}

// Bottom returns the y of the bottom edge
func (b Body) Bottom() float64 {
	return b.Y + b.H
}

// PixelX returns the rounded-down x for drawing
func (b Body) PixelX() int {
	return int(b.X)
}

// PixelY returns the rounded-down y for drawing
func (b Body) PixelY() int {
	return int(b.Y)
}

// Block is a static platform segment. It does not change after construction.
type Block struct {
	Body
}

// NewBlock creates a block with its top-left corner at x, y
func NewBlock(x, y, w, h float64) Block {
	return Block{Body: Body{X: x, Y: y, W: w, H: h}}
}

// TopEdge returns the block's top edge as a zero-height box
func (b Block) TopEdge() cp.BB {
	return cp.BB{L: b.X, B: b.Y, R: b.X + b.W, T: b.Y}
}

// MotionState is the player's vertical motion state
type MotionState int

const (
	MotionNormal MotionState = iota
	MotionFalling
)

// String returns the string representation of the motion state
func (s MotionState) String() string {
	switch s {
	case MotionNormal:
		return "Normal"
	case MotionFalling:
		return "Falling"
	default:
		return "Unknown"
	}
}

// Direction is the facing direction: -1 for left, 1 for right
type Direction int

const (
	DirLeft  Direction = -1
	DirRight Direction = 1
)

// Player is the flying sprite the user steers across the blocks.
// The bob offset is visual only and never moves the collision box.
type Player struct {
	Body
	Direction Direction
	State     MotionState

	// TargetX is where a pending walk ends. Equal to X when idle.
	TargetX float64

	Bob       float64
	BobRising bool
}

// NewPlayer creates a player facing right at pixel coordinates x, y
func NewPlayer(x, y, w, h float64) *Player {
	return &Player{
		Body:      Body{X: x, Y: y, W: w, H: h},
		Direction: DirRight,
		State:     MotionNormal,
		TargetX:   x,
		BobRising: true,
	}
}

// Rotate flips the facing direction
func (p *Player) Rotate() {
	p.Direction = -p.Direction
}

// Walk turns the player toward dir and queues a walk of step units.
// Repeated presses in the same direction extend the pending walk.
func (p *Player) Walk(dir Direction, step float64) {
	base := p.X
	if p.Direction != dir {
		p.Rotate()
	} else if p.Walking() {
		base = p.TargetX
	}
	p.TargetX = base + float64(dir)*step
}

// Walking reports whether a walk is still pending
func (p *Player) Walking() bool {
	return p.TargetX != p.X
}

// SetPos moves the player and cancels any pending walk
func (p *Player) SetPos(x, y float64) {
	p.X = x
	p.Y = y
	p.TargetX = x
}

// Falling reports whether the player is airborne
func (p *Player) Falling() bool {
	return p.State == MotionFalling
}
