package entity

import (
	"time"

	"github.com/jakecoffman/cp"
)

// LandingTolerance is the default distance between the player's bottom edge
// and a block's top edge that still counts as standing on it.
const LandingTolerance = 3.0

// Level is the static layout of one playable level
type Level struct {
	ID     int
	Name   string
	Blocks []Block

	SpawnX, SpawnY float64
	Width, Height  float64

	// FailY is the line a falling player must not cross
	FailY float64
	Goal  cp.BB

	TimeBudget   int
	TickInterval time.Duration
}

// Colliding returns the blocks overlapping box, edges included
func (l *Level) Colliding(box cp.BB) []Block {
	var hits []Block
	for _, b := range l.Blocks {
		if box.Intersects(b.Box()) {
			hits = append(hits, b)
		}
	}
	return hits
}

// Supporting returns a block whose top edge lies within tolerance of the
// player's bottom edge and overlaps it horizontally.
// Edges that only touch at a corner do not hold the player up.
func (l *Level) Supporting(p *Player, tolerance float64) (Block, bool) {
	bottom := p.Bottom()
	probe := cp.BB{L: p.X, B: bottom - tolerance, R: p.X + p.W, T: bottom + tolerance}
	for _, b := range l.Blocks {
		edge := b.TopEdge()
		if probe.Intersects(edge) && probe.L < edge.R && probe.R > edge.L {
			return b, true
		}
	}
	return Block{}, false
}

// ReachedGoal reports whether the player touches the goal area
func (l *Level) ReachedGoal(p *Player) bool {
	if l.Goal.R <= l.Goal.L || l.Goal.T <= l.Goal.B {
		return false
	}
	return p.Box().Intersects(l.Goal)
}

// ClampX keeps a body of width w inside the level horizontally
func (l *Level) ClampX(x, w float64) float64 {
	if x < 0 {
		return 0
	}
	if l.Width > 0 && x+w > l.Width {
		return l.Width - w
	}
	return x
}
