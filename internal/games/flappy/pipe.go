package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/assets"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// PipeKind distinguishes the two halves of an obstacle.
type PipeKind int

const (
	PipeTop PipeKind = iota
	PipeBottom
)

// String returns a human-readable name for the pipe kind.
func (k PipeKind) String() string {
	switch k {
	case PipeTop:
		return "top"
	case PipeBottom:
		return "bottom"
	default:
		return "unknown"
	}
}

// Pipe is one half of an obstacle pair.
type Pipe struct {
	Kind  PipeKind
	Rect  core.Rect
	Speed int // Pixels moved left per tick
}

// Bounds implements Collider.
func (p Pipe) Bounds() core.Rect {
	return p.Rect
}

// Advance scrolls the pipe left by one tick.
func (p *Pipe) Advance() {
	p.Rect.X -= p.Speed
}

// Expired reports whether the pipe has fully left the screen.
func (p Pipe) Expired() bool {
	return p.Rect.Right() < 0
}

// SpriteID returns the atlas entry used to draw the pipe.
func (p Pipe) SpriteID() assets.SpriteID {
	if p.Kind == PipeTop {
		return assets.SpritePipeTop
	}
	return assets.SpritePipeBottom
}

// ScoreGate is the invisible region in the opening of a pipe pair.
// Touching it scores once; the gate is removed when it scores.
type ScoreGate struct {
	Rect  core.Rect
	Speed int
}

// Bounds implements Collider.
func (g ScoreGate) Bounds() core.Rect {
	return g.Rect
}

// Advance scrolls the gate in lockstep with its pipes.
func (g *ScoreGate) Advance() {
	g.Rect.X -= g.Speed
}

// Expired reports whether the gate has fully left the screen unscored.
func (g ScoreGate) Expired() bool {
	return g.Rect.Right() < 0
}

// scroller is implemented by pointers to entities that move with the board.
type scroller[T any] interface {
	*T
	Advance()
	Expired() bool
}

// advanceAll scrolls every item, drops the expired ones in place and
// returns the survivors (in their original order) with the retired count.
func advanceAll[T any, P scroller[T]](items []T) ([]T, int) {
	kept := items[:0]
	for i := range items {
		p := P(&items[i])
		p.Advance()
		if p.Expired() {
			continue
		}
		kept = append(kept, items[i])
	}
	return kept, len(items) - len(kept)
}
