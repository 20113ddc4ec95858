package flappy

import (
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Spawner produces obstacle pairs with a random bottom pipe height.
// Two spawners with the same seed and config produce identical sequences.
type Spawner struct {
	rng *rand.Rand

	screenW, screenH int
	floorH           int
	gap              int
	minH, maxH       int
	pipeW, pipeLen   int
	offset           int
	speed            int
}

// NewSpawner creates a spawner drawing from a generator seeded with seed.
func NewSpawner(cfg config.FlappyConfig, seed int64) *Spawner {
	return &Spawner{
		rng:     rand.New(rand.NewSource(seed)),
		screenW: cfg.Screen.Width,
		screenH: cfg.Screen.Height,
		floorH:  cfg.Floor.Height,
		gap:     cfg.Pipes.Gap,
		minH:    cfg.Pipes.MinHeight,
		maxH:    cfg.MaxPipeHeight(),
		pipeW:   cfg.Pipes.Width,
		pipeLen: cfg.Pipes.Length,
		offset:  cfg.Pipes.SpawnOffset,
		speed:   cfg.Physics.BoardSpeed,
	}
}

// Height draws a bottom pipe height uniformly from [min, max] inclusive.
func (s *Spawner) Height() int {
	return s.minH + s.rng.Intn(s.maxH-s.minH+1)
}

// Generate draws a height and builds the pair for it.
func (s *Spawner) Generate() (bottom, top Pipe, gate ScoreGate) {
	return s.PairFor(s.Height())
}

// PairFor builds the pipes and score gate for a bottom pipe of height h.
// The bottom pipe's top edge sits h pixels above the ground strip, the top
// pipe's bottom edge exactly one gap higher, and the 1-pixel-wide gate
// fills the opening on the pipes' vertical centre line.
func (s *Spawner) PairFor(h int) (bottom, top Pipe, gate ScoreGate) {
	border := s.screenH - s.floorH - h
	midX := s.screenW + s.offset

	bottom = Pipe{
		Kind:  PipeBottom,
		Rect:  core.RectFromMidTop(midX, border, s.pipeW, s.pipeLen),
		Speed: s.speed,
	}
	top = Pipe{
		Kind:  PipeTop,
		Rect:  core.RectFromMidBottom(midX, border-s.gap, s.pipeW, s.pipeLen),
		Speed: s.speed,
	}
	gate = ScoreGate{
		Rect:  core.RectFromMidBottom(bottom.Rect.MidX(), border, 1, s.gap),
		Speed: s.speed,
	}
	return bottom, top, gate
}
