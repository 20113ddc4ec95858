package flappy

import (
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

func TestSpawnerHeightsWithinBounds(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	s := NewSpawner(cfg, 7)

	lo, hi := cfg.Pipes.MinHeight, cfg.MaxPipeHeight()
	sawLo, sawHi := false, false
	for i := range 10000 {
		h := s.Height()
		if h < lo || h > hi {
			t.Fatalf("draw %d: height %d outside [%d, %d]", i, h, lo, hi)
		}
		sawLo = sawLo || h == lo
		sawHi = sawHi || h == hi
	}
	if !sawLo || !sawHi {
		t.Errorf("bounds never drawn: min=%v max=%v", sawLo, sawHi)
	}
}

func TestSpawnerGapIsExact(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	s := NewSpawner(cfg, 99)
	groundTop := cfg.Screen.Height - cfg.Floor.Height

	for i := range 10000 {
		bottom, top, gate := s.Generate()

		if bottom.Kind != PipeBottom || top.Kind != PipeTop {
			t.Fatalf("draw %d: kinds %v/%v", i, bottom.Kind, top.Kind)
		}
		if gap := bottom.Rect.Y - top.Rect.Bottom(); gap != cfg.Pipes.Gap {
			t.Fatalf("draw %d: gap %d, want %d", i, gap, cfg.Pipes.Gap)
		}
		h := groundTop - bottom.Rect.Y
		if h < cfg.Pipes.MinHeight || h > cfg.MaxPipeHeight() {
			t.Fatalf("draw %d: bottom pipe height %d out of range", i, h)
		}
		if top.Rect.Bottom() < cfg.Pipes.MinHeight {
			t.Fatalf("draw %d: top pipe only %d tall", i, top.Rect.Bottom())
		}
		if gate.Rect.Y != top.Rect.Bottom() || gate.Rect.Bottom() != bottom.Rect.Y {
			t.Fatalf("draw %d: gate %+v does not fill the gap", i, gate.Rect)
		}
		if gate.Rect.W != 1 || gate.Rect.X != bottom.Rect.MidX() {
			t.Fatalf("draw %d: gate %+v not on the pipe centre line", i, gate.Rect)
		}
		if top.Rect.X != bottom.Rect.X || bottom.Rect.MidX() != cfg.Screen.Width+cfg.Pipes.SpawnOffset {
			t.Fatalf("draw %d: pipes misaligned: %+v %+v", i, top.Rect, bottom.Rect)
		}
	}
}

func TestSpawnerSeededSequences(t *testing.T) {
	cfg := config.DefaultFlappyConfig()

	a := NewSpawner(cfg, 42)
	b := NewSpawner(cfg, 42)
	for i := range 500 {
		if ha, hb := a.Height(), b.Height(); ha != hb {
			t.Fatalf("draw %d: same seed gave %d and %d", i, ha, hb)
		}
	}

	c := NewSpawner(cfg, 42)
	d := NewSpawner(cfg, 43)
	differ := false
	for range 100 {
		if c.Height() != d.Height() {
			differ = true
		}
	}
	if !differ {
		t.Error("different seeds gave identical sequences")
	}
}

func TestPipesScrollAndExpire(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	bottom, top, gate := NewSpawner(cfg, 1).PairFor(cfg.Pipes.MinHeight)

	pipes := []Pipe{top, bottom}
	gates := []ScoreGate{gate}
	startX := top.Rect.X

	ticks := 0
	for len(pipes) > 0 {
		var retired int
		pipes, retired = advanceAll(pipes)
		gates, _ = advanceAll(gates)
		ticks++
		if retired != 0 && retired != 2 {
			t.Fatalf("pipes of a pair retired separately (%d)", retired)
		}
		if ticks > 1000 {
			t.Fatal("pipes never expired")
		}
	}
	if want := startX + cfg.Pipes.Width + 1; ticks != want {
		t.Errorf("pipes expired after %d ticks, want %d", ticks, want)
	}
	if len(gates) != 0 {
		t.Errorf("gate outlived its pipes: %+v", gates)
	}
}
