package flappy

import (
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

func TestRunnerDeliversSpawnTimer(t *testing.T) {
	m := newTestMachine(t)

	timers := 0
	r := NewRunner(m, 60, WithRecorder(func(_ int, events []core.Event) {
		for _, ev := range events {
			if ev.Kind == core.EventTimerFired && ev.Timer == SpawnTimer {
				timers++
			}
		}
	}))

	// 300 ticks at 60 Hz is just under 5 s: three 1.5 s periods.
	for range 300 {
		r.Tick()
	}
	if timers != 3 {
		t.Errorf("spawn timer fired %d times, want 3", timers)
	}
	if len(m.Pipes()) != 0 {
		t.Errorf("intro spawned %d pipes", len(m.Pipes()))
	}
}

func TestRunnerSpawnsWhilePlaying(t *testing.T) {
	m := newTestMachine(t)
	r := NewRunner(m, 60)

	r.Push(clickStart(m))
	r.Tick()
	r.Push(core.KeyDownEvent(core.KeySpace))
	r.Tick()

	for i := 0; i < 200 && len(m.Pipes()) == 0; i++ {
		if i%20 == 0 {
			r.Push(core.KeyDownEvent(core.KeySpace))
		}
		r.Tick()
	}
	if len(m.Pipes()) != 2 {
		t.Errorf("expected one pipe pair, got %d pipes (mode %v)", len(m.Pipes()), m.Mode())
	}
}

func TestRunnerRecordsInputTicks(t *testing.T) {
	m := newTestMachine(t)
	var ticks []int
	r := NewRunner(m, 60, WithRecorder(func(tick int, _ []core.Event) {
		ticks = append(ticks, tick)
	}))

	r.Tick()
	r.Push(clickStart(m))
	r.Tick()
	r.Tick()

	if len(ticks) != 1 || ticks[0] != 1 {
		t.Errorf("recorded ticks %v, want [1]", ticks)
	}
	if r.Last().Mode != ModeInstructions {
		t.Errorf("Last().Mode = %v", r.Last().Mode)
	}
}

func TestRunnerDeterminism(t *testing.T) {
	script := func(tick int, m *Machine) []core.Event {
		switch {
		case tick == 3:
			return []core.Event{clickStart(m)}
		case tick == 10:
			return []core.Event{core.KeyDownEvent(core.KeySpace)}
		case tick > 10 && tick%22 == 0:
			return []core.Event{core.KeyDownEvent(core.KeyUp)}
		}
		return nil
	}

	play := func() (Frame, []Pipe) {
		m := newTestMachine(t, WithSeed(12345))
		r := NewRunner(m, 60)
		var f Frame
		for tick := range 2000 {
			for _, ev := range script(tick, m) {
				r.Push(ev)
			}
			f = r.Tick()
			if f.Mode == ModeGameOver {
				break
			}
		}
		return f, m.Pipes()
	}

	f1, p1 := play()
	f2, p2 := play()

	if f1.Tick != f2.Tick || f1.Score != f2.Score || f1.Mode != f2.Mode {
		t.Fatalf("runs differ: tick %d/%d score %d/%d mode %v/%v",
			f1.Tick, f2.Tick, f1.Score, f2.Score, f1.Mode, f2.Mode)
	}
	if len(p1) != len(p2) {
		t.Fatalf("pipe counts differ: %d vs %d", len(p1), len(p2))
	}
	for i := range p1 {
		if p1[i] != p2[i] {
			t.Errorf("pipe %d differs: %+v vs %+v", i, p1[i], p2[i])
		}
	}
}
