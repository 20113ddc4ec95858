// Package replay records the input of a session and re-simulates it.
//
// The simulation is deterministic for a given seed, configuration and event
// log, so a recording is only the seed, the configuration and the events
// drained on each tick (timer events included). Playing a recording back
// does not need a clock: every tick just applies the same batch again.
package replay

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/assets"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// Recorder collects the event log of one machine.
type Recorder struct {
	seed     int64
	tickRate int
	config   string
	events   []storage.TickEvent
}

// NewRecorder prepares a recording for m driven at tickRate.
func NewRecorder(m *flappy.Machine, tickRate int) (*Recorder, error) {
	data, err := config.Marshal(m.Config())
	if err != nil {
		return nil, fmt.Errorf("replay: %w", err)
	}
	return &Recorder{
		seed:     m.Seed(),
		tickRate: tickRate,
		config:   string(data),
	}, nil
}

// Record appends one tick's events. It matches flappy.RecordFunc.
func (r *Recorder) Record(tick int, events []core.Event) {
	for _, ev := range events {
		r.events = append(r.events, storage.TickEvent{Tick: tick, Event: ev})
	}
}

// Len returns the number of recorded events.
func (r *Recorder) Len() int {
	return len(r.events)
}

// Run snapshots the recording together with the machine's final outcome.
func (r *Recorder) Run(m *flappy.Machine) storage.Run {
	events := make([]storage.TickEvent, len(r.events))
	copy(events, r.events)
	return storage.Run{
		Seed:     r.seed,
		TickRate: r.tickRate,
		Ticks:    m.Ticks(),
		Score:    m.Score(),
		Mode:     m.Mode().String(),
		Config:   r.config,
		Events:   events,
	}
}

// Result is the outcome of re-simulating a run.
type Result struct {
	Ticks int
	Score int
	Mode  flappy.Mode
	Match bool // Ticks, score and mode equal the recorded outcome
}

// Play re-simulates run and compares the outcome with what was recorded.
// A nil logger discards the machine's debug output.
func Play(run *storage.Run, atlas *assets.Atlas, logger *log.Logger) (Result, error) {
	cfg := config.DefaultFlappyConfig()
	if run.Config != "" {
		var err error
		cfg, err = config.Parse([]byte(run.Config))
		if err != nil {
			return Result{}, fmt.Errorf("replay: run %d: %w", run.ID, err)
		}
	}

	m := flappy.NewMachine(cfg, atlas, flappy.WithSeed(run.Seed), flappy.WithLogger(logger))

	events := run.Events
	i := 0
	var batch []core.Event
	for m.Ticks() < run.Ticks && !m.Quit() {
		tick := m.Ticks()
		for i < len(events) && events[i].Tick < tick {
			i++ // out-of-order entries cannot be applied
		}
		batch = batch[:0]
		for i < len(events) && events[i].Tick == tick {
			batch = append(batch, events[i].Event)
			i++
		}
		m.Tick(batch)
	}
	// A quit recorded on the final tick still belongs to the run.
	for ; i < len(events) && !m.Quit(); i++ {
		if events[i].Tick == m.Ticks() {
			m.Handle(events[i].Event)
		}
	}

	res := Result{
		Ticks: m.Ticks(),
		Score: m.Score(),
		Mode:  m.Mode(),
	}
	res.Match = res.Ticks == run.Ticks && res.Score == run.Score && res.Mode.String() == run.Mode
	return res, nil
}
