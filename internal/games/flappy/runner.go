package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// RecordFunc receives the events applied at each tick, before the tick runs.
type RecordFunc func(tick int, events []core.Event)

// Runner drives a Machine from a clock: it owns the event queue and the
// spawn timer and turns one host tick into one simulation step.
type Runner struct {
	machine *Machine
	queue   *core.EventQueue
	timers  *core.Scheduler
	clock   core.Clock
	record  RecordFunc
	last    Frame
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithClock replaces the default tick clock, e.g. with a MonotonicClock for
// interactive play.
func WithClock(c core.Clock) RunnerOption {
	return func(r *Runner) {
		if c != nil {
			r.clock = c
		}
	}
}

// WithRecorder installs a hook that sees every drained event batch.
func WithRecorder(fn RecordFunc) RunnerOption {
	return func(r *Runner) {
		r.record = fn
	}
}

// NewRunner arms the spawn timer and returns a runner whose default clock
// advances 1/tickRate seconds per Tick.
func NewRunner(m *Machine, tickRate int, opts ...RunnerOption) *Runner {
	r := &Runner{
		machine: m,
		queue:   core.NewEventQueue(),
		timers:  core.NewScheduler(),
		clock:   core.NewTickClock(tickRate),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.timers.Every(SpawnTimer, m.Config().SpawnInterval(), r.clock.Now())
	r.last = m.Frame()
	return r
}

// Push queues an input event for the next tick.
func (r *Runner) Push(ev core.Event) {
	r.queue.Push(ev)
}

// Machine returns the driven machine.
func (r *Runner) Machine() *Machine {
	return r.machine
}

// Last returns the most recent frame.
func (r *Runner) Last() Frame {
	return r.last
}

// Tick advances the clock if it is simulated, converts due timers into
// events, and runs one simulation step with everything queued.
func (r *Runner) Tick() Frame {
	if tc, ok := r.clock.(*core.TickClock); ok {
		tc.Advance()
	}
	r.timers.Poll(r.clock.Now(), r.queue)

	events := r.queue.Drain()
	if r.record != nil && len(events) > 0 {
		r.record(r.machine.Ticks(), events)
	}
	r.last = r.machine.Tick(events)
	return r.last
}
