// Package flappy implements the side-scrolling flap-through-the-pipes game:
// the avatar physics, obstacle spawning, collision rules and the mode
// state machine that ties them together.
//
// The package is pure simulation. It consumes core.Events once per tick and
// produces a Frame describing what to draw; hosts own the real clock,
// input devices and output.
package flappy

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/assets"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// SpawnTimer is the timer that requests a new obstacle pair.
const SpawnTimer core.TimerID = 1

// Mode is the current screen of the game.
type Mode int

const (
	ModeIntro        Mode = iota // Title screen, waiting for the start button
	ModeInstructions             // Get ready, waiting for the first flap
	ModePlaying                  // Physics, spawning and scoring active
	ModeGameOver                 // Round ended, waiting for the restart button
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeIntro:
		return "intro"
	case ModeInstructions:
		return "instructions"
	case ModePlaying:
		return "playing"
	case ModeGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Effect is the action a transition asks the machine to perform.
type Effect int

const (
	EffectNone Effect = iota
	EffectShowInstructions
	EffectStartRound // Enter Playing with an initial jump
	EffectJump
	EffectSpawn
	EffectRestart
	EffectQuit
)

// Controls holds the on-screen buttons pointer presses are tested against.
type Controls struct {
	Start   core.Rect // Intro start button
	Restart core.Rect // Game over ok button
}

// isJumpInput reports whether ev is a flap request.
func isJumpInput(ev core.Event) bool {
	switch ev.Kind {
	case core.EventKeyDown:
		return ev.Key == core.KeySpace || ev.Key == core.KeyUp
	case core.EventPointerDown:
		return true
	}
	return false
}

// NextMode is the pure transition function: given the current mode and one
// event it returns the next mode and the effect to apply. Events with no
// meaning in the current mode yield (mode, EffectNone).
func NextMode(mode Mode, ev core.Event, controls Controls) (Mode, Effect) {
	if ev.Kind == core.EventQuit {
		return mode, EffectQuit
	}

	switch mode {
	case ModeIntro:
		if ev.Kind == core.EventPointerDown && controls.Start.Contains(ev.X, ev.Y) {
			return ModeInstructions, EffectShowInstructions
		}
	case ModeInstructions:
		if isJumpInput(ev) {
			return ModePlaying, EffectStartRound
		}
	case ModePlaying:
		if isJumpInput(ev) {
			return ModePlaying, EffectJump
		}
		if ev.Kind == core.EventTimerFired && ev.Timer == SpawnTimer {
			return ModePlaying, EffectSpawn
		}
	case ModeGameOver:
		if ev.Kind == core.EventPointerDown && controls.Restart.Contains(ev.X, ev.Y) {
			return ModeIntro, EffectRestart
		}
	}
	return mode, EffectNone
}

// Machine owns all simulation state of one session.
// It is not safe for concurrent use.
type Machine struct {
	cfg    config.FlappyConfig
	atlas  *assets.Atlas
	logger *log.Logger
	seed   int64

	mode     Mode
	avatar   *Avatar
	pipes    []Pipe
	gates    []ScoreGate
	ground   *Ground
	spawner  *Spawner
	controls Controls

	score int
	ticks int
	cues  []Cue
	quit  bool
}

// Option configures a Machine.
type Option func(*Machine)

// WithLogger sets the logger used for debug traces. Nil is ignored.
func WithLogger(l *log.Logger) Option {
	return func(m *Machine) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithSeed seeds the obstacle spawner. The generator is seeded once per
// machine and keeps its sequence across restarts.
func WithSeed(seed int64) Option {
	return func(m *Machine) {
		m.seed = seed
	}
}

// NewMachine creates a machine in Intro mode.
func NewMachine(cfg config.FlappyConfig, atlas *assets.Atlas, opts ...Option) *Machine {
	m := &Machine{
		cfg:    cfg,
		atlas:  atlas,
		logger: log.New(io.Discard),
		seed:   1,
		mode:   ModeIntro,
	}
	for _, opt := range opts {
		opt(m)
	}

	m.avatar = NewAvatar(cfg)
	m.ground = NewGround(cfg)
	m.spawner = NewSpawner(cfg, m.seed)
	m.controls = layoutControls(cfg, atlas)
	return m
}

// Mode returns the current mode.
func (m *Machine) Mode() Mode { return m.mode }

// Score returns the number of gates passed this round.
func (m *Machine) Score() int { return m.score }

// Ticks returns the number of simulation steps taken so far.
func (m *Machine) Ticks() int { return m.ticks }

// Seed returns the spawner seed.
func (m *Machine) Seed() int64 { return m.seed }

// Config returns the configuration the machine was built with.
func (m *Machine) Config() config.FlappyConfig { return m.cfg }

// Quit reports whether a quit event has been handled.
func (m *Machine) Quit() bool { return m.quit }

// Avatar returns the player avatar.
func (m *Machine) Avatar() *Avatar { return m.avatar }

// Ground returns the floor tiles.
func (m *Machine) Ground() *Ground { return m.ground }

// Controls returns the on-screen button rectangles.
func (m *Machine) Controls() Controls { return m.controls }

// Pipes returns a copy of the live pipes.
func (m *Machine) Pipes() []Pipe {
	out := make([]Pipe, len(m.pipes))
	copy(out, m.pipes)
	return out
}

// Gates returns a copy of the live, unscored gates.
func (m *Machine) Gates() []ScoreGate {
	out := make([]ScoreGate, len(m.gates))
	copy(out, m.gates)
	return out
}

// ActiveControl returns the button that is clickable in the current mode.
func (m *Machine) ActiveControl() (core.Rect, bool) {
	switch m.mode {
	case ModeIntro:
		return m.controls.Start, true
	case ModeGameOver:
		return m.controls.Restart, true
	}
	return core.Rect{}, false
}

// Handle applies one event.
func (m *Machine) Handle(ev core.Event) {
	next, effect := NextMode(m.mode, ev, m.controls)

	switch effect {
	case EffectNone:
		return
	case EffectQuit:
		m.quit = true
		m.logger.Debug("quit requested", "mode", m.mode, "score", m.score)
		return
	case EffectStartRound, EffectJump:
		m.avatar.Jump()
		m.cues = append(m.cues, CueJump)
	case EffectSpawn:
		m.spawn()
	case EffectRestart:
		m.restart()
	}

	if next != m.mode {
		m.logger.Debug("mode change", "from", m.mode, "to", next, "score", m.score, "tick", m.ticks)
		m.mode = next
	}
}

// Tick handles events in order, then advances the simulation one step.
// Once a quit event is seen the remaining events are dropped and the state
// no longer advances.
func (m *Machine) Tick(events []core.Event) Frame {
	m.cues = nil
	if m.quit {
		return m.Frame()
	}

	for _, ev := range events {
		m.Handle(ev)
		if m.quit {
			return m.Frame()
		}
	}

	switch m.mode {
	case ModeIntro:
		m.advanceGround()
	case ModeInstructions:
		m.avatar.Animate()
		m.advanceGround()
	case ModePlaying:
		m.play()
	case ModeGameOver:
		m.avatar.Update()
	}
	m.ground.Replenish()

	m.ticks++
	return m.Frame()
}

// play is one Playing step.
func (m *Machine) play() {
	m.avatar.Update()

	var retired int
	m.pipes, retired = advanceAll(m.pipes)
	if retired > 0 {
		m.logger.Debug("pipes retired", "count", retired, "live", len(m.pipes))
	}
	m.gates, _ = advanceAll(m.gates)
	m.advanceGround()
	m.ground.Replenish()

	rect := m.avatar.Rect()
	if CheckCollision(rect, &m.gates, true) {
		m.score++
		m.cues = append(m.cues, CueScore)
		m.logger.Debug("scored", "score", m.score, "tick", m.ticks)
	}

	pipeHit := CheckCollision(rect, &m.pipes, false)
	groundHit := HitsGround(rect, m.cfg.Floor.OriginY)
	if pipeHit || groundHit {
		m.cues = append(m.cues, CueHit)
		m.logger.Debug("mode change", "from", m.mode, "to", ModeGameOver,
			"score", m.score, "tick", m.ticks, "pipe", pipeHit, "ground", groundHit)
		m.mode = ModeGameOver
	}
}

func (m *Machine) advanceGround() {
	if retired := m.ground.Advance(); retired > 0 {
		m.logger.Debug("ground tile retired", "count", retired)
	}
}

func (m *Machine) spawn() {
	bottom, top, gate := m.spawner.Generate()
	m.pipes = append(m.pipes, top, bottom)
	m.gates = append(m.gates, gate)
	m.logger.Debug("spawned pipes", "gap_top", top.Rect.Bottom(), "gap_bottom", bottom.Rect.Y, "live", len(m.pipes))
}

func (m *Machine) restart() {
	m.avatar.Reset()
	m.score = 0
	clear(m.pipes)
	m.pipes = m.pipes[:0]
	clear(m.gates)
	m.gates = m.gates[:0]
}
