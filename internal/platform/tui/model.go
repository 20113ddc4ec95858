package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/assets"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// helpRows is the height of the footer below the playfield.
const helpRows = 1

var footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// CuePlayer turns frame cues into sound.
type CuePlayer interface {
	PlayCues(cues []flappy.Cue)
}

// Options configures the game view.
type Options struct {
	TickRate      int
	Width, Height int         // Initial terminal size; zero waits for the first resize
	Sound         CuePlayer   // Optional
	Logger        *log.Logger // Optional; must not write to the terminal
}

// Model is the Bubble Tea model hosting one game session.
// The runner is only touched from Update, so the simulation has a single writer.
type Model struct {
	runner   *flappy.Runner
	renderer *Renderer
	keys     KeyMap
	help     help.Model
	sound    CuePlayer
	logger   *log.Logger
	tickRate int
	quitting bool
}

// NewModel creates the game view around a runner.
func NewModel(runner *flappy.Runner, atlas *assets.Atlas, opts Options) Model {
	if opts.TickRate <= 0 {
		opts.TickRate = 60
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	cfg := runner.Machine().Config()
	h := help.New()
	h.ShowAll = false

	return Model{
		runner:   runner,
		renderer: NewRenderer(atlas, cfg.Screen.Width, cfg.Screen.Height, opts.Width, max(opts.Height-helpRows, 0)),
		keys:     DefaultKeyMap(),
		help:     h,
		sound:    opts.Sound,
		logger:   logger,
		tickRate: opts.TickRate,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.renderer.Resize(msg.Width, max(msg.Height-helpRows, 0))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues key input for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Confirm):
		m.pressActiveControl()
		return m, nil
	}

	if ev, ok := m.keys.KeyEvent(msg); ok {
		m.runner.Push(ev)
	}
	return m, nil
}

// handleMouse converts a left click into a world-space pointer press.
// A click on any cell of the active button presses that button.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	view := m.renderer.Viewport()
	if ctrl, ok := m.runner.Machine().ActiveControl(); ok && view.ToCells(ctrl).Contains(msg.X, msg.Y) {
		m.pressActiveControl()
		return m, nil
	}

	x, y, ok := view.ToWorld(msg.X, msg.Y)
	if !ok {
		return m, nil
	}
	m.runner.Push(core.PointerDownEvent(x, y))
	return m, nil
}

// pressActiveControl clicks the centre of the button shown in the
// current mode, if any.
func (m Model) pressActiveControl() {
	ctrl, ok := m.runner.Machine().ActiveControl()
	if !ok {
		return
	}
	x, y := ctrl.Center()
	m.runner.Push(core.PointerDownEvent(x, y))
}

// handleTick runs one simulation step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	f := m.runner.Tick()

	if m.sound != nil && len(f.Cues) > 0 {
		m.sound.PlayCues(f.Cues)
	}

	if f.Quit {
		m.quitting = true
		m.logger.Info("session ended", "score", f.Score, "mode", f.Mode, "ticks", f.Tick)
		return m, tea.Quit
	}

	return m, tickCmd(m.tickRate)
}

// saveScreenshot saves the current screen to a file.
func (m Model) saveScreenshot() {
	dir, err := screenshotDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	name := fmt.Sprintf("flappy_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.renderer.Screen().String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

func screenshotDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".flappy", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	screen := m.renderer.Draw(m.runner.Last())
	return RenderScreen(screen) + "\n" + footerStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program and blocks until the session ends.
func Run(runner *flappy.Runner, atlas *assets.Atlas, opts Options) error {
	p := tea.NewProgram(
		NewModel(runner, atlas, opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
