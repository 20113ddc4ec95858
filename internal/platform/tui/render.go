package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flappy/internal/assets"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorBlack:         lipgloss.NewStyle().Foreground(lipgloss.Color("0")),
}

// styleFor returns the style of a cell.
func styleFor(c core.Cell) lipgloss.Style {
	style, ok := colorStyles[c.Color]
	if !ok {
		style = colorStyles[core.ColorDefault]
	}
	if c.Bold {
		style = style.Bold(true)
	}
	return style
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same style to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			first := s.GetCell(x, y)

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != first.Color || cell.Bold != first.Bold {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(first).Render(run.String()))
		}
	}
	return sb.String()
}

// Renderer rasterises frames into a character screen.
// Each sprite becomes a block of its atlas glyph covering the cells its
// world rectangle touches.
type Renderer struct {
	atlas  *assets.Atlas
	screen *core.Screen
	view   Viewport
	worldW int
	worldH int
}

// NewRenderer creates a renderer for a world of the given size shown in
// cols x rows terminal cells.
func NewRenderer(atlas *assets.Atlas, worldW, worldH, cols, rows int) *Renderer {
	return &Renderer{
		atlas:  atlas,
		screen: core.NewScreen(cols, rows),
		view:   NewViewport(worldW, worldH, cols, rows),
		worldW: worldW,
		worldH: worldH,
	}
}

// Resize adapts the screen and viewport to a new terminal size.
func (r *Renderer) Resize(cols, rows int) {
	r.screen.Resize(cols, rows)
	r.view = NewViewport(r.worldW, r.worldH, cols, rows)
}

// Viewport returns the current world-to-terminal mapping.
func (r *Renderer) Viewport() Viewport {
	return r.view
}

// Screen returns the most recently drawn screen.
func (r *Renderer) Screen() *core.Screen {
	return r.screen
}

// Draw rasterises f back to front and prints the score over it.
func (r *Renderer) Draw(f flappy.Frame) *core.Screen {
	r.screen.Clear()
	if r.view.Empty() {
		return r.screen
	}

	for _, s := range f.Sprites {
		sp, ok := r.atlas.Lookup(s.ID)
		if !ok {
			continue
		}
		cells := r.view.ToCells(s.Dst)
		if cells.W == 0 {
			continue
		}
		r.screen.DrawRect(cells, sp.Glyph, sp.Color)
	}

	if f.ScoreHint.Visible {
		cx, cy := r.view.PointToCell(f.ScoreHint.X, f.ScoreHint.Y)
		text := strconv.Itoa(f.Score)
		// Shadow first, then the score over it.
		r.screen.DrawTextCentered(cx+1, cy+1, text, core.ColorBlack, true)
		r.screen.DrawTextCentered(cx, cy, text, core.ColorBrightWhite, true)
	}

	return r.screen
}
