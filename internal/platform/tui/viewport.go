package tui

import (
	"math"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// cellAspect is the height of a terminal cell relative to its width.
const cellAspect = 2.0

// Viewport maps world pixels onto a grid of terminal cells and back.
// The world keeps its aspect ratio and is centred in the terminal; one cell
// covers scaleX pixels across and scaleY = 2*scaleX pixels down.
type Viewport struct {
	worldW, worldH int
	cols, rows     int // Drawable cells
	offX, offY     int // Margin before the drawable area
	scaleX, scaleY float64
}

// NewViewport fits a worldW x worldH world into termCols x termRows cells.
func NewViewport(worldW, worldH, termCols, termRows int) Viewport {
	v := Viewport{worldW: worldW, worldH: worldH}
	if worldW <= 0 || worldH <= 0 || termCols <= 0 || termRows <= 0 {
		return v
	}

	s := math.Max(float64(worldW)/float64(termCols), float64(worldH)/(cellAspect*float64(termRows)))
	v.scaleX, v.scaleY = s, s*cellAspect
	v.cols = min(int(math.Ceil(float64(worldW)/v.scaleX)), termCols)
	v.rows = min(int(math.Ceil(float64(worldH)/v.scaleY)), termRows)
	v.offX = (termCols - v.cols) / 2
	v.offY = (termRows - v.rows) / 2
	return v
}

// Empty reports whether nothing can be drawn (terminal too small or unknown).
func (v Viewport) Empty() bool {
	return v.cols == 0 || v.rows == 0
}

// Area returns the drawable cells in terminal coordinates.
func (v Viewport) Area() core.Rect {
	return core.NewRect(v.offX, v.offY, v.cols, v.rows)
}

// ToCells returns the cells a world rectangle touches, clipped to the
// drawable area. Any non-empty rectangle covers at least one cell unless it
// lies completely outside the world.
func (v Viewport) ToCells(r core.Rect) core.Rect {
	if v.Empty() || r.W <= 0 || r.H <= 0 {
		return core.Rect{}
	}

	x0 := int(math.Floor(float64(r.X) / v.scaleX))
	x1 := int(math.Floor(float64(r.Right()-1)/v.scaleX)) + 1
	y0 := int(math.Floor(float64(r.Y) / v.scaleY))
	y1 := int(math.Floor(float64(r.Bottom()-1)/v.scaleY)) + 1

	x0, x1 = max(x0, 0), min(x1, v.cols)
	y0, y1 = max(y0, 0), min(y1, v.rows)
	if x1 <= x0 || y1 <= y0 {
		return core.Rect{}
	}
	return core.NewRect(x0+v.offX, y0+v.offY, x1-x0, y1-y0)
}

// PointToCell returns the cell containing a world point.
func (v Viewport) PointToCell(x, y int) (int, int) {
	if v.Empty() {
		return 0, 0
	}
	col := int(math.Floor(float64(x) / v.scaleX))
	row := int(math.Floor(float64(y) / v.scaleY))
	return col + v.offX, row + v.offY
}

// ToWorld maps a cell to the world pixel at its centre.
// ok is false for cells outside the drawable area.
func (v Viewport) ToWorld(col, row int) (x, y int, ok bool) {
	c, r := col-v.offX, row-v.offY
	if v.Empty() || c < 0 || c >= v.cols || r < 0 || r >= v.rows {
		return 0, 0, false
	}
	x = int((float64(c) + 0.5) * v.scaleX)
	y = int((float64(r) + 0.5) * v.scaleY)
	return min(x, v.worldW-1), min(y, v.worldH-1), true
}
