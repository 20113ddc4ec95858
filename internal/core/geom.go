// Package core provides the platform-neutral building blocks shared by the
// simulation and its hosts: integer geometry, a character screen buffer,
// input events, clocks and periodic timers.
// It has no external dependencies (especially no Bubble Tea) so the game
// logic stays pure and testable.
package core

// Rect represents an axis-aligned bounding box in world pixels.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectFromCenter creates a rectangle of size w x h centred on (cx, cy).
// Odd sizes round the top-left corner down, matching sprite anchoring.
func RectFromCenter(cx, cy, w, h int) Rect {
	return Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// RectFromMidBottom anchors a rectangle by the middle of its bottom edge.
func RectFromMidBottom(mx, bottom, w, h int) Rect {
	return Rect{X: mx - w/2, Y: bottom - h, W: w, H: h}
}

// RectFromMidTop anchors a rectangle by the middle of its top edge.
func RectFromMidTop(mx, top, w, h int) Rect {
	return Rect{X: mx - w/2, Y: top, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// MidX returns the x-coordinate of the horizontal centre.
func (r Rect) MidX() int {
	return r.X + r.W/2
}

// Intersects returns true if this rectangle overlaps with another.
// Touching edges do not count as an overlap.
func (r Rect) Intersects(other Rect) bool {
	if r.W <= 0 || r.H <= 0 || other.W <= 0 || other.H <= 0 {
		return false
	}
	// No overlap if one rect is completely to the left, right, above, or below
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
