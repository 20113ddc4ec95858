package flappy

import (
	"math"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Avatar is the player-controlled bird.
// Its horizontal position never changes; the world scrolls past it.
type Avatar struct {
	x       int     // Left edge (fixed)
	y       float64 // Top edge, sub-pixel
	w, h    int
	originX int // Centre at round start
	originY int

	velocity     float64 // Vertical velocity, positive = down
	gravity      float64
	jumpVelocity float64
	floorY       int

	frame     float64 // Animation frame index, fractional
	frameDir  float64 // +1 or -1 (ping-pong)
	frameStep float64
	frames    int
}

// NewAvatar creates an avatar at its default origin.
func NewAvatar(cfg config.FlappyConfig) *Avatar {
	a := &Avatar{
		w:            cfg.Avatar.Width,
		h:            cfg.Avatar.Height,
		originX:      cfg.Avatar.OriginX,
		originY:      cfg.Avatar.OriginY,
		gravity:      cfg.Physics.Gravity,
		jumpVelocity: cfg.Physics.JumpVelocity,
		floorY:       cfg.Floor.OriginY,
		frameStep:    cfg.Avatar.FrameStep,
		frames:       cfg.Avatar.Frames,
	}
	a.Reset()
	return a
}

// Reset restores the default centre position, zero velocity and frame 0.
func (a *Avatar) Reset() {
	r := core.RectFromCenter(a.originX, a.originY, a.w, a.h)
	a.x = r.X
	a.y = float64(r.Y)
	a.velocity = 0
	a.frame = 0
	a.frameDir = 1
}

// Rect returns the avatar's bounding box in world pixels.
func (a *Avatar) Rect() core.Rect {
	return core.NewRect(a.x, int(math.Floor(a.y)), a.w, a.h)
}

// Bounds implements Collider.
func (a *Avatar) Bounds() core.Rect {
	return a.Rect()
}

// Velocity returns the current vertical velocity.
func (a *Avatar) Velocity() float64 {
	return a.velocity
}

// Frame returns the current animation frame in [0, frames).
func (a *Avatar) Frame() int {
	return core.Clamp(int(a.frame), 0, a.frames-1)
}

// Airborne reports whether the bottom edge is still above the ground line.
func (a *Avatar) Airborne() bool {
	return a.Rect().Bottom() < a.floorY
}

// Jump sets the vertical velocity to the jump constant, cancelling any
// current rise or fall. It is accepted in every position, grounded included.
func (a *Avatar) Jump() {
	a.velocity = a.jumpVelocity
}

// ApplyGravity adds one tick of gravity to the velocity and, while airborne,
// moves the avatar by it. There is no terminal velocity.
func (a *Avatar) ApplyGravity() {
	a.velocity += a.gravity
	if a.Airborne() {
		a.y += a.velocity
	}
}

// Animate advances the ping-pong wing animation while airborne.
// On leaving the frame range the direction flips and the index steps back
// a whole frame.
func (a *Avatar) Animate() {
	if !a.Airborne() {
		return
	}
	a.frame += a.frameDir * a.frameStep
	if a.frame < 0 || a.frame >= float64(a.frames) {
		a.frameDir = -a.frameDir
		a.frame += a.frameDir
	}
}

// Update is the per-tick avatar step used while playing and after a crash.
func (a *Avatar) Update() {
	a.ApplyGravity()
	a.Animate()
}
