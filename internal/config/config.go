// Package config provides YAML-based game configuration loading and
// validation for the flappy simulation.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalid is returned (wrapped) when a configuration cannot produce a
// playable board.
var ErrInvalid = errors.New("invalid config")

// FlappyConfig contains all tunables of the simulation.
// Distances are world pixels, speeds are pixels per tick.
type FlappyConfig struct {
	Screen  ScreenConfig  `yaml:"screen"`
	Floor   FloorConfig   `yaml:"floor"`
	Pipes   PipesConfig   `yaml:"pipes"`
	Physics PhysicsConfig `yaml:"physics"`
	Avatar  AvatarConfig  `yaml:"avatar"`
}

// ScreenConfig is the logical world size.
type ScreenConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// FloorConfig describes the scrolling ground strip.
type FloorConfig struct {
	OriginY   int `yaml:"origin_y"` // Top edge of the ground; the avatar dies at or below it
	Height    int `yaml:"height"`
	TileWidth int `yaml:"tile_width"`
}

// PipesConfig describes obstacle geometry and cadence.
type PipesConfig struct {
	Gap             int `yaml:"gap"`        // Vertical opening between top and bottom pipe
	MinHeight       int `yaml:"min_height"` // Minimum visible bottom pipe height
	Width           int `yaml:"width"`
	Length          int `yaml:"length"`            // Sprite height of one pipe
	SpawnOffset     int `yaml:"spawn_offset"`      // Pipe centre spawns this far past the right edge
	SpawnIntervalMS int `yaml:"spawn_interval_ms"` // Period of the spawn timer
}

// PhysicsConfig defines the discrete-time motion constants.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`       // Added to vertical velocity every tick
	JumpVelocity float64 `yaml:"jump_velocity"` // Velocity set by a jump (negative = up)
	BoardSpeed   int     `yaml:"board_speed"`   // Leftward scroll of pipes, gates and ground
}

// AvatarConfig defines the bird hitbox, start position and animation.
type AvatarConfig struct {
	Width     int     `yaml:"width"`
	Height    int     `yaml:"height"`
	OriginX   int     `yaml:"origin_x"` // Centre x at the start of a round
	OriginY   int     `yaml:"origin_y"` // Centre y at the start of a round
	Frames    int     `yaml:"frames"`
	FrameStep float64 `yaml:"frame_step"` // Animation frames advanced per tick
}

// MaxPipeHeight is the tallest bottom pipe that still leaves room for the
// gap and a minimum-height top pipe above the floor.
func (c FlappyConfig) MaxPipeHeight() int {
	return c.Screen.Height - c.Floor.Height - c.Pipes.Gap - c.Pipes.MinHeight
}

// SpawnInterval returns the spawn timer period.
func (c FlappyConfig) SpawnInterval() time.Duration {
	return time.Duration(c.Pipes.SpawnIntervalMS) * time.Millisecond
}

// Validate reports the first problem that would make the board unplayable.
func (c FlappyConfig) Validate() error {
	switch {
	case c.Screen.Width <= 0 || c.Screen.Height <= 0:
		return fmt.Errorf("%w: screen must be positive, got %dx%d", ErrInvalid, c.Screen.Width, c.Screen.Height)
	case c.Floor.Height <= 0 || c.Floor.TileWidth <= 0:
		return fmt.Errorf("%w: floor height and tile width must be positive", ErrInvalid)
	case c.Floor.OriginY <= 0 || c.Floor.OriginY > c.Screen.Height:
		return fmt.Errorf("%w: floor origin_y %d outside screen", ErrInvalid, c.Floor.OriginY)
	case c.Pipes.Gap <= 0 || c.Pipes.Width <= 0 || c.Pipes.Length <= 0:
		return fmt.Errorf("%w: pipe gap, width and length must be positive", ErrInvalid)
	case c.Pipes.MinHeight < 0:
		return fmt.Errorf("%w: pipe min_height must not be negative", ErrInvalid)
	case c.MaxPipeHeight() < c.Pipes.MinHeight:
		return fmt.Errorf("%w: max pipe height %d below min_height %d", ErrInvalid, c.MaxPipeHeight(), c.Pipes.MinHeight)
	case c.Pipes.SpawnIntervalMS <= 0:
		return fmt.Errorf("%w: spawn_interval_ms must be positive", ErrInvalid)
	case c.Physics.BoardSpeed <= 0:
		return fmt.Errorf("%w: board_speed must be positive", ErrInvalid)
	case c.Avatar.Width <= 0 || c.Avatar.Height <= 0:
		return fmt.Errorf("%w: avatar size must be positive", ErrInvalid)
	case c.Avatar.Frames <= 0:
		return fmt.Errorf("%w: avatar needs at least one frame", ErrInvalid)
	}
	return nil
}
