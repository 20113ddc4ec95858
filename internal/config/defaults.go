package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the built-in configuration: a 144x256 board
// with the classic pipe gap and pixel-per-tick scroll.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Screen: ScreenConfig{
			Width:  144,
			Height: 256,
		},
		Floor: FloorConfig{
			OriginY:   200,
			Height:    56,
			TileWidth: 168,
		},
		Pipes: PipesConfig{
			Gap:             50,
			MinHeight:       30,
			Width:           26,
			Length:          160,
			SpawnOffset:     10,
			SpawnIntervalMS: 1500,
		},
		Physics: PhysicsConfig{
			Gravity:      0.1,
			JumpVelocity: -2,
			BoardSpeed:   1,
		},
		Avatar: AvatarConfig{
			Width:     17,
			Height:    12,
			OriginX:   144 / 4,
			OriginY:   256 / 2,
			Frames:    3,
			FrameStep: 0.2,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
