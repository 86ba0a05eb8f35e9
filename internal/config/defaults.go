package config

import (
	_ "embed"
)

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

// DefaultPongConfig returns the default configuration.
// Kept in sync with defaults/pong.yaml; used if the embedded file is unreadable.
func DefaultPongConfig() PongConfig {
	return PongConfig{
		Ball: BallConfig{
			Size:        16,
			StartX:      10,
			StartY:      100,
			MaxVelocity: 4,
			Color:       "blueviolet",
		},
		Paddle: PaddleConfig{
			Width:  8,
			Height: 96,
			Speed:  4,
			Color:  "#49311c",
		},
		Court: CourtConfig{
			Background: "#c8c800",
			FPS:        60,
		},
		Score: ScoreConfig{
			OffsetX: 40,
			Y:       0,
			Size:    16,
			Color:   "black",
		},
		Surface: SurfaceConfig{
			CellWidth:  8,
			CellHeight: 16,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultPongYAML
}
