// Package config provides YAML-based game configuration loading and
// difficulty presets for the pong toy.
package config

import (
	"fmt"
	"image/color"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// PongConfig contains all configuration for the game.
type PongConfig struct {
	Ball    BallConfig    `yaml:"ball"`
	Paddle  PaddleConfig  `yaml:"paddle"`
	Court   CourtConfig   `yaml:"court"`
	Score   ScoreConfig   `yaml:"score"`
	Surface SurfaceConfig `yaml:"surface"`
}

// BallConfig defines the ball sprite and its serve.
type BallConfig struct {
	Size        float64 `yaml:"size"`
	StartX      float64 `yaml:"start_x"`
	StartY      float64 `yaml:"start_y"`
	MaxVelocity float64 `yaml:"max_velocity"` // Serve velocity is uniform in [-max, +max] per axis
	Color       string  `yaml:"color"`
}

// PaddleConfig defines the player's paddle.
type PaddleConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"` // Vertical units per frame when steering
	Color  string  `yaml:"color"`
}

// CourtConfig defines the play surface.
type CourtConfig struct {
	Background string `yaml:"background"`
	FPS        int    `yaml:"fps"`
}

// ScoreConfig defines where and how the score is drawn.
type ScoreConfig struct {
	OffsetX float64 `yaml:"offset_x"` // Text starts at surface_width/2 - offset_x
	Y       float64 `yaml:"y"`
	Size    float64 `yaml:"size"`
	Color   string  `yaml:"color"`
}

// SurfaceConfig defines how logical units map onto terminal cells.
type SurfaceConfig struct {
	CellWidth  float64 `yaml:"cell_width"`
	CellHeight float64 `yaml:"cell_height"`
}

// Cells returns the cell metrics for terminal backends.
func (s SurfaceConfig) Cells() core.CellMetrics {
	return core.CellMetrics{W: s.CellWidth, H: s.CellHeight}
}

// Palette holds the resolved colors of a config.
type Palette struct {
	Ball       color.RGBA
	Paddle     color.RGBA
	Background color.RGBA
	Text       color.RGBA
}

// Palette resolves all configured color names.
func (c PongConfig) Palette() (Palette, error) {
	var p Palette
	var err error
	if p.Ball, err = core.ParseColor(c.Ball.Color); err != nil {
		return p, fmt.Errorf("config: ball color: %w", err)
	}
	if p.Paddle, err = core.ParseColor(c.Paddle.Color); err != nil {
		return p, fmt.Errorf("config: paddle color: %w", err)
	}
	if p.Background, err = core.ParseColor(c.Court.Background); err != nil {
		return p, fmt.Errorf("config: court background: %w", err)
	}
	if p.Text, err = core.ParseColor(c.Score.Color); err != nil {
		return p, fmt.Errorf("config: score color: %w", err)
	}
	return p, nil
}

// Validate checks that sizes and rates are usable.
func (c PongConfig) Validate() error {
	if c.Ball.Size <= 0 {
		return fmt.Errorf("config: ball.size must be positive, got %v", c.Ball.Size)
	}
	if c.Paddle.Width <= 0 || c.Paddle.Height <= 0 {
		return fmt.Errorf("config: paddle size must be positive, got %vx%v", c.Paddle.Width, c.Paddle.Height)
	}
	if c.Ball.MaxVelocity < 0 {
		return fmt.Errorf("config: ball.max_velocity must not be negative, got %v", c.Ball.MaxVelocity)
	}
	if c.Paddle.Speed < 0 {
		return fmt.Errorf("config: paddle.speed must not be negative, got %v", c.Paddle.Speed)
	}
	if c.Court.FPS < 0 {
		return fmt.Errorf("config: court.fps must not be negative, got %d", c.Court.FPS)
	}
	if _, err := c.Palette(); err != nil {
		return err
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// SpeedFactorForPreset returns the multiplier applied to ball and paddle speed.
func SpeedFactorForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.6
	case DifficultyHard:
		return 1.5
	default:
		return 1.0
	}
}

// ParsePreset validates a preset name. Empty means fixed.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyFixed:
		return DifficultyFixed, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}
