// Package config provides YAML-based match configuration loading and
// CPU difficulty management for the pong platform.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned (wrapped) when a loaded config cannot drive a match.
var ErrInvalidConfig = errors.New("invalid config")

// PongConfig contains every tunable of a match. It is built once at startup
// and passed down to the simulation, so entity types never carry their own
// copies of speeds or sizes.
type PongConfig struct {
	Viewport   PongViewport     `yaml:"viewport"`
	Physics    PongPhysics      `yaml:"physics"`
	Paddles    PongPaddles      `yaml:"paddles"`
	Ball       PongBall         `yaml:"ball"`
	Collision  PongCollision    `yaml:"collision"`
	CPU        PongCPU          `yaml:"cpu"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PongViewport is the logical playfield in simulation units.
type PongViewport struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PongPhysics defines per-tick speeds.
type PongPhysics struct {
	PaddleSpeed       int     `yaml:"paddle_speed"`       // Units per tick
	ServeSpeed        int     `yaml:"serve_speed"`        // Ball speed, constant across bounces
	DeflectionFlatten float64 `yaml:"deflection_flatten"` // Divides the hit slope
}

// PongPaddles defines paddle geometry.
type PongPaddles struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Inset  int `yaml:"inset"` // Distance from the side wall to the paddle center
}

// PongBall defines ball geometry.
type PongBall struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PongCollision selects when paddle rectangles are sampled for ball collision.
type PongCollision struct {
	// RectsAfterMove samples paddle rectangles after this tick's paddle
	// movement. When false they reflect the previous tick's positions.
	RectsAfterMove bool `yaml:"rects_after_move"`
}

// PongCPU defines the CPU controller.
type PongCPU struct {
	MinSkill   float64 `yaml:"min_skill"`   // Chance to react on a tick at level 0
	MaxSkill   float64 `yaml:"max_skill"`   // Chance to react on a tick at level 1
	ServeDelay int     `yaml:"serve_delay"` // Ticks the CPU waits before serving
	AimSpread  int     `yaml:"aim_spread"`  // Max distance the CPU aims away from the ball centre
}

// DifficultyConfig defines how the CPU skill progresses during a match.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Points/ticks at which max difficulty is reached
}

// Validate checks that the config describes a playable match.
func (c PongConfig) Validate() error {
	switch {
	case c.Viewport.Width <= 0 || c.Viewport.Height <= 0:
		return fmt.Errorf("%w: viewport must be positive, got %dx%d", ErrInvalidConfig, c.Viewport.Width, c.Viewport.Height)
	case c.Paddles.Width <= 0 || c.Paddles.Height <= 0:
		return fmt.Errorf("%w: paddle size must be positive", ErrInvalidConfig)
	case c.Paddles.Height > c.Viewport.Height:
		return fmt.Errorf("%w: paddle height %d exceeds viewport height %d", ErrInvalidConfig, c.Paddles.Height, c.Viewport.Height)
	case c.Ball.Width <= 0 || c.Ball.Height <= 0:
		return fmt.Errorf("%w: ball size must be positive", ErrInvalidConfig)
	case c.Physics.PaddleSpeed <= 0:
		return fmt.Errorf("%w: paddle_speed must be positive", ErrInvalidConfig)
	case c.Physics.ServeSpeed <= 0:
		return fmt.Errorf("%w: serve_speed must be positive", ErrInvalidConfig)
	case c.Physics.DeflectionFlatten <= 0:
		return fmt.Errorf("%w: deflection_flatten must be positive", ErrInvalidConfig)
	case c.Paddles.Inset < 0 || 2*c.Paddles.Inset >= c.Viewport.Width:
		return fmt.Errorf("%w: paddle inset %d does not fit viewport width %d", ErrInvalidConfig, c.Paddles.Inset, c.Viewport.Width)
	case c.CPU.MinSkill < 0 || c.CPU.MaxSkill > 1 || c.CPU.MinSkill > c.CPU.MaxSkill:
		return fmt.Errorf("%w: cpu skill range [%.2f, %.2f] must lie within [0, 1]", ErrInvalidConfig, c.CPU.MinSkill, c.CPU.MaxSkill)
	case c.CPU.AimSpread < 0:
		return fmt.Errorf("%w: cpu aim_spread must not be negative", ErrInvalidConfig)
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

// ParsePreset validates a preset name. An empty name is allowed and means
// "leave the config as loaded".
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("%w: unknown difficulty %q (want easy, normal, hard or fixed)", ErrInvalidConfig, name)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
