package config

import (
	_ "embed"
)

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

// DefaultPongConfig returns the default Pong configuration.
// Kept in sync with defaults/pong.yaml; used when the embedded file is unreadable.
func DefaultPongConfig() PongConfig {
	return PongConfig{
		Viewport: PongViewport{
			Width:  800,
			Height: 600,
		},
		Physics: PongPhysics{
			PaddleSpeed:       25,
			ServeSpeed:        17,
			DeflectionFlatten: 5.0,
		},
		Paddles: PongPaddles{
			Width:  20,
			Height: 150,
			Inset:  100,
		},
		Ball: PongBall{
			Width:  16,
			Height: 16,
		},
		CPU: PongCPU{
			MinSkill:   0.55,
			MaxSkill:   0.9,
			ServeDelay: 45,
			AimSpread:  75,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 36000, // 10 minutes at 60fps
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultPongYAML
}
