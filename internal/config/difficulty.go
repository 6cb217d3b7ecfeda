package config

import "math"

// DifficultyManager calculates the CPU skill from match progress.
type DifficultyManager struct {
	cfg          DifficultyConfig
	cpu          PongCPU
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig, cpu PongCPU) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		cpu:          cpu,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) based on points/ticks.
func (d *DifficultyManager) Level(points int, ticks uint64) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	var progress float64
	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(points) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Skill returns the CPU's per-tick reaction probability.
func (d *DifficultyManager) Skill(points int, ticks uint64) float64 {
	level := d.Level(points, ticks)
	return d.cpu.MinSkill + level*(d.cpu.MaxSkill-d.cpu.MinSkill)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
