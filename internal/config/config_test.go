package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parsePong(DefaultYAML())
	require.NoError(t, err)
	assert.Equal(t, DefaultPongConfig(), cfg)
}

func TestLoadPongCustomPathOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fast.yaml")
	data := []byte("physics:\n  serve_speed: 30\ncollision:\n  rects_after_move: true\n")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	cfg, err := LoadPong(path)
	require.NoError(t, err)

	assert.Equal(t, 30, cfg.Physics.ServeSpeed)
	assert.True(t, cfg.Collision.RectsAfterMove)
	assert.Equal(t, 25, cfg.Physics.PaddleSpeed, "unspecified keys keep defaults")
	assert.Equal(t, 800, cfg.Viewport.Width)
}

func TestLoadPongCustomPathErrors(t *testing.T) {
	_, err := LoadPong(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("viewport:\n  width: -1\n"), 0o600))
	_, err = LoadPong(bad)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	garbage := filepath.Join(t.TempDir(), "garbage.yaml")
	require.NoError(t, os.WriteFile(garbage, []byte("viewport: [1, 2"), 0o600))
	_, err = LoadPong(garbage)
	assert.Error(t, err)
}

func TestLoadPongSearchOrder(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.yaml")
	second := filepath.Join(dir, "second.yaml")
	require.NoError(t, os.WriteFile(first, []byte("paddles:\n  height: 100\n"), 0o600))
	require.NoError(t, os.WriteFile(second, []byte("paddles:\n  height: 120\n"), 0o600))

	cfg, err := loadPong("", []string{filepath.Join(dir, "absent.yaml"), first, second})
	require.NoError(t, err)
	assert.Equal(t, 100, cfg.Paddles.Height, "first existing file wins")

	cfg, err = loadPong("", nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultPongConfig(), cfg, "falls back to embedded defaults")
}

func TestLoadPongSearchReportsBrokenFiles(t *testing.T) {
	dir := t.TempDir()
	valid := filepath.Join(dir, "valid.yaml")
	require.NoError(t, os.WriteFile(valid, []byte("paddles:\n  height: 100\n"), 0o600))

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("paddles:\n  height: 9000\n"), 0o600))
	_, err := loadPong("", []string{invalid, valid})
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.ErrorContains(t, err, invalid)

	garbage := filepath.Join(dir, "garbage.yaml")
	require.NoError(t, os.WriteFile(garbage, []byte("physics: [1, 2"), 0o600))
	_, err = loadPong("", []string{garbage, valid})
	assert.ErrorContains(t, err, garbage)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*PongConfig)
	}{
		{"zero viewport", func(c *PongConfig) { c.Viewport.Height = 0 }},
		{"paddle taller than viewport", func(c *PongConfig) { c.Paddles.Height = 601 }},
		{"zero ball", func(c *PongConfig) { c.Ball.Width = 0 }},
		{"zero paddle speed", func(c *PongConfig) { c.Physics.PaddleSpeed = 0 }},
		{"zero serve speed", func(c *PongConfig) { c.Physics.ServeSpeed = 0 }},
		{"zero flatten", func(c *PongConfig) { c.Physics.DeflectionFlatten = 0 }},
		{"inset too wide", func(c *PongConfig) { c.Paddles.Inset = 400 }},
		{"skill out of range", func(c *PongConfig) { c.CPU.MaxSkill = 1.5 }},
		{"skill inverted", func(c *PongConfig) { c.CPU.MinSkill = 0.95 }},
		{"negative aim spread", func(c *PongConfig) { c.CPU.AimSpread = -1 }},
	}

	require.NoError(t, DefaultPongConfig().Validate())

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultPongConfig()
			tc.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestPresets(t *testing.T) {
	p, err := ParsePreset("hard")
	require.NoError(t, err)
	assert.Equal(t, DifficultyHard, p)

	_, err = ParsePreset("nightmare")
	assert.ErrorIs(t, err, ErrInvalidConfig)

	cfg := DefaultPongConfig()
	ApplyPongPreset(&cfg, DifficultyHard)
	assert.True(t, cfg.Difficulty.Enabled)
	assert.InDelta(t, 0.7, cfg.Difficulty.InitialLevel, 1e-9)

	ApplyPongPreset(&cfg, DifficultyFixed)
	assert.False(t, cfg.Difficulty.Enabled)

	before := cfg
	ApplyPongPreset(&cfg, "")
	assert.Equal(t, before, cfg)
}
