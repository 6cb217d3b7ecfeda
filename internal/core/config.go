package core

// RuntimeConfig contains configuration passed to the game at initialization.
// Screen dimensions only affect rendering; the simulation runs in its own
// logical viewport.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for CPU controllers
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a match as seen by the platform.
type GameState struct {
	Score1  int  // Left player's points
	Score2  int  // Right player's points
	Playing bool // Whether the ball is live
	Paused  bool // Whether the match is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	Tick  uint64
}
