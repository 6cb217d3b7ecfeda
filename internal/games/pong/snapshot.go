package pong

import "github.com/vovakirdan/tui-pong/internal/core"

// Snapshot is a value copy of the whole simulation. Renderers and storage
// read snapshots so they never observe the state mid-tick.
type Snapshot struct {
	Tick         uint64
	Viewport     core.Size
	Paddle1      core.Rect
	Paddle2      core.Rect
	Ball         core.Rect
	BallVelocity core.Vec2
	Scores       Scores
	Playing      bool
}

// Snapshot returns the current simulation state.
func (d *Driver) Snapshot() Snapshot {
	return Snapshot{
		Tick:         d.tick,
		Viewport:     d.state.Viewport,
		Paddle1:      d.paddles[0].Rect(),
		Paddle2:      d.paddles[1].Rect(),
		Ball:         d.ball.Rect(),
		BallVelocity: d.ball.Velocity(),
		Scores:       d.state.Scores,
		Playing:      d.state.Playing,
	}
}

// Paddle returns the rectangle of the given player's paddle.
func (s Snapshot) Paddle(id core.PlayerID) core.Rect {
	if id == core.Player2 {
		return s.Paddle2
	}
	return s.Paddle1
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (s Snapshot) Hash() uint64 {
	h := s.Tick
	for _, v := range []int{
		s.Paddle1.X, s.Paddle1.Y,
		s.Paddle2.X, s.Paddle2.Y,
		s.Ball.X, s.Ball.Y,
		s.BallVelocity.X, s.BallVelocity.Y,
		int(s.Scores.P1), int(s.Scores.P2),
	} {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	if s.Playing {
		h = h*31 + 1
	}
	return h
}
