package pong

import (
	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
)

// Result describes one completed tick.
type Result struct {
	Tick   uint64
	Phase  Phase
	Scores Scores
	Events Event
}

// Driver advances the simulation one fixed tick at a time. It owns the
// match state and both entities for the lifetime of the match.
type Driver struct {
	cfg     config.PongConfig
	state   MatchState
	paddles [2]*Paddle
	ball    *Ball
	tick    uint64
}

// NewDriver creates a driver for cfg and resets it to the opening position.
func NewDriver(cfg config.PongConfig) *Driver {
	paddleSize := core.Size{W: cfg.Paddles.Width, H: cfg.Paddles.Height}

	d := &Driver{
		cfg: cfg,
		paddles: [2]*Paddle{
			NewPaddle(paddleSize, core.ControlsFor(core.Player1), cfg.Physics.PaddleSpeed),
			NewPaddle(paddleSize, core.ControlsFor(core.Player2), cfg.Physics.PaddleSpeed),
		},
		ball: NewBall(
			core.Size{W: cfg.Ball.Width, H: cfg.Ball.Height},
			cfg.Physics.ServeSpeed,
			cfg.Physics.DeflectionFlatten,
		),
	}
	d.Reset()
	return d
}

// Reset centers the paddles at their insets and the ball in the viewport,
// zeroes the scores and waits for a serve.
func (d *Driver) Reset() {
	vp := core.Size{W: d.cfg.Viewport.Width, H: d.cfg.Viewport.Height}
	mid := vp.Center()

	d.state = MatchState{
		Viewport:    vp,
		PaddleRects: make([]core.Rect, 0, len(d.paddles)),
	}
	d.tick = 0

	d.paddles[0].SetCenter(d.cfg.Paddles.Inset, mid.Y)
	d.paddles[1].SetCenter(vp.W-d.cfg.Paddles.Inset, mid.Y)

	d.ball.SetVelocity(0, 0)
	d.ball.SetCenter(mid.X, mid.Y)
}

// Tick runs one simulation step with the inputs held during it.
func (d *Driver) Tick(in core.InputSet) Result {
	d.tick++
	d.state.Pressed = in.Clone()

	if !d.cfg.Collision.RectsAfterMove {
		d.collectRects()
	}

	var ev Event
	if !d.state.Playing {
		// Hold the ball at center every tick until someone serves
		mid := d.state.Viewport.Center()
		d.ball.SetVelocity(0, 0)
		d.ball.SetCenter(mid.X, mid.Y)

		if in.Has(core.InputServe) {
			d.ball.StartServe()
			d.state.Playing = true
			ev |= EventServe
		}
	}

	for _, p := range d.paddles {
		p.Update(&d.state)
	}

	if d.cfg.Collision.RectsAfterMove {
		d.collectRects()
	}

	ev |= d.ball.Update(&d.state)

	return Result{
		Tick:   d.tick,
		Phase:  d.state.Phase(),
		Scores: d.state.Scores,
		Events: ev,
	}
}

// collectRects refreshes the paddle rectangles used for ball collision.
func (d *Driver) collectRects() {
	d.state.PaddleRects = d.state.PaddleRects[:0]
	for _, p := range d.paddles {
		d.state.PaddleRects = append(d.state.PaddleRects, p.Rect())
	}
}

// Paddle returns the paddle of the given player.
func (d *Driver) Paddle(id core.PlayerID) *Paddle {
	if id == core.Player2 {
		return d.paddles[1]
	}
	return d.paddles[0]
}

// Ball returns the ball.
func (d *Driver) Ball() *Ball {
	return d.ball
}

// Scores returns the current points.
func (d *Driver) Scores() Scores {
	return d.state.Scores
}

// Phase returns whether the ball is live or held for a serve.
func (d *Driver) Phase() Phase {
	return d.state.Phase()
}

// Viewport returns the logical playfield size.
func (d *Driver) Viewport() core.Size {
	return d.state.Viewport
}

// Ticks returns how many ticks have run since the last reset.
func (d *Driver) Ticks() uint64 {
	return d.tick
}
