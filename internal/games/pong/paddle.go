package pong

import "github.com/vovakirdan/tui-pong/internal/core"

// Paddle is a vertically moving bat bound to a pair of inputs.
type Paddle struct {
	size     core.Size
	position core.Vec2
	controls core.Controls
	speed    int
}

// NewPaddle creates a paddle at the origin.
func NewPaddle(size core.Size, controls core.Controls, speed int) *Paddle {
	return &Paddle{
		size:     size,
		controls: controls,
		speed:    speed,
	}
}

// SetPosition places the top-left corner without clamping.
func (p *Paddle) SetPosition(x, y int) {
	p.position = core.Vec2{X: x, Y: y}
}

// SetCenter places the paddle so its center is at (cx, cy).
func (p *Paddle) SetCenter(cx, cy int) {
	p.position = core.Vec2{X: cx - p.size.W/2, Y: cy - p.size.H/2}
}

// MoveBy displaces the paddle.
func (p *Paddle) MoveBy(dx, dy int) {
	p.position = p.position.Add(core.Vec2{X: dx, Y: dy})
}

// Position returns the top-left corner.
func (p *Paddle) Position() core.Vec2 {
	return p.position
}

// Size returns the paddle dimensions.
func (p *Paddle) Size() core.Size {
	return p.size
}

// Controls returns the inputs bound to this paddle.
func (p *Paddle) Controls() core.Controls {
	return p.controls
}

// Rect returns the paddle's bounding box.
func (p *Paddle) Rect() core.Rect {
	return core.RectAt(p.position, p.size)
}

// Update moves the paddle one step for each held input, stopping flush
// against the top and bottom walls.
// Up is evaluated before down; holding both applies both rules in that order.
func (p *Paddle) Update(state *MatchState) {
	if state.Pressed.Has(p.controls.Up) {
		if p.position.Y-p.speed > 0 {
			p.MoveBy(0, -p.speed)
		} else {
			p.SetPosition(p.position.X, 0)
		}
	}

	if state.Pressed.Has(p.controls.Down) {
		floor := state.Viewport.H - p.size.H
		if p.position.Y+p.speed < floor {
			p.MoveBy(0, p.speed)
		} else {
			p.SetPosition(p.position.X, floor)
		}
	}
}
