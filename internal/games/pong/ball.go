package pong

import (
	"math"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// Ball moves freely, reflects off the top and bottom walls and is deflected
// by paddles at a constant speed.
type Ball struct {
	size       core.Size
	position   core.Vec2
	velocity   core.Vec2
	serveSpeed int
	flatten    float64
}

// NewBall creates a stationary ball at the origin.
// flatten divides the hit slope so edge hits stay well short of vertical.
func NewBall(size core.Size, serveSpeed int, flatten float64) *Ball {
	return &Ball{
		size:       size,
		serveSpeed: serveSpeed,
		flatten:    flatten,
	}
}

// SetPosition places the top-left corner.
func (b *Ball) SetPosition(x, y int) {
	b.position = core.Vec2{X: x, Y: y}
}

// SetCenter places the ball so its center is at (cx, cy).
func (b *Ball) SetCenter(cx, cy int) {
	b.position = core.Vec2{X: cx - b.size.W/2, Y: cy - b.size.H/2}
}

// SetVelocity sets the per-tick displacement.
func (b *Ball) SetVelocity(vx, vy int) {
	b.velocity = core.Vec2{X: vx, Y: vy}
}

// StartServe launches the ball horizontally toward player 1.
func (b *Ball) StartServe() {
	b.SetVelocity(-b.serveSpeed, 0)
}

// Position returns the top-left corner.
func (b *Ball) Position() core.Vec2 {
	return b.position
}

// Velocity returns the per-tick displacement.
func (b *Ball) Velocity() core.Vec2 {
	return b.velocity
}

// Size returns the ball dimensions.
func (b *Ball) Size() core.Size {
	return b.size
}

// Rect returns the ball's bounding box.
func (b *Ball) Rect() core.Rect {
	return core.RectAt(b.position, b.size)
}

// Update advances the ball by its current velocity, then resolves paddle
// contact, scoring and wall reflection against the new position.
// A deflection computed this tick only moves the ball from the next tick on.
func (b *Ball) Update(state *MatchState) Event {
	var ev Event
	old := b.velocity
	b.position = b.position.Add(old)

	rect := b.Rect()
	for i, paddle := range state.PaddleRects {
		if core.Overlaps(rect, paddle) {
			b.velocity = b.Deflect(paddle, state.Viewport)
			ev |= paddleHitEvent(i)
			break
		}
	}

	if b.position.X >= state.Viewport.W-b.size.W {
		state.Scores.P1++
		state.Playing = false
		b.velocity.X = -old.X
		ev |= EventPointP1
	}

	if b.position.X <= 0 {
		state.Scores.P2++
		state.Playing = false
		b.velocity.X = -old.X
		ev |= EventPointP2
	}

	if b.position.Y <= 0 || b.position.Y >= state.Viewport.H-b.size.H {
		b.velocity.Y = -old.Y
		ev |= EventWallBounce
	}

	return ev
}

// Deflect returns the velocity after bouncing off paddle. The angle grows
// with the distance between the ball and paddle centers while the speed
// stays at the serve speed.
func (b *Ball) Deflect(paddle core.Rect, viewport core.Size) core.Vec2 {
	bc := b.Rect().Center()
	pc := paddle.Center()

	yDiff := float64(bc.Y - pc.Y)
	xDiff := float64(bc.X - pc.X)
	speed := float64(b.serveSpeed)

	// Centers aligned on x: no slope is defined, send the ball straight
	// back toward the middle of the field.
	if xDiff == 0 {
		if pc.X < viewport.W/2 {
			return core.Vec2{X: b.serveSpeed}
		}
		return core.Vec2{X: -b.serveSpeed}
	}

	slope := math.Abs(yDiff / (xDiff * b.flatten))
	norm := math.Sqrt(slope*slope + 1)

	dy := signum(yDiff) * speed * (slope / norm)
	dx := signum(xDiff) * speed * (1 / norm)

	return core.Vec2{X: int(math.Round(dx)), Y: int(math.Round(dy))}
}

// signum returns -1 for negative values and 1 otherwise, including zero.
func signum(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
