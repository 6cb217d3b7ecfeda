package pong

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-pong/internal/core"
)

func newTestPaddle() *Paddle {
	return NewPaddle(core.Size{W: 20, H: 150}, core.ControlsFor(core.Player1), 25)
}

func pressed(inputs ...core.Input) *MatchState {
	return &MatchState{
		Viewport: core.Size{W: 800, H: 600},
		Pressed:  core.NewInputSet(inputs...),
	}
}

func TestPaddleMovesUpThenClampsAtTop(t *testing.T) {
	p := newTestPaddle()
	p.SetPosition(0, 225)

	p.Update(pressed(core.InputP1Up))
	assert.Equal(t, core.Vec2{X: 0, Y: 200}, p.Position(), "moves by -25")

	p.SetPosition(0, 10)
	p.Update(pressed(core.InputP1Up))
	assert.Equal(t, core.Vec2{X: 0, Y: 0}, p.Position(), "clamps to the top wall")

	p.Update(pressed(core.InputP1Up))
	assert.Equal(t, core.Vec2{X: 0, Y: 0}, p.Position(), "never goes negative")
}

func TestPaddleMovesDownThenClampsAtBottom(t *testing.T) {
	p := newTestPaddle()
	p.SetPosition(0, 400)

	p.Update(pressed(core.InputP1Down))
	assert.Equal(t, 425, p.Position().Y)

	p.Update(pressed(core.InputP1Down))
	assert.Equal(t, 450, p.Position().Y, "bottom edge rests on the viewport floor")
	assert.Equal(t, 600, p.Rect().Bottom())
}

func TestPaddleIgnoresOtherPlayersInputs(t *testing.T) {
	p := newTestPaddle()
	p.SetPosition(0, 225)

	p.Update(pressed(core.InputP2Up, core.InputP2Down, core.InputServe))
	assert.Equal(t, 225, p.Position().Y)
}

func TestPaddleUpAndDownPrecedence(t *testing.T) {
	p := newTestPaddle()
	p.SetPosition(0, 200)

	// Up is applied first, then down: the steps cancel out
	p.Update(pressed(core.InputP1Up, core.InputP1Down))
	assert.Equal(t, 200, p.Position().Y)

	// Against the top wall: up clamps to 0, then down moves one step
	p.SetPosition(0, 10)
	p.Update(pressed(core.InputP1Up, core.InputP1Down))
	assert.Equal(t, 25, p.Position().Y)
}

func TestPaddleStaysInsideViewport(t *testing.T) {
	combos := [][]core.Input{
		nil,
		{core.InputP1Up},
		{core.InputP1Down},
		{core.InputP1Up, core.InputP1Down},
	}

	for _, height := range []int{300, 600, 601} {
		for y := 0; y <= height-150; y++ {
			for _, combo := range combos {
				p := newTestPaddle()
				p.SetPosition(0, y)
				state := pressed(combo...)
				state.Viewport.H = height

				p.Update(state)

				r := p.Rect()
				if r.Y < 0 || r.Y > r.Bottom() || r.Bottom() > height {
					t.Fatalf("H=%d start=%d inputs=%v: paddle out of bounds %+v", height, y, combo, r)
				}
			}
		}
	}
}

func TestPaddleCenterAndMove(t *testing.T) {
	p := newTestPaddle()
	p.SetCenter(100, 300)
	assert.Equal(t, core.Vec2{X: 90, Y: 225}, p.Position())
	assert.Equal(t, core.Vec2{X: 100, Y: 300}, p.Rect().Center())

	p.MoveBy(5, -5)
	assert.Equal(t, core.NewRect(95, 220, 20, 150), p.Rect())
	assert.Equal(t, core.Size{W: 20, H: 150}, p.Size())
	assert.Equal(t, core.ControlsFor(core.Player1), p.Controls())
}

func ExamplePaddle_Update() {
	p := NewPaddle(core.Size{W: 20, H: 150}, core.ControlsFor(core.Player1), 25)
	p.SetPosition(0, 225)

	state := &MatchState{
		Viewport: core.Size{W: 800, H: 600},
		Pressed:  core.NewInputSet(core.InputP1Up),
	}
	p.Update(state)
	fmt.Println(p.Position())
	// Output: {0 200}
}
