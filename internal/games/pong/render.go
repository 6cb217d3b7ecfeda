package pong

import (
	"fmt"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// Visual characters for rendering
const (
	PaddleChar = '█'
	BallChar   = '●'
	NetChar    = '│'
)

// Net geometry in viewport units: 5x20 dashes, one every 40 units.
const (
	netDashWidth  = 5
	netDashHeight = 20
)

// RenderOptions carries the presentation details that are not part of the
// simulation.
type RenderOptions struct {
	Labels [2]string
	Paused bool
}

// RenderSnapshot draws snap into dst, scaling viewport units to cells.
func RenderSnapshot(dst *core.Screen, snap Snapshot, opts RenderOptions) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 || snap.Viewport.W <= 0 || snap.Viewport.H <= 0 {
		return
	}

	sc := scaler{vp: snap.Viewport, w: dst.Width(), h: dst.Height()}

	// Dashed center line
	netX := snap.Viewport.W/2 - netDashWidth/2
	for y := 0; y+netDashHeight < snap.Viewport.H; y += 2 * netDashHeight {
		r := sc.rect(core.NewRect(netX, y, netDashWidth, netDashHeight))
		r.W = 1
		dst.DrawRect(r, NetChar, core.ColorGray)
	}

	dst.DrawRect(sc.rect(snap.Paddle1), PaddleChar, core.ColorWhite)
	dst.DrawRect(sc.rect(snap.Paddle2), PaddleChar, core.ColorWhite)
	dst.DrawRect(sc.rect(snap.Ball), BallChar, core.ColorBrightWhite)

	// Scores either side of the net
	centerX := dst.Width() / 2
	score1 := fmt.Sprintf("%d", snap.Scores.P1)
	score2 := fmt.Sprintf("%d", snap.Scores.P2)
	dst.DrawTextColored(centerX-2-len(score1), 0, score1, core.ColorYellow)
	dst.DrawTextColored(centerX+3, 0, score2, core.ColorYellow)

	dst.DrawTextColored(1, 0, opts.Labels[0], core.ColorCyan)
	dst.DrawTextColored(dst.Width()-1-len(opts.Labels[1]), 0, opts.Labels[1], core.ColorCyan)

	if !snap.Playing && !opts.Paused {
		dst.DrawTextCentered(dst.Height()-1, " SPACE to serve ", core.ColorGray)
	}

	if opts.Paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorBrightMagenta)

	dst.DrawText(box.X+(boxW-len(title))/2, box.Y+1, title)
	dst.DrawText(box.X+(boxW-len(subtitle))/2, box.Y+3, subtitle)
}

// scaler maps viewport units to screen cells.
type scaler struct {
	vp   core.Size
	w, h int
}

// rect converts r to cells; anything visible is at least one cell.
func (s scaler) rect(r core.Rect) core.Rect {
	x0 := r.X * s.w / s.vp.W
	y0 := r.Y * s.h / s.vp.H
	x1 := r.Right() * s.w / s.vp.W
	y1 := r.Bottom() * s.h / s.vp.H
	return core.NewRect(x0, y0, max(x1-x0, 1), max(y1-y0, 1))
}
