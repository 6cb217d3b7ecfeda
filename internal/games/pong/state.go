package pong

import (
	"strings"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// Phase is the round state: the ball is either held at center or live.
type Phase int

const (
	PhaseWaiting Phase = iota // Ball held at center with zero velocity
	PhaseLive                 // Ball in play
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseWaiting:
		return "waiting"
	case PhaseLive:
		return "live"
	default:
		return "unknown"
	}
}

// Scores holds the points of both players.
type Scores struct {
	P1 uint32
	P2 uint32
}

// MatchState is the per-match state shared by every entity update.
// The Driver owns it and hands it to one Update call at a time.
type MatchState struct {
	Viewport    core.Size
	Pressed     core.InputSet
	Playing     bool
	PaddleRects []core.Rect // Player 1 first, then player 2
	Scores      Scores
}

// Phase derives the round phase from Playing.
func (s *MatchState) Phase() Phase {
	if s.Playing {
		return PhaseLive
	}
	return PhaseWaiting
}

// Event is a bitmask of things that happened during one tick.
type Event uint8

const (
	EventServe Event = 1 << iota
	EventPaddleHitP1
	EventPaddleHitP2
	EventWallBounce
	EventPointP1
	EventPointP2
)

var eventNames = []struct {
	ev   Event
	name string
}{
	{EventServe, "serve"},
	{EventPaddleHitP1, "hit-p1"},
	{EventPaddleHitP2, "hit-p2"},
	{EventWallBounce, "wall"},
	{EventPointP1, "point-p1"},
	{EventPointP2, "point-p2"},
}

// Has reports whether all bits of other are set.
func (e Event) Has(other Event) bool {
	return e&other == other && other != 0
}

// Scored reports whether either player scored.
func (e Event) Scored() bool {
	return e&(EventPointP1|EventPointP2) != 0
}

// String lists the set events, e.g. "hit-p1|wall".
func (e Event) String() string {
	if e == 0 {
		return "none"
	}
	var parts []string
	for _, n := range eventNames {
		if e.Has(n.ev) {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}

// paddleHitEvent maps an index in MatchState.PaddleRects to its event.
func paddleHitEvent(i int) Event {
	if i == 0 {
		return EventPaddleHitP1
	}
	return EventPaddleHitP2
}
