package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// KeyMap defines the key bindings for a match.
type KeyMap struct {
	P1Up   key.Binding
	P1Down key.Binding
	P2Up   key.Binding
	P2Down key.Binding
	Serve  key.Binding
	Pause  key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.P1Up, k.P1Down, k.P2Up, k.P2Down, k.Serve, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.P1Up, k.P1Down},
		{k.P2Up, k.P2Down},
		{k.Serve, k.Pause, k.Quit},
	}
}

// DefaultKeyMap returns the default bindings: W/S for the left paddle,
// arrows for the right one.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		P1Up: key.NewBinding(
			key.WithKeys("w", "W"),
			key.WithHelp("w", "p1 up"),
		),
		P1Down: key.NewBinding(
			key.WithKeys("s", "S"),
			key.WithHelp("s", "p1 down"),
		),
		P2Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "p2 up"),
		),
		P2Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "p2 down"),
		),
		Serve: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "serve"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to match inputs.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultKeyMap()}
}

// Keys returns the bindings, e.g. for a help view.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// MapKey translates a key message to an input.
// Returns the input (may be InputNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (in core.Input, isQuit bool) {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.InputQuit, true
	case key.Matches(msg, km.keys.P1Up):
		return core.InputP1Up, false
	case key.Matches(msg, km.keys.P1Down):
		return core.InputP1Down, false
	case key.Matches(msg, km.keys.P2Up):
		return core.InputP2Up, false
	case key.Matches(msg, km.keys.P2Down):
		return core.InputP2Down, false
	case key.Matches(msg, km.keys.Serve):
		return core.InputServe, false
	case key.Matches(msg, km.keys.Pause):
		return core.InputPause, false
	}

	return core.InputNone, false
}

// MapKeyToSet adds the input for a key message to set.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToSet(msg tea.KeyMsg, set *core.InputSet) bool {
	in, isQuit := km.MapKey(msg)
	if isQuit {
		return true
	}
	set.Set(in)
	return false
}
