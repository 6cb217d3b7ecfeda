package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pong/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyMapperMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		wantIn   core.Input
		wantQuit bool
	}{
		{"w", runeKey("w"), core.InputP1Up, false},
		{"W", runeKey("W"), core.InputP1Up, false},
		{"s", runeKey("s"), core.InputP1Down, false},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.InputP2Up, false},
		{"down", tea.KeyMsg{Type: tea.KeyDown}, core.InputP2Down, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.InputServe, false},
		{"p", runeKey("p"), core.InputPause, false},
		{"q", runeKey("q"), core.InputQuit, true},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.InputQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.InputQuit, true},
		{"unbound", runeKey("x"), core.InputNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in, quit := km.MapKey(tc.msg)
			if in != tc.wantIn {
				t.Errorf("MapKey(%q) input = %v, want %v", tc.msg.String(), in, tc.wantIn)
			}
			if quit != tc.wantQuit {
				t.Errorf("MapKey(%q) quit = %v, want %v", tc.msg.String(), quit, tc.wantQuit)
			}
		})
	}
}

func TestKeyMapperMapKeyToSet(t *testing.T) {
	km := NewKeyMapper()
	var set core.InputSet

	for _, msg := range []tea.KeyMsg{runeKey("w"), {Type: tea.KeyDown}, runeKey("x")} {
		if km.MapKeyToSet(msg, &set) {
			t.Fatalf("%q should not quit", msg.String())
		}
	}

	if !set.Has(core.InputP1Up) || !set.Has(core.InputP2Down) {
		t.Error("Expected P1Up and P2Down to be held")
	}
	if set.Len() != 2 {
		t.Errorf("Expected 2 inputs, got %d", set.Len())
	}

	if !km.MapKeyToSet(runeKey("q"), &set) {
		t.Error("Expected q to quit")
	}
	if set.Has(core.InputQuit) {
		t.Error("Quit must not reach the simulation")
	}
}

func TestKeyMapHelp(t *testing.T) {
	keys := DefaultKeyMap()
	if len(keys.ShortHelp()) != 7 {
		t.Errorf("Expected 7 short help bindings, got %d", len(keys.ShortHelp()))
	}
	if len(keys.FullHelp()) != 3 {
		t.Errorf("Expected 3 help columns, got %d", len(keys.FullHelp()))
	}
}
