package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

func newTestModel(t *testing.T, store *storage.Store) Model {
	t.Helper()
	game, err := pong.New(config.DefaultPongConfig(), pong.ControllerHuman, pong.ControllerHuman)
	require.NoError(t, err)

	m := NewModel(game, store, core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 60, Seed: 1}, nil)
	require.NotNil(t, m.Init())
	return m
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

// press delivers a key, then the tick that consumes it.
func press(t *testing.T, m Model, msg tea.KeyMsg) Model {
	t.Helper()
	updated, _ := m.Update(msg)
	m = updated.(Model)
	return tick(t, m)
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	updated, cmd := m.Update(TickMsg(time.Now()))
	require.NotNil(t, cmd, "tick loop must continue")
	return updated.(Model)
}

func TestModelServeAndScore(t *testing.T) {
	store := openStore(t)
	m := newTestModel(t, store)

	m = press(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	require.True(t, m.State().Playing, "space serves")

	// Player 1 holds W: the paddle leaves the ball's path
	for i := 0; i < 40 && m.State().Playing; i++ {
		m = press(t, m, runeKey("w"))
	}
	require.False(t, m.State().Playing)
	assert.Equal(t, 1, m.State().Score2)

	updated, cmd := m.Update(runeKey("q"))
	m = updated.(Model)
	assert.NotNil(t, cmd)
	assert.True(t, m.Quitting())
	assert.Empty(t, m.View())

	id := m.Recorder().MatchID()
	require.NotEmpty(t, id, "match with a point is saved on quit")

	rec, err := store.MatchByID(id)
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, pong.ControllerHuman, rec.Player1)
	assert.Equal(t, 0, rec.Score1)
	assert.Equal(t, 1, rec.Score2)
	assert.Equal(t, storage.EndQuit, rec.EndReason)
	assert.Positive(t, rec.Ticks)
}

func TestModelKeyHeldForOneTick(t *testing.T) {
	m := newTestModel(t, nil)

	m = press(t, m, runeKey("w"))
	m = tick(t, m)

	snap := m.game.Snapshot()
	assert.Equal(t, 200, snap.Paddle1.Y, "one press moves one step")
}

func TestModelQuitWithoutPointsSavesNothing(t *testing.T) {
	store := openStore(t)
	m := newTestModel(t, store)
	m = tick(t, m)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(Model)

	assert.True(t, m.Quitting())
	assert.Empty(t, m.Recorder().MatchID())

	recent, err := store.RecentMatches(10)
	require.NoError(t, err)
	assert.Empty(t, recent)
}

func TestModelResizeKeepsMatch(t *testing.T) {
	m := newTestModel(t, nil)
	m = press(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	before := m.game.Snapshot()

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = updated.(Model)

	assert.Equal(t, before, m.game.Snapshot(), "resizing never resets the simulation")
	assert.Equal(t, 120, m.screen.Width())
	assert.Equal(t, 39, m.screen.Height(), "last row is reserved for help")

	view := m.View()
	assert.Contains(t, view, "serve")
	assert.Equal(t, 40, strings.Count(view, "\n")+1)
}

func TestRecorderFinishOnce(t *testing.T) {
	store := openStore(t)
	m := newTestModel(t, store)
	m = press(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	for i := 0; i < 40 && m.State().Playing; i++ {
		m = press(t, m, runeKey("w"))
	}

	id := m.Recorder().Finish(storage.EndDisconnect)
	require.NotEmpty(t, id)
	assert.Equal(t, id, m.Recorder().Finish(storage.EndQuit), "second finish is a no-op")

	recent, err := store.RecentMatches(10)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, storage.EndDisconnect, recent[0].EndReason)
}
