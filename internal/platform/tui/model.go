package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for running a match.
// The last terminal row holds the key help; the rest is the playfield.
type Model struct {
	game      *pong.Game
	screen    *core.Screen
	recorder  *MatchRecorder
	logger    *log.Logger
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	help      help.Model
	inputs    core.InputSet
	state     core.GameState
	quitting  bool
}

// NewModel creates a new Bubble Tea model for game. store and logger may be nil.
func NewModel(game *pong.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH-1),
		recorder:  NewMatchRecorder(game, store, logger),
		logger:    logger,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		help:      h,
	}
}

// Init resets the match and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey records a pressed key for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.MapKeyToSet(msg, &m.inputs) {
		m.quitting = true
		m.recorder.Finish(storage.EndQuit)
		return m, tea.Quit
	}
	return m, nil
}

// handleResize only rescales rendering; the playfield keeps its logical size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height-1)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one simulation step with the keys pressed since the last one.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}

	result := m.game.Step(m.inputs)
	m.state = result.State
	LogResult(m.logger, m.game.LastResult())

	// Terminals report presses, not releases: a key is held for one tick
	m.inputs.Clear()

	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keyMapper.Keys()))
}

// State returns the match state after the last tick.
func (m Model) State() core.GameState {
	return m.state
}

// Quitting reports whether the player asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}

// Recorder returns the history recorder of this match.
func (m Model) Recorder() *MatchRecorder {
	return m.recorder
}

// Run starts the Bubble Tea program for game and saves the match when it ends.
func Run(game *pong.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, store, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	model.recorder.Finish(storage.EndQuit)
	return err
}
