package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
	"github.com/vovakirdan/tui-pong/internal/platform/tui"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

var (
	flagPlayP1 string
	flagPlayP2 string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a match",
	Long: `Start a match in this terminal.

Controls:
  W/S        - Left paddle up/down
  Up/Down    - Right paddle up/down
  Space      - Serve
  P          - Pause
  Q/Esc      - Quit

Each paddle is driven by a controller (see 'pong controllers'). Keyboard
input only reaches paddles whose controller is "human".

Difficulty options (CPU controller):
  easy   - Start at lowest skill, progresses to max
  normal - Start at 30% skill, progresses to max
  hard   - Start at 70% skill, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  pong play                       # You (W/S) against the CPU
  pong play --p2 human            # Two players, one keyboard
  pong play --difficulty hard
  pong play --log-file pong.log   # Record serves, hits and points`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlayP1, "p1", pong.ControllerHuman, "Controller for the left paddle")
	playCmd.Flags().StringVar(&flagPlayP2, "p2", pong.ControllerCPU, "Controller for the right paddle")
}

func runPlay(_ *cobra.Command, _ []string) {
	if err := play(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// play runs one interactive match. Deferred cleanup finishes before
// runPlay decides the exit code, so the log file is always closed.
func play() error {
	matchCfg, err := loadMatchConfig()
	if err != nil {
		return err
	}

	game, err := pong.New(matchCfg, flagPlayP1, flagPlayP2)
	if err != nil {
		return fmt.Errorf("%w (run 'pong controllers' to see available controllers)", err)
	}

	// The TUI owns the terminal, so logs only go to --log-file
	logger, closeLog, err := newLogger("pong", nil, log.DebugLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open match history: %v\n", err)
		// Continue without storage - the match still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	if err := tui.Run(game, store, cfg, logger); err != nil {
		return fmt.Errorf("running match: %w", err)
	}
	return nil
}
