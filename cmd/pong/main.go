// pong is a two-player Pong table for the terminal.
//
// Usage:
//
//	pong play                - Play a match in this terminal
//	pong serve               - Start SSH server for remote play
//	pong sim                 - Run a headless match and log its events
//	pong scores              - Show match history
//	pong controllers         - List paddle controllers
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible CPU play
//	--db <path>           - Set database path (default: ~/.pong/history.db)
//	--config <path>       - Custom match config YAML
//	--difficulty <name>   - CPU difficulty preset
//	--log-file <path>     - Append logs to a file
package main

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/config"
	// Register paddle controllers
	_ "github.com/vovakirdan/tui-pong/internal/games/pong"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pong",
	Short: "TUI Pong - two paddles, one ball, your terminal",
	Long: `TUI Pong is the classic two-player table game for the terminal.

Available commands:
  play        - Play a match locally
  serve       - Start SSH server for remote play
  sim         - Run a headless CPU match
  scores      - View match history
  controllers - Show who can drive a paddle

Examples:
  pong play
  pong play --p2 human
  pong play --difficulty hard
  pong serve --ssh :2222
  pong sim --ticks 36000 --seed 7
  pong scores --interactive`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.pong/history.db", "Path to match history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom match config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "CPU difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(controllersCmd)
}

// loadMatchConfig reads the config file and applies the difficulty preset.
func loadMatchConfig() (config.PongConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.PongConfig{}, err
	}

	cfg, err := config.LoadPong(flagConfig)
	if err != nil {
		return config.PongConfig{}, err
	}

	config.ApplyPongPreset(&cfg, preset)
	return cfg, nil
}

// newLogger returns a logger writing to --log-file when set, else to
// fallback. A nil fallback without --log-file disables logging.
// The returned close function is always safe to call.
func newLogger(prefix string, fallback io.Writer, level log.Level) (*log.Logger, func(), error) {
	out := fallback
	closeFn := func() {}

	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, closeFn, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		var once sync.Once
		closeFn = func() { once.Do(func() { f.Close() }) }
	}

	if out == nil {
		return nil, closeFn, nil
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closeFn, nil
}
