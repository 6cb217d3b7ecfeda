package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
	"github.com/vovakirdan/tui-pong/internal/platform/tui"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

var (
	flagSimTicks   int
	flagSimP1      string
	flagSimP2      string
	flagSimSave    bool
	flagSimVerbose bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless match",
	Long: `Run a match without a terminal UI and log what happens.

Both paddles default to the CPU controller, so the match plays itself.
Points are logged at info level; serves, paddle hits and wall bounces
are logged with --verbose. The final snapshot hash makes runs with the
same --seed comparable.

Examples:
  pong sim                              # One minute of play at 60 ticks/s
  pong sim --ticks 36000 --seed 7       # Ten minutes, reproducible
  pong sim --difficulty hard --save     # Store the result in match history
  pong sim --verbose --log-file sim.log`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 3600, "Number of ticks to simulate")
	simCmd.Flags().StringVar(&flagSimP1, "p1", pong.ControllerCPU, "Controller for the left paddle")
	simCmd.Flags().StringVar(&flagSimP2, "p2", pong.ControllerCPU, "Controller for the right paddle")
	simCmd.Flags().BoolVar(&flagSimSave, "save", false, "Save the result to match history")
	simCmd.Flags().BoolVarP(&flagSimVerbose, "verbose", "v", false, "Log every event, not just points")
}

func runSim(_ *cobra.Command, _ []string) {
	level := log.InfoLevel
	if flagSimVerbose {
		level = log.DebugLevel
	}

	if err := simulateWithLog(level); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// simulateWithLog closes the log file before runSim picks an exit code.
func simulateWithLog(level log.Level) error {
	logger, closeLog, err := newLogger("pong-sim", os.Stderr, level)
	if err != nil {
		return err
	}
	defer closeLog()

	return simulate(logger)
}

func simulate(logger *log.Logger) error {
	if flagSimTicks <= 0 {
		return fmt.Errorf("--ticks must be positive, got %d", flagSimTicks)
	}

	matchCfg, err := loadMatchConfig()
	if err != nil {
		return err
	}

	game, err := pong.New(matchCfg, flagSimP1, flagSimP2)
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	game.Reset(core.RuntimeConfig{TickRate: flagFPS, Seed: seed})

	logger.Info("simulation started",
		"p1", flagSimP1,
		"p2", flagSimP2,
		"ticks", flagSimTicks,
		"seed", seed,
	)

	for i := 0; i < flagSimTicks; i++ {
		game.Step(core.InputSet{})
		tui.LogResult(logger, game.LastResult())
	}

	snap := game.Snapshot()
	logger.Info("simulation finished",
		"ticks", snap.Tick,
		"score", fmt.Sprintf("%d-%d", snap.Scores.P1, snap.Scores.P2),
		"hash", snap.Hash(),
	)

	if !flagSimSave {
		return nil
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	rec := tui.NewMatchRecorder(game, store, logger).Record(storage.EndSimulated)
	if flagFPS > 0 {
		rec.Duration = flagSimTicks / flagFPS // Simulated time, not wall time
	}

	id, err := store.SaveMatch(rec)
	if err != nil {
		return err
	}
	logger.Info("match saved", "id", id)
	return nil
}
