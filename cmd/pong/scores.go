package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pong/internal/platform/tui"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

var (
	flagScoresLimit       int
	flagScoresInteractive bool
	flagScoresClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show match history",
	Long: `Display recently finished matches and overall totals.

Examples:
  pong scores
  pong scores --limit 50
  pong scores --interactive   # Scrollable table
  pong scores --clear         # Delete the history`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagScoresLimit, "limit", "n", 10, "Number of matches to show")
	scoresCmd.Flags().BoolVarP(&flagScoresInteractive, "interactive", "i", false, "Browse history in a table")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded matches")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening match history: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagScoresClear:
		err = store.ClearMatches()
		if err == nil {
			fmt.Println("Match history cleared.")
		}
	case flagScoresInteractive:
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		err = tui.RunScoreboard(store, width, height)
	default:
		err = printScores(store)
	}

	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printScores(store *storage.Store) error {
	matches, err := store.RecentMatches(flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Println("Match History")
	fmt.Println()

	if len(matches) == 0 {
		fmt.Println("No matches recorded yet.")
		fmt.Println()
		fmt.Println("Play 'pong play' and score a point to start the history!")
		return nil
	}

	// Print header
	fmt.Printf("  %-16s  %-8s  %-8s  %-7s  %-6s  %s\n", "Date", "P1", "P2", "Score", "Time", "End")
	fmt.Printf("  %-16s  %-8s  %-8s  %-7s  %-6s  %s\n", "----", "--", "--", "-----", "----", "---")

	for _, m := range matches {
		fmt.Printf("  %-16s  %-8s  %-8s  %-7s  %-6s  %s\n",
			m.CreatedAt.Format("2006-01-02 15:04"),
			m.Player1,
			m.Player2,
			fmt.Sprintf("%d-%d", m.Score1, m.Score2),
			fmt.Sprintf("%d:%02d", m.Duration/60, m.Duration%60),
			m.EndReason,
		)
	}

	stats, err := store.Stats()
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("Matches: %d  P1 wins: %d  P2 wins: %d  Draws: %d\n",
		stats.Matches, stats.Player1Wins, stats.Player2Wins, stats.Draws)
	fmt.Printf("Points: %d  Longest match: %d ticks\n", stats.TotalPoints, stats.LongestRun)
	return nil
}
