package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/registry"
)

var controllersCmd = &cobra.Command{
	Use:     "controllers",
	Aliases: []string{"list"},
	Short:   "List paddle controllers",
	Long:    `Shows every controller that can drive a paddle via --p1 and --p2.`,
	Args:    cobra.NoArgs,
	Run:     runControllers,
}

func runControllers(_ *cobra.Command, _ []string) {
	controllers := registry.List()

	if len(controllers) == 0 {
		fmt.Println("No controllers available.")
		return
	}

	fmt.Println("Available controllers:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, c := range controllers {
		if len(c.ID) > maxIDLen {
			maxIDLen = len(c.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, c := range controllers {
		fmt.Printf("  %-*s  %s\n", maxIDLen, c.ID, c.Title)
	}

	fmt.Println()
	fmt.Println("Run 'pong play --p1 <id> --p2 <id>' to pick who plays.")
}
