package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-climber/internal/registry"
	"github.com/vovakirdan/tui-climber/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores <mode>",
	Short: "Show best runs for a mode",
	Long: `Display the top 10 runs for the specified mode.

Examples:
  climber scores climb
  climber scores endless`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	modeID := args[0]

	// Check if mode exists
	if !registry.Exists(modeID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", modeID)
		fmt.Fprintln(os.Stderr, "Run 'climber list' to see available modes.")
		os.Exit(1)
	}

	// Get mode title
	g, err := registry.Create(modeID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := g.Title()

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}

	// Get top runs
	runs, err := store.TopRuns(modeID, 10)
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	// Display runs
	fmt.Printf("Best Climbs - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'climber play %s' to set the first record!\n", modeID)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %-8s  %-5s  %-6s  %s\n", "Rank", "Player", "Height", "Lvls", "Time", "Date")
	fmt.Printf("  %-4s  %-10s  %-8s  %-5s  %-6s  %s\n", "----", "------", "------", "----", "----", "----")

	// Print runs
	for i, r := range runs {
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		timeStr := fmt.Sprintf("%d:%02d", r.Duration/60, r.Duration%60)
		fmt.Printf("  %-4d  %-10s  %-8.1f  %-5d  %-6s  %s\n", i+1, r.Player, r.Height, r.Levels, timeStr, dateStr)
	}

	// Show best height
	fmt.Println()
	best, err := store.BestHeight(modeID)
	if err == nil {
		fmt.Printf("Best: %.1f\n", best)
	}
}
