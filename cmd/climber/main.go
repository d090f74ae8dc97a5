// climber is a TUI platformer about climbing procedurally generated towers.
//
// Usage:
//
//	climber list              - List available game modes
//	climber play <mode>       - Start a climb
//	climber menu              - Start menu to pick a mode interactively
//	climber serve             - Start SSH server for remote play
//	climber scores <mode>     - Show best runs for a mode
//	climber themes            - List visual themes and layout styles
//	climber schema            - Emit the JSON schema for config files
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible towers
//	--db <path>     - Set database path (default: ~/.climber/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import game modes to register them
	_ "github.com/vovakirdan/tui-climber/internal/game"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "climber",
	Short: "TUI Climber - Scale procedural towers in your terminal",
	Long: `TUI Climber is a terminal platformer. Every tower is generated fresh
from a seed and checked to be climbable before you see it: run, jump
and ride patrolling platforms until you reach the goal ledge.

Available commands:
  list     - Show all game modes
  play     - Start a specific mode directly
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  scores   - View best runs
  themes   - List visual themes and layout styles
  schema   - Emit the config JSON schema

Examples:
  climber list
  climber play climb
  climber play endless --difficulty hard
  climber menu
  climber serve --ssh :2222
  climber scores climb`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.climber/runs.db", "Path to runs database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(themesCmd)
	rootCmd.AddCommand(schemaCmd)
}
