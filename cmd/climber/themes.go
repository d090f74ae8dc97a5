package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-climber/internal/config"
	"github.com/vovakirdan/tui-climber/internal/level"
)

var flagThemesConfig string

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List visual themes and layout styles",
	Long: `Shows the visual themes and architectural layout styles available
for tower generation.

Themes come from the config file (built-in defaults plus anything
defined under 'themes:'). Styles are compiled in.

Set 'generation.theme' and 'generation.style' in your config to use them.

Examples:
  climber themes
  climber themes --config ./my-climber.yaml`,
	Run: runThemes,
}

func init() {
	themesCmd.Flags().StringVar(&flagThemesConfig, "config", "", "Path to custom config YAML")
}

func runThemes(_ *cobra.Command, _ []string) {
	cfg, err := config.LoadClimber(flagThemesConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v, using defaults\n", err)
		cfg = config.DefaultClimberConfig()
	}

	themes := cfg.Themes
	if len(themes) == 0 {
		themes = config.DefaultThemes()
	}

	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Println("Themes:")
	fmt.Println()
	for _, name := range names {
		marker := " "
		if name == cfg.Generation.Theme {
			marker = "*"
		}
		t := themes[name]
		fmt.Printf("  %s %-10s  %s (%d textures)\n", marker, name, t.Title, len(t.Textures))
	}

	fmt.Println()
	fmt.Println("Layout styles:")
	fmt.Println()
	for _, s := range level.Styles() {
		marker := " "
		if s.ID == cfg.Generation.Style {
			marker = "*"
		}
		fmt.Printf("  %s %-10s  %s\n", marker, s.ID, s.Title)
	}

	fmt.Println()
	fmt.Println("* = current selection")
}
