package config

import (
	_ "embed"
)

//go:embed defaults/climber.yaml
var defaultClimberYAML []byte

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultClimberYAML
}

// DefaultClimberConfig returns the default climbing configuration. It
// mirrors defaults/climber.yaml and backs it up if the embed ever
// fails to parse.
func DefaultClimberConfig() ClimberConfig {
	return ClimberConfig{
		Physics: PhysicsConfig{
			Gravity:     50.0,
			JumpImpulse: 26.0,
			MoveSpeed:   18.0,
			MaxFall:     40.0,
			Friction:    0.8,
		},
		Player: PlayerConfig{
			Width:        2.0,
			Height:       2.0,
			CoyoteTicks:  4,
			CrouchFactor: 0.5,
		},
		Gameplay: GameplayConfig{
			Lives:     3,
			RunLevels: 5,
		},
		Generation: GenerationConfig{
			Width:       120.0,
			Height:      80.0,
			Density:     0.25,
			TowerMin:    6,
			TowerMax:    10,
			Style:       "ridge",
			MovingShare: 0.15,
			Theme:       "stone",
		},
		Camera: CameraConfig{
			Smoothing: 5.0,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "level",
				MaxAt: 8,
			},
			Scaling: ScalingConfig{
				TierGrowth:    6,
				DensityGrowth: 0.15,
				MovingGrowth:  0.15,
				HeightGrowth:  40.0,
			},
		},
		Themes: DefaultThemes(),
	}
}

// DefaultThemes returns the built-in theme table. The renderer falls
// back to the "stone" entry when a level names a theme the loaded
// config does not define.
func DefaultThemes() map[string]ThemeConfig {
	return map[string]ThemeConfig{
		"stone": {
			Title:  "Stone Keep",
			Player: GlyphStyle{Glyph: "█", Color: "bright_cyan"},
			Textures: map[string]GlyphStyle{
				"grass": {Glyph: "▓", Color: "green"},
				"stone": {Glyph: "█", Color: "gray"},
				"brick": {Glyph: "▒", Color: "bright_red"},
				"plank": {Glyph: "═", Color: "brown"},
				"ruin":  {Glyph: "░", Color: "gray"},
				"moss":  {Glyph: "▓", Color: "bright_green"},
				"goal":  {Glyph: "◆", Color: "bright_yellow"},
			},
		},
		"forest": {
			Title:  "Deep Forest",
			Player: GlyphStyle{Glyph: "█", Color: "bright_magenta"},
			Textures: map[string]GlyphStyle{
				"grass": {Glyph: "▓", Color: "bright_green"},
				"stone": {Glyph: "█", Color: "green"},
				"brick": {Glyph: "▒", Color: "brown"},
				"plank": {Glyph: "═", Color: "brown"},
				"ruin":  {Glyph: "░", Color: "gray"},
				"moss":  {Glyph: "▓", Color: "cyan"},
				"goal":  {Glyph: "◆", Color: "bright_yellow"},
			},
		},
		"neon": {
			Title:  "Neon Grid",
			Player: GlyphStyle{Glyph: "█", Color: "bright_white"},
			Textures: map[string]GlyphStyle{
				"grass": {Glyph: "▓", Color: "bright_cyan"},
				"stone": {Glyph: "█", Color: "bright_blue"},
				"brick": {Glyph: "▒", Color: "bright_magenta"},
				"plank": {Glyph: "═", Color: "bright_yellow"},
				"ruin":  {Glyph: "░", Color: "magenta"},
				"moss":  {Glyph: "▓", Color: "bright_green"},
				"goal":  {Glyph: "◆", Color: "bright_red"},
			},
		},
	}
}
