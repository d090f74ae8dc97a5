// Package config provides YAML-based configuration loading and
// difficulty management for the climber.
package config

import (
	"github.com/vovakirdan/tui-climber/internal/core"
	"github.com/vovakirdan/tui-climber/internal/level"
)

// ClimberConfig contains all configuration for a climbing run. Both
// game modes read the same file; endless mode ignores run_levels.
type ClimberConfig struct {
	Physics    PhysicsConfig          `yaml:"physics" json:"physics" jsonschema:"required"`
	Player     PlayerConfig           `yaml:"player" json:"player" jsonschema:"required"`
	Gameplay   GameplayConfig         `yaml:"gameplay" json:"gameplay"`
	Generation GenerationConfig       `yaml:"generation" json:"generation" jsonschema:"required"`
	Camera     CameraConfig           `yaml:"camera" json:"camera"`
	Difficulty DifficultyConfig       `yaml:"difficulty" json:"difficulty"`
	Themes     map[string]ThemeConfig `yaml:"themes" json:"themes"`
}

// PhysicsConfig defines simulation forces, in cells and seconds.
type PhysicsConfig struct {
	Gravity     float64 `yaml:"gravity" json:"gravity"`
	JumpImpulse float64 `yaml:"jump_impulse" json:"jump_impulse"`
	MoveSpeed   float64 `yaml:"move_speed" json:"move_speed"`
	MaxFall     float64 `yaml:"max_fall" json:"max_fall"`
	Friction    float64 `yaml:"friction" json:"friction"`
}

// PlayerConfig defines the avatar shape and input grace windows.
type PlayerConfig struct {
	Width        float64 `yaml:"width" json:"width"`
	Height       float64 `yaml:"height" json:"height"`
	CoyoteTicks  int     `yaml:"coyote_ticks" json:"coyote_ticks"`
	CrouchFactor float64 `yaml:"crouch_factor" json:"crouch_factor"`
}

// GameplayConfig defines run flow shared by both modes.
type GameplayConfig struct {
	Lives     int `yaml:"lives" json:"lives"`
	RunLevels int `yaml:"run_levels" json:"run_levels"` // levels to clear in a classic climb
}

// GenerationConfig defines the level generator baseline. Difficulty
// scaling adjusts these per level, see DifficultyManager.
type GenerationConfig struct {
	Width       float64 `yaml:"width" json:"width"`
	Height      float64 `yaml:"height" json:"height"`
	Density     float64 `yaml:"density" json:"density" jsonschema:"description=Platforms per 100 square cells in (0 1]"`
	TowerMin    int     `yaml:"tower_min" json:"tower_min"`
	TowerMax    int     `yaml:"tower_max" json:"tower_max"`
	Style       string  `yaml:"style" json:"style"`
	MovingShare float64 `yaml:"moving_share" json:"moving_share" jsonschema:"description=Fraction of extra patrolling platforms in [0 0.5]"`
	Theme       string  `yaml:"theme" json:"theme"`
}

// CameraConfig defines viewport following.
type CameraConfig struct {
	Smoothing float64 `yaml:"smoothing" json:"smoothing"`
}

// ThemeConfig maps texture tokens to terminal glyphs and colors for
// one visual theme. Tokens missing from a theme render with the
// renderer's fallback glyph.
type ThemeConfig struct {
	Title    string                `yaml:"title" json:"title"`
	Player   GlyphStyle            `yaml:"player" json:"player"`
	Textures map[string]GlyphStyle `yaml:"textures" json:"textures"`
}

// GlyphStyle is one glyph and color name pair.
type GlyphStyle struct {
	Glyph string `yaml:"glyph" json:"glyph"`
	Color string `yaml:"color" json:"color"`
}

// Profile returns the jump capability generation designs against.
func (c ClimberConfig) Profile() level.JumpProfile {
	return level.JumpProfile{
		Impulse:  c.Physics.JumpImpulse,
		MaxSpeed: c.Physics.MoveSpeed,
		Gravity:  c.Physics.Gravity,
	}
}

// GenParams assembles baseline generation parameters with the given
// seed. Difficulty scaling adjusts the result per level.
func (c ClimberConfig) GenParams(seed int64) level.GenParams {
	return level.GenParams{
		Width:       c.Generation.Width,
		Height:      c.Generation.Height,
		Density:     c.Generation.Density,
		TowerMin:    c.Generation.TowerMin,
		TowerMax:    c.Generation.TowerMax,
		Style:       c.Generation.Style,
		MovingShare: c.Generation.MovingShare,
		Theme:       c.Generation.Theme,
		Seed:        seed,
	}
}

// Validate rejects configurations the simulation cannot run. The level
// package re-checks physics and generation ranges on every Generate
// call; checking here surfaces file mistakes at load time instead.
func (c ClimberConfig) Validate() error {
	if err := c.Profile().Validate(); err != nil {
		return err
	}
	if err := c.GenParams(0).Validate(); err != nil {
		return err
	}
	if _, ok := level.StyleByID(c.Generation.Style); !ok {
		return core.ConfigErrorf("generation.style", "unknown architectural style %q", c.Generation.Style)
	}
	if c.Physics.MaxFall <= 0 {
		return core.ConfigErrorf("physics.max_fall", "must be positive, got %g", c.Physics.MaxFall)
	}
	if c.Physics.Friction < 0 || c.Physics.Friction > 1 {
		return core.ConfigErrorf("physics.friction", "must be in [0,1], got %g", c.Physics.Friction)
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		return core.ConfigErrorf("player.size", "width and height must be positive, got %gx%g", c.Player.Width, c.Player.Height)
	}
	if c.Player.CoyoteTicks < 0 {
		return core.ConfigErrorf("player.coyote_ticks", "must not be negative, got %d", c.Player.CoyoteTicks)
	}
	if c.Player.CrouchFactor <= 0 || c.Player.CrouchFactor > 1 {
		return core.ConfigErrorf("player.crouch_factor", "must be in (0,1], got %g", c.Player.CrouchFactor)
	}
	if c.Gameplay.Lives < 1 {
		return core.ConfigErrorf("gameplay.lives", "must be at least 1, got %d", c.Gameplay.Lives)
	}
	if c.Gameplay.RunLevels < 1 {
		return core.ConfigErrorf("gameplay.run_levels", "must be at least 1, got %d", c.Gameplay.RunLevels)
	}
	if c.Camera.Smoothing < 0 {
		return core.ConfigErrorf("camera.smoothing", "must not be negative, got %g", c.Camera.Smoothing)
	}
	if len(c.Themes) > 0 && c.Generation.Theme != "" {
		if _, ok := c.Themes[c.Generation.Theme]; !ok {
			return core.ConfigErrorf("generation.theme", "theme %q not defined in themes", c.Generation.Theme)
		}
	}
	return nil
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled" json:"enabled"`
	InitialLevel float64           `yaml:"initial_level" json:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression" json:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling" json:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a run.
type ProgressionConfig struct {
	Type  string `yaml:"type" json:"type"`     // "level", "time", or "none"
	MaxAt int    `yaml:"max_at" json:"max_at"` // Levels/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of generation changes.
type ScalingConfig struct {
	TierGrowth    int     `yaml:"tier_growth" json:"tier_growth"`       // Extra tower tiers at max difficulty
	DensityGrowth float64 `yaml:"density_growth" json:"density_growth"` // Density added at max difficulty
	MovingGrowth  float64 `yaml:"moving_growth" json:"moving_growth"`   // Moving share added at max difficulty
	HeightGrowth  float64 `yaml:"height_growth" json:"height_growth"`   // Extra level height in cells at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
