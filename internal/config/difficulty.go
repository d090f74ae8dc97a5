package config

import "math"

// DifficultyManager calculates per-level generation parameters based on
// run progress. Each completed level (or elapsed time) ramps the
// difficulty from initial_level toward 1.0; the scaled getters turn
// that ramp into taller, denser, busier towers.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: cfg.InitialLevel,
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) based on
// levels completed and ticks played.
func (d *DifficultyManager) Level(levels int, ticks int) float64 {
	if !d.cfg.Enabled || d.cfg.Progression.Type == "none" {
		return d.initialLevel
	}

	var progress float64
	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	switch d.cfg.Progression.Type {
	case "level":
		progress = float64(levels) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return d.initialLevel
	}

	// Clamp progress to [0, 1]
	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Tiers returns the tower tier bounds for the next level.
func (d *DifficultyManager) Tiers(baseMin, baseMax int, levels, ticks int) (int, int) {
	level := d.Level(levels, ticks)
	growth := int(level * float64(d.cfg.Scaling.TierGrowth))
	return baseMin + growth, baseMax + growth
}

// Density returns the platform density for the next level.
func (d *DifficultyManager) Density(base float64, levels, ticks int) float64 {
	level := d.Level(levels, ticks)
	result := base + level*d.cfg.Scaling.DensityGrowth
	if result > 0.9 { // Densest layout that still validates reliably
		result = 0.9
	}
	return result
}

// MovingShare returns the patrolling platform share for the next level.
func (d *DifficultyManager) MovingShare(base float64, levels, ticks int) float64 {
	level := d.Level(levels, ticks)
	result := base + level*d.cfg.Scaling.MovingGrowth
	if result > 0.5 { // Hard generator limit
		result = 0.5
	}
	return result
}

// LevelHeight returns the bounds height for the next level.
func (d *DifficultyManager) LevelHeight(base float64, levels, ticks int) float64 {
	level := d.Level(levels, ticks)
	return base + level*d.cfg.Scaling.HeightGrowth
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
