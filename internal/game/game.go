// Package game implements the climbing run on top of the world
// simulation: a chain of generated levels, lives, scoring and the two
// selectable modes.
package game

import (
	"context"
	"fmt"
	"math"

	"github.com/vovakirdan/tui-climber/internal/config"
	"github.com/vovakirdan/tui-climber/internal/core"
	"github.com/vovakirdan/tui-climber/internal/level"
	"github.com/vovakirdan/tui-climber/internal/registry"
	"github.com/vovakirdan/tui-climber/internal/world"
)

// Game implements one climbing run: the player clears procedurally
// generated towers until the lives run out (endless) or the configured
// level count is beaten (climb).
type Game struct {
	mode Mode

	runtime    core.RuntimeConfig
	cfg        config.ClimberConfig
	difficulty *config.DifficultyManager
	themeCfg   config.ThemeConfig

	world *world.World
	frame world.Frame // reused snapshot buffer

	seed      int64
	dt        float64 // seconds per tick
	levelNum  int     // 1-based, current level
	levelsWon int
	lives     int
	climbed   float64 // height banked from completed levels
	peak      float64 // best height in the current level
	lastClimb float64 // height of the last completed level, for the banner

	phase     runPhase
	interlude int // ticks spent on the level-complete banner
	next      chan genResult
	genErr    error

	paused    bool
	tickCount int
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset
var themeName string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = "" // Use config default
	}
}

// SetTheme overrides the config's visual theme. Unknown names degrade
// to the fallback theme instead of failing the run.
func SetTheme(name string) {
	themeName = name
}

// New creates a climbing run in the given mode.
func New(mode Mode) *Game {
	return &Game{mode: mode}
}

// ID returns the unique identifier for this game mode.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "endless"
	}
	return "climb"
}

// Title returns the display name for this game mode.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Endless Ascent"
	}
	return "Tower Climb"
}

// Reset initializes or restarts the run.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	// Load game config
	cfg, err := config.LoadClimber(configPath)
	if err != nil {
		cfg = config.DefaultClimberConfig()
	}

	// Apply difficulty preset if set
	if difficultyPreset != "" {
		config.ApplyClimberPreset(&cfg, difficultyPreset)
	}
	if themeName != "" {
		cfg.Generation.Theme = themeName
	}

	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.themeCfg = resolveTheme(cfg)

	g.seed = runtime.Seed
	g.dt = 1.0 / 60
	if runtime.TickRate > 0 {
		g.dt = 1.0 / float64(runtime.TickRate)
	}

	g.lives = cfg.Gameplay.Lives
	g.levelNum = 0
	g.levelsWon = 0
	g.climbed = 0
	g.peak = 0
	g.lastClimb = 0
	g.tickCount = 0
	g.paused = false
	g.phase = phasePlaying
	g.next = nil
	g.genErr = nil

	// The first level generates synchronously; the following ones
	// overlap play on their own goroutine.
	lvl, err := level.Generate(context.Background(), g.genParamsFor(1), cfg.Profile())
	if err != nil {
		g.genErr = err
		g.phase = phaseBroken
		return
	}
	g.installLevel(lvl)
}

// Step advances the run by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.phase == phaseGameOver || g.phase == phaseVictory || g.phase == phaseBroken {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++

	if g.phase == phaseLevelDone {
		g.stepInterlude(in)
	} else {
		g.stepPlaying(in)
	}

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	total := g.climbed + g.peak
	return core.GameState{
		Score:    int(math.Round(total)),
		Lives:    g.lives,
		Level:    g.levelNum,
		Cleared:  g.levelsWon,
		Height:   total,
		Theme:    g.cfg.Generation.Theme,
		GameOver: g.phase == phaseGameOver || g.phase == phaseVictory || g.phase == phaseBroken,
		Paused:   g.paused,
	}
}

// Render draws the current frame through the camera.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.phase == phaseBroken {
		g.drawCenteredMessage(dst, "GENERATION FAILED", clip(g.genErr.Error(), dst.Width()-8))
		return
	}
	if g.world == nil {
		return
	}

	g.world.SnapshotInto(&g.frame)

	for _, p := range g.frame.Platforms {
		g.drawPlatform(dst, p)
	}
	g.drawPlayer(dst)
	g.drawHUD(dst)

	switch {
	case g.paused:
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case g.phase == phaseLevelDone:
		sub := fmt.Sprintf("Climbed %.0f cells  |  Jump to climb on", g.lastClimb)
		if g.interlude >= interludeTicks && g.next != nil {
			sub = "Carving the next tower..."
		}
		g.drawCenteredMessage(dst, fmt.Sprintf("LEVEL %d COMPLETE", g.levelNum), sub)
	case g.phase == phaseVictory:
		g.drawCenteredMessage(dst, "TOWER CONQUERED", fmt.Sprintf("Score: %d  |  Press R for a new run", g.State().Score))
	case g.phase == phaseGameOver:
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.State().Score))
	}
}

// drawPlatform stamps one platform's cells through the camera.
func (g *Game) drawPlatform(dst *core.Screen, p world.PlatformView) {
	glyph, color := g.texture(p.Texture)
	x0 := int(math.Round(p.Bounds.X - g.frame.Camera.X))
	y0 := int(math.Round(p.Bounds.Y - g.frame.Camera.Y))
	w := int(math.Round(p.Bounds.W))
	h := int(math.Round(p.Bounds.H))
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			dst.SetCell(x0+dx, y0+dy, glyph, color)
		}
	}
}

// drawPlayer renders the avatar. Crouching draws the lower half only.
func (g *Game) drawPlayer(dst *core.Screen) {
	glyph := glyphRune(g.themeCfg.Player.Glyph)
	color := core.ColorByName(g.themeCfg.Player.Color)
	r := g.frame.Player
	x0 := int(math.Round(r.X - g.frame.Camera.X))
	y0 := int(math.Round(r.Y - g.frame.Camera.Y))
	w := int(math.Round(r.W))
	h := int(math.Round(r.H))

	startY := 0
	if g.frame.State == world.StateCrouching && h > 1 {
		startY = h / 2
	}
	for dy := startY; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			dst.SetCell(x0+dx, y0+dy, glyph, color)
		}
	}
}

// drawHUD writes the status row along the top of the screen.
func (g *Game) drawHUD(dst *core.Screen) {
	left := fmt.Sprintf(" Score: %d  Height: %.1f ", g.State().Score, g.climbed+g.peak)
	dst.DrawTextColor(2, 0, left, core.ColorBrightWhite)

	right := fmt.Sprintf(" Lives: %d  Level: %s ", g.lives, g.levelLabel())
	if g.difficulty.IsEnabled() {
		right = fmt.Sprintf(" Diff: %.0f%% ", 100*g.difficulty.Level(g.levelsWon, g.tickCount)) + right
	}
	dst.DrawTextColor(dst.Width()-len(right)-2, 0, right, core.ColorBrightWhite)
}

// levelLabel formats the level counter for the HUD.
func (g *Game) levelLabel() string {
	if g.mode == ModeClimb {
		return fmt.Sprintf("%d/%d", g.levelNum, g.cfg.Gameplay.RunLevels)
	}
	return fmt.Sprintf("%d", g.levelNum)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}

// texture resolves a texture token to a glyph and color.
func (g *Game) texture(token string) (rune, core.Color) {
	if gs, ok := g.themeCfg.Textures[token]; ok {
		return glyphRune(gs.Glyph), core.ColorByName(gs.Color)
	}
	return '█', core.ColorDefault
}

// resolveTheme picks the configured theme table, falling back to the
// built-in stone theme when the config does not define it.
func resolveTheme(cfg config.ClimberConfig) config.ThemeConfig {
	if th, ok := cfg.Themes[cfg.Generation.Theme]; ok {
		return th
	}
	return config.DefaultThemes()["stone"]
}

// glyphRune returns the first rune of a theme glyph string.
func glyphRune(s string) rune {
	for _, r := range s {
		return r
	}
	return '█'
}

// clip shortens a message to fit inside a banner box.
func clip(s string, max int) string {
	if max < 4 || len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}

// Register both modes with the registry
func init() {
	registry.Register("climb", func() registry.Game {
		return New(ModeClimb)
	})
	registry.Register("endless", func() registry.Game {
		return New(ModeEndless)
	})
}
