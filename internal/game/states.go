package game

import (
	"context"

	"github.com/vovakirdan/tui-climber/internal/core"
	"github.com/vovakirdan/tui-climber/internal/geom"
	"github.com/vovakirdan/tui-climber/internal/level"
	"github.com/vovakirdan/tui-climber/internal/world"
)

// Mode selects how a run chains levels.
type Mode int

const (
	// ModeClimb is the classic run: clear a fixed number of levels.
	ModeClimb Mode = iota
	// ModeEndless keeps generating taller towers until the lives run out.
	ModeEndless
)

// runPhase is the coarse flow state of a run.
type runPhase int

const (
	phasePlaying   runPhase = iota
	phaseLevelDone          // goal reached, banner up, next level pending
	phaseVictory            // classic climb cleared
	phaseGameOver           // out of lives
	phaseBroken             // generation failed, terminal for this config
)

// interludeTicks is how long the level-complete banner holds before the
// next level installs, unless the player jumps ahead.
const interludeTicks = 60

// genResult carries one background generation back to the game tick.
type genResult struct {
	lvl level.Level
	err error
}

// stepPlaying runs one simulation tick and applies its events to the
// run: banked height, lives, level completion.
func (g *Game) stepPlaying(in core.InputFrame) {
	var intent world.Intent
	if in.Has(core.ActionLeft) {
		intent.Move--
	}
	if in.Has(core.ActionRight) {
		intent.Move++
	}
	intent.Jump = in.Has(core.ActionJump)
	intent.Crouch = in.Has(core.ActionCrouch)

	ev := g.world.Step(intent, g.dt)

	if h := g.world.Height(); h > g.peak {
		g.peak = h
	}

	if ev.Fell {
		g.lives--
		if g.lives <= 0 {
			g.phase = phaseGameOver
			return
		}
	}

	if ev.GoalReached {
		g.levelsWon++
		g.lastClimb = g.peak
		g.climbed += g.peak
		g.peak = 0
		if g.mode == ModeClimb && g.levelsWon >= g.cfg.Gameplay.RunLevels {
			g.phase = phaseVictory
			return
		}
		g.phase = phaseLevelDone
		g.interlude = 0
	}
}

// stepInterlude holds the level-complete banner, then swaps in the next
// level as soon as its generation has delivered.
func (g *Game) stepInterlude(in core.InputFrame) {
	g.interlude++
	skip := in.Has(core.ActionJump) || in.Has(core.ActionConfirm)
	if g.interlude < interludeTicks && !skip {
		return
	}

	if g.next == nil {
		g.startNextGen()
	}
	select {
	case res := <-g.next:
		g.next = nil
		if res.err != nil {
			g.genErr = res.err
			g.phase = phaseBroken
			return
		}
		g.installLevel(res.lvl)
	default:
		// Still generating, hold the banner.
	}
}

// installLevel swaps the session to a fresh level and kicks off
// generation of the one after it.
func (g *Game) installLevel(lvl level.Level) {
	w, err := world.NewWorld(lvl, g.worldParams())
	if err != nil {
		// Generate already validated the level, so only broken player
		// params can fail here.
		g.genErr = err
		g.phase = phaseBroken
		return
	}
	g.world = w
	g.levelNum++
	g.peak = 0
	g.interlude = 0
	g.phase = phasePlaying
	g.startNextGen()
}

// startNextGen generates the following level on its own goroutine so
// the handoff after the goal is instant.
func (g *Game) startNextGen() {
	if g.mode == ModeClimb && g.levelNum >= g.cfg.Gameplay.RunLevels {
		return
	}
	params := g.genParamsFor(g.levelNum + 1)
	profile := g.cfg.Profile()
	ch := make(chan genResult, 1)
	g.next = ch
	go func() {
		lvl, err := level.Generate(context.Background(), params, profile)
		ch <- genResult{lvl: lvl, err: err}
	}()
}

// genParamsFor builds the parameters for level n (1-based), scaled by
// the difficulty the run will have reached when the level is played.
func (g *Game) genParamsFor(n int) level.GenParams {
	params := g.cfg.GenParams(levelSeed(g.seed, n))
	done := n - 1
	params.TowerMin, params.TowerMax = g.difficulty.Tiers(params.TowerMin, params.TowerMax, done, g.tickCount)
	params.Density = g.difficulty.Density(params.Density, done, g.tickCount)
	params.MovingShare = g.difficulty.MovingShare(params.MovingShare, done, g.tickCount)
	params.Height = g.difficulty.LevelHeight(params.Height, done, g.tickCount)
	return params
}

// levelSeed derives a level's seed from the run seed, so a run replays
// identically from the seed alone.
func levelSeed(run int64, n int) int64 {
	return run + int64(n)*1000003
}

// worldParams maps the loaded config onto one session.
func (g *Game) worldParams() world.Params {
	return world.Params{
		PlayerW:         g.cfg.Player.Width,
		PlayerH:         g.cfg.Player.Height,
		Gravity:         g.cfg.Physics.Gravity,
		JumpImpulse:     g.cfg.Physics.JumpImpulse,
		MoveSpeed:       g.cfg.Physics.MoveSpeed,
		CrouchFactor:    g.cfg.Player.CrouchFactor,
		Friction:        g.cfg.Physics.Friction,
		MaxFall:         g.cfg.Physics.MaxFall,
		CoyoteTicks:     g.cfg.Player.CoyoteTicks,
		CameraSmoothing: g.cfg.Camera.Smoothing,
		Viewport:        geom.V(float64(g.runtime.ScreenW), float64(g.runtime.ScreenH)),
	}
}
