package level

import (
	"math/rand"

	"github.com/vovakirdan/tui-climber/internal/geom"
)

// Built-in architectural styles. Each lays out platforms inside the
// safe fraction of the jump envelope so candidates validate without
// burning the retry budget; anything that still slips through is the
// validator's problem, not theirs.
func init() {
	RegisterStyle(ridgeStyle{})
	RegisterStyle(towersStyle{})
	RegisterStyle(ruinsStyle{})
}

const groundHeight = 2

// ground builds the full-width base platform every style starts from.
func ground(params GenParams) Platform {
	return Platform{
		Bounds:  geom.R(0, params.Height-groundHeight, params.Width, groundHeight),
		Kind:    KindStatic,
		Texture: "grass",
	}
}

func pickTexture(rng *rand.Rand, palette []string) string {
	return palette[rng.Intn(len(palette))]
}

// ridgeStyle climbs in switchbacks: a staircase of ledges walking one
// way until it meets a wall, then turning back, like a mountain trail.
type ridgeStyle struct{}

func (ridgeStyle) ID() string    { return "ridge" }
func (ridgeStyle) Title() string { return "Ridge Path" }

func (ridgeStyle) Layout(rng *rand.Rand, params GenParams, profile JumpProfile) ([]Platform, geom.Vec2) {
	rise := profile.SafeRise()
	run := profile.SafeRun()
	palette := []string{"stone", "grass", "stone"}

	base := ground(params)
	platforms := []Platform{base}

	tiers := params.TowerMin + rng.Intn(params.TowerMax-params.TowerMin+1)
	budget := params.budget()

	x := 4 + rng.Float64()*8
	y := base.Bounds.Y
	dir := 1.0
	spawn := geom.V(x+2, base.Bounds.Y)

	for t := 0; t < tiers && len(platforms)-1 < budget; t++ {
		y -= rise * (0.8 + rng.Float64()*0.2)
		if y < 4 {
			break
		}
		w := 5 + rng.Float64()*4
		x += dir * run * (0.55 + rng.Float64()*0.35)
		if x < 1 {
			x = 1
			dir = 1
		}
		if x+w > params.Width-1 {
			x = params.Width - 1 - w
			dir = -1
		}
		platforms = append(platforms, Platform{
			Bounds:  geom.R(x, y, w, 1),
			Kind:    KindStatic,
			Texture: pickTexture(rng, palette),
		})
	}

	return platforms, spawn
}

// towersStyle raises vertical towers of alternating ledges off the
// ground, every tower climbable on its own, with occasional crossings
// between neighbors.
type towersStyle struct{}

func (towersStyle) ID() string    { return "towers" }
func (towersStyle) Title() string { return "Watchtowers" }

func (towersStyle) Layout(rng *rand.Rand, params GenParams, profile JumpProfile) ([]Platform, geom.Vec2) {
	rise := profile.SafeRise()
	palette := []string{"stone", "brick", "stone"}

	base := ground(params)
	platforms := []Platform{base}

	budget := params.budget()
	avgTiers := (params.TowerMin + params.TowerMax) / 2
	if avgTiers < 1 {
		avgTiers = 1
	}
	nTowers := budget / avgTiers
	if nTowers < 2 {
		nTowers = 2
	}
	if nTowers > 6 {
		nTowers = 6
	}

	spacing := params.Width / float64(nTowers+1)
	var prevAxis float64

	for tw := 0; tw < nTowers && len(platforms)-1 < budget; tw++ {
		axis := spacing*float64(tw+1) + (rng.Float64()-0.5)*spacing*0.3
		tiers := params.TowerMin + rng.Intn(params.TowerMax-params.TowerMin+1)
		y := base.Bounds.Y

		for t := 0; t < tiers && len(platforms)-1 < budget; t++ {
			y -= rise * (0.85 + rng.Float64()*0.15)
			if y < 4 {
				break
			}
			side := 1.0
			if t%2 == 0 {
				side = -1
			}
			w := 4 + rng.Float64()*3
			x := axis + side*(2+rng.Float64()*2.5) - w/2
			x = geom.Clamp(x, 1, params.Width-1-w)
			p := Platform{
				Bounds:  geom.R(x, y, w, 1),
				Kind:    KindStatic,
				Texture: pickTexture(rng, palette),
			}
			if overlapsAny(platforms, p.Bounds, 1) {
				continue
			}
			platforms = append(platforms, p)

			// Occasional crossing to the previous tower.
			if tw > 0 && t > 1 && rng.Float64() < 0.2 {
				bw := 6 + rng.Float64()*2
				bx := (axis+prevAxis)/2 - bw/2
				bridge := Platform{
					Bounds:  geom.R(bx, y+rise*0.4, bw, 1),
					Kind:    KindStatic,
					Texture: "plank",
				}
				if !overlapsAny(platforms, bridge.Bounds, 1) &&
					geom.R(0, 0, params.Width, params.Height).ContainsRect(bridge.Bounds) {
					platforms = append(platforms, bridge)
				}
			}
		}
		prevAxis = axis
	}

	spawn := geom.V(params.Width/2+(rng.Float64()-0.5)*8, base.Bounds.Y)
	return platforms, spawn
}

// ruinsStyle scatters ledges organically: every new ledge anchors to an
// existing one within the safe envelope, so the field stays connected
// while looking like rubble.
type ruinsStyle struct{}

func (ruinsStyle) ID() string    { return "ruins" }
func (ruinsStyle) Title() string { return "Old Ruins" }

func (ruinsStyle) Layout(rng *rand.Rand, params GenParams, profile JumpProfile) ([]Platform, geom.Vec2) {
	rise := profile.SafeRise()
	run := profile.SafeRun()
	palette := []string{"ruin", "stone", "moss"}

	base := ground(params)
	platforms := []Platform{base}

	budget := params.budget()
	maxY := 4.0

	for tries := 0; len(platforms)-1 < budget && tries < budget*30; tries++ {
		anchor := platforms[rng.Intn(len(platforms))]
		ax := anchor.Bounds.X + rng.Float64()*anchor.Bounds.W
		ay := anchor.Bounds.Y

		dy := 1 + rng.Float64()*(rise-1)
		if rng.Float64() < 0.15 {
			dy = -dy * 0.5 // occasional descent
		}
		dx := (rng.Float64()*2 - 1) * run * 0.8

		w := 4 + rng.Float64()*4
		x := geom.Clamp(ax+dx-w/2, 1, params.Width-1-w)
		y := ay - dy
		if y < maxY || y >= base.Bounds.Y-1 {
			continue
		}
		p := Platform{
			Bounds:  geom.R(x, y, w, 1),
			Kind:    KindStatic,
			Texture: pickTexture(rng, palette),
		}
		if overlapsAny(platforms, p.Bounds, 2) {
			continue
		}
		platforms = append(platforms, p)
	}

	spawn := geom.V(params.Width/2+(rng.Float64()-0.5)*10, base.Bounds.Y)
	return platforms, spawn
}
