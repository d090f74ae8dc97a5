package level

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-climber/internal/core"
	"github.com/vovakirdan/tui-climber/internal/geom"
)

// JumpProfile is the player capability the generator designs against
// and the validator proves against. All three values are magnitudes in
// world units (cells and seconds).
type JumpProfile struct {
	Impulse  float64 // upward launch speed of a full jump
	MaxSpeed float64 // maximum horizontal speed, either direction
	Gravity  float64 // downward acceleration
}

// Validate rejects physically meaningless profiles. A profile whose
// envelope cannot clear even a one cell rise is rejected here rather
// than generating levels that can never validate.
func (p JumpProfile) Validate() error {
	if p.Gravity <= 0 {
		return core.ConfigErrorf("physics.gravity", "must be positive, got %g", p.Gravity)
	}
	if p.Impulse <= 0 {
		return core.ConfigErrorf("physics.jump_impulse", "must be positive, got %g", p.Impulse)
	}
	if p.MaxSpeed <= 0 {
		return core.ConfigErrorf("physics.move_speed", "must be positive, got %g", p.MaxSpeed)
	}
	if p.MaxRise() < 1 {
		return core.ConfigErrorf("physics.jump_impulse",
			"jump impulse %g cannot clear a single cell under gravity %g", p.Impulse, p.Gravity)
	}
	if p.MaxRange() < 2 {
		return core.ConfigErrorf("physics.move_speed",
			"jump range %.2f too short to cross any gap", p.MaxRange())
	}
	return nil
}

// MaxRise returns the apex height of a full jump.
func (p JumpProfile) MaxRise() float64 {
	return p.Impulse * p.Impulse / (2 * p.Gravity)
}

// MaxRange returns the horizontal distance of a full jump that lands at
// launch height, at full horizontal speed.
func (p JumpProfile) MaxRange() float64 {
	return 2 * p.Impulse / p.Gravity * p.MaxSpeed
}

// Layout safety factors. Styles place platforms inside this fraction of
// the jump envelope so that candidates validate on the first or second
// attempt instead of fighting the retry budget.
const (
	riseSafety = 0.6
	runSafety  = 0.5
)

// SafeRise returns the vertical step styles build with.
func (p JumpProfile) SafeRise() float64 {
	return geom.Max(1, p.MaxRise()*riseSafety)
}

// SafeRun returns the horizontal step styles build with.
func (p JumpProfile) SafeRun() float64 {
	return geom.Max(2, p.MaxRange()*runSafety)
}

// GenParams configures one level generation.
type GenParams struct {
	Width, Height float64 // level bounds in cells

	// Density scales how many platforms the styles aim for, expressed
	// as platforms per 100 square cells, in (0, 1].
	Density float64

	// TowerMin and TowerMax bound the vertical rhythm of a layout:
	// how many tiers a tower or ridge climbs before it tops out.
	TowerMin, TowerMax int

	// Style selects the registered architectural style.
	Style string

	// MovingShare is the fraction of extra patrolling platforms added
	// after validation, relative to the static count. They are bonus
	// geometry and never part of the reachability proof.
	MovingShare float64

	// Theme is the texture family token stamped on the level.
	Theme string

	Seed int64
}

// Validate rejects out-of-range generation parameters.
func (p GenParams) Validate() error {
	if p.Width < 30 || p.Height < 20 {
		return core.ConfigErrorf("generation.size", "level must be at least 30x20, got %gx%g", p.Width, p.Height)
	}
	if p.Density <= 0 || p.Density > 1 {
		return core.ConfigErrorf("generation.density", "must be in (0,1], got %g", p.Density)
	}
	if p.TowerMin < 1 {
		return core.ConfigErrorf("generation.tower_min", "must be at least 1, got %d", p.TowerMin)
	}
	if p.TowerMax < p.TowerMin {
		return core.ConfigErrorf("generation.tower_max", "must be >= tower_min, got %d < %d", p.TowerMax, p.TowerMin)
	}
	if p.MovingShare < 0 || p.MovingShare > 0.5 {
		return core.ConfigErrorf("generation.moving_share", "must be in [0,0.5], got %g", p.MovingShare)
	}
	if p.Style == "" {
		return core.ConfigErrorf("generation.style", "style must be set")
	}
	return nil
}

// budget returns how many static platforms (beyond the ground) a layout
// aims for under these params.
func (p GenParams) budget() int {
	n := int(p.Density * p.Width * p.Height / 100)
	if n < 4 {
		n = 4
	}
	return n
}

// Generation limits. A candidate that fails the proof gets a few local
// repairs; a candidate that cannot be repaired is thrown away and the
// layout rerolls with a shifted seed. After MaxAttempts the failure is
// terminal and the parameters, not the dice, are the problem.
const (
	MaxAttempts  = 5
	repairBudget = 3
	reseedStep   = 12345
)

// Generate produces a validated level: laid out by the selected style,
// proven fully reachable under the jump profile, then garnished with
// moving bonus platforms. It is synchronous and deterministic per seed;
// callers wanting overlap with play run it on their own goroutine.
//
// ctx is only consulted between attempts, never mid-proof, so a cancel
// returns promptly without tearing down a half-built scratch.
func Generate(ctx context.Context, params GenParams, profile JumpProfile) (Level, error) {
	if err := profile.Validate(); err != nil {
		return Level{}, err
	}
	if err := params.Validate(); err != nil {
		return Level{}, err
	}
	style, ok := StyleByID(params.Style)
	if !ok {
		return Level{}, core.ConfigErrorf("generation.style", "unknown architectural style %q", params.Style)
	}

	v := newValidator()
	seed := params.Seed
	var lastErr error

	for attempt := 0; attempt < MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return Level{}, fmt.Errorf("level: generation cancelled: %w", err)
		}

		rng := rand.New(rand.NewSource(seed))
		platforms, spawn := style.Layout(rng, params, profile)
		cand := Level{
			Bounds:    geom.R(0, 0, params.Width, params.Height),
			Platforms: platforms,
			Spawn:     spawn,
			Theme:     params.Theme,
			Goal:      topmostStatic(platforms),
		}
		cand.Platforms[cand.Goal].Texture = "goal"
		if err := cand.Validate(); err != nil {
			// A style produced a structurally broken layout; that is a
			// bug in the style, not bad luck, so do not reroll it away.
			return Level{}, err
		}

		err := v.validate(&cand, profile)
		for repair := 0; err != nil && repair < repairBudget; repair++ {
			if cerr := ctx.Err(); cerr != nil {
				return Level{}, fmt.Errorf("level: generation cancelled: %w", cerr)
			}
			var unreach *UnreachableError
			if !errors.As(err, &unreach) {
				return Level{}, err
			}
			bridge, ok := bridgeFor(&cand, unreach)
			if !ok {
				break
			}
			cand.Platforms = append(cand.Platforms, bridge)
			err = v.validate(&cand, profile)
		}

		if err == nil {
			addMovingPlatforms(rng, &cand, params)
			return cand, nil
		}
		lastErr = err
		seed += reseedStep
	}

	return Level{}, &GenerationError{
		Attempts: MaxAttempts,
		Hint: fmt.Sprintf("jump impulse %.1f too low for requested platform density %.2f",
			profile.Impulse, params.Density),
		Err: lastErr,
	}
}

// topmostStatic returns the index of the highest static platform, the
// one the generator marks as the goal. Ties go to the first index.
func topmostStatic(platforms []Platform) int {
	best := 0
	bestY := platforms[0].Bounds.Y
	for i, p := range platforms {
		if p.Kind != KindStatic {
			continue
		}
		if p.Bounds.Y < bestY {
			best, bestY = i, p.Bounds.Y
		}
	}
	return best
}

// bridgeFor builds one connecting platform between the reachable set
// and the nearest unreachable platform. The bridge lands midway between
// the two top surfaces; if that spot is occupied it walks upward a few
// cells before giving up, in which case the whole candidate rerolls.
func bridgeFor(l *Level, unreach *UnreachableError) (Platform, bool) {
	blocked := make(map[int]bool, len(unreach.PlatformIDs))
	for _, id := range unreach.PlatformIDs {
		blocked[id] = true
	}

	// Nearest pair by top-center distance.
	bestDist := -1.0
	var from, to geom.Vec2
	for i, p := range l.Platforms {
		if p.Kind != KindStatic || blocked[i] {
			continue
		}
		pt := geom.V(p.Bounds.CenterX(), p.Bounds.Y)
		for _, id := range unreach.PlatformIDs {
			u := l.Platforms[id]
			ut := geom.V(u.Bounds.CenterX(), u.Bounds.Y)
			d := pt.Dist(ut)
			if bestDist < 0 || d < bestDist {
				bestDist, from, to = d, pt, ut
			}
		}
	}
	if bestDist < 0 {
		return Platform{}, false
	}

	const bridgeW, bridgeH = 6, 1
	mid := from.Add(to).Scale(0.5)
	bounds := geom.R(mid.X-bridgeW/2, mid.Y, bridgeW, bridgeH)
	bounds.X = geom.Clamp(bounds.X, l.Bounds.X+1, l.Bounds.Right()-bridgeW-1)

	for lift := 0; lift < 4; lift++ {
		if bounds.Y <= l.Bounds.Y+1 {
			break
		}
		if !overlapsAny(l.Platforms, bounds, 1) {
			return Platform{
				Bounds:  bounds,
				Kind:    KindStatic,
				Texture: "stone",
			}, true
		}
		bounds.Y -= 2
	}
	return Platform{}, false
}

// addMovingPlatforms appends patrolling bonus platforms after the proof
// has accepted the static layout. They are placed clear of everything
// else over their whole sweep, so they can carry the player but never
// wall off a proven route.
func addMovingPlatforms(rng *rand.Rand, l *Level, params GenParams) {
	count := int(params.MovingShare * float64(l.StaticCount()))
	if count == 0 {
		return
	}

	ground := l.Platforms[0].Bounds
	for placed, tries := 0, 0; placed < count && tries < count*20; tries++ {
		w := 4 + rng.Float64()*3
		span := 6 + rng.Float64()*8
		xRange := l.Bounds.W - w - span - 2
		yRange := ground.Y - 8 - l.Bounds.Y
		if xRange <= 0 || yRange <= 0 {
			return
		}
		p := Platform{
			Kind:    KindMoving,
			Texture: "plank",
			Patrol: Patrol{
				SpanX: span,
				Speed: 3 + rng.Float64()*3,
			},
		}
		x := l.Bounds.X + 1 + rng.Float64()*xRange
		y := l.Bounds.Y + 4 + rng.Float64()*yRange
		p.Bounds = geom.R(x, y, w, 1)

		// Clearance of three cells keeps a rider's head room and never
		// caps a static landing spot.
		if overlapsAny(l.Platforms, p.SweptBounds(), 3) {
			continue
		}
		if !l.Bounds.ContainsRect(p.SweptBounds()) {
			continue
		}
		l.Platforms = append(l.Platforms, p)
		placed++
	}
}

// overlapsAny reports whether the rect, inflated by the margin on every
// side, intersects any existing platform's swept bounds.
func overlapsAny(platforms []Platform, r geom.Rect, margin float64) bool {
	inflated := geom.R(r.X-margin, r.Y-margin, r.W+2*margin, r.H+2*margin)
	for _, p := range platforms {
		if inflated.Intersects(p.SweptBounds()) {
			return true
		}
	}
	return false
}
