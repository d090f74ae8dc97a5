// Package level defines the platform layout model, the procedural
// generators that produce candidate layouts, and the reachability
// validator that proves every accepted level completable before the
// world ever sees it.
package level

import (
	"github.com/vovakirdan/tui-climber/internal/core"
	"github.com/vovakirdan/tui-climber/internal/geom"
)

// Kind tags a platform as fixed or patrolling. The set is closed:
// code switching on Kind handles both cases explicitly, there is no
// default platform behavior.
type Kind int

const (
	KindStatic Kind = iota
	KindMoving
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindMoving:
		return "moving"
	default:
		return "static"
	}
}

// Patrol describes the horizontal travel of a moving platform: the
// platform oscillates between its origin and origin + SpanX at Speed.
// Zero value means no movement.
type Patrol struct {
	SpanX float64 // horizontal travel distance, >= 0
	Speed float64 // cells per second
}

// Platform is one solid box of a level. Bounds is the resting position;
// for moving platforms the world derives the live position from Bounds
// plus the patrol phase. Texture is an opaque token (such as "stone" or
// "goal") resolved by whatever renders the level; the simulation never
// interprets it.
type Platform struct {
	Bounds  geom.Rect
	Kind    Kind
	Texture string
	Patrol  Patrol
}

// SweptBounds returns the union of every position the platform can
// occupy over a full patrol. Static platforms return Bounds unchanged.
func (p Platform) SweptBounds() geom.Rect {
	if p.Kind != KindMoving || p.Patrol.SpanX == 0 {
		return p.Bounds
	}
	b := p.Bounds
	if p.Patrol.SpanX > 0 {
		b.W += p.Patrol.SpanX
	} else {
		b.X += p.Patrol.SpanX
		b.W -= p.Patrol.SpanX
	}
	return b
}

// Level is one generated playfield. Platforms keep their slice order
// for the lifetime of the level; the index is the platform's identity
// in contacts, reachability reports and render state.
//
// Spawn is the player's standing point: feet on a platform surface.
// Goal indexes the platform that completes the level when stood on.
type Level struct {
	Bounds    geom.Rect
	Platforms []Platform
	Spawn     geom.Vec2
	Theme     string
	Goal      int
}

// Validate checks the structural invariants a level must satisfy before
// the world installs it. Violations are ConfigurationErrors: a level
// that fails here is discarded, the simulation itself never re-checks.
func (l *Level) Validate() error {
	if l.Bounds.W <= 0 || l.Bounds.H <= 0 {
		return core.ConfigErrorf("level.bounds", "extent must be positive, got %gx%g", l.Bounds.W, l.Bounds.H)
	}
	if len(l.Platforms) == 0 {
		return core.ConfigErrorf("level.platforms", "level has no platforms")
	}
	for i, p := range l.Platforms {
		if p.Bounds.W <= 0 || p.Bounds.H <= 0 {
			return core.ConfigErrorf("level.platforms", "platform %d has degenerate bounds %+v", i, p.Bounds)
		}
		if !l.Bounds.ContainsRect(p.SweptBounds()) {
			return core.ConfigErrorf("level.platforms", "platform %d leaves level bounds (swept %+v)", i, p.SweptBounds())
		}
		if p.Kind == KindMoving && (p.Patrol.SpanX < 0 || p.Patrol.Speed < 0) {
			return core.ConfigErrorf("level.platforms", "platform %d has negative patrol values", i)
		}
	}
	if !l.Bounds.Contains(l.Spawn) {
		return core.ConfigErrorf("level.spawn", "spawn %v outside level bounds", l.Spawn)
	}
	if !l.spawnSupported() {
		return core.ConfigErrorf("level.spawn", "spawn %v does not stand on a static platform", l.Spawn)
	}
	if l.Goal < 0 || l.Goal >= len(l.Platforms) {
		return core.ConfigErrorf("level.goal", "goal index %d out of range", l.Goal)
	}
	if l.Platforms[l.Goal].Kind != KindStatic {
		return core.ConfigErrorf("level.goal", "goal platform %d must be static", l.Goal)
	}
	return nil
}

// spawnSupported reports whether the spawn point rests on the top
// surface of some static platform.
func (l *Level) spawnSupported() bool {
	const eps = 1e-6
	for _, p := range l.Platforms {
		if p.Kind != KindStatic {
			continue
		}
		if geom.Abs(p.Bounds.Y-l.Spawn.Y) < eps &&
			l.Spawn.X >= p.Bounds.X && l.Spawn.X <= p.Bounds.Right() {
			return true
		}
	}
	return false
}

// StaticCount returns how many platforms are static. Only those take
// part in the reachability proof.
func (l *Level) StaticCount() int {
	n := 0
	for _, p := range l.Platforms {
		if p.Kind == KindStatic {
			n++
		}
	}
	return n
}
