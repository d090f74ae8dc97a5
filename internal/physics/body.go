// Package physics implements the rigid body integrator and the AABB
// collision resolver for the climb simulation. It is pure logic over
// world-space geometry; platforms arrive as plain rectangles and results
// leave as contacts, so the package knows nothing about levels, input
// or rendering.
package physics

import (
	"github.com/vovakirdan/tui-climber/internal/core"
	"github.com/vovakirdan/tui-climber/internal/geom"
)

// MaxDt is the upper bound on a single integration step, in seconds.
// Longer frames are integrated as if they took MaxDt: a stalled frame
// produces slow motion instead of a teleport through geometry.
const MaxDt = 1.0 / 30

// Velocities below this magnitude snap to zero after friction, so the
// player settles instead of drifting forever.
const restVelocity = 0.01

// Body is the dynamic state of one entity. Each entity owns exactly one
// body; bodies are mutated in place by Integrate and Resolve and are
// never shared between entities.
type Body struct {
	Pos geom.Vec2 // top-left corner of the collision box
	Vel geom.Vec2
	Acc geom.Vec2 // accumulated per tick, cleared by Integrate

	W, H float64

	Mass        float64
	Friction    float64 // horizontal velocity retained per grounded step, [0,1]
	Restitution float64 // velocity bounce on resolution, [0,1]; 0 kills the component
	MaxFall     float64 // terminal fall speed; 0 disables the clamp
}

// BodyParams describes a body at construction time. Zero values are
// rejected where they have no physical meaning.
type BodyParams struct {
	Pos         geom.Vec2
	W, H        float64
	Mass        float64
	Friction    float64
	Restitution float64
	MaxFall     float64
}

// NewBody validates params and returns the body. Validation happens
// here and nowhere else: the per-tick paths trust the body and have no
// error channel.
func NewBody(p BodyParams) (*Body, error) {
	if p.W <= 0 || p.H <= 0 {
		return nil, core.ConfigErrorf("body.size", "extent must be positive, got %gx%g", p.W, p.H)
	}
	if p.Mass <= 0 {
		return nil, core.ConfigErrorf("body.mass", "must be positive, got %g", p.Mass)
	}
	if p.Friction < 0 || p.Friction > 1 {
		return nil, core.ConfigErrorf("body.friction", "must be in [0,1], got %g", p.Friction)
	}
	if p.Restitution < 0 || p.Restitution > 1 {
		return nil, core.ConfigErrorf("body.restitution", "must be in [0,1], got %g", p.Restitution)
	}
	if p.MaxFall < 0 {
		return nil, core.ConfigErrorf("body.max_fall", "must not be negative, got %g", p.MaxFall)
	}
	return &Body{
		Pos:         p.Pos,
		W:           p.W,
		H:           p.H,
		Mass:        p.Mass,
		Friction:    p.Friction,
		Restitution: p.Restitution,
		MaxFall:     p.MaxFall,
	}, nil
}

// Rect returns the body's collision box at its current position.
func (b *Body) Rect() geom.Rect {
	return geom.Rect{X: b.Pos.X, Y: b.Pos.Y, W: b.W, H: b.H}
}

// ApplyForce accumulates a force for the current tick. Acceleration is
// force over mass; the accumulator is cleared by the next Integrate.
func (b *Body) ApplyForce(f geom.Vec2) {
	b.Acc = b.Acc.Add(f.Scale(1 / b.Mass))
}

// ApplyImpulse changes velocity immediately, scaled by mass.
func (b *Body) ApplyImpulse(i geom.Vec2) {
	b.Vel = b.Vel.Add(i.Scale(1 / b.Mass))
}

// Integrate advances the body by one step of semi-implicit Euler:
// velocity first, then position with the new velocity.
//
// The grounded flag is the previous tick's resolver verdict; the caller
// carries it across the tick boundary. Friction decays horizontal
// velocity only while grounded, once per step.
//
// dt is clamped to MaxDt before use.
func (b *Body) Integrate(gravity geom.Vec2, dt float64, grounded bool) {
	if dt <= 0 {
		return
	}
	if dt > MaxDt {
		dt = MaxDt
	}

	b.Vel = b.Vel.Add(b.Acc.Add(gravity).Scale(dt))

	if grounded {
		b.Vel.X *= b.Friction
		if geom.Abs(b.Vel.X) < restVelocity {
			b.Vel.X = 0
		}
	}
	if b.MaxFall > 0 && b.Vel.Y > b.MaxFall {
		b.Vel.Y = b.MaxFall
	}

	b.Pos = b.Pos.Add(b.Vel.Scale(dt))
	b.Acc = geom.Vec2{}
}
