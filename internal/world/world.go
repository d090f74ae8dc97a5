// Package world runs one level session: it owns the installed level,
// the player's body, the patrol state of moving platforms and the
// camera. Everything here is pure simulation; input arrives as an
// intent, results leave as events and frames.
package world

import (
	"github.com/vovakirdan/tui-climber/internal/camera"
	"github.com/vovakirdan/tui-climber/internal/geom"
	"github.com/vovakirdan/tui-climber/internal/level"
	"github.com/vovakirdan/tui-climber/internal/physics"
)

// PlayerState is the animation-facing state of the player, derived
// every tick from grounded, velocity and input.
type PlayerState int

const (
	StateIdle PlayerState = iota
	StateWalking
	StateJumping
	StateFalling
	StateCrouching
)

// String returns a human-readable state name.
func (s PlayerState) String() string {
	switch s {
	case StateWalking:
		return "walking"
	case StateJumping:
		return "jumping"
	case StateFalling:
		return "falling"
	case StateCrouching:
		return "crouching"
	default:
		return "idle"
	}
}

// Intent is the player's processed input for one tick: a desired move
// direction in [-1, 1], and the jump and crouch switches.
type Intent struct {
	Move   float64
	Jump   bool
	Crouch bool
}

// Events reports what one step did beyond moving the player.
type Events struct {
	Landed      bool // airborne last tick, grounded now
	Fell        bool // dropped out of the level and respawned
	GoalReached bool // standing on the goal platform
}

// Params configures a session. All values come validated from the
// config layer; NewWorld re-checks only what the body constructor
// enforces anyway.
type Params struct {
	PlayerW, PlayerH float64
	Gravity          float64
	JumpImpulse      float64
	MoveSpeed        float64
	CrouchFactor     float64 // move speed multiplier while crouching
	Friction         float64
	MaxFall          float64
	CoyoteTicks      int // grace ticks after leaving a ledge where jump still fires
	CameraSmoothing  float64
	Viewport         geom.Vec2
}

// World is the session context for one level. It is handed to every
// tick by its owner; nothing here is a process-wide singleton, so two
// sessions can run side by side (the SSH server does exactly that).
type World struct {
	lvl    level.Level
	player *physics.Body
	cam    camera.Camera
	params Params

	grounded bool
	coyote   int
	support  int // platform index under the player, -1 in the air
	state    PlayerState
	facing   int

	phase   []float64 // patrol phase per platform, movers only
	boxes   []geom.Rect
	offsets []float64 // current patrol offset per platform
	elapsed float64
}

// NewWorld validates and installs a level, placing the player at spawn.
func NewWorld(lvl level.Level, p Params) (*World, error) {
	if err := lvl.Validate(); err != nil {
		return nil, err
	}
	body, err := physics.NewBody(physics.BodyParams{
		Pos:      spawnTopLeft(lvl.Spawn, p),
		W:        p.PlayerW,
		H:        p.PlayerH,
		Mass:     1,
		Friction: p.Friction,
		MaxFall:  p.MaxFall,
	})
	if err != nil {
		return nil, err
	}

	w := &World{
		lvl:     lvl,
		player:  body,
		params:  p,
		support: -1,
		facing:  1,
		phase:   make([]float64, len(lvl.Platforms)),
		boxes:   make([]geom.Rect, len(lvl.Platforms)),
		offsets: make([]float64, len(lvl.Platforms)),
	}
	w.cam = camera.New(body.Rect().Center(), p.CameraSmoothing)
	w.cam.JumpTo(body.Rect().Center(), p.Viewport, lvl.Bounds)
	w.refreshBoxes()
	return w, nil
}

// spawnTopLeft converts the standing point (feet on a surface) into the
// body's top-left corner.
func spawnTopLeft(spawn geom.Vec2, p Params) geom.Vec2 {
	return geom.V(spawn.X-p.PlayerW/2, spawn.Y-p.PlayerH)
}

// Level returns the installed level.
func (w *World) Level() *level.Level {
	return &w.lvl
}

// Grounded reports last step's resolver verdict.
func (w *World) Grounded() bool {
	return w.grounded
}

// State returns the player's animation state.
func (w *World) State() PlayerState {
	return w.state
}

// PlayerRect returns the player's current collision box.
func (w *World) PlayerRect() geom.Rect {
	return w.player.Rect()
}

// Height returns how far above spawn the player's feet are, in cells.
// Negative below spawn.
func (w *World) Height() float64 {
	return w.lvl.Spawn.Y - w.player.Rect().Bottom()
}

// Step advances the session one tick. Order is fixed: intents, then
// integration with the previous tick's grounded flag, then platform
// patrol, then collision resolution in platform index order, then the
// out-of-world check, then the camera.
func (w *World) Step(in Intent, dt float64) Events {
	if dt > physics.MaxDt {
		dt = physics.MaxDt
	}
	var ev Events
	wasGrounded := w.grounded

	// Input intents.
	speed := w.params.MoveSpeed
	if in.Crouch {
		speed *= w.params.CrouchFactor
	}
	if in.Move != 0 {
		w.player.Vel.X = geom.Clamp(in.Move, -1, 1) * speed
		if in.Move > 0 {
			w.facing = 1
		} else {
			w.facing = -1
		}
	}
	if in.Jump && (w.grounded || w.coyote > 0) {
		w.player.Vel.Y = -w.params.JumpImpulse
		w.grounded = false
		w.coyote = 0
	}

	// Physics, with the grounded verdict carried over from last tick.
	w.player.Integrate(geom.V(0, w.params.Gravity), dt, w.grounded)

	// Patrolling platforms move next so resolution sees live bounds; a
	// player standing on one rides along.
	w.advancePatrols(dt)

	contacts := physics.Resolve(w.player, w.boxes)
	nowGrounded := physics.Grounded(contacts)
	w.support = -1
	for _, c := range contacts {
		if c.Side == physics.SideBottom {
			w.support = c.Platform
			break
		}
	}

	if nowGrounded {
		w.coyote = w.params.CoyoteTicks
		if !wasGrounded {
			ev.Landed = true
		}
	} else if w.coyote > 0 {
		w.coyote--
	}
	w.grounded = nowGrounded

	w.clampToBounds()
	if w.player.Pos.Y > w.lvl.Bounds.Bottom()+fallMargin {
		w.respawn()
		ev.Fell = true
	}

	if w.grounded && w.support == w.lvl.Goal {
		ev.GoalReached = true
	}

	w.state = w.deriveState(in)
	w.elapsed += dt

	w.cam.Update(w.player.Rect().Center(), w.params.Viewport, w.lvl.Bounds, dt)
	return ev
}

// fallMargin is how far below the level bottom the player may dip
// before the fall counts.
const fallMargin = 4.0

// advancePatrols moves every patrolling platform along its triangle
// wave and carries a player standing on one by the same delta.
func (w *World) advancePatrols(dt float64) {
	for i := range w.lvl.Platforms {
		p := &w.lvl.Platforms[i]
		if p.Kind != level.KindMoving || p.Patrol.SpanX <= 0 {
			continue
		}
		w.phase[i] += p.Patrol.Speed * dt
		cycle := 2 * p.Patrol.SpanX
		m := w.phase[i]
		for m >= cycle {
			m -= cycle
		}
		offset := m
		if offset > p.Patrol.SpanX {
			offset = cycle - offset
		}
		delta := offset - w.offsets[i]
		w.offsets[i] = offset

		if w.support == i {
			w.player.Pos.X += delta
		}
	}
	w.refreshBoxes()
}

// refreshBoxes rebuilds the live collision boxes from resting bounds
// plus patrol offsets.
func (w *World) refreshBoxes() {
	for i, p := range w.lvl.Platforms {
		b := p.Bounds
		b.X += w.offsets[i]
		w.boxes[i] = b
	}
}

// clampToBounds keeps the player horizontally inside the level. The top
// is open (jumps may peek above), the bottom is handled by the fall
// check.
func (w *World) clampToBounds() {
	minX := w.lvl.Bounds.X
	maxX := w.lvl.Bounds.Right() - w.player.W
	if w.player.Pos.X < minX {
		w.player.Pos.X = minX
		if w.player.Vel.X < 0 {
			w.player.Vel.X = 0
		}
	} else if w.player.Pos.X > maxX {
		w.player.Pos.X = maxX
		if w.player.Vel.X > 0 {
			w.player.Vel.X = 0
		}
	}
}

// respawn puts the player back at spawn with everything zeroed.
func (w *World) respawn() {
	w.player.Pos = spawnTopLeft(w.lvl.Spawn, w.params)
	w.player.Vel = geom.Vec2{}
	w.player.Acc = geom.Vec2{}
	w.grounded = false
	w.coyote = 0
	w.support = -1
	w.cam.JumpTo(w.player.Rect().Center(), w.params.Viewport, w.lvl.Bounds)
}

// deriveState maps the tick outcome onto the animation state machine.
func (w *World) deriveState(in Intent) PlayerState {
	switch {
	case w.grounded && in.Crouch:
		return StateCrouching
	case !w.grounded && w.player.Vel.Y < 0:
		return StateJumping
	case !w.grounded:
		return StateFalling
	case geom.Abs(w.player.Vel.X) > 0.5:
		return StateWalking
	default:
		return StateIdle
	}
}
