// Package camera implements the smoothed viewport follow used by every
// frontend. The camera tracks a world-space center point; renderers
// subtract its offset to project world geometry into view space.
package camera

import "github.com/vovakirdan/tui-climber/internal/geom"

// Camera follows a target with exponential smoothing and keeps its
// visible window inside the level. Pos is the view center in world
// coordinates.
type Camera struct {
	Pos       geom.Vec2
	Smoothing float64 // approach rate per second; higher snaps harder
}

// New returns a camera starting at the given center.
func New(pos geom.Vec2, smoothing float64) Camera {
	return Camera{Pos: pos, Smoothing: smoothing}
}

// Update moves the camera toward target by the smoothing fraction for
// this dt, capped at 1 so a long frame cannot overshoot, then clamps
// the center so the window never shows space outside bounds.
//
// On an axis where the level is smaller than the viewport the clamp
// range inverts and the camera pins to the level center instead.
func (c *Camera) Update(target geom.Vec2, viewport geom.Vec2, bounds geom.Rect, dt float64) {
	t := geom.Min(1, c.Smoothing*dt)
	c.Pos.X += (target.X - c.Pos.X) * t
	c.Pos.Y += (target.Y - c.Pos.Y) * t
	c.clamp(viewport, bounds)
}

// JumpTo recenters without smoothing, for spawn and level transitions.
func (c *Camera) JumpTo(target geom.Vec2, viewport geom.Vec2, bounds geom.Rect) {
	c.Pos = target
	c.clamp(viewport, bounds)
}

func (c *Camera) clamp(viewport geom.Vec2, bounds geom.Rect) {
	c.Pos.X = geom.Clamp(c.Pos.X, bounds.X+viewport.X/2, bounds.Right()-viewport.X/2)
	c.Pos.Y = geom.Clamp(c.Pos.Y, bounds.Y+viewport.Y/2, bounds.Bottom()-viewport.Y/2)
}

// Offset returns the world position of the view's top-left corner.
// Renderers draw world geometry at world minus offset.
func (c *Camera) Offset(viewport geom.Vec2) geom.Vec2 {
	return geom.V(c.Pos.X-viewport.X/2, c.Pos.Y-viewport.Y/2)
}
