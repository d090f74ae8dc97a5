package physics

import "github.com/vovakirdan/tui-climber/internal/geom"

// Side identifies which side of the body made contact, from the body's
// point of view: SideBottom means the body's underside rests on the top
// surface of a platform. The set is closed; switches over it are
// exhaustive and there is no catch-all contact kind.
type Side int

const (
	SideNone Side = iota
	SideTop
	SideBottom
	SideLeft
	SideRight
)

// String returns a human-readable side name.
func (s Side) String() string {
	switch s {
	case SideTop:
		return "top"
	case SideBottom:
		return "bottom"
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "none"
	}
}

// Contact records one resolved overlap for the current tick. Contacts
// are rebuilt from scratch every tick and must not be retained across
// ticks; Platform indexes the box slice passed to Resolve and means
// nothing once the level changes.
type Contact struct {
	Platform int
	Side     Side
	Depth    float64   // penetration before resolution, >= 0
	Normal   geom.Vec2 // unit vector pointing out of the platform
}

// Resolve separates the body from every box it overlaps and reports a
// contact per overlap. Boxes are visited in ascending index order and
// each resolution works from the position already corrected by the
// previous ones, so stacked overlaps cannot fight each other.
//
// The resolution axis is the one with the smaller intersection extent;
// an exact tie goes to the vertical axis, so landing on a corner counts
// as standing. The displacement along that axis is the full push-out
// distance (to the nearer face), which can exceed the intersection
// extent when the body spans past the box. The velocity component along
// the resolved axis is reflected scaled by restitution when it points
// into the platform, which for the player's zero restitution just kills
// it.
//
// Resolve cannot fail. Box validity (positive extent) is a level
// construction invariant, checked there.
func Resolve(b *Body, boxes []geom.Rect) []Contact {
	var contacts []Contact

	for i, box := range boxes {
		r := b.Rect()
		if !r.Intersects(box) {
			continue
		}

		interX := geom.Min(r.Right(), box.Right()) - geom.Max(r.X, box.X)
		interY := geom.Min(r.Bottom(), box.Bottom()) - geom.Max(r.Y, box.Y)

		c := Contact{Platform: i}
		if interY <= interX {
			if r.CenterY() < box.CenterY() {
				// Body above: rests on the platform top.
				c.Depth = r.Bottom() - box.Y
				b.Pos.Y -= c.Depth
				c.Side = SideBottom
				c.Normal = geom.Vec2{Y: -1}
				if b.Vel.Y > 0 {
					b.Vel.Y = -b.Vel.Y * b.Restitution
				}
			} else {
				// Body below: bumped its head.
				c.Depth = box.Bottom() - r.Y
				b.Pos.Y += c.Depth
				c.Side = SideTop
				c.Normal = geom.Vec2{Y: 1}
				if b.Vel.Y < 0 {
					b.Vel.Y = -b.Vel.Y * b.Restitution
				}
			}
		} else {
			if r.CenterX() < box.CenterX() {
				c.Depth = r.Right() - box.X
				b.Pos.X -= c.Depth
				c.Side = SideRight
				c.Normal = geom.Vec2{X: -1}
				if b.Vel.X > 0 {
					b.Vel.X = -b.Vel.X * b.Restitution
				}
			} else {
				c.Depth = box.Right() - r.X
				b.Pos.X += c.Depth
				c.Side = SideLeft
				c.Normal = geom.Vec2{X: 1}
				if b.Vel.X < 0 {
					b.Vel.X = -b.Vel.X * b.Restitution
				}
			}
		}
		contacts = append(contacts, c)
	}

	return contacts
}

// Grounded reports whether any contact has the body standing on a
// platform. The verdict feeds the next tick's friction and jump checks.
func Grounded(contacts []Contact) bool {
	for _, c := range contacts {
		if c.Side == SideBottom {
			return true
		}
	}
	return false
}
