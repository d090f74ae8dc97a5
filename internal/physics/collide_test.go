package physics

import (
	"testing"

	"github.com/vovakirdan/tui-climber/internal/geom"
)

func newTestBody(t *testing.T, pos geom.Vec2, w, h float64) *Body {
	t.Helper()
	b, err := NewBody(BodyParams{Pos: pos, W: w, H: h, Mass: 1, Friction: 0.85})
	if err != nil {
		t.Fatal(err)
	}
	return b
}

// A body falling onto a platform top lands on its surface: position is
// corrected upward, vertical velocity dies, and the contact reads as the
// body's bottom on the platform.
func TestResolveLanding(t *testing.T) {
	b := newTestBody(t, geom.V(10, 10), 20, 20)
	b.Vel = geom.V(0, 50)
	platform := geom.R(0, 28, 100, 10)

	b.Integrate(geom.Vec2{}, 0.1, false)
	contacts := Resolve(b, []geom.Rect{platform})

	if !almost(b.Pos.Y, 8) {
		t.Errorf("Pos.Y = %v, want 8", b.Pos.Y)
	}
	if b.Vel.Y != 0 {
		t.Errorf("Vel.Y = %v, want 0", b.Vel.Y)
	}
	if len(contacts) != 1 {
		t.Fatalf("got %d contacts, want 1", len(contacts))
	}
	c := contacts[0]
	if c.Side != SideBottom {
		t.Errorf("Side = %v, want bottom", c.Side)
	}
	// Integrate clamps dt to MaxDt, so the body sinks 50/30 cells past
	// the surface plus the 2 it already overlapped.
	if !almost(c.Depth, 50.0/30+2) {
		t.Errorf("Depth = %v, want %v", c.Depth, 50.0/30+2)
	}
	if c.Normal != geom.V(0, -1) {
		t.Errorf("Normal = %v, want (0,-1)", c.Normal)
	}
	if !Grounded(contacts) {
		t.Error("want grounded after landing")
	}
}

func TestResolveSeparatesFromEveryBox(t *testing.T) {
	tests := []struct {
		name  string
		pos   geom.Vec2
		vel   geom.Vec2
		boxes []geom.Rect
	}{
		{
			"single floor",
			geom.V(10, 22), geom.V(0, 30),
			[]geom.Rect{geom.R(0, 28, 100, 10)},
		},
		{
			"floor and wall corner",
			geom.V(12, 12), geom.V(5, 5),
			[]geom.Rect{geom.R(0, 30, 100, 10), geom.R(30, 0, 10, 40)},
		},
		{
			"straddling adjacent floors",
			geom.V(40, 15), geom.V(0, 40),
			[]geom.Rect{geom.R(0, 28, 50, 10), geom.R(50, 28, 50, 10)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBody(t, tt.pos, 20, 20)
			b.Vel = tt.vel
			b.Integrate(geom.Vec2{}, 1.0/60, false)
			Resolve(b, tt.boxes)
			for i, box := range tt.boxes {
				if b.Rect().Intersects(box) {
					t.Errorf("still overlapping box %d after resolve: body %v box %v", i, b.Rect(), box)
				}
			}
		})
	}
}

// Equal penetration on both axes resolves vertically, so landing
// exactly on a corner still counts as standing.
func TestResolveCornerTiePrefersVertical(t *testing.T) {
	b := newTestBody(t, geom.V(0, 0), 10, 10)
	b.Vel = geom.V(3, 3)
	box := geom.R(5, 5, 10, 10)

	contacts := Resolve(b, []geom.Rect{box})
	if len(contacts) != 1 {
		t.Fatalf("got %d contacts, want 1", len(contacts))
	}
	if contacts[0].Side != SideBottom {
		t.Errorf("Side = %v, want bottom", contacts[0].Side)
	}
	if !almost(b.Pos.Y, -5) {
		t.Errorf("Pos.Y = %v, want -5", b.Pos.Y)
	}
	if b.Pos.X != 0 {
		t.Errorf("Pos.X = %v, want untouched", b.Pos.X)
	}
	if !Grounded(contacts) {
		t.Error("corner landing should ground the body")
	}
}

func TestResolveWallFromLeft(t *testing.T) {
	b := newTestBody(t, geom.V(24, 0), 10, 30)
	b.Vel = geom.V(20, 0)
	wall := geom.R(30, -10, 10, 50)

	contacts := Resolve(b, []geom.Rect{wall})
	if len(contacts) != 1 {
		t.Fatalf("got %d contacts, want 1", len(contacts))
	}
	if contacts[0].Side != SideRight {
		t.Errorf("Side = %v, want right", contacts[0].Side)
	}
	if !almost(b.Pos.X, 20) {
		t.Errorf("Pos.X = %v, want 20", b.Pos.X)
	}
	if b.Vel.X != 0 {
		t.Errorf("Vel.X = %v, want 0", b.Vel.X)
	}
	if Grounded(contacts) {
		t.Error("wall contact must not ground the body")
	}
}

func TestResolveCeiling(t *testing.T) {
	b := newTestBody(t, geom.V(10, 8), 10, 10)
	b.Vel = geom.V(0, -25)
	ceiling := geom.R(0, 0, 100, 10)

	contacts := Resolve(b, []geom.Rect{ceiling})
	if len(contacts) != 1 {
		t.Fatalf("got %d contacts, want 1", len(contacts))
	}
	if contacts[0].Side != SideTop {
		t.Errorf("Side = %v, want top", contacts[0].Side)
	}
	if !almost(b.Pos.Y, 10) {
		t.Errorf("Pos.Y = %v, want 10", b.Pos.Y)
	}
	if b.Vel.Y != 0 {
		t.Errorf("Vel.Y = %v, want 0", b.Vel.Y)
	}
}

// Later boxes see the position corrected by earlier ones: a body pushed
// clear of the first floor no longer collides with its neighbor.
func TestResolveUsesCorrectedPosition(t *testing.T) {
	b := newTestBody(t, geom.V(40, 15), 20, 20)
	b.Vel = geom.V(0, 40)
	boxes := []geom.Rect{geom.R(0, 28, 50, 10), geom.R(50, 28, 50, 10)}

	b.Integrate(geom.Vec2{}, 0.1, false)
	contacts := Resolve(b, boxes)

	if len(contacts) != 1 {
		t.Fatalf("got %d contacts, want 1 (second box resolved by the first correction)", len(contacts))
	}
	if contacts[0].Platform != 0 {
		t.Errorf("Platform = %d, want 0 (ascending order)", contacts[0].Platform)
	}
	if !almost(b.Pos.Y, 8) {
		t.Errorf("Pos.Y = %v, want 8", b.Pos.Y)
	}
}

func TestResolveRestitutionBounce(t *testing.T) {
	b, err := NewBody(BodyParams{Pos: geom.V(10, 20), W: 10, H: 10, Mass: 1, Restitution: 0.5})
	if err != nil {
		t.Fatal(err)
	}
	b.Vel = geom.V(0, 10)
	floor := geom.R(0, 28, 100, 10)

	Resolve(b, []geom.Rect{floor})
	if !almost(b.Vel.Y, -5) {
		t.Errorf("Vel.Y = %v, want -5 (half bounce)", b.Vel.Y)
	}
}

func TestResolveNoOverlapNoContacts(t *testing.T) {
	b := newTestBody(t, geom.V(0, 0), 10, 10)
	contacts := Resolve(b, []geom.Rect{geom.R(50, 50, 10, 10)})
	if len(contacts) != 0 {
		t.Errorf("got %d contacts, want none", len(contacts))
	}
	if Grounded(contacts) {
		t.Error("no contacts must not ground the body")
	}
}

func TestSideString(t *testing.T) {
	tests := []struct {
		side Side
		want string
	}{
		{SideNone, "none"},
		{SideTop, "top"},
		{SideBottom, "bottom"},
		{SideLeft, "left"},
		{SideRight, "right"},
	}
	for _, tt := range tests {
		if got := tt.side.String(); got != tt.want {
			t.Errorf("Side(%d).String() = %q, want %q", tt.side, got, tt.want)
		}
	}
}
