package camera

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-climber/internal/geom"
)

var (
	testViewport = geom.V(80, 24)
	testBounds   = geom.R(0, 0, 400, 200)
)

func TestUpdateApproachesTarget(t *testing.T) {
	c := New(geom.V(100, 100), 5.0)
	target := geom.V(140, 100)

	prev := math.Abs(target.X - c.Pos.X)
	for i := 0; i < 60; i++ {
		c.Update(target, testViewport, testBounds, 1.0/60)
		d := math.Abs(target.X - c.Pos.X)
		if d > prev+1e-9 {
			t.Fatalf("camera moved away from target at step %d: %v -> %v", i, prev, d)
		}
		prev = d
	}
	if prev > 2 {
		t.Errorf("camera still %v away after a second of smoothing", prev)
	}
}

func TestUpdateLargeDtDoesNotOvershoot(t *testing.T) {
	c := New(geom.V(100, 100), 5.0)
	target := geom.V(200, 100)

	// smoothing * dt > 1 must cap at reaching the target exactly.
	c.Update(target, testViewport, testBounds, 10)
	if !almost(c.Pos.X, 200) {
		t.Errorf("Pos.X = %v, want exactly 200", c.Pos.X)
	}
}

// A target far outside the level clamps the camera so the right edge of
// the window sits on the level edge.
func TestUpdateClampsToLevelEdge(t *testing.T) {
	bounds := geom.R(0, 0, 2000, 600)
	viewport := geom.V(800, 600)
	c := New(geom.V(1000, 300), 5.0)

	for i := 0; i < 200; i++ {
		c.Update(geom.V(5000, 300), viewport, bounds, 1.0/60)
	}

	if !almost(c.Pos.X, 1600) {
		t.Errorf("Pos.X = %v, want clamped to 1600", c.Pos.X)
	}
	off := c.Offset(viewport)
	if !almost(off.X, 1200) {
		t.Errorf("Offset.X = %v, want 1200", off.X)
	}
	if !almost(off.X+viewport.X, 2000) {
		t.Errorf("window right edge = %v, want 2000", off.X+viewport.X)
	}
}

// The visible window never leaves the level, whatever the target.
func TestWindowStaysInsideBounds(t *testing.T) {
	targets := []geom.Vec2{
		geom.V(-500, -500),
		geom.V(0, 0),
		geom.V(200, 100),
		geom.V(10000, 50),
		geom.V(40, 10000),
		geom.V(399, 199),
	}

	c := New(geom.V(200, 100), 8.0)
	for _, target := range targets {
		for i := 0; i < 120; i++ {
			c.Update(target, testViewport, testBounds, 1.0/60)
			off := c.Offset(testViewport)
			if off.X < testBounds.X-1e-9 || off.X+testViewport.X > testBounds.Right()+1e-9 {
				t.Fatalf("target %v: window x [%v, %v] outside level", target, off.X, off.X+testViewport.X)
			}
			if off.Y < testBounds.Y-1e-9 || off.Y+testViewport.Y > testBounds.Bottom()+1e-9 {
				t.Fatalf("target %v: window y [%v, %v] outside level", target, off.Y, off.Y+testViewport.Y)
			}
		}
	}
}

// A level smaller than the viewport pins the camera to the level
// center on that axis.
func TestSmallLevelPinsToCenter(t *testing.T) {
	bounds := geom.R(0, 0, 50, 200)
	c := New(geom.V(0, 0), 5.0)

	for i := 0; i < 60; i++ {
		c.Update(geom.V(48, 100), testViewport, bounds, 1.0/60)
	}
	if !almost(c.Pos.X, 25) {
		t.Errorf("Pos.X = %v, want pinned to level center 25", c.Pos.X)
	}
}

func TestJumpToSnapsAndClamps(t *testing.T) {
	c := New(geom.V(200, 100), 5.0)
	c.JumpTo(geom.V(0, 0), testViewport, testBounds)
	if !almost(c.Pos.X, 40) || !almost(c.Pos.Y, 12) {
		t.Errorf("Pos = %v, want clamped to (40, 12)", c.Pos)
	}
}

func almost(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
