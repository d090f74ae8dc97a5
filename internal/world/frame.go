package world

import (
	"github.com/vovakirdan/tui-climber/internal/geom"
	"github.com/vovakirdan/tui-climber/internal/level"
)

// PlatformView is one platform as the renderer sees it: live bounds
// with the patrol offset applied.
type PlatformView struct {
	Bounds  geom.Rect
	Kind    level.Kind
	Texture string
	Goal    bool
}

// Frame is a read-only snapshot of one tick, everything the render
// layer needs without reaching back into the world.
type Frame struct {
	Player    geom.Rect
	State     PlayerState
	Facing    int
	Platforms []PlatformView
	Camera    geom.Vec2 // top-left of the visible window in world space
	Bounds    geom.Rect
	Height    float64
	Elapsed   float64
	Theme     string
}

// Snapshot captures the current tick. The platform slice is rebuilt on
// every call; callers that render each tick should reuse frames via
// SnapshotInto.
func (w *World) Snapshot() Frame {
	var f Frame
	w.SnapshotInto(&f)
	return f
}

// SnapshotInto fills f in place, reusing its platform slice.
func (w *World) SnapshotInto(f *Frame) {
	f.Player = w.player.Rect()
	f.State = w.state
	f.Facing = w.facing
	f.Camera = w.cam.Offset(w.params.Viewport)
	f.Bounds = w.lvl.Bounds
	f.Height = w.Height()
	f.Elapsed = w.elapsed
	f.Theme = w.lvl.Theme

	if cap(f.Platforms) < len(w.boxes) {
		f.Platforms = make([]PlatformView, len(w.boxes))
	}
	f.Platforms = f.Platforms[:len(w.boxes)]
	for i, box := range w.boxes {
		f.Platforms[i] = PlatformView{
			Bounds:  box,
			Kind:    w.lvl.Platforms[i].Kind,
			Texture: w.lvl.Platforms[i].Texture,
			Goal:    i == w.lvl.Goal,
		}
	}
}
