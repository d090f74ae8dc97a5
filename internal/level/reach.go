package level

import "github.com/vovakirdan/tui-climber/internal/geom"

// Trajectory sampling resolution. The step is fine enough that a
// falling arc cannot pass through a one cell thick platform at the
// speeds sane profiles produce, and the time cap outlives any drop a
// level of the permitted height can ask for.
const (
	arcDt        = 1.0 / 60
	maxArcTime   = 4.0
	launchStride = 6.0
	edgeInset    = 0.5
)

// Horizontal speeds tried per launch point, as fractions of the
// profile's MaxSpeed. Both directions, including the straight-up jump.
var speedFractions = [...]float64{-1, -0.75, -0.5, -0.25, 0, 0.25, 0.5, 0.75, 1}

// validator owns the reachability scratch: node maps, adjacency and
// visit marks indexed by platform slot. Generate reuses one validator
// across retries so repeated proofs do not reallocate; the scratch
// never escapes and dies with the validator.
type validator struct {
	statics []int // static platform indices, ascending
	node    []int // platform index -> node id (spawn is node 0); -1 for moving
	adj     [][]int
	visited []bool
	queue   []int
	launch  []geom.Vec2
}

func newValidator() *validator {
	return &validator{}
}

// Validate proves that every static platform of the level can be
// reached from spawn under the jump profile. On failure it returns an
// UnreachableError naming every platform the proof could not reach.
//
// The proof walks jump arcs between platform top surfaces: the model is
// a point launched with the profile's impulse at sampled horizontal
// speeds, landing on the first top surface it falls onto, blocked by
// any platform volume it hits from the side or below. Moving platforms
// are bonus geometry and take no part, as landing spot or as obstacle.
//
// Cost is O(P²) in trajectory checks against the platform count, which
// is fine for the intended scale of a few hundred platforms.
func Validate(l *Level, profile JumpProfile) error {
	if err := l.Validate(); err != nil {
		return err
	}
	if err := profile.Validate(); err != nil {
		return err
	}
	return newValidator().validate(l, profile)
}

// validate runs one proof over reusable scratch. Callers guarantee the
// level and profile are structurally valid.
func (v *validator) validate(l *Level, profile JumpProfile) error {
	v.reset(l)

	// The platform under the spawn point is reached by standing there.
	support := v.supportOf(l)
	if support >= 0 {
		v.adj[0] = append(v.adj[0], v.node[support])
	}
	v.edgesFrom(l, profile, 0, support, l.Spawn)

	for _, pi := range v.statics {
		v.collectLaunchPoints(l.Platforms[pi].Bounds)
		for _, pt := range v.launch {
			v.edgesFrom(l, profile, v.node[pi], pi, pt)
		}
	}

	// BFS from spawn.
	v.queue = v.queue[:0]
	v.queue = append(v.queue, 0)
	v.visited[0] = true
	for head := 0; head < len(v.queue); head++ {
		for _, next := range v.adj[v.queue[head]] {
			if !v.visited[next] {
				v.visited[next] = true
				v.queue = append(v.queue, next)
			}
		}
	}

	var unreached []int
	for i, pi := range v.statics {
		if !v.visited[i+1] {
			unreached = append(unreached, pi)
		}
	}
	if len(unreached) > 0 {
		return &UnreachableError{PlatformIDs: unreached}
	}
	return nil
}

// reset sizes the scratch for the level, reusing capacity from earlier
// proofs.
func (v *validator) reset(l *Level) {
	np := len(l.Platforms)
	if cap(v.node) < np {
		v.node = make([]int, np)
	}
	v.node = v.node[:np]
	v.statics = v.statics[:0]
	for i, p := range l.Platforms {
		if p.Kind == KindStatic {
			v.node[i] = len(v.statics) + 1
			v.statics = append(v.statics, i)
		} else {
			v.node[i] = -1
		}
	}

	n := len(v.statics) + 1
	if cap(v.adj) < n {
		v.adj = make([][]int, n)
	}
	v.adj = v.adj[:n]
	for i := range v.adj {
		v.adj[i] = v.adj[i][:0]
	}
	if cap(v.visited) < n {
		v.visited = make([]bool, n)
	}
	v.visited = v.visited[:n]
	for i := range v.visited {
		v.visited[i] = false
	}
}

// supportOf returns the static platform the spawn point stands on, or
// -1 when nothing supports it.
func (v *validator) supportOf(l *Level) int {
	const eps = 1e-6
	for _, pi := range v.statics {
		b := l.Platforms[pi].Bounds
		if geom.Abs(b.Y-l.Spawn.Y) < eps && l.Spawn.X >= b.X && l.Spawn.X <= b.Right() {
			return pi
		}
	}
	return -1
}

// collectLaunchPoints fills the launch buffer with surface points along
// a platform top: both edges, the midpoint, and a stride of extra
// points on wide platforms.
func (v *validator) collectLaunchPoints(b geom.Rect) {
	v.launch = v.launch[:0]
	y := b.Y
	left := b.X + edgeInset
	right := b.Right() - edgeInset
	if right < left {
		left = b.CenterX()
		right = left
	}
	v.launch = append(v.launch, geom.V(left, y), geom.V(right, y))
	if right-left > 1 {
		v.launch = append(v.launch, geom.V(b.CenterX(), y))
	}
	for x := left + launchStride; x < right-1; x += launchStride {
		v.launch = append(v.launch, geom.V(x, y))
	}
}

// edgesFrom records an edge for every platform some arc from this
// launch point lands on. Duplicate edges are harmless to the BFS and
// not worth deduplicating.
func (v *validator) edgesFrom(l *Level, profile JumpProfile, srcNode, srcPlat int, from geom.Vec2) {
	for _, f := range speedFractions {
		land, ok := v.arcLand(l, from, f*profile.MaxSpeed, profile, srcPlat)
		if !ok || land == srcPlat {
			continue
		}
		v.adj[srcNode] = append(v.adj[srcNode], v.node[land])
	}
}

// arcLand follows one jump arc from a surface point. It returns the
// platform the arc first falls onto, or ok=false when the arc is
// occluded (enters a platform volume from the side or below) or leaves
// the level without landing.
func (v *validator) arcLand(l *Level, from geom.Vec2, vx float64, profile JumpProfile, srcPlat int) (int, bool) {
	pos := from
	vy := -profile.Impulse
	cleared := srcPlat < 0
	steps := int(maxArcTime / arcDt)

	for s := 0; s < steps; s++ {
		vy += profile.Gravity * arcDt
		prev := pos
		pos = geom.V(pos.X+vx*arcDt, pos.Y+vy*arcDt)

		if pos.X < l.Bounds.X || pos.X > l.Bounds.Right() || pos.Y > l.Bounds.Bottom() {
			return 0, false
		}

		for k := range l.Platforms {
			p := &l.Platforms[k]
			if p.Kind != KindStatic {
				continue
			}
			if !p.Bounds.Contains(pos) {
				continue
			}
			if k == srcPlat && !cleared {
				continue
			}
			if vy > 0 && prev.Y <= p.Bounds.Y {
				return k, true
			}
			return 0, false
		}

		if !cleared && !l.Platforms[srcPlat].Bounds.Contains(pos) {
			cleared = true
		}
	}
	return 0, false
}
