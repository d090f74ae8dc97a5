package geom

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestVecAddCommutative(t *testing.T) {
	tests := []struct {
		name string
		a, b Vec2
	}{
		{"positive", V(1, 2), V(3, 4)},
		{"negative", V(-5, 2.5), V(3, -7)},
		{"with zero", V(0, 0), V(9.25, -1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ab := tt.a.Add(tt.b)
			ba := tt.b.Add(tt.a)
			if ab != ba {
				t.Errorf("Add not commutative: %v vs %v", ab, ba)
			}
		})
	}
}

func TestVecDotCommutative(t *testing.T) {
	a := V(3, -4)
	b := V(-2.5, 7)
	if !almostEqual(a.Dot(b), b.Dot(a)) {
		t.Errorf("Dot not commutative: %v vs %v", a.Dot(b), b.Dot(a))
	}
	if got := V(3, 4).Dot(V(3, 4)); !almostEqual(got, 25) {
		t.Errorf("Dot self = %v, want 25", got)
	}
}

func TestVecNormalize(t *testing.T) {
	tests := []struct {
		name string
		v    Vec2
		want Vec2
	}{
		{"unit x", V(5, 0), V(1, 0)},
		{"unit y", V(0, -2), V(0, -1)},
		{"diagonal", V(3, 4), V(0.6, 0.8)},
		{"zero stays zero", V(0, 0), V(0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.v.Normalize()
			if !almostEqual(got.X, tt.want.X) || !almostEqual(got.Y, tt.want.Y) {
				t.Errorf("Normalize(%v) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestVecNormalizeZeroNoNaN(t *testing.T) {
	got := V(0, 0).Normalize()
	if math.IsNaN(got.X) || math.IsNaN(got.Y) {
		t.Fatalf("Normalize(zero) produced NaN: %v", got)
	}
}

func TestVecLen(t *testing.T) {
	if got := V(3, 4).Len(); !almostEqual(got, 5) {
		t.Errorf("Len = %v, want 5", got)
	}
	if got := V(3, 4).LenSq(); !almostEqual(got, 25) {
		t.Errorf("LenSq = %v, want 25", got)
	}
	if got := V(1, 1).Dist(V(4, 5)); !almostEqual(got, 5) {
		t.Errorf("Dist = %v, want 5", got)
	}
}

func TestVecValueSemantics(t *testing.T) {
	v := V(1, 2)
	_ = v.Add(V(10, 10))
	_ = v.Scale(3)
	if v != (Vec2{X: 1, Y: 2}) {
		t.Errorf("operations mutated receiver: %v", v)
	}
}

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want bool
	}{
		{"overlapping", R(0, 0, 10, 10), R(5, 5, 10, 10), true},
		{"contained", R(0, 0, 100, 100), R(20, 20, 10, 10), true},
		{"separate", R(0, 0, 10, 10), R(20, 20, 5, 5), false},
		{"touching edges", R(0, 0, 10, 10), R(10, 0, 10, 10), false},
		{"touching corners", R(0, 0, 10, 10), R(10, 10, 10, 10), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersects(tt.b); got != tt.want {
				t.Errorf("Intersects = %v, want %v", got, tt.want)
			}
			if got := tt.b.Intersects(tt.a); got != tt.want {
				t.Errorf("Intersects (swapped) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := R(10, 10, 20, 20)
	tests := []struct {
		name string
		p    Vec2
		want bool
	}{
		{"center", V(20, 20), true},
		{"top-left inclusive", V(10, 10), true},
		{"bottom-right exclusive", V(30, 30), false},
		{"outside", V(5, 5), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestRectEdgesAndCenter(t *testing.T) {
	r := R(2, 3, 10, 20)
	if r.Right() != 12 || r.Bottom() != 23 {
		t.Errorf("edges: Right=%v Bottom=%v", r.Right(), r.Bottom())
	}
	if c := r.Center(); c != V(7, 13) {
		t.Errorf("Center = %v, want (7,13)", c)
	}
}

func TestRectTranslate(t *testing.T) {
	r := R(1, 2, 3, 4).Translate(V(10, -2))
	want := R(11, 0, 3, 4)
	if r != want {
		t.Errorf("Translate = %v, want %v", r, want)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name          string
		val, min, max float64
		want          float64
	}{
		{"below", -5, 0, 10, 0},
		{"above", 15, 0, 10, 10},
		{"inside", 5, 0, 10, 5},
		{"inverted range pins to midpoint", 3, 10, 0, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.val, tt.min, tt.max); got != tt.want {
				t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.val, tt.min, tt.max, got, tt.want)
			}
		})
	}
}
