package physics

import (
	"errors"
	"math"
	"testing"

	"github.com/vovakirdan/tui-climber/internal/core"
	"github.com/vovakirdan/tui-climber/internal/geom"
)

func validParams() BodyParams {
	return BodyParams{
		Pos:      geom.V(0, 0),
		W:        2,
		H:        2,
		Mass:     1,
		Friction: 0.85,
	}
}

func TestNewBodyValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*BodyParams)
		wantErr bool
	}{
		{"valid", func(p *BodyParams) {}, false},
		{"zero mass", func(p *BodyParams) { p.Mass = 0 }, true},
		{"negative mass", func(p *BodyParams) { p.Mass = -3 }, true},
		{"zero width", func(p *BodyParams) { p.W = 0 }, true},
		{"negative height", func(p *BodyParams) { p.H = -1 }, true},
		{"friction above one", func(p *BodyParams) { p.Friction = 1.5 }, true},
		{"negative friction", func(p *BodyParams) { p.Friction = -0.1 }, true},
		{"restitution above one", func(p *BodyParams) { p.Restitution = 2 }, true},
		{"negative max fall", func(p *BodyParams) { p.MaxFall = -10 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validParams()
			tt.mutate(&p)
			_, err := NewBody(p)
			if tt.wantErr {
				var cfgErr *core.ConfigurationError
				if !errors.As(err, &cfgErr) {
					t.Fatalf("want ConfigurationError, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestIntegrateSemiImplicit(t *testing.T) {
	b, err := NewBody(validParams())
	if err != nil {
		t.Fatal(err)
	}
	gravity := geom.V(0, 100)
	b.Integrate(gravity, 0.01, false)

	// Velocity updates first, position uses the new velocity.
	if !almost(b.Vel.Y, 1) {
		t.Errorf("Vel.Y = %v, want 1", b.Vel.Y)
	}
	if !almost(b.Pos.Y, 0.01) {
		t.Errorf("Pos.Y = %v, want 0.01", b.Pos.Y)
	}
}

func TestIntegrateDtClamp(t *testing.T) {
	mk := func() *Body {
		b, err := NewBody(validParams())
		if err != nil {
			t.Fatal(err)
		}
		b.Vel = geom.V(3, 7)
		return b
	}

	clamped := mk()
	clamped.Integrate(geom.V(0, 100), 5.0, false)

	reference := mk()
	reference.Integrate(geom.V(0, 100), MaxDt, false)

	if clamped.Pos != reference.Pos || clamped.Vel != reference.Vel {
		t.Errorf("oversized dt not clamped: pos %v vs %v, vel %v vs %v",
			clamped.Pos, reference.Pos, clamped.Vel, reference.Vel)
	}
}

func TestIntegrateIgnoresNonPositiveDt(t *testing.T) {
	b, err := NewBody(validParams())
	if err != nil {
		t.Fatal(err)
	}
	b.Vel = geom.V(5, 5)
	before := *b
	b.Integrate(geom.V(0, 100), 0, false)
	b.Integrate(geom.V(0, 100), -1, false)
	if b.Pos != before.Pos || b.Vel != before.Vel {
		t.Errorf("non-positive dt moved the body: %+v", b)
	}
}

func TestFrictionOnlyWhileGrounded(t *testing.T) {
	mk := func() *Body {
		b, err := NewBody(validParams())
		if err != nil {
			t.Fatal(err)
		}
		b.Vel = geom.V(10, 0)
		return b
	}

	air := mk()
	air.Integrate(geom.Vec2{}, 0.01, false)
	if !almost(air.Vel.X, 10) {
		t.Errorf("airborne Vel.X = %v, want 10 (no friction)", air.Vel.X)
	}

	ground := mk()
	ground.Integrate(geom.Vec2{}, 0.01, true)
	if !almost(ground.Vel.X, 8.5) {
		t.Errorf("grounded Vel.X = %v, want 8.5", ground.Vel.X)
	}
}

func TestFrictionSettlesToRest(t *testing.T) {
	b, err := NewBody(validParams())
	if err != nil {
		t.Fatal(err)
	}
	b.Vel = geom.V(1, 0)
	for i := 0; i < 200; i++ {
		b.Integrate(geom.Vec2{}, 1.0/60, true)
	}
	if b.Vel.X != 0 {
		t.Errorf("Vel.X = %v, want exact rest", b.Vel.X)
	}
}

func TestMaxFallClamp(t *testing.T) {
	p := validParams()
	p.MaxFall = 50
	b, err := NewBody(p)
	if err != nil {
		t.Fatal(err)
	}
	b.Vel = geom.V(0, 49)
	b.Integrate(geom.V(0, 1000), 1.0/60, false)
	if b.Vel.Y > 50 {
		t.Errorf("Vel.Y = %v, want clamped to 50", b.Vel.Y)
	}
}

func TestForceAndImpulseScaleByMass(t *testing.T) {
	p := validParams()
	p.Mass = 2
	b, err := NewBody(p)
	if err != nil {
		t.Fatal(err)
	}

	b.ApplyForce(geom.V(10, 0))
	if !almost(b.Acc.X, 5) {
		t.Errorf("Acc.X = %v, want 5", b.Acc.X)
	}

	b.Integrate(geom.Vec2{}, 0.1, false)
	if b.Acc != (geom.Vec2{}) {
		t.Errorf("Acc = %v, want cleared after Integrate", b.Acc)
	}

	b.Vel = geom.Vec2{}
	b.ApplyImpulse(geom.V(0, -8))
	if !almost(b.Vel.Y, -4) {
		t.Errorf("Vel.Y = %v, want -4", b.Vel.Y)
	}
}

func TestIntegrateDeterminism(t *testing.T) {
	run := func() *Body {
		b, err := NewBody(validParams())
		if err != nil {
			t.Fatal(err)
		}
		b.Pos = geom.V(3.5, -2.25)
		for i := 0; i < 600; i++ {
			if i%37 == 0 {
				b.ApplyImpulse(geom.V(1.5, -6))
			}
			b.ApplyForce(geom.V(0.25, 0))
			b.Integrate(geom.V(0, 98), 1.0/60, i%5 == 0)
		}
		return b
	}

	a, b := run(), run()
	if a.Pos != b.Pos || a.Vel != b.Vel {
		t.Errorf("identical runs diverged: pos %v vs %v, vel %v vs %v",
			a.Pos, b.Pos, a.Vel, b.Vel)
	}
}

func almost(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
