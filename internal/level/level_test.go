package level

import (
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-climber/internal/core"
	"github.com/vovakirdan/tui-climber/internal/geom"
)

func TestLevelValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Level)
		field  string
	}{
		{"valid", func(l *Level) {}, ""},
		{"zero bounds", func(l *Level) { l.Bounds = geom.Rect{} }, "level.bounds"},
		{"no platforms", func(l *Level) { l.Platforms = nil }, "level.platforms"},
		{"degenerate platform", func(l *Level) {
			l.Platforms[1].Bounds.W = 0
		}, "level.platforms"},
		{"platform outside bounds", func(l *Level) {
			l.Platforms[1].Bounds.X = -3
		}, "level.platforms"},
		{"mover sweep outside bounds", func(l *Level) {
			l.Platforms[1].Kind = KindMoving
			l.Platforms[1].Patrol = Patrol{SpanX: 100, Speed: 2}
		}, "level.platforms"},
		{"negative patrol speed", func(l *Level) {
			l.Platforms[1].Kind = KindMoving
			l.Platforms[1].Patrol = Patrol{SpanX: 4, Speed: -2}
		}, "level.platforms"},
		{"spawn outside bounds", func(l *Level) {
			l.Spawn = geom.V(-5, 10)
		}, "level.spawn"},
		{"spawn unsupported", func(l *Level) {
			l.Spawn = geom.V(10, 20)
		}, "level.spawn"},
		{"goal out of range", func(l *Level) { l.Goal = 9 }, "level.goal"},
		{"goal on mover", func(l *Level) {
			l.Platforms[2].Kind = KindMoving
		}, "level.goal"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := ladderLevel()
			tt.mutate(&l)
			err := l.Validate()
			if tt.field == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			var cfgErr *core.ConfigurationError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("Validate() = %v, want ConfigurationError", err)
			}
			if cfgErr.Field != tt.field {
				t.Errorf("Field = %q, want %q", cfgErr.Field, tt.field)
			}
		})
	}
}

func TestSweptBounds(t *testing.T) {
	static := Platform{Bounds: geom.R(10, 20, 8, 1), Kind: KindStatic}
	if got := static.SweptBounds(); got != static.Bounds {
		t.Errorf("static SweptBounds() = %+v, want %+v", got, static.Bounds)
	}

	mover := Platform{
		Bounds: geom.R(10, 20, 8, 1),
		Kind:   KindMoving,
		Patrol: Patrol{SpanX: 6, Speed: 2},
	}
	if got, want := mover.SweptBounds(), geom.R(10, 20, 14, 1); got != want {
		t.Errorf("mover SweptBounds() = %+v, want %+v", got, want)
	}
}

func TestStaticCount(t *testing.T) {
	l := ladderLevel()
	l.Platforms = append(l.Platforms, Platform{
		Bounds: geom.R(5, 10, 4, 1),
		Kind:   KindMoving,
		Patrol: Patrol{SpanX: 4, Speed: 2},
	})
	if got := l.StaticCount(); got != 3 {
		t.Errorf("StaticCount() = %d, want 3", got)
	}
}

func TestKindString(t *testing.T) {
	if got := KindStatic.String(); got != "static" {
		t.Errorf("KindStatic.String() = %q", got)
	}
	if got := KindMoving.String(); got != "moving" {
		t.Errorf("KindMoving.String() = %q", got)
	}
}

func TestUnreachableErrorMessage(t *testing.T) {
	err := &UnreachableError{PlatformIDs: []int{2, 5, 9}}
	want := "level: 3 platform(s) unreachable from spawn: [2 5 9]"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	long := &UnreachableError{PlatformIDs: []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}}
	msg := long.Error()
	if !strings.Contains(msg, "10 platform(s)") {
		t.Errorf("long Error() = %q, want the full count", msg)
	}
	if !strings.Contains(msg, "[1 2 3 4 5 6 7 8, ...]") {
		t.Errorf("long Error() = %q, want eight ids and a truncation mark", msg)
	}
}

func TestGenerationErrorWrapsLastRejection(t *testing.T) {
	inner := &UnreachableError{PlatformIDs: []int{3}}
	err := &GenerationError{Attempts: 5, Hint: "density too high", Err: inner}

	msg := err.Error()
	for _, part := range []string{"after 5 attempts", "density too high", "unreachable"} {
		if !strings.Contains(msg, part) {
			t.Errorf("Error() = %q, missing %q", msg, part)
		}
	}

	var unreach *UnreachableError
	if !errors.As(err, &unreach) {
		t.Fatal("errors.As failed to unwrap the UnreachableError")
	}
	if unreach != inner {
		t.Error("unwrapped error is not the original rejection")
	}
}
