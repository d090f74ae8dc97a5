package level

import (
	"fmt"
	"math/rand"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-climber/internal/geom"
)

// Style is one architectural layout strategy. A style lays out the
// static skeleton of a candidate level: the ground, the climbable
// platforms, and the spawn point. It does not place moving platforms
// and it does not prove reachability; the generator does both after
// the layout comes back.
//
// Layouts must be deterministic for a given rng state and params.
type Style interface {
	// ID returns the style token used in configs ("towers", "ridge", ...).
	ID() string

	// Title returns a human-readable style name.
	Title() string

	// Layout produces the static platforms and the spawn point for one
	// candidate. The first returned platform is the ground.
	Layout(rng *rand.Rand, params GenParams, profile JumpProfile) ([]Platform, geom.Vec2)
}

// StyleInfo describes a registered style.
type StyleInfo struct {
	ID    string
	Title string
}

var (
	styleMu sync.RWMutex
	styles  = make(map[string]Style)
)

// RegisterStyle adds a layout style to the registry. Styles register
// themselves in init() functions. Panics if the ID is already taken.
func RegisterStyle(s Style) {
	styleMu.Lock()
	defer styleMu.Unlock()

	if _, exists := styles[s.ID()]; exists {
		panic(fmt.Sprintf("level: style %q already registered", s.ID()))
	}
	styles[s.ID()] = s
}

// Styles returns all registered styles, sorted by ID.
func Styles() []StyleInfo {
	styleMu.RLock()
	defer styleMu.RUnlock()

	result := make([]StyleInfo, 0, len(styles))
	for _, s := range styles {
		result = append(result, StyleInfo{ID: s.ID(), Title: s.Title()})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// StyleByID looks up a registered style.
func StyleByID(id string) (Style, bool) {
	styleMu.RLock()
	defer styleMu.RUnlock()

	s, ok := styles[id]
	return s, ok
}

// StyleExists reports whether a style token is registered.
func StyleExists(id string) bool {
	_, ok := StyleByID(id)
	return ok
}
