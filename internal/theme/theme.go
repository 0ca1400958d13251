// Package theme provides a global registry of visual skins. Themes are
// pure render-side data: the simulation never reads them, so swapping
// skins mid-run cannot change gameplay. Builtins register themselves in
// init() functions, allowing the platform to list and cycle them without
// hardcoded dependencies.
package theme

import (
	"fmt"
	"sort"
	"sync"
)

// BorderSet holds the six runes of the playfield frame.
type BorderSet struct {
	Horizontal  rune
	Vertical    rune
	TopLeft     rune
	TopRight    rune
	BottomLeft  rune
	BottomRight rune
}

// Palette maps board roles to terminal colors. Values are lipgloss color
// strings (ANSI 256 codes or hex).
type Palette struct {
	Head     string
	Body     string
	Food     string
	PowerUp  string
	Obstacle string
	Border   string
	HUD      string
	Overlay  string

	// Particles are the three tint slots cosmetic effects draw from.
	Particles [3]string
}

// Theme is one complete visual skin.
type Theme struct {
	ID    string
	Title string

	Head     rune
	Body     rune
	Food     rune
	Obstacle rune
	Border   BorderSet

	Colors Palette
}

var (
	themes = make(map[string]Theme)
	mu     sync.RWMutex
)

// Register adds a theme to the registry. Typically called from an init()
// function. Panics if the ID is already taken.
func Register(t Theme) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := themes[t.ID]; exists {
		panic(fmt.Sprintf("theme: %q already registered", t.ID))
	}
	themes[t.ID] = t
}

// Get returns the theme with the given ID.
func Get(id string) (Theme, error) {
	mu.RLock()
	defer mu.RUnlock()

	t, ok := themes[id]
	if !ok {
		return Theme{}, fmt.Errorf("theme: unknown theme %q", id)
	}
	return t, nil
}

// Exists checks if a theme with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := themes[id]
	return ok
}

// List returns all registered themes, sorted by ID.
func List() []Theme {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Theme, 0, len(themes))
	for _, t := range themes {
		result = append(result, t)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Next returns the theme following the given one in sorted order,
// wrapping around at the end. Unknown IDs cycle to the first theme.
func Next(id string) Theme {
	all := List()
	if len(all) == 0 {
		return Theme{}
	}
	for i, t := range all {
		if t.ID == id {
			return all[(i+1)%len(all)]
		}
	}
	return all[0]
}
