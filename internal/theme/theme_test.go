package theme

import "testing"

var builtinIDs = []string{"cyberpunk", "hologram", "matrix", "tron", "vaporwave"}

func TestBuiltinsRegistered(t *testing.T) {
	for _, id := range builtinIDs {
		if !Exists(id) {
			t.Errorf("Builtin theme %q not registered", id)
		}
	}
	if !Exists(DefaultID) {
		t.Errorf("Default theme %q not registered", DefaultID)
	}
}

func TestGetUnknown(t *testing.T) {
	if _, err := Get("crt-amber"); err == nil {
		t.Error("Get should fail for an unknown theme")
	}
}

func TestListSorted(t *testing.T) {
	all := List()
	if len(all) < len(builtinIDs) {
		t.Fatalf("Expected at least %d themes, got %d", len(builtinIDs), len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i-1].ID >= all[i].ID {
			t.Errorf("List not sorted: %q before %q", all[i-1].ID, all[i].ID)
		}
	}
}

func TestNextCyclesThroughAll(t *testing.T) {
	start := List()[0].ID
	seen := map[string]bool{start: true}

	id := start
	for i := 0; i < len(List())-1; i++ {
		id = Next(id).ID
		if seen[id] {
			t.Fatalf("Cycle revisited %q before covering all themes", id)
		}
		seen[id] = true
	}

	// One more step wraps back to the start.
	if next := Next(id).ID; next != start {
		t.Errorf("Cycle should wrap to %q, got %q", start, next)
	}
}

func TestNextUnknownFallsBack(t *testing.T) {
	if got := Next("no-such-skin").ID; got != List()[0].ID {
		t.Errorf("Next on unknown ID should return the first theme, got %q", got)
	}
}

func TestBuiltinsComplete(t *testing.T) {
	for _, th := range List() {
		if th.Title == "" {
			t.Errorf("Theme %q has no title", th.ID)
		}
		if th.Head == 0 || th.Body == 0 || th.Food == 0 || th.Obstacle == 0 {
			t.Errorf("Theme %q has missing glyphs", th.ID)
		}
		if th.Border.Horizontal == 0 || th.Border.Vertical == 0 {
			t.Errorf("Theme %q has an incomplete border set", th.ID)
		}
		if th.Colors.Head == "" || th.Colors.Body == "" || th.Colors.Food == "" {
			t.Errorf("Theme %q has missing colors", th.ID)
		}
		for i, tint := range th.Colors.Particles {
			if tint == "" {
				t.Errorf("Theme %q particle tint %d is empty", th.ID, i)
			}
		}
	}
}
