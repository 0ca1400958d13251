package render

import (
	"strings"
	"testing"

	"github.com/vovakirdan/cyber-snake/internal/engine"
	"github.com/vovakirdan/cyber-snake/internal/theme"
)

func testTheme() theme.Theme {
	return theme.Theme{
		ID:       "plain",
		Title:    "PLAIN",
		Head:     '@',
		Body:     'o',
		Food:     '*',
		Obstacle: '█',
		Border: theme.BorderSet{
			Horizontal:  '-',
			Vertical:    '|',
			TopLeft:     '1',
			TopRight:    '2',
			BottomLeft:  '3',
			BottomRight: '4',
		},
		Colors: theme.Palette{
			Head:      "10",
			Body:      "2",
			Food:      "9",
			PowerUp:   "13",
			Obstacle:  "5",
			Border:    "6",
			HUD:       "3",
			Overlay:   "7",
			Particles: [3]string{"11", "12", "14"},
		},
	}
}

func testArena(t *testing.T, w, h int) engine.Arena {
	t.Helper()
	a, err := engine.ArenaForScreen(w, h)
	if err != nil {
		t.Fatalf("ArenaForScreen(%d, %d): %v", w, h, err)
	}
	return a
}

func TestComposePlacesBoardGlyphs(t *testing.T) {
	r := NewRenderer(30, 15, testTheme())
	arena := testArena(t, 30, 15)

	out := engine.StepOutcome{
		Snake:     []engine.Cell{{X: 10, Y: 5}, {X: 9, Y: 5}, {X: 8, Y: 5}},
		Dir:       engine.DirRight,
		Food:      engine.Cell{X: 20, Y: 8},
		Obstacles: []engine.Cell{{X: 15, Y: 6}},
		PowerUps: []engine.PowerUp{
			{Cell: engine.Cell{X: 12, Y: 9}, Kind: engine.PowerSlow},
		},
	}
	r.Compose(out, arena, HUD{})

	checks := []struct {
		x, y int
		want rune
	}{
		{10, 5, '▶'}, // head points right
		{9, 5, 'o'},
		{8, 5, 'o'},
		{20, 8, '*'},
		{15, 6, '█'},
		{12, 9, 'S'},
	}
	for _, c := range checks {
		if got := r.screen.GetCell(c.x, c.y).Rune; got != c.want {
			t.Errorf("cell (%d,%d) = %q, want %q", c.x, c.y, got, c.want)
		}
	}
}

func TestComposeDrawsBorderRing(t *testing.T) {
	r := NewRenderer(30, 15, testTheme())
	arena := testArena(t, 30, 15)

	r.Compose(engine.StepOutcome{Snake: []engine.Cell{{X: 10, Y: 5}}}, arena, HUD{})

	// Frame sits one cell outside the interior [3,26]x[3,11].
	frame := arena.Inset(-1)
	corners := []struct {
		x, y int
		want rune
	}{
		{frame.MinX, frame.MinY, '1'},
		{frame.MaxX, frame.MinY, '2'},
		{frame.MinX, frame.MaxY, '3'},
		{frame.MaxX, frame.MaxY, '4'},
	}
	for _, c := range corners {
		if got := r.screen.GetCell(c.x, c.y).Rune; got != c.want {
			t.Errorf("corner (%d,%d) = %q, want %q", c.x, c.y, got, c.want)
		}
	}
	if got := r.screen.GetCell(frame.MinX+1, frame.MinY).Rune; got != '-' {
		t.Errorf("top edge = %q, want -", got)
	}
	if got := r.screen.GetCell(frame.MinX, frame.MinY+1).Rune; got != '|' {
		t.Errorf("left edge = %q, want |", got)
	}
}

func TestHeadGlyphFollowsDirection(t *testing.T) {
	tests := []struct {
		dir  engine.Direction
		want rune
	}{
		{engine.DirRight, '▶'},
		{engine.DirLeft, '◀'},
		{engine.DirUp, '▲'},
		{engine.DirDown, '▼'},
	}
	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			if got := headGlyph(tt.dir, '@'); got != tt.want {
				t.Fatalf("headGlyph(%v) = %q, want %q", tt.dir, got, tt.want)
			}
		})
	}
}

func TestHeadGlyphFallsBackToTheme(t *testing.T) {
	if got := headGlyph(engine.Direction(99), '@'); got != '@' {
		t.Fatalf("headGlyph(unknown) = %q, want @", got)
	}
}

func TestHUDShowsStatsOnWideScreen(t *testing.T) {
	r := NewRenderer(90, 24, testTheme())
	arena := testArena(t, 90, 24)

	hud := HUD{Score: 42, Length: 7, Level: 3, SpeedPct: 18}
	r.Compose(engine.StepOutcome{Snake: []engine.Cell{{X: 10, Y: 5}}}, arena, hud)

	plain := r.Plain()
	for _, want := range []string{
		"PLAIN",
		"◢◤ SCORE: 0042 ◥◣",
		"◢◤ LENGTH: 07 ◥◣",
		"◢◤ LEVEL: 03 ◥◣",
		"◢◤ SPEED: 18% ◥◣",
	} {
		if !strings.Contains(plain, want) {
			t.Errorf("frame missing %q", want)
		}
	}
}

func TestHUDHidesStatsOnNarrowScreen(t *testing.T) {
	r := NewRenderer(40, 20, testTheme())
	arena := testArena(t, 40, 20)

	hud := HUD{Score: 42, Length: 7, Level: 3, SpeedPct: 18}
	r.Compose(engine.StepOutcome{Snake: []engine.Cell{{X: 10, Y: 5}}}, arena, hud)

	plain := r.Plain()
	if !strings.Contains(plain, "SCORE: 0042") {
		t.Errorf("narrow frame missing score")
	}
	for _, banned := range []string{"LENGTH", "LEVEL", "SPEED"} {
		if strings.Contains(plain, banned) {
			t.Errorf("narrow frame should not show %s", banned)
		}
	}
}

func TestHUDShowsActiveEffect(t *testing.T) {
	r := NewRenderer(90, 24, testTheme())
	arena := testArena(t, 90, 24)

	hud := HUD{Effect: "slow", EffectTicks: 73}
	r.Compose(engine.StepOutcome{Snake: []engine.Cell{{X: 10, Y: 5}}}, arena, hud)

	if !strings.Contains(r.Plain(), "⚡ SLOW: 73") {
		t.Fatalf("frame missing effect status")
	}
}

func TestHUDShowsMuteMarker(t *testing.T) {
	r := NewRenderer(90, 24, testTheme())
	arena := testArena(t, 90, 24)

	r.Compose(engine.StepOutcome{Snake: []engine.Cell{{X: 10, Y: 5}}}, arena, HUD{Muted: true})
	if !strings.Contains(r.Plain(), "♪ OFF") {
		t.Fatalf("frame missing mute marker")
	}

	r.Compose(engine.StepOutcome{Snake: []engine.Cell{{X: 10, Y: 5}}}, arena, HUD{})
	if strings.Contains(r.Plain(), "♪ OFF") {
		t.Fatalf("unmuted frame should not show mute marker")
	}
}

func TestParticlesClippedToArena(t *testing.T) {
	r := NewRenderer(30, 15, testTheme())
	arena := testArena(t, 30, 15)

	out := engine.StepOutcome{
		Snake: []engine.Cell{{X: 10, Y: 5}},
		Particles: []engine.Particle{
			{X: 14, Y: 7, Lifetime: 25},          // inside
			{X: 0, Y: 0, Lifetime: 25},           // on the HUD
			{X: float64(arena.MinX) - 1, Y: 7, Lifetime: 25}, // on the frame
		},
	}
	r.Compose(out, arena, HUD{})

	if got := r.screen.GetCell(14, 7).Rune; got != '★' {
		t.Errorf("inside particle = %q, want ★", got)
	}
	if got := r.screen.GetCell(0, 0).Rune; got == '★' {
		t.Errorf("particle drawn over HUD row")
	}
	if got := r.screen.GetCell(arena.MinX-1, 7).Rune; got == '★' {
		t.Errorf("particle drawn over frame column")
	}
}

func TestParticleTintSelectsPaletteColor(t *testing.T) {
	r := NewRenderer(30, 15, testTheme())
	arena := testArena(t, 30, 15)

	out := engine.StepOutcome{
		Snake:     []engine.Cell{{X: 10, Y: 5}},
		Particles: []engine.Particle{{X: 14, Y: 7, Lifetime: 25, Tint: 2}},
	}
	r.Compose(out, arena, HUD{})

	if got := r.screen.GetCell(14, 7).Color; got != "14" {
		t.Errorf("particle color = %q, want palette tint 14", got)
	}
}

func TestOverlayDrawsCenteredBox(t *testing.T) {
	r := NewRenderer(40, 20, testTheme())
	arena := testArena(t, 40, 20)

	r.Compose(engine.StepOutcome{Snake: []engine.Cell{{X: 10, Y: 5}}}, arena, HUD{})
	r.Overlay("GAME OVER!", "Final Score: 120", "Snake Length: 9")

	plain := r.Plain()
	for _, want := range []string{"GAME OVER!", "Final Score: 120", "Snake Length: 9"} {
		if !strings.Contains(plain, want) {
			t.Errorf("overlay missing %q", want)
		}
	}

	// Longest line is 16 runes, so the box is 20 wide and 6 tall.
	boxX := (40 - 20) / 2
	boxY := (20 - 6) / 2
	if got := r.screen.GetCell(boxX, boxY).Rune; got != '1' {
		t.Errorf("overlay corner = %q, want 1", got)
	}
	if got := r.screen.GetCell(boxX+19, boxY+5).Rune; got != '4' {
		t.Errorf("overlay corner = %q, want 4", got)
	}
}

func TestOverlayBlanksInterior(t *testing.T) {
	r := NewRenderer(40, 20, testTheme())
	arena := testArena(t, 40, 20)

	// Fill the board with a long snake so the overlay has content to cover.
	var body []engine.Cell
	for x := arena.MinX; x <= arena.MaxX; x++ {
		body = append(body, engine.Cell{X: x, Y: 9})
	}
	r.Compose(engine.StepOutcome{Snake: body, Dir: engine.DirLeft}, arena, HUD{})
	r.Overlay("PAUSED", "Press SPACE to continue")

	// Box is 27 wide, 5 tall; probe a cell inside it on the snake row.
	boxX := (40 - 27) / 2
	if got := r.screen.GetCell(boxX+2, 9).Rune; got == 'o' {
		t.Errorf("overlay interior still shows the board")
	}
}

func TestResizeReallocatesFrame(t *testing.T) {
	r := NewRenderer(30, 15, testTheme())
	r.Resize(50, 22)

	w, h := r.Size()
	if w != 50 || h != 22 {
		t.Fatalf("size after resize = %dx%d, want 50x22", w, h)
	}
}
