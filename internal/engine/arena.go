package engine

import "fmt"

// Arena is the playable rectangle of the board. Bounds are inclusive and
// describe the interior only: the border ring drawn around it is out of
// bounds, so stepping onto the border counts as a wall hit.
type Arena struct {
	MinX, MaxX int
	MinY, MaxY int
}

// Playfield insets relative to the terminal: the frame starts two cells in
// from every edge, and the interior starts one cell inside the frame.
const (
	frameInset    = 2
	interiorInset = frameInset + 1
)

// NewArena creates an arena with the given inclusive interior bounds.
// The interior must be at least 3x3 so the initial snake fits.
func NewArena(minX, maxX, minY, maxY int) (Arena, error) {
	w := maxX - minX + 1
	h := maxY - minY + 1
	if w < 3 || h < 3 {
		return Arena{}, fmt.Errorf("engine: arena interior %dx%d is smaller than 3x3", w, h)
	}
	return Arena{MinX: minX, MaxX: maxX, MinY: minY, MaxY: maxY}, nil
}

// ArenaForScreen derives the playable interior from a terminal size,
// leaving room for the HUD rows and the border frame.
func ArenaForScreen(screenW, screenH int) (Arena, error) {
	a, err := NewArena(
		interiorInset, screenW-interiorInset-1,
		interiorInset, screenH-interiorInset-1,
	)
	if err != nil {
		return Arena{}, fmt.Errorf("engine: screen %dx%d leaves no playfield: %w", screenW, screenH, err)
	}
	return a, nil
}

// Contains reports whether the cell lies strictly inside the interior.
func (a Arena) Contains(c Cell) bool {
	return c.X >= a.MinX && c.X <= a.MaxX && c.Y >= a.MinY && c.Y <= a.MaxY
}

// Width returns the interior width in cells.
func (a Arena) Width() int {
	return a.MaxX - a.MinX + 1
}

// Height returns the interior height in cells.
func (a Arena) Height() int {
	return a.MaxY - a.MinY + 1
}

// Cells returns the number of interior cells.
func (a Arena) Cells() int {
	return a.Width() * a.Height()
}

// Center returns the middle interior cell.
func (a Arena) Center() Cell {
	return Cell{X: (a.MinX + a.MaxX) / 2, Y: (a.MinY + a.MaxY) / 2}
}

// Inset returns the arena shrunk by n cells on every side. Obstacles are
// placed one cell deeper than food so they never hug the border.
func (a Arena) Inset(n int) Arena {
	return Arena{
		MinX: a.MinX + n, MaxX: a.MaxX - n,
		MinY: a.MinY + n, MaxY: a.MaxY - n,
	}
}
