// Package render composes engine state into styled terminal frames. It
// owns the character buffer and the theme-driven drawing; it never
// touches the simulation.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Cell is one screen position: a rune plus a lipgloss color string.
// An empty color renders unstyled.
type Cell struct {
	Rune  rune
	Color string
}

// Screen is a 2D cell buffer. It decouples drawing from the terminal:
// drawing code works in plain cell operations and the buffer is styled
// once per frame.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a cleared screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{width: width, height: height}
	s.allocate()
	s.Clear()
	return s
}

func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the screen dimensions, dropping old content.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}
	s.width = width
	s.height = height
	s.allocate()
	s.Clear()
}

// Clear fills the entire screen with unstyled spaces.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = Cell{Rune: ' '}
		}
	}
}

// Set places a styled rune at the given position. Out-of-bounds
// coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune, color string) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = Cell{Rune: r, Color: color}
}

// GetCell returns the cell at the given position, or an unstyled space
// for out-of-bounds coordinates.
func (s *Screen) GetCell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Cell{Rune: ' '}
	}
	return s.cells[y][x]
}

// DrawText writes a string horizontally starting at (x, y), clipped to
// the screen.
func (s *Screen) DrawText(x, y int, text, color string) {
	i := 0
	for _, r := range text {
		s.Set(x+i, y, r, color)
		i++
	}
}

// DrawTextCentered draws text centered horizontally at the given row.
func (s *Screen) DrawTextCentered(y int, text, color string) {
	x := (s.width - len([]rune(text))) / 2
	s.DrawText(x, y, text, color)
}

// String converts the buffer to a plain string without styling. Used by
// tests and screenshots.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)
	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x].Rune)
		}
	}
	return sb.String()
}

// Styled converts the buffer to a string with ANSI styling. Adjacent
// cells sharing a color are grouped into one styled run to keep escape
// sequences down.
func (s *Screen) Styled() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height*2 + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.width {
			start := s.cells[y][x].Color

			var run strings.Builder
			for x < s.width && s.cells[y][x].Color == start {
				run.WriteRune(s.cells[y][x].Rune)
				x++
			}

			if start == "" {
				sb.WriteString(run.String())
				continue
			}
			style := lipgloss.NewStyle().Foreground(lipgloss.Color(start))
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
