package engine

// Cell represents a 2D grid coordinate.
type Cell struct {
	X, Y int
}

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Vector returns the unit step for the direction in screen coordinates
// (X grows right, Y grows down).
func (d Direction) Vector() (dx, dy int) {
	switch d {
	case DirRight:
		return 1, 0
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirUp:
		return 0, -1
	default:
		return 0, 0
	}
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirRight:
		return DirLeft
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirUp:
		return DirDown
	default:
		return d
	}
}

func (d Direction) String() string {
	switch d {
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirUp:
		return "up"
	default:
		return "unknown"
	}
}

// Shift returns the cell one step away in the given direction.
func (c Cell) Shift(d Direction) Cell {
	dx, dy := d.Vector()
	return Cell{X: c.X + dx, Y: c.Y + dy}
}
