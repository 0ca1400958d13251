package engine

// Snake owns the body sequence and movement direction. The head is always
// at index 0. The snake itself never decides death; the collision verdict
// comes from DetectCollision on the post-move body.
type Snake struct {
	cells []Cell
	dir   Direction
}

// NewSnake builds a snake of the given length with the head at the given
// cell and the body trailing opposite the heading.
func NewSnake(head Cell, dir Direction, length int) *Snake {
	if length < 1 {
		length = 1
	}
	cells := make([]Cell, length)
	back := dir.Opposite()
	c := head
	for i := range cells {
		cells[i] = c
		c = c.Shift(back)
	}
	return &Snake{cells: cells, dir: dir}
}

// Head returns the head cell.
func (s *Snake) Head() Cell {
	return s.cells[0]
}

// Cells returns the body, head first. The slice is owned by the snake;
// callers must not hold it across ticks.
func (s *Snake) Cells() []Cell {
	return s.cells
}

// Len returns the body length.
func (s *Snake) Len() int {
	return len(s.cells)
}

// Dir returns the current movement direction.
func (s *Snake) Dir() Direction {
	return s.dir
}

// SetDirection applies a direction change for the next advance. An exact
// reversal of the current direction is ignored, not an error. Returns true
// when the stored direction actually changed.
func (s *Snake) SetDirection(d Direction) bool {
	if d == s.dir || d == s.dir.Opposite() {
		return false
	}
	s.dir = d
	return true
}

// NextHead returns the cell the head will occupy after the next advance.
func (s *Snake) NextHead() Cell {
	return s.Head().Shift(s.dir)
}

// Advance moves the snake one cell in its current direction. When grow is
// true the tail stays put and the body gains a segment; otherwise the tail
// is removed before the new head is prepended, keeping the length constant.
// Returns the new head cell.
func (s *Snake) Advance(grow bool) Cell {
	newHead := s.NextHead()
	if !grow && len(s.cells) > 0 {
		s.cells = s.cells[:len(s.cells)-1]
	}
	s.cells = append([]Cell{newHead}, s.cells...)
	return newHead
}

// Occupies reports whether any body segment sits on the given cell.
func (s *Snake) Occupies(c Cell) bool {
	for _, seg := range s.cells {
		if seg == c {
			return true
		}
	}
	return false
}
