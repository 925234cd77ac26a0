package game

import "github.com/samdwyer/termsweeper/internal/board"

// Cursor is the selected cell. It wraps around at every edge.
type Cursor struct {
	X, Y int
	size int
}

// NewCursor places a cursor at p on a size×size board.
func NewCursor(p board.Position, size int) Cursor {
	return Cursor{X: p.X, Y: p.Y, size: size}
}

// Move shifts the cursor by the given delta, wrapping on both axes.
func (c *Cursor) Move(dx, dy int) {
	c.X = wrap(c.X+dx, c.size)
	c.Y = wrap(c.Y+dy, c.size)
}

// Position returns the cursor as a board position.
func (c Cursor) Position() board.Position {
	return board.Position{X: c.X, Y: c.Y}
}

func wrap(v, n int) int {
	return ((v % n) + n) % n
}
