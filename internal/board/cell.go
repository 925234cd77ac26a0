// Package board provides the minesweeper grid, neighbour queries and the
// reveal engine.
package board

// Cell represents a single grid square.
type Cell struct {
	Mine    bool // Set at creation, never changes
	Flagged bool // Player marker, never set while Open
	Open    bool // Once revealed, stays revealed
}

// Resolved returns true if the cell is either open or flagged.
func (c Cell) Resolved() bool {
	return c.Open || c.Flagged
}

// Position addresses a cell on the board.
type Position struct {
	X, Y int
}

// neighborOffsets lists the 3x3 block around a cell in row-major order,
// excluding the centre.
var neighborOffsets = [8]Position{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}
