package board

import (
	"errors"
	"fmt"
	"math/rand"
)

var (
	// ErrInvalidSize is returned for an edge length outside Sizes.
	ErrInvalidSize = errors.New("invalid board size")
	// ErrInvalidDifficulty is returned for a difficulty outside 1..3.
	ErrInvalidDifficulty = errors.New("invalid difficulty")
)

// Board is a square minesweeper grid stored row-major in a flat slice.
type Board struct {
	size  int
	cells []Cell
}

// New creates a size×size board where each cell independently holds a mine
// with probability difficulty/8. Nothing guarantees a mine count or a
// solvable layout.
func New(size int, difficulty Difficulty, rng *rand.Rand) (*Board, error) {
	if !ValidSize(size) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	if !difficulty.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDifficulty, difficulty)
	}

	b := newEmpty(size)
	p := difficulty.MineProbability()
	for i := range b.cells {
		b.cells[i].Mine = rng.Float64() < p
	}
	return b, nil
}

// FromMines creates a board with mines at exactly the given positions.
func FromMines(size int, mines []Position) (*Board, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	b := newEmpty(size)
	for _, p := range mines {
		if !b.InBounds(p) {
			return nil, fmt.Errorf("mine at (%d,%d) outside %dx%d board", p.X, p.Y, size, size)
		}
		b.cells[b.index(p)].Mine = true
	}
	return b, nil
}

func newEmpty(size int) *Board {
	return &Board{
		size:  size,
		cells: make([]Cell, size*size),
	}
}

// Size returns the edge length of the board.
func (b *Board) Size() int {
	return b.size
}

// InBounds returns true if p lies on the board.
func (b *Board) InBounds(p Position) bool {
	return p.X >= 0 && p.X < b.size && p.Y >= 0 && p.Y < b.size
}

// Cell returns a copy of the cell at p. Out-of-bounds positions yield the
// zero Cell.
func (b *Board) Cell(p Position) Cell {
	if !b.InBounds(p) {
		return Cell{}
	}
	return b.cells[b.index(p)]
}

func (b *Board) index(p Position) int {
	return p.Y*b.size + p.X
}

// eachNeighbor calls fn for every in-bounds neighbour of p in row-major
// order. Neighbour lookup never wraps around the edges.
func (b *Board) eachNeighbor(p Position, fn func(n Position)) {
	for _, off := range neighborOffsets {
		n := Position{X: p.X + off.X, Y: p.Y + off.Y}
		if b.InBounds(n) {
			fn(n)
		}
	}
}

// NeighborMineCount counts mines among the up-to-8 cells around p. When
// countFlagged is false, flagged mines are left out.
func (b *Board) NeighborMineCount(p Position, countFlagged bool) int {
	count := 0
	b.eachNeighbor(p, func(n Position) {
		c := b.cells[b.index(n)]
		if c.Mine && (countFlagged || !c.Flagged) {
			count++
		}
	})
	return count
}

// FirstSafeCell scans top to bottom, left to right, and returns the first
// non-mine cell with no mines around it at all.
func (b *Board) FirstSafeCell() (Position, bool) {
	for y := 0; y < b.size; y++ {
		for x := 0; x < b.size; x++ {
			p := Position{X: x, Y: y}
			if !b.cells[b.index(p)].Mine && b.NeighborMineCount(p, true) == 0 {
				return p, true
			}
		}
	}
	return Position{}, false
}

// FirstNonMineCell returns the first cell in scan order that is not a mine.
func (b *Board) FirstNonMineCell() (Position, bool) {
	for i, c := range b.cells {
		if !c.Mine {
			return Position{X: i % b.size, Y: i / b.size}, true
		}
	}
	return Position{}, false
}

// ToggleFlag flips the flag on a covered cell. Open cells never carry a flag.
func (b *Board) ToggleFlag(p Position) {
	if !b.InBounds(p) {
		return
	}
	c := &b.cells[b.index(p)]
	c.Flagged = !c.Flagged && !c.Open
}

// AllResolved returns true if every cell is open or flagged.
func (b *Board) AllResolved() bool {
	for _, c := range b.cells {
		if !c.Resolved() {
			return false
		}
	}
	return true
}

// NetMinesRemaining returns unflagged mines minus flags on safe cells,
// floored at zero. It is a display hint, not an exact count.
func (b *Board) NetMinesRemaining() uint {
	net := 0
	for _, c := range b.cells {
		switch {
		case c.Flagged && !c.Mine:
			net--
		case c.Mine && !c.Flagged:
			net++
		}
	}
	return uint(max(0, net))
}

// MineCount returns the number of mines on the board.
func (b *Board) MineCount() int {
	return b.count(func(c Cell) bool { return c.Mine })
}

// FlagCount returns the number of flagged cells.
func (b *Board) FlagCount() int {
	return b.count(func(c Cell) bool { return c.Flagged })
}

// OpenCount returns the number of open cells.
func (b *Board) OpenCount() int {
	return b.count(func(c Cell) bool { return c.Open })
}

func (b *Board) count(pred func(Cell) bool) int {
	n := 0
	for _, c := range b.cells {
		if pred(c) {
			n++
		}
	}
	return n
}
