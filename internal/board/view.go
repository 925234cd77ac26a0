package board

// CellView is the read-only rendering data for one cell. Mine is only
// reported once the cell is open.
type CellView struct {
	Open      bool
	Flagged   bool
	Mine      bool
	Neighbors int // Full neighbour mine count, flags included
}

// View is a snapshot of the board for drawing.
type View struct {
	Size           int
	MinesRemaining uint
	Cells          []CellView // Row-major, Size*Size entries
}

// At returns the view of the cell at (x, y).
func (v View) At(x, y int) CellView {
	return v.Cells[y*v.Size+x]
}

// View returns a snapshot of the current board state.
func (b *Board) View() View {
	cells := make([]CellView, len(b.cells))
	for i, c := range b.cells {
		p := Position{X: i % b.size, Y: i / b.size}
		cv := CellView{
			Open:    c.Open,
			Flagged: c.Flagged,
		}
		if c.Open {
			cv.Mine = c.Mine
			cv.Neighbors = b.NeighborMineCount(p, true)
		}
		cells[i] = cv
	}
	return View{
		Size:           b.size,
		MinesRemaining: b.NetMinesRemaining(),
		Cells:          cells,
	}
}
