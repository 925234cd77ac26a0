package board

// Open reveals the cell at p and cascades through connected cells that have
// no unflagged mines around them. It returns false only when p is a mine,
// which is left open.
//
// Flagged cells are never opened: a direct Open on one is ignored and the
// cascade steps around them.
func (b *Board) Open(p Position) bool {
	if !b.InBounds(p) {
		return true
	}
	start := &b.cells[b.index(p)]
	if start.Flagged {
		return true
	}

	start.Open = true
	if start.Mine {
		return false
	}

	stack := []Position{p}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if b.NeighborMineCount(cur, false) != 0 {
			continue
		}

		// Push in reverse so neighbours pop in row-major order.
		for i := len(neighborOffsets) - 1; i >= 0; i-- {
			n := Position{X: cur.X + neighborOffsets[i].X, Y: cur.Y + neighborOffsets[i].Y}
			if !b.InBounds(n) {
				continue
			}
			c := &b.cells[b.index(n)]
			if c.Open || c.Flagged {
				continue
			}
			c.Open = true
			stack = append(stack, n)
		}
	}
	return true
}
