package game

// Grid is the external board representation: Rows x Cols markers, row-major,
// with row 0 at the top of the board.
type Grid [][]Cell

// NewGrid returns an empty grid of the given dimensions.
func NewGrid(d Dimensions) Grid {
	g := make(Grid, d.Rows)
	for i := range g {
		g[i] = make([]Cell, d.Cols)
	}
	return g
}

// Copy returns a deep copy of the grid.
func (g Grid) Copy() Grid {
	c := make(Grid, len(g))
	for i, row := range g {
		c[i] = make([]Cell, len(row))
		copy(c[i], row)
	}
	return c
}

// Fits reports whether the grid has exactly the given dimensions.
func (g Grid) Fits(d Dimensions) bool {
	if len(g) != d.Rows {
		return false
	}
	for _, row := range g {
		if len(row) != d.Cols {
			return false
		}
	}
	return true
}

// Count returns the number of cells holding c.
func (g Grid) Count(c Cell) int {
	n := 0
	for _, row := range g {
		for _, cell := range row {
			if cell == c {
				n++
			}
		}
	}
	return n
}

// ToMove infers whose turn it is from the token counts. Player one always
// starts, so equal counts mean player one moves next.
func (g Grid) ToMove() Cell {
	if g.Count(PlayerOne) > g.Count(PlayerTwo) {
		return PlayerTwo
	}
	return PlayerOne
}
