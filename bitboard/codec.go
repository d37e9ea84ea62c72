package bitboard

import "connect/game"

// Decode packs grid from the point of view of mover. Each column is scanned
// from the bottom up to its first empty cell; tokens floating above a gap are
// ignored.
func Decode(d game.Dimensions, grid game.Grid, mover game.Cell) *Board {
	b := New(d)
	for col := 0; col < d.Cols; col++ {
		height := 0
		for height < d.Rows {
			cell := grid[d.Rows-1-height][col]
			if cell == game.Empty {
				break
			}
			if cell == mover {
				b.setCell(height, col)
			}
			height++
		}
		b.setHeight(col, height)
	}
	return b
}

// Encode unpacks the board into a grid, given which player is to move.
func (b *Board) Encode(mover game.Cell) game.Grid {
	grid := game.NewGrid(b.dims)
	for col := 0; col < b.dims.Cols; col++ {
		for row := 0; row < b.Height(col); row++ {
			cell := mover.Opponent()
			if b.Mine(row, col) {
				cell = mover
			}
			grid[b.dims.Rows-1-row][col] = cell
		}
	}
	return grid
}
