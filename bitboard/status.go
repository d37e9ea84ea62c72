package bitboard

// Status classifies a board after a token has been placed.
type Status int

const (
	Live Status = iota
	Tied
	MoverWon    // the player to move owns the winning line
	OpponentWon // the other player owns the winning line
)

func (s Status) String() string {
	switch s {
	case Live:
		return "live"
	case Tied:
		return "tied"
	case MoverWon:
		return "mover won"
	case OpponentWon:
		return "opponent won"
	default:
		return "unknown"
	}
}

// Terminal reports whether the game has ended.
func (s Status) Terminal() bool {
	return s != Live
}

// Line directions as (row, col) steps: vertical, horizontal and the two
// diagonals. Opposite directions are covered by walking both ways.
var directions = [4][2]int{{1, 0}, {0, 1}, {1, 1}, {1, -1}}

// Status classifies the board given that the last token was placed at the
// top of col. Only lines through that token are checked.
func (b *Board) Status(col int) Status {
	row := b.Height(col) - 1
	if row < 0 {
		panic("status of an empty column")
	}
	mine := b.Mine(row, col)
	for _, d := range directions {
		streak := b.run(row, col, d[0], d[1], mine) + b.run(row, col, -d[0], -d[1], mine) - 1
		if streak >= b.dims.WinLength {
			if mine {
				return MoverWon
			}
			return OpponentWon
		}
	}
	for c := 0; c < b.dims.Cols; c++ {
		if !b.Full(c) {
			return Live
		}
	}
	return Tied
}

// run counts consecutive occupied cells from (row, col) in one direction
// whose owner matches mine, the starting cell included.
func (b *Board) run(row, col, dr, dc int, mine bool) int {
	n := 0
	for b.inBounds(row, col) && row < b.Height(col) && b.Mine(row, col) == mine {
		n++
		row += dr
		col += dc
	}
	return n
}

func (b *Board) inBounds(row, col int) bool {
	return row >= 0 && row < b.dims.Rows && col >= 0 && col < b.dims.Cols
}
