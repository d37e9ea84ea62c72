package game

// Cell is the marker occupying one square of the grid.
type Cell int8

const (
	Empty Cell = iota
	PlayerOne
	PlayerTwo
)

func (c Cell) String() string {
	switch c {
	case PlayerOne:
		return "X"
	case PlayerTwo:
		return "O"
	default:
		return " "
	}
}

// Opponent returns the other player's marker. Empty has no opponent.
func (c Cell) Opponent() Cell {
	switch c {
	case PlayerOne:
		return PlayerTwo
	case PlayerTwo:
		return PlayerOne
	default:
		return Empty
	}
}

// State is the outcome of a game as reported by the turn container
type State int

const (
	Live State = iota
	Tied
	PlayerOneWon
	PlayerTwoWon
)

func (s State) String() string {
	switch s {
	case Live:
		return "live"
	case Tied:
		return "tied"
	case PlayerOneWon:
		return "player 1 won"
	case PlayerTwoWon:
		return "player 2 won"
	default:
		return "unknown"
	}
}

// Over reports whether no more moves may be played.
func (s State) Over() bool {
	return s != Live
}

// WonBy returns the terminal state in which the given player has won.
func WonBy(c Cell) State {
	if c == PlayerTwo {
		return PlayerTwoWon
	}
	return PlayerOneWon
}
