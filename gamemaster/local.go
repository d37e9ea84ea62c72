package gamemaster

import (
	"errors"
	"fmt"
	"strings"

	"connect/bitboard"
	"connect/game"
)

var (
	ErrGameOver         = errors.New("game is over - no moves allowed")
	ErrInvalidMove      = errors.New("invalid move: column is full")
	ErrColumnOutOfRange = errors.New("invalid move: column out of range")
)

// Engine is the authoritative game: it owns the grid and whose turn it is.
type Engine interface {
	Dimensions() game.Dimensions
	Grid() game.Grid
	Turn() game.Cell
	State() game.State
	Play(col int) (game.State, error)
}

type localEngine struct {
	dims  game.Dimensions
	grid  game.Grid
	turn  game.Cell
	state game.State
	moves []int
}

// NewLocalEngine starts a game with player one to move. It panics if the
// board cannot be packed for win detection.
func NewLocalEngine(dims game.Dimensions) *localEngine {
	if err := bitboard.CheckDimensions(dims); err != nil {
		panic(err)
	}
	return &localEngine{
		dims:  dims,
		grid:  game.NewGrid(dims),
		turn:  game.PlayerOne,
		state: game.Live,
	}
}

func (e *localEngine) Dimensions() game.Dimensions {
	return e.dims
}

// Grid returns a copy of the board.
func (e *localEngine) Grid() game.Grid {
	return e.grid.Copy()
}

func (e *localEngine) Turn() game.Cell {
	return e.turn
}

func (e *localEngine) State() game.State {
	return e.state
}

// Moves returns the columns played so far.
func (e *localEngine) Moves() []int {
	moves := make([]int, len(e.moves))
	copy(moves, e.moves)
	return moves
}

// Play drops a token of the player to move into col and passes the turn.
func (e *localEngine) Play(col int) (game.State, error) {
	if e.state.Over() {
		return e.state, ErrGameOver
	}
	if col < 0 || col >= e.dims.Cols {
		return e.state, fmt.Errorf("%w: %d", ErrColumnOutOfRange, col+1)
	}
	if e.grid[0][col] != game.Empty {
		return e.state, fmt.Errorf("%w: %d", ErrInvalidMove, col+1)
	}

	row := e.dims.Rows - 1
	for e.grid[row][col] != game.Empty {
		row--
	}
	e.grid[row][col] = e.turn
	e.moves = append(e.moves, col)

	if status := bitboard.Decode(e.dims, e.grid, e.turn).Status(col); status.Terminal() {
		e.state = outcome(status, e.turn)
	}
	e.turn = e.turn.Opponent()
	return e.state, nil
}

// outcome maps a terminal status seen by mover to the game state.
func outcome(status bitboard.Status, mover game.Cell) game.State {
	switch status {
	case bitboard.MoverWon:
		return game.WonBy(mover)
	case bitboard.OpponentWon:
		return game.WonBy(mover.Opponent())
	default:
		return game.Tied
	}
}

func (e *localEngine) String() string {
	lines := make([]string, 0, e.dims.Rows+1)
	for _, row := range e.grid {
		cells := make([]string, len(row))
		for j, cell := range row {
			cells[j] = fmt.Sprintf(" %s ", cell)
		}
		lines = append(lines, "|"+strings.Join(cells, "|")+"|")
	}
	footer := make([]string, e.dims.Cols)
	for col := range footer {
		footer[col] = fmt.Sprintf(" %d ", col+1)
	}
	lines = append(lines, " "+strings.Join(footer, " ")+" ")
	return strings.Join(lines, "\n")
}
