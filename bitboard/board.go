package bitboard

import (
	"fmt"

	"connect/game"

	"github.com/samber/lo"
)

// Packed layout of a Board, least significant bit first:
//
//	[0, rows*cols)                   occupancy, bit col*rows+row, row 0 at the bottom
//	[rows*cols, rows*cols + 3*cols)  one 3-bit height field per column
//
// An occupancy bit of 1 is a token of the player to move. A 0 below the
// column height is an opponent token and a 0 at or above it is empty.
const (
	heightBits = 3
	heightMask = 1<<heightBits - 1
	wordBits   = 64
)

// Key is the canonical form of a packed board: occupancy masked to the
// column heights, plus the height fields. Only Board.Key produces one.
type Key uint64

func (k Key) String() string {
	return fmt.Sprintf("%#016x", uint64(k))
}

// Board is a packed board seen from the player to move.
type Board struct {
	dims  game.Dimensions
	cells uint
	bits  uint64
}

// CheckDimensions reports whether boards of the given dimensions can be packed.
func CheckDimensions(d game.Dimensions) error {
	if err := d.Validate(); err != nil {
		return err
	}
	if d.Rows > heightMask {
		return fmt.Errorf("board %s: %d rows do not fit a %d-bit height field", d, d.Rows, heightBits)
	}
	if need := d.Cells() + heightBits*d.Cols; need > wordBits {
		return fmt.Errorf("board %s: needs %d bits, more than %d", d, need, wordBits)
	}
	return nil
}

// New returns an empty board. It panics if the dimensions cannot be packed.
func New(d game.Dimensions) *Board {
	if err := CheckDimensions(d); err != nil {
		panic(err)
	}
	return &Board{dims: d, cells: uint(d.Cells())}
}

func (b *Board) cellBit(row, col int) uint64 {
	return 1 << (uint(col)*uint(b.dims.Rows) + uint(row))
}

func (b *Board) heightShift(col int) uint {
	return b.cells + heightBits*uint(col)
}

// Height returns the number of tokens in col, which is also the row the
// next token dropped into it lands on.
func (b *Board) Height(col int) int {
	return int(b.bits >> b.heightShift(col) & heightMask)
}

func (b *Board) setHeight(col, height int) {
	shift := b.heightShift(col)
	b.bits = b.bits&^(heightMask<<shift) | uint64(height)<<shift
}

func (b *Board) setCell(row, col int) {
	b.bits |= b.cellBit(row, col)
}

func (b *Board) clearCell(row, col int) {
	b.bits &^= b.cellBit(row, col)
}

// Mine reports whether the cell holds a token of the player to move. Cells
// at or above the column height are never mine.
func (b *Board) Mine(row, col int) bool {
	return row < b.Height(col) && b.bits&b.cellBit(row, col) != 0
}

func (b *Board) Full(col int) bool {
	return b.Height(col) == b.dims.Rows
}

// Legal returns the columns that can still take a token, in ascending order.
func (b *Board) Legal() []int {
	return lo.Filter(lo.Range(b.dims.Cols), func(col int, _ int) bool {
		return !b.Full(col)
	})
}

// Moves returns the number of tokens on the board.
func (b *Board) Moves() int {
	return lo.SumBy(lo.Range(b.dims.Cols), b.Height)
}

// Push drops a token of the player to move into col.
func (b *Board) Push(col int) {
	height := b.Height(col)
	if height == b.dims.Rows {
		panic(fmt.Sprintf("push into full column %d", col))
	}
	b.setCell(height, col)
	b.setHeight(col, height+1)
}

// Pop removes the top token of col.
func (b *Board) Pop(col int) {
	height := b.Height(col)
	if height == 0 {
		panic(fmt.Sprintf("pop from empty column %d", col))
	}
	b.clearCell(height-1, col)
	b.setHeight(col, height-1)
}

// Play pushes a token into col and returns the function that takes it back.
func (b *Board) Play(col int) (undo func()) {
	b.Push(col)
	return func() { b.Pop(col) }
}

// occupied masks the occupancy bits below each column's height.
func (b *Board) occupied() uint64 {
	var mask uint64
	for col := 0; col < b.dims.Cols; col++ {
		mask |= (uint64(1)<<uint(b.Height(col)) - 1) << (uint(col) * uint(b.dims.Rows))
	}
	return mask
}

// Flip hands the move to the other player by inverting the occupancy of
// every occupied cell. Heights are unchanged and Flip is its own inverse.
func (b *Board) Flip() {
	b.bits ^= b.occupied()
}

// Key returns the canonical memoization key of the board.
func (b *Board) Key() Key {
	heights := b.bits &^ (uint64(1)<<b.cells - 1)
	return Key(heights | b.bits&b.occupied())
}
