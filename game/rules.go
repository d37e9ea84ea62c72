package game

import "fmt"

// Dimensions describe the board size and the streak length needed to win.
type Dimensions struct {
	Rows      int
	Cols      int
	WinLength int
}

// DefaultDimensions is the small board the exhaustive engine can fully enumerate.
func DefaultDimensions() Dimensions {
	return Dimensions{
		Rows:      4,
		Cols:      5,
		WinLength: 4,
	}
}

func (d Dimensions) Cells() int {
	return d.Rows * d.Cols
}

// Validate checks the dimensions describe a playable board. It does not
// check whether the board fits a packed representation.
func (d Dimensions) Validate() error {
	if d.Rows < 1 || d.Cols < 1 {
		return fmt.Errorf("invalid dimensions %dx%d: rows and cols must be positive", d.Rows, d.Cols)
	}
	if d.WinLength < 1 {
		return fmt.Errorf("invalid win length %d: must be positive", d.WinLength)
	}
	if d.WinLength > d.Rows && d.WinLength > d.Cols {
		return fmt.Errorf("invalid win length %d: no line fits a %dx%d board", d.WinLength, d.Rows, d.Cols)
	}
	return nil
}

func (d Dimensions) String() string {
	return fmt.Sprintf("%dx%d/%d", d.Rows, d.Cols, d.WinLength)
}
