package game

import (
	"errors"
	"fmt"
)

const (
	// BoardSize is the side length of the square board.
	BoardSize = 8
	// BoardArea is the total number of cells.
	BoardArea = BoardSize * BoardSize
)

// Cell is the state of a single board cell.
type Cell uint8

const (
	Empty Cell = iota
	Dark       // plays first, rendered as X
	Light      // rendered as O
)

// Marker returns the character used to render the cell.
func (c Cell) Marker() byte {
	switch c {
	case Dark:
		return 'X'
	case Light:
		return 'O'
	default:
		return ' '
	}
}

// Coord addresses a single cell. Row and Col are in [0, BoardSize).
type Coord struct {
	Row, Col int
}

// ErrOutOfRange reports a coordinate outside the board.
var ErrOutOfRange = errors.New("coordinate out of range")

// Board is the 8x8 grid of cells. It owns no game logic beyond storage
// and query; legality lives in the effect calculator.
type Board [BoardSize][BoardSize]Cell

// InBounds reports whether (row, col) addresses a cell on the board.
func InBounds(row, col int) bool {
	return row >= 0 && row < BoardSize && col >= 0 && col < BoardSize
}

// Get returns the cell at (row, col), or ErrOutOfRange before touching
// anything when the coordinate is off the board.
func (b *Board) Get(row, col int) (Cell, error) {
	if !InBounds(row, col) {
		return Empty, fmt.Errorf("%w: (%d,%d)", ErrOutOfRange, row, col)
	}
	return b[row][col], nil
}

// Set mutates a single cell with no legality checking. Only the effect
// calculator's apply/undo should call it.
func (b *Board) Set(row, col int, c Cell) {
	b[row][col] = c
}
