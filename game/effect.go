package game

import (
	"errors"
	"fmt"
)

// vectors are the 8 unit directions a capture line can run along.
var vectors = [8]Coord{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

var (
	// ErrOccupied reports a placement on a non-empty cell.
	ErrOccupied = errors.New("cell already occupied")
	// ErrInvalidMove reports a zero-yield placement: no direction
	// captures anything, so the move is not playable.
	ErrInvalidMove = errors.New("move captures nothing")
)

// Weight is the static positional value of a cell: the product of its
// row and column weights, where the first and last index weigh
// BoardSize and all others 1. Corners weigh 64, other edge cells 8,
// interior cells 1.
func Weight(row, col int) int {
	return idxWeight(row) * idxWeight(col)
}

func idxWeight(i int) int {
	if i == 0 || i == BoardSize-1 {
		return BoardSize
	}
	return 1
}

// Effect records what a single applied move did: the positional score
// it earned and the cells it flipped, in the order they were captured.
// Flips is exactly what Undo needs to reverse the move.
type Effect struct {
	Score int
	Flips []Coord
}

// Apply places mover's marker at (row, col) and flips every opponent
// cell captured along the 8 directions. On success both players' counts
// are adjusted and the returned score is the weight of the placed cell
// plus the weight of every flipped cell.
//
// A placement that captures nothing returns ErrInvalidMove and mutates
// nothing. Occupied and off-board cells are rejected the same way.
func (s *State) Apply(row, col int, mover Cell) (Effect, error) {
	cell, err := s.Board.Get(row, col)
	if err != nil {
		return Effect{}, err
	}
	if cell != Empty {
		return Effect{}, fmt.Errorf("%w: (%d,%d)", ErrOccupied, row, col)
	}

	opponent := Opponent(mover)
	var eff Effect
	var line [BoardSize - 1]Coord

	for _, v := range vectors {
		n := 0
		lineScore := 0
		r, c := row+v.Row, col+v.Col
		for InBounds(r, c) && s.Board[r][c] == opponent {
			if n == len(line) {
				panic("capture line longer than the board allows")
			}
			line[n] = Coord{Row: r, Col: c}
			lineScore += Weight(r, c)
			n++
			r += v.Row
			c += v.Col
		}
		// A line captures only when it ends on the mover's own
		// marker; the board edge or an empty cell voids it.
		if n == 0 || !InBounds(r, c) || s.Board[r][c] != mover {
			continue
		}
		for _, q := range line[:n] {
			s.Board[q.Row][q.Col] = mover
		}
		eff.Flips = append(eff.Flips, line[:n]...)
		eff.Score += lineScore
	}

	if len(eff.Flips) == 0 {
		return Effect{}, fmt.Errorf("%w: (%d,%d)", ErrInvalidMove, row, col)
	}

	eff.Score += Weight(row, col)
	s.Board[row][col] = mover
	s.Player(mover).Count += len(eff.Flips) + 1
	s.Player(opponent).Count -= len(eff.Flips)
	return eff, nil
}

// Undo reverses a prior Apply with the same arguments: the placed cell
// becomes empty again, every flipped cell reverts to the opponent, and
// both counts are restored. The searcher leans on Apply and Undo being
// exact inverses to explore sibling moves from a clean board.
func (s *State) Undo(row, col int, mover Cell, flips []Coord) {
	opponent := Opponent(mover)
	s.Board[row][col] = Empty
	for _, q := range flips {
		s.Board[q.Row][q.Col] = opponent
	}
	s.Player(mover).Count -= len(flips) + 1
	s.Player(opponent).Count += len(flips)
}

// IsLegal reports whether placing mover at (row, col) would capture at
// least one cell. Unlike Apply it never mutates the board.
func (s *State) IsLegal(row, col int, mover Cell) bool {
	if !InBounds(row, col) || s.Board[row][col] != Empty {
		return false
	}
	opponent := Opponent(mover)
	for _, v := range vectors {
		n := 0
		r, c := row+v.Row, col+v.Col
		for InBounds(r, c) && s.Board[r][c] == opponent {
			n++
			r += v.Row
			c += v.Col
		}
		if n > 0 && InBounds(r, c) && s.Board[r][c] == mover {
			return true
		}
	}
	return false
}

// HasLegalMove reports whether mover can capture anywhere on the board.
func (s *State) HasLegalMove(mover Cell) bool {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if s.IsLegal(row, col, mover) {
				return true
			}
		}
	}
	return false
}

// LegalMoves lists every capturing placement for mover in row-major
// order.
func (s *State) LegalMoves(mover Cell) []Coord {
	var moves []Coord
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if s.IsLegal(row, col, mover) {
				moves = append(moves, Coord{Row: row, Col: col})
			}
		}
	}
	return moves
}
