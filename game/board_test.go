package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBoardGetSet(t *testing.T) {
	var b Board

	cell, err := b.Get(0, 0)
	require.NoError(t, err)
	require.Equal(t, Empty, cell, "fresh board should be empty")

	b.Set(3, 5, Dark)
	cell, err = b.Get(3, 5)
	require.NoError(t, err)
	require.Equal(t, Dark, cell)

	b.Set(3, 5, Empty)
	cell, err = b.Get(3, 5)
	require.NoError(t, err)
	require.Equal(t, Empty, cell)
}

func TestBoardGetOutOfRange(t *testing.T) {
	var b Board

	for _, q := range []Coord{
		{Row: -1, Col: 0},
		{Row: 0, Col: -1},
		{Row: BoardSize, Col: 0},
		{Row: 0, Col: BoardSize},
		{Row: -3, Col: 12},
	} {
		_, err := b.Get(q.Row, q.Col)
		require.ErrorIs(t, err, ErrOutOfRange, "(%d,%d) is off the board", q.Row, q.Col)
	}
}

func TestCellMarker(t *testing.T) {
	require.Equal(t, byte('X'), Dark.Marker())
	require.Equal(t, byte('O'), Light.Marker())
	require.Equal(t, byte(' '), Empty.Marker())
}

func TestOpponent(t *testing.T) {
	require.Equal(t, Light, Opponent(Dark))
	require.Equal(t, Dark, Opponent(Light))
}
