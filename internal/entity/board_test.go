package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoard(t *testing.T) {
	// Given: a fresh board
	board := NewBoard()

	// Then: every cell should be empty
	for i := 0; i < BoardSize; i++ {
		require.Equal(t, Empty, board.Get(i), "cell %d", i)
	}
	assert.False(t, board.IsFull())
	assert.Len(t, board.EmptyCells(), BoardSize)
}

func TestBoard_GetSet(t *testing.T) {
	t.Run("Set overwrites unconditionally", func(t *testing.T) {
		// Given: a board with a human mark in the center
		board := NewBoard()
		board.Set(4, Human)

		// When: the same cell is overwritten by the computer
		board.Set(4, Computer)

		// Then: the last write wins
		assert.Equal(t, Computer, board.Get(4))
	})

	t.Run("Out of range index panics", func(t *testing.T) {
		board := NewBoard()

		assert.PanicsWithError(t, "invalid cell index: cell 9", func() { board.Get(9) })
		assert.PanicsWithError(t, "invalid cell index: cell -1", func() { board.Set(-1, Human) })
	})
}

func TestBoard_Reset(t *testing.T) {
	// Given: a full board held by an observer
	board := NewBoard()
	observed := board
	for i := 0; i < BoardSize; i++ {
		board.Set(i, Human)
	}
	require.True(t, board.IsFull())

	// When: the board is reset
	board.Reset()

	// Then: the observer sees a board equal to a fresh one
	assert.Equal(t, NewBoard(), observed)
	assert.Same(t, board, observed)
}

func TestBoard_EmptyCells(t *testing.T) {
	// Given: a board with a few marks
	board := NewBoard()
	board.Load([BoardSize]Cell{
		Human, Empty, Computer,
		Empty, Human, Empty,
		Computer, Empty, Empty,
	})

	// When: asking for empty cells
	available := board.EmptyCells()

	// Then: they come back in ascending order
	assert.Equal(t, []int{1, 3, 5, 7, 8}, available)
}

func TestBoard_String(t *testing.T) {
	board := NewBoard()
	board.Set(0, Computer)
	board.Set(Index(2, 2), Human)

	assert.Equal(t, "X| | \n-+-+-\n | | \n-+-+-\n | |O", board.String())
}

func TestCell_Valid(t *testing.T) {
	for _, cell := range []Cell{Empty, Human, Computer} {
		assert.True(t, cell.Valid(), cell.String())
	}

	assert.False(t, Cell(3).Valid())
	assert.False(t, Cell(7).Valid())
}
