package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-solo/internal/apperror"
)

// Cell is the occupancy state of one board position.
type Cell uint8

const (
	Empty Cell = iota
	Human
	Computer
)

const (
	BoardSize = 9
	RowSize   = 3
)

func (that Cell) String() string {
	switch that {
	case Human:
		return "human"
	case Computer:
		return "computer"
	default:
		return "empty"
	}
}

// Valid reports whether the value is one of Empty, Human or Computer.
func (that Cell) Valid() bool {
	return that <= Computer
}

// Glyph returns the mark drawn on a tile.
func (that Cell) Glyph() string {
	switch that {
	case Computer:
		return "X"
	case Human:
		return "O"
	default:
		return " "
	}
}

// Board is a 3x3 grid stored row-major: row = index/3, col = index%3.
type Board struct {
	cells [BoardSize]Cell
}

func NewBoard() *Board {
	return &Board{}
}

// Get returns the cell at index. An index outside 0..8 is a programming error and panics.
func (that *Board) Get(index int) Cell {
	mustBeValid(index)

	return that.cells[index]
}

// Set overwrites the cell at index unconditionally.
func (that *Board) Set(index int, cell Cell) {
	mustBeValid(index)

	that.cells[index] = cell
}

// Reset clears every cell in place.
func (that *Board) Reset() {
	for i := range that.cells {
		that.cells[i] = Empty
	}
}

// Cells returns a copy of the board contents.
func (that *Board) Cells() [BoardSize]Cell {
	return that.cells
}

// Load replaces the board contents with cells.
func (that *Board) Load(cells [BoardSize]Cell) {
	that.cells = cells
}

// EmptyCells returns the indices of empty cells in ascending order.
func (that *Board) EmptyCells() []int {
	available := make([]int, 0, BoardSize)
	for i, cell := range that.cells {
		if cell == Empty {
			available = append(available, i)
		}
	}

	return available
}

func (that *Board) IsFull() bool {
	for _, cell := range that.cells {
		if cell == Empty {
			return false
		}
	}

	return true
}

func (that *Board) String() string {
	var sb strings.Builder
	for row := 0; row < RowSize; row++ {
		if row > 0 {
			sb.WriteString("\n-+-+-\n")
		}
		for col := 0; col < RowSize; col++ {
			if col > 0 {
				sb.WriteByte('|')
			}
			sb.WriteString(that.cells[Index(row, col)].Glyph())
		}
	}

	return sb.String()
}

// Index maps a row and column to a cell index.
func Index(row, col int) int {
	return row*RowSize + col
}

func ValidIndex(index int) bool {
	return index >= 0 && index < BoardSize
}

func mustBeValid(index int) {
	if !ValidIndex(index) {
		panic(fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, index))
	}
}
