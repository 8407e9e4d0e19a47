package terminal

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-solo/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
)

type command int

const (
	commandMove command = iota
	commandQuit
)

// parseMove accepts "q", a tile number 1..9 or a 1-based "row col" pair and returns the cell index.
func parseMove(line string) (command, int, error) {
	fields := strings.Fields(strings.ToLower(line))

	switch len(fields) {
	case 1:
		if fields[0] == "q" || fields[0] == "quit" {
			return commandQuit, 0, nil
		}

		tile, err := strconv.Atoi(fields[0])
		if err != nil || tile < 1 || tile > entity.BoardSize {
			return commandMove, 0, fmt.Errorf("%w: %q is not a tile 1-%d", apperror.ErrInvalidInput, fields[0], entity.BoardSize)
		}

		return commandMove, tile - 1, nil
	case 2:
		row, rowErr := strconv.Atoi(fields[0])
		col, colErr := strconv.Atoi(fields[1])
		if rowErr != nil || colErr != nil || !inRange(row) || !inRange(col) {
			return commandMove, 0, fmt.Errorf("%w: %q is not a row and column 1-%d", apperror.ErrInvalidInput, line, entity.RowSize)
		}

		return commandMove, entity.Index(row-1, col-1), nil
	default:
		return commandMove, 0, fmt.Errorf("%w: %q", apperror.ErrInvalidInput, line)
	}
}

func inRange(n int) bool {
	return n >= 1 && n <= entity.RowSize
}
