package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/muesli/termenv"
	"github.com/rocketscienceinc/tictactoe-solo/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solo/internal/usecase"
)

const (
	title = "Tic-tac-toe"

	colorPlayer   = "39"
	colorComputer = "204"
)

type session interface {
	Board() *entity.Board
	Score() int
	IsFinished() bool
	Outcome() usecase.Outcome

	Play(ctx context.Context, index int) (usecase.Result, error)
	Restart(ctx context.Context) error
	Close(ctx context.Context) error
}

// UI is a line-based front-end: it draws the board, reads one command per line and shows the end-of-round notice.
type UI struct {
	logger  *slog.Logger
	session session

	in     io.Reader
	output *termenv.Output
}

func New(logger *slog.Logger, session session, in io.Reader, out io.Writer, color bool) *UI {
	opts := []termenv.OutputOption{}
	if !color {
		opts = append(opts, termenv.WithProfile(termenv.Ascii))
	}

	return &UI{
		logger:  logger.With("component", "terminal"),
		session: session,
		in:      in,
		output:  termenv.NewOutput(out, opts...),
	}
}

// Run plays rounds until the player quits, the input ends or ctx is canceled.
func (that *UI) Run(ctx context.Context) error {
	log := that.logger.With("method", "Run")

	lines := make(chan string)
	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(that.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}

		if err := scanner.Err(); err != nil {
			log.Error("failed to read input", "error", err)
		}
	}()

	for {
		that.render()

		if that.session.IsFinished() {
			that.printNotice()
		} else {
			that.printf("Your move (1-9 or \"row col\", q to quit): ")
		}

		var line string
		select {
		case <-ctx.Done():
			that.printf("\n")
			return nil
		case next, ok := <-lines:
			if !ok {
				that.printf("\n")
				return nil
			}
			line = next
		}

		if that.session.IsFinished() {
			if cmd, _, _ := parseMove(line); cmd == commandQuit {
				return that.quit(ctx)
			}

			if err := that.session.Restart(ctx); err != nil {
				return fmt.Errorf("failed to restart round: %w", err)
			}
			continue
		}

		quit, err := that.handleLine(ctx, line)
		if err != nil {
			return err
		}

		if quit {
			return that.quit(ctx)
		}
	}
}

func (that *UI) quit(ctx context.Context) error {
	if err := that.session.Close(ctx); err != nil {
		return fmt.Errorf("failed to close session: %w", err)
	}

	that.printf("Bye!\n")

	return nil
}

func (that *UI) handleLine(ctx context.Context, line string) (bool, error) {
	cmd, index, err := parseMove(line)
	if errors.Is(err, apperror.ErrInvalidInput) {
		that.printf("%s\n", err)
		return false, nil
	}

	if cmd == commandQuit {
		return true, nil
	}

	result, err := that.session.Play(ctx, index)
	if err != nil {
		return false, fmt.Errorf("failed to play cell %d: %w", index, err)
	}

	if !result.Accepted {
		that.logger.Debug("click on occupied cell ignored", "cell", index)
	}

	return false, nil
}

func (that *UI) render() {
	board := that.session.Board()

	var sb strings.Builder
	sb.WriteString("\n" + that.output.String(title).Bold().String() + "\n\n")

	for row := 0; row < entity.RowSize; row++ {
		if row > 0 {
			sb.WriteString("---+---+---\n")
		}

		tiles := make([]string, 0, entity.RowSize)
		for col := 0; col < entity.RowSize; col++ {
			index := entity.Index(row, col)
			tiles = append(tiles, " "+that.tile(index, board.Get(index))+" ")
		}
		sb.WriteString(strings.Join(tiles, "|") + "\n")
	}

	sb.WriteString("\nScore: " + strconv.Itoa(that.session.Score()) + "\n")
	that.printf("%s", sb.String())
}

func (that *UI) tile(index int, cell entity.Cell) string {
	switch cell {
	case usecase.PlayerMark:
		return that.output.String(cell.Glyph()).Bold().Foreground(that.output.Color(colorPlayer)).String()
	case entity.Human:
		return that.output.String(cell.Glyph()).Bold().Foreground(that.output.Color(colorComputer)).String()
	default:
		return that.output.String(strconv.Itoa(index + 1)).Faint().String()
	}
}

func (that *UI) printNotice() {
	var message string
	switch that.session.Outcome() {
	case usecase.OutcomeWin:
		message = "You win"
	case usecase.OutcomeLose:
		message = "You lose"
	case usecase.OutcomeTie, usecase.OutcomeNone:
		message = "Tied"
	}

	that.printf("\n%s\n%s\nPress Enter to confirm (q to quit)", that.output.String("Game Over").Bold().String(), message)
}

func (that *UI) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(that.output, format, args...); err != nil {
		that.logger.Error("failed to write output", "error", err)
	}
}
