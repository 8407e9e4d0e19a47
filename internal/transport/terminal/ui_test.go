package terminal

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solo/internal/repository"
	"github.com/rocketscienceinc/tictactoe-solo/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-solo/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUI(t *testing.T, input string) (*UI, *usecase.SessionManager, *bytes.Buffer) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	engine := tictactoe.NewEngine(tictactoe.WithRandom(func(n int) int { return n - 1 }))
	manager := usecase.NewSessionManager(logger, repository.NewMemorySessionRepository(), engine)
	require.NoError(t, manager.Resume(context.Background(), ""))

	out := &bytes.Buffer{}

	return New(logger, manager, strings.NewReader(input), out, false), manager, out
}

func TestUI_Run(t *testing.T) {
	t.Run("Renders the empty board", func(t *testing.T) {
		ui, _, out := newUI(t, "")

		require.NoError(t, ui.Run(context.Background()))

		assert.Contains(t, out.String(), "Tic-tac-toe")
		assert.Contains(t, out.String(), " 1 | 2 | 3 \n---+---+---\n 4 | 5 | 6 \n---+---+---\n 7 | 8 | 9 \n")
		assert.Contains(t, out.String(), "Score: 0")
	})

	t.Run("Move and reply are drawn", func(t *testing.T) {
		ui, manager, out := newUI(t, "5\n")

		require.NoError(t, ui.Run(context.Background()))

		assert.Equal(t, entity.Computer, manager.Board().Get(4))
		assert.Equal(t, entity.Human, manager.Board().Get(8))
		assert.Contains(t, out.String(), " 4 | X | 6 \n---+---+---\n 7 | 8 | O \n")
	})

	t.Run("Invalid input is reported", func(t *testing.T) {
		ui, manager, out := newUI(t, "5 5\nten\n")

		require.NoError(t, ui.Run(context.Background()))

		assert.Equal(t, entity.NewBoard(), manager.Board())
		assert.Equal(t, 2, strings.Count(out.String(), "invalid input"))
	})

	t.Run("Won round shows the notice and restarts on confirm", func(t *testing.T) {
		// Given: clicks on the top row, with the reply filling the bottom row from the right
		ui, manager, out := newUI(t, "1\n1 2\n3\n\nq\n")

		// When: the round is played and confirmed
		require.NoError(t, ui.Run(context.Background()))

		// Then: the player saw the win, the score went up and the board was cleared
		assert.Contains(t, out.String(), "Game Over\nYou win\nPress Enter to confirm (q to quit)")
		assert.Contains(t, out.String(), "Score: 1")
		assert.Equal(t, 1, manager.Score())
		assert.Equal(t, entity.NewBoard(), manager.Board())
		assert.True(t, strings.HasSuffix(out.String(), "Bye!\n"))
	})

	t.Run("Quit on the end-of-round notice does not restart", func(t *testing.T) {
		// Given: a won round followed by q on the notice
		ui, manager, out := newUI(t, "1\n2\n3\nq\n")

		// When: the loop runs
		require.NoError(t, ui.Run(context.Background()))

		// Then: the session ends with the finished board still in place
		assert.True(t, manager.IsFinished())
		assert.Equal(t, usecase.OutcomeWin, manager.Outcome())
		assert.Equal(t, 1, strings.Count(out.String(), "Game Over"))
		assert.True(t, strings.HasSuffix(out.String(), "Bye!\n"))
	})

	t.Run("Canceled context stops the loop", func(t *testing.T) {
		reader, writer := io.Pipe()
		t.Cleanup(func() { _ = writer.Close() })

		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		manager := usecase.NewSessionManager(logger, repository.NewMemorySessionRepository(), tictactoe.NewEngine())
		ui := New(logger, manager, reader, io.Discard, false)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		require.NoError(t, ui.Run(ctx))
	})
}
