package tictactoe

import (
	"math/rand"

	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
)

// Status is the engine state derived from the board.
type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusFinished   Status = "finished"
)

const lineLength = 3

// WinCombos lists the winning lines: rows, then columns, then diagonals.
var WinCombos = [8][lineLength]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Engine enforces move legality on a board it owns and plays the computer's reply.
type Engine struct {
	board  *entity.Board
	random func(n int) int

	lastReply int
}

type Option func(*Engine)

// WithRandom replaces the source used to pick the computer's reply. random(n) must return a value in [0, n).
func WithRandom(random func(n int) int) Option {
	return func(that *Engine) {
		that.random = random
	}
}

// WithBoard binds the engine to an existing board instead of a fresh one.
func WithBoard(board *entity.Board) Option {
	return func(that *Engine) {
		that.board = board
	}
}

func NewEngine(opts ...Option) *Engine {
	engine := &Engine{
		board:     entity.NewBoard(),
		random:    rand.Intn, //nolint: gosec // it's ok
		lastReply: -1,
	}

	for _, opt := range opts {
		opt(engine)
	}

	return engine
}

func (that *Engine) Board() *entity.Board {
	return that.board
}

// AttemptMove places player at index if the cell is empty and reports whether it did.
// A successful move with the Computer marker is answered by the automatic reply before returning.
func (that *Engine) AttemptMove(index int, player entity.Cell) bool {
	if that.board.Get(index) != entity.Empty {
		return false
	}

	that.board.Set(index, player)
	that.lastReply = -1

	if player == entity.Computer {
		that.computerReply()
	}

	return true
}

// computerReply marks a uniformly chosen empty cell, even after a move that completed a line.
// The reply is written with the Human marker: the front-end plays the Computer marker for the
// person at the keyboard.
func (that *Engine) computerReply() {
	available := that.board.EmptyCells()
	if len(available) == 0 {
		return
	}

	index := available[that.random(len(available))]

	that.board.Set(index, entity.Human)
	that.lastReply = index
}

// LastReply returns the cell chosen by the most recent automatic reply.
func (that *Engine) LastReply() (int, bool) {
	return that.lastReply, that.lastReply >= 0
}

// Winner returns the marker that fills a complete line, or Empty.
func (that *Engine) Winner() entity.Cell {
	for _, combo := range WinCombos {
		if winner, ok := that.lineOwner(combo); ok {
			return winner
		}
	}

	return entity.Empty
}

func (that *Engine) lineOwner(combo [lineLength]int) (entity.Cell, bool) {
	var humanCount, computerCount int
	for _, index := range combo {
		switch that.board.Get(index) {
		case entity.Human:
			humanCount++
		case entity.Computer:
			computerCount++
		case entity.Empty:
		}
	}

	switch {
	case computerCount == lineLength:
		return entity.Computer, true
	case humanCount == lineLength:
		return entity.Human, true
	default:
		return entity.Empty, false
	}
}

// IsFinished reports a completed line or a full board.
func (that *Engine) IsFinished() bool {
	return that.Winner() != entity.Empty || that.board.IsFull()
}

func (that *Engine) Status() Status {
	if that.IsFinished() {
		return StatusFinished
	}

	return StatusInProgress
}

// Restart clears the board in place.
func (that *Engine) Restart() {
	that.board.Reset()
	that.lastReply = -1
}
