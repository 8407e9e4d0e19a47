package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-solo/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solo/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-solo/internal/tictactoe"
)

// Outcome is the end-of-round result from the point of view of the person playing.
type Outcome string

const (
	OutcomeNone Outcome = ""
	OutcomeWin  Outcome = "win"
	OutcomeLose Outcome = "lose"
	OutcomeTie  Outcome = "tie"
)

// PlayerMark is the marker written for the person at the keyboard; the engine answers with entity.Human.
const PlayerMark = entity.Computer

type sessionRepo interface {
	Save(ctx context.Context, session *entity.Session) error
	GetByID(ctx context.Context, id string) (*entity.Session, error)
	DeleteByID(ctx context.Context, id string) error
}

// Result describes what a single click did.
type Result struct {
	Accepted bool
	Reply    int
	Replied  bool
	Outcome  Outcome
}

// SessionManager drives one engine for one player and keeps the session score.
type SessionManager struct {
	logger      *slog.Logger
	sessionRepo sessionRepo
	engine      *tictactoe.Engine

	id    string
	score int
}

func NewSessionManager(logger *slog.Logger, sessionRepo sessionRepo, engine *tictactoe.Engine) *SessionManager {
	return &SessionManager{
		logger:      logger.With("component", "session"),
		sessionRepo: sessionRepo,
		engine:      engine,
	}
}

// Resume loads the snapshot stored under id. An empty or unknown id starts a fresh session.
func (that *SessionManager) Resume(ctx context.Context, id string) error {
	log := that.logger.With("method", "Resume")

	if id == "" {
		that.start(pkg.GenerateSessionID())
		log.Info("Started new session", "sessionID", that.id)

		return nil
	}

	session, err := that.sessionRepo.GetByID(ctx, id)
	if errors.Is(err, apperror.ErrSessionNotFound) {
		that.start(id)
		log.Info("No snapshot found, started new session", "sessionID", id)

		return nil
	}

	if err != nil {
		return fmt.Errorf("failed to get session: %w", err)
	}

	for i, cell := range session.Board {
		if !cell.Valid() {
			return fmt.Errorf("%w: session %s cell %d holds %d", apperror.ErrCorruptSession, id, i, cell)
		}
	}

	that.id = session.ID
	that.score = session.Score
	that.engine.Board().Load(session.Board)
	log.Info("Resumed session", "sessionID", that.id, "score", that.score)

	return nil
}

func (that *SessionManager) start(id string) {
	that.id = id
	that.score = 0
	that.engine.Restart()
}

func (that *SessionManager) ID() string {
	return that.id
}

func (that *SessionManager) Score() int {
	return that.score
}

func (that *SessionManager) Board() *entity.Board {
	return that.engine.Board()
}

func (that *SessionManager) IsFinished() bool {
	return that.engine.IsFinished()
}

// Outcome reports the result of the current round, OutcomeNone while it is in progress.
func (that *SessionManager) Outcome() Outcome {
	if !that.engine.IsFinished() {
		return OutcomeNone
	}

	switch that.engine.Winner() {
	case PlayerMark:
		return OutcomeWin
	case entity.Human:
		return OutcomeLose
	default:
		return OutcomeTie
	}
}

// Play handles a click on cell index. An occupied cell is ignored and reported as not accepted.
func (that *SessionManager) Play(ctx context.Context, index int) (Result, error) {
	log := that.logger.With("method", "Play", "sessionID", that.id, "cell", index)

	if !entity.ValidIndex(index) {
		return Result{}, fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, index)
	}

	if that.engine.IsFinished() {
		log.Debug("Round already finished, click ignored")
		return Result{Outcome: that.Outcome()}, nil
	}

	if !that.engine.AttemptMove(index, PlayerMark) {
		log.Debug("Cell occupied")
		return Result{}, nil
	}

	result := Result{Accepted: true}
	result.Reply, result.Replied = that.engine.LastReply()
	result.Outcome = that.Outcome()

	switch result.Outcome {
	case OutcomeWin:
		that.score++
	case OutcomeLose:
		that.score = 0
	case OutcomeNone, OutcomeTie:
	}

	if result.Outcome != OutcomeNone {
		log.Info("Round finished", "outcome", result.Outcome, "score", that.score)
	}

	if err := that.save(ctx); err != nil {
		return result, fmt.Errorf("failed to save session: %w", err)
	}

	return result, nil
}

// Restart clears the board for a new round and keeps the score.
func (that *SessionManager) Restart(ctx context.Context) error {
	that.engine.Restart()

	if err := that.save(ctx); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

// Close drops the stored snapshot when the player quits deliberately.
func (that *SessionManager) Close(ctx context.Context) error {
	err := that.sessionRepo.DeleteByID(ctx, that.id)
	if err != nil && !errors.Is(err, apperror.ErrSessionNotFound) {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}

func (that *SessionManager) save(ctx context.Context) error {
	return that.sessionRepo.Save(ctx, &entity.Session{
		ID:    that.id,
		Board: that.engine.Board().Cells(),
		Score: that.score,
	})
}
