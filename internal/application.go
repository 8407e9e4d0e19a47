package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-solo/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solo/internal/config"
	"github.com/rocketscienceinc/tictactoe-solo/internal/repository"
	"github.com/rocketscienceinc/tictactoe-solo/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-solo/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-solo/internal/transport/terminal"
	"github.com/rocketscienceinc/tictactoe-solo/internal/usecase"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	sessionRepo, closeRepo, err := newSessionRepository(ctx, conf)
	if err != nil {
		return err
	}

	defer func() {
		if err := closeRepo(); err != nil {
			log.Error("could not close session storage", "error", err)
		}
	}()

	manager := usecase.NewSessionManager(logger, sessionRepo, tictactoe.NewEngine())
	if err = manager.Resume(ctx, conf.SessionID); err != nil {
		return fmt.Errorf("could not resume session: %w", err)
	}

	log.Info("Session ready", "sessionID", manager.ID(), "store", conf.SessionStore)

	ui := terminal.New(logger, manager, os.Stdin, os.Stdout, !conf.NoColor)
	if err = ui.Run(ctx); err != nil {
		return fmt.Errorf("terminal error: %w", err)
	}

	return nil
}

func newSessionRepository(ctx context.Context, conf *config.Config) (repository.SessionRepository, func() error, error) {
	switch conf.SessionStore {
	case config.StoreMemory:
		return repository.NewMemorySessionRepository(), func() error { return nil }, nil
	case config.StoreRedis:
		redisStorage, err := storage.New(ctx, conf.Redis.GetRedisAddr())
		if err != nil {
			return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		return repository.NewSessionRepository(redisStorage, conf.Redis.TTL), redisStorage.Close, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", apperror.ErrUnknownStoreType, conf.SessionStore)
	}
}
