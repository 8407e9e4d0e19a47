package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	app "github.com/rocketscienceinc/tictactoe-solo/internal"
	"github.com/rocketscienceinc/tictactoe-solo/internal/config"
)

const (
	configPathEnv     = "TICTACTOE_CONFIG"
	defaultConfigFile = "config.yml"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "tictactoe: %v\n", err)
			os.Exit(1)
		}
	}()

	conf := config.MustLoad(configPath())

	// stdout belongs to the board
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel(conf.LogLevel)}))

	if err := app.RunApp(logger, conf); err != nil {
		logger.Error("game stopped", "error", err)
		os.Exit(1)
	}
}

// configPath prefers $TICTACTOE_CONFIG and falls back to config.yml in the working directory.
func configPath() string {
	if path := os.Getenv(configPathEnv); path != "" {
		return path
	}

	baseDir, err := os.Getwd()
	if err != nil {
		panic(fmt.Errorf("failed to get current directory: %w", err))
	}

	return filepath.Join(baseDir, defaultConfigFile)
}

// logLevel maps debug/info/warn/error; anything else logs at info.
func logLevel(name string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo
	}

	return level
}
