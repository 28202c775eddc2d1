package application

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/config"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/replay"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/repository"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/tui"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/usecase"
)

// App holds the wired components shared by the commands.
type App struct {
	Logger   *slog.Logger
	Manager  *usecase.GameManager
	Replayer *replay.Replayer
	Marks    tui.Marks
}

// New - wires the repository, the game manager and the replayer.
func New(logger *slog.Logger, conf *config.Config) *App {
	sessionRepo := repository.NewSessionRepository()
	gameManager := usecase.NewGameManager(logger, sessionRepo)

	return &App{
		Logger:   logger,
		Manager:  gameManager,
		Replayer: replay.NewReplayer(logger, gameManager),
		Marks: tui.Marks{
			First:  conf.Marks.First,
			Second: conf.Marks.Second,
		},
	}
}

// NewLogger - JSON logger writing to the configured log file, or to fallback when none is set.
// The returned close function must be called once logging is done.
func NewLogger(conf *config.Config, fallback io.Writer) (*slog.Logger, func() error, error) {
	output := fallback
	closeFn := func() error { return nil }

	if conf.LogFile != "" {
		file, err := os.OpenFile(conf.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}

		output = file
		closeFn = file.Close
	}

	logger := slog.New(slog.NewJSONHandler(output, &slog.HandlerOptions{Level: logLevel(conf.LogLevel)}))

	return logger, closeFn, nil
}

func logLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
