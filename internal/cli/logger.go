package cli

import (
	"io"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe/internal/config"
)

// initialize logger. Logs go to stderr so they never mix with the board.
func initLogger(out io.Writer, conf *config.Config) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	return slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level}))
}
