package config

import (
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
)

// SetupLogger installs the process-wide slog logger.
func SetupLogger() {
	handler := tint.NewHandler(os.Stdout, &tint.Options{
		Level:      slog.LevelInfo,
		TimeFormat: "2006-01-02 15:04:05",
	})
	slog.SetDefault(slog.New(handler))
}
