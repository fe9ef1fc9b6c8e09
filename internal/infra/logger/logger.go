package logger

import (
	"io"
	"log/slog"
)

// New — JSON-логгер; в окружении dev включается уровень debug.
// Логи пишутся в out (обычно stderr), чтобы stdout оставался за отчётом.
func New(env string, out io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if env == "dev" {
		level = slog.LevelDebug
	}
	h := slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level})
	return slog.New(h)
}
