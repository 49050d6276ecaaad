package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// logWriter открывает файл логов на дозапись. При ошибке открытия возвращает stderr.
func logWriter(path string) io.Writer {
	if path == "" {
		return os.Stderr
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return os.Stderr
	}
	return f
}

// ParseLevel переводит LOG_LEVEL (debug, info, warn, error; регистр не важен) в уровень slog. Неизвестное — info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error", "critical":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewWithLevel возвращает текстовый логгер заданного уровня с записью в файл path.
// REPL пишет в stdout, поэтому логи в консоль не дублируются.
func NewWithLevel(level, path string) *slog.Logger {
	return NewWithWriter(level, logWriter(path))
}

// NewWithWriter — то же, но с произвольным writer (для тестов).
func NewWithWriter(level string, w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: ParseLevel(level),
	}))
}
