package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/lmittmann/tint"
)

// Logger writes to its file and optionally mirrors everything to stdout.
type Logger struct {
	file           io.Writer
	printToConsole bool
}

func NewLogger(file io.Writer, printToConsole bool) *Logger {
	return &Logger{file: file, printToConsole: printToConsole}
}

func (logger *Logger) Write(p []byte) (n int, err error) {
	_, _ = logger.file.Write(p)
	if logger.printToConsole {
		_, _ = os.Stdout.Write(p)
	}
	return len(p), nil
}

// ParseLevel maps "debug", "info", "warn" and "error" to a slog level, anything else is info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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

// NewSlog builds the structured logger of an experiment on top of w.
func NewSlog(w io.Writer, level string) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      ParseLevel(level),
		TimeFormat: "15:04:05.000",
		NoColor:    true,
	}))
}

// Discard is a logger for callers that do not want any output.
func Discard() *slog.Logger {
	return NewSlog(io.Discard, "error")
}
