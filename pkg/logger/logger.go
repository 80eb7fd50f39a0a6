package logger

import (
	"io"
	"log/slog"
	"os"

	"github.com/VictorKimathi/medical-ai-assistant/internal/domain"
)

type Logger struct {
	SlogLogger *slog.Logger
}

// NewLogger writes JSON logs to loggingFilePath, or to stderr when the path
// is empty.
func NewLogger(loggingFilePath string) (*Logger, io.Closer, error) {
	if loggingFilePath == "" {
		return New(os.Stderr), io.NopCloser(nil), nil
	}

	file, err := os.OpenFile(loggingFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}

	return New(file), file, nil
}

func New(w io.Writer) *Logger {
	logger := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo}))

	return &Logger{SlogLogger: logger}
}

func (l Logger) Info(msg string, args ...interface{}) {
	l.SlogLogger.Info(msg, args...)

}

func (l Logger) Warn(msg string, args ...interface{}) {
	l.SlogLogger.Warn(msg, args...)
}

func (l Logger) Error(msg string, args ...interface{}) {
	l.SlogLogger.Error(msg, args...)

}

func (l Logger) With(args ...any) domain.LoggingRepository {
	return &Logger{
		SlogLogger: l.SlogLogger.With(args...),
	}
}
