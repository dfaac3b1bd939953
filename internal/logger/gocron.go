package logger

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/go-co-op/gocron/v2"
)

// gocronLogger forwards gocron's internal messages to slog at debug level,
// keeping warnings and errors at their own level.
type gocronLogger struct {
	log *slog.Logger
}

// NewGocronLogger adapts log to gocron.Logger.
//
//nolint:ireturn // gocron.WithLogger takes the interface
func NewGocronLogger(log *slog.Logger) gocron.Logger {
	return &gocronLogger{log: log.With("source", "gocron")}
}

func (l *gocronLogger) Debug(msg string, args ...any) {
	l.log.Debug(msg, schedulerArgs(args)...)
}

func (l *gocronLogger) Info(msg string, args ...any) {
	l.log.Debug(msg, schedulerArgs(args)...)
}

func (l *gocronLogger) Warn(msg string, args ...any) {
	l.log.Warn(msg, schedulerArgs(args)...)
}

func (l *gocronLogger) Error(msg string, args ...any) {
	l.log.Error(msg, schedulerArgs(args)...)
}

// schedulerArgs tags error values with a short error_kind attribute.
func schedulerArgs(args []any) []any {
	out := make([]any, 0, len(args)+2)
	for i := 0; i < len(args); i += 2 {
		if i+1 >= len(args) {
			out = append(out, args[i])
			break
		}
		key, val := args[i], args[i+1]
		out = append(out, key, val)

		if err, ok := val.(error); ok {
			out = append(out, "error_kind", schedulerErrorKind(err))
		}
	}
	return out
}

func schedulerErrorKind(err error) string {
	msg := err.Error()
	switch {
	case errors.Is(err, gocron.ErrJobNotFound):
		return "job_not_found"
	case errors.Is(err, gocron.ErrCronJobParse), errors.Is(err, gocron.ErrCronJobInvalid):
		return "invalid_schedule"
	case strings.Contains(msg, "shutdown"), strings.Contains(msg, "stopped"):
		return "shutdown"
	default:
		return "scheduler"
	}
}
