package thomasq

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with thomasq-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithOperation adds an operation field to the logger.
func (l *Logger) WithOperation(op Operation) *Logger {
	return &Logger{
		Logger: l.Logger.With("operation", op.String()),
	}
}

// WithBand adds the target Q-value band to the logger.
func (l *Logger) WithBand(lower, upper float64) *Logger {
	return &Logger{
		Logger: l.Logger.With("lower", lower, "upper", upper),
	}
}

// LogSearch logs a completed constrained search.
// trials is the number of candidates drawn before the search ended.
func (l *Logger) LogSearch(ctx context.Context, op Operation, trials int, status Status) {
	switch status {
	case StatusValid:
		l.DebugContext(ctx, "search completed",
			"operation", op.String(),
			"trials", trials,
		)
	case StatusExhausted:
		l.DebugContext(ctx, "search exhausted",
			"operation", op.String(),
			"trials", trials,
		)
	default:
		l.WarnContext(ctx, "search rejected",
			"operation", op.String(),
			"status", status.String(),
		)
	}
}

// LogGenerate logs a completed bank generation.
func (l *Logger) LogGenerate(ctx context.Context, op Operation, produced, requested int, err error) {
	if err != nil {
		l.WarnContext(ctx, "bank generation incomplete",
			"operation", op.String(),
			"produced", produced,
			"requested", requested,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "bank generation completed",
			"operation", op.String(),
			"produced", produced,
		)
	}
}
