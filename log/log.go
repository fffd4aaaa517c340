// Package log carries a zerolog logger through contexts and provides
// leveled helpers with harness-specific attributes.
package log

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// AttrOption attaches a structured attribute to a context logger.
type AttrOption func(l zerolog.Context) zerolog.Context

// Scope tags log entries with a subsystem name.
func Scope(s string) AttrOption {
	return func(l zerolog.Context) zerolog.Context {
		return l.Str("s", s)
	}
}

// Worker tags log entries with a stress worker ID.
func Worker(id int) AttrOption {
	return func(l zerolog.Context) zerolog.Context {
		return l.Int("worker", id)
	}
}

// Seed tags log entries with the RNG seed in use.
func Seed(seed int64) AttrOption {
	return func(l zerolog.Context) zerolog.Context {
		return l.Int64("seed", seed)
	}
}

// WithAttrs returns a context whose logger carries the given attributes.
func WithAttrs(ctx context.Context, opts ...AttrOption) context.Context {
	l := zerolog.Ctx(ctx).With()
	for _, opt := range opts {
		l = opt(l)
	}

	return l.Logger().WithContext(ctx)
}

func Debugf(ctx context.Context, msg string, args ...any) {
	zerolog.Ctx(ctx).Debug().Timestamp().Msgf(msg, args...)
}

func Info(ctx context.Context, msg string) {
	zerolog.Ctx(ctx).Info().Timestamp().Msg(msg)
}

func Infof(ctx context.Context, msg string, args ...any) {
	zerolog.Ctx(ctx).Info().Timestamp().Msgf(msg, args...)
}

func Warn(ctx context.Context, msg string) {
	zerolog.Ctx(ctx).Warn().Timestamp().Msg(msg)
}

func Error(ctx context.Context, err error, msg string) {
	zerolog.Ctx(ctx).Error().Err(err).Timestamp().Msg(msg)
}

// New builds a root logger writing to stderr, as JSON or as colored
// console output.
func New(level zerolog.Level, logJSON, noColor bool) *zerolog.Logger {
	if logJSON {
		l := zerolog.New(os.Stderr).Level(level)
		return &l
	}

	w := zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
		w.NoColor = noColor
		w.TimeFormat = time.DateTime
	})
	l := zerolog.New(w).Level(level)

	return &l
}

// SetFallbackLogger sets the logger used by contexts without one.
func SetFallbackLogger(l *zerolog.Logger) {
	zerolog.DefaultContextLogger = l
}
