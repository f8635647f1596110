package geocluster

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/arloliu/geocluster/format"
)

// Logger wraps slog.Logger with geocluster field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger with the given handler.
// If handler is nil, a text handler at info level writing to stderr is used.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}

	return &Logger{Logger: slog.New(handler)}
}

// NewJSONLogger creates a Logger writing JSON records to stderr.
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NewTextLogger creates a Logger writing human-readable records to stderr.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NoopLogger creates a Logger that discards all output.
func NoopLogger() *Logger {
	return &Logger{Logger: slog.New(discardHandler{})}
}

// discardHandler mirrors slog.DiscardHandler (go1.24): never enabled, drops
// every record.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (d discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discardHandler) WithGroup(string) slog.Handler           { return d }

// WithPartition adds a partition index field.
func (l *Logger) WithPartition(index int) *Logger {
	return &Logger{Logger: l.Logger.With("partition", index)}
}

// WithBits adds the geohash bit length field.
func (l *Logger) WithBits(bits int) *Logger {
	return &Logger{Logger: l.Logger.With("bits", bits)}
}

// WithAlgorithm adds the centering algorithm field.
func (l *Logger) WithAlgorithm(alg format.CenteringAlgorithm) *Logger {
	return &Logger{Logger: l.Logger.With("centering", alg.String())}
}

// LogPartition logs the outcome of clustering one partition.
func (l *Logger) LogPartition(ctx context.Context, index, points, clusters int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "partition failed",
			"partition", index,
			"points", points,
			"error", err,
		)

		return
	}

	l.DebugContext(ctx, "partition clustered",
		"partition", index,
		"points", points,
		"clusters", clusters,
	)
}

// LogMerge logs the totals of a completed aggregation.
func (l *Logger) LogMerge(ctx context.Context, partitions, points, clusters int, elapsed time.Duration) {
	l.InfoContext(ctx, "aggregation completed",
		"partitions", partitions,
		"points", points,
		"clusters", clusters,
		"elapsed", elapsed,
	)
}
