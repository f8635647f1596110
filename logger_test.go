package geocluster

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/geocluster/format"
)

func TestLogger_Fields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})).
		WithPartition(3).
		WithBits(20).
		WithAlgorithm(format.Median)

	logger.Info("hello")

	out := buf.String()
	require.Contains(t, out, "partition=3")
	require.Contains(t, out, "bits=20")
	require.Contains(t, out, "centering=MEDIAN")
}

func TestLogger_LogPartition(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	logger.LogPartition(context.Background(), 1, 100, 7, nil)
	require.Contains(t, buf.String(), "level=DEBUG")
	require.Contains(t, buf.String(), "clusters=7")

	buf.Reset()
	logger.LogPartition(context.Background(), 2, 10, 0, errors.New("boom"))
	require.Contains(t, buf.String(), "level=ERROR")
	require.Contains(t, buf.String(), "error=boom")
}

func TestLogger_Defaults(t *testing.T) {
	require.NotNil(t, NewLogger(nil).Logger)
	require.NotNil(t, NewJSONLogger(slog.LevelWarn).Logger)
	require.NotNil(t, NewTextLogger(slog.LevelDebug).Logger)

	noop := NoopLogger()
	require.False(t, noop.Enabled(context.Background(), slog.LevelError))
}
