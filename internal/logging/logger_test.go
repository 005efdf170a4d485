package logging

import (
	"context"
	"log/slog"
	"testing"
)

func TestNewLoggerNotNil(t *testing.T) {
	if NewLogger(Config{}) == nil {
		t.Fatal("expected logger to be non-nil")
	}
}

func TestNewLoggerLevelParsing(t *testing.T) {
	logger := NewLogger(Config{Format: "text", Level: "info"})

	if !logger.Enabled(context.Background(), slog.LevelInfo) {
		t.Fatal("expected info level to be enabled")
	}
	if logger.Enabled(context.Background(), slog.LevelDebug) {
		t.Fatal("expected debug level to be disabled")
	}

	debug := NewLogger(Config{Level: "debug"})
	if !debug.Enabled(context.Background(), slog.LevelDebug) {
		t.Fatal("expected debug level to be enabled")
	}
}

func TestContextLoggerRoundTrip(t *testing.T) {
	base := NewLogger(Config{})
	ctx := WithLogger(context.Background(), base)
	if got := FromContext(ctx, nil); got != base {
		t.Fatal("expected logger from context")
	}
	fallback := NewLogger(Config{})
	if got := FromContext(context.Background(), fallback); got != fallback {
		t.Fatal("expected fallback logger")
	}
}

func TestHelpersTolerateNilLogger(t *testing.T) {
	Info(nil, "msg")
	Warn(nil, "msg")
	Error(nil, "msg", nil)
}
