package logger

import (
	"context"
	"log/slog"
	"testing"
)

func TestNewLoggerLevelParsing(t *testing.T) {
	cases := []struct {
		level        string
		debugEnabled bool
		infoEnabled  bool
	}{
		{"debug", true, true},
		{"info", false, true},
		{"warn", false, false},
		{"error", false, false},
		{"DEBUG", true, true},
		{"unknown", false, true},
		{"", false, true},
	}

	for _, tc := range cases {
		t.Run(tc.level, func(t *testing.T) {
			l := NewLogger(tc.level)

			if got := l.internal.Enabled(context.Background(), slog.LevelDebug); got != tc.debugEnabled {
				t.Errorf("debug enabled = %v, want %v", got, tc.debugEnabled)
			}

			if got := l.internal.Enabled(context.Background(), slog.LevelInfo); got != tc.infoEnabled {
				t.Errorf("info enabled = %v, want %v", got, tc.infoEnabled)
			}
		})
	}
}

func TestWithKeepsLevel(t *testing.T) {
	l := NewLogger("debug").With("component", "test")

	if !l.internal.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("derived logger should keep the parent level")
	}
}
