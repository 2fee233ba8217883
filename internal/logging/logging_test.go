package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"", slog.LevelInfo},
		{"info", slog.LevelInfo},
		{"DEBUG", slog.LevelDebug},
		{"trace", LevelTrace},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("trace", &buf)
	l.Log(context.Background(), LevelTrace, "commit")
	l.Debug("step")
	out := buf.String()
	if !strings.Contains(out, "level=TRACE msg=commit") {
		t.Errorf("trace level not labeled: %q", out)
	}
	if !strings.Contains(out, "level=DEBUG msg=step") {
		t.Errorf("debug line missing: %q", out)
	}

	buf.Reset()
	l = NewLogger("info", &buf)
	l.Debug("step")
	if buf.Len() != 0 {
		t.Errorf("debug logged at info level: %q", buf.String())
	}
}
