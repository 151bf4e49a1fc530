package logging

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug":   LevelDebug,
		" WARN ":  LevelWarn,
		"warning": LevelWarn,
		"error":   LevelError,
		"info":    LevelInfo,
		"":        LevelInfo,
		"loud":    LevelInfo,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNewConsole_WritesFieldsAndRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsole(&buf, LevelInfo)

	logger.Debug("hidden")
	logger.InfoContext(context.Background(), "dataset loaded", "matches", 10, "err", errors.New("boom"))

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug line should be filtered: %q", out)
	}
	if !strings.Contains(out, "dataset loaded") || !strings.Contains(out, `"matches": 10`) {
		t.Fatalf("unexpected output: %q", out)
	}
	if !strings.Contains(out, "boom") {
		t.Fatalf("expected error field in output: %q", out)
	}
}

func TestDefault_NilSafe(t *testing.T) {
	prev := Default()
	t.Cleanup(func() { SetDefault(prev) })

	SetDefault(nil)
	if Default() == nil {
		t.Fatalf("expected a nop default logger")
	}

	var nilLogger *Logger
	nilLogger.Info("no panic")
	if err := nilLogger.Sync(); err != nil {
		t.Fatalf("sync nil logger: %v", err)
	}
}
