package logging

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogger_KeyValueFields(t *testing.T) {
	core, logs := observer.New(LevelDebug)
	logger := FromZap(zap.New(core))

	logger.With("team", "home").Info("stat incremented", "stat", "shots", "error", errors.New("boom"), "dangling")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["team"] != "home" || fields["stat"] != "shots" {
		t.Fatalf("unexpected fields: %+v", fields)
	}
	if fields["error"] != "boom" {
		t.Fatalf("expected error field, got %+v", fields["error"])
	}
	if _, ok := fields["dangling"]; !ok {
		t.Fatalf("expected dangling key to be kept")
	}
}

func TestLogger_RespectsLevel(t *testing.T) {
	core, logs := observer.New(LevelWarn)
	logger := FromZap(zap.New(core))

	logger.DebugContext(context.Background(), "hidden")
	logger.Info("hidden")
	logger.WarnContext(context.Background(), "shown")

	if logs.Len() != 1 {
		t.Fatalf("expected only warn entry, got %d", logs.Len())
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]Level{
		"debug":   LevelDebug,
		" WARN ":  LevelWarn,
		"warning": LevelWarn,
		"error":   LevelError,
		"":        LevelInfo,
		"verbose": LevelInfo,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q)=%s want=%s", in, got, want)
		}
	}
}

func TestNilLoggerFallsBackToDefault(t *testing.T) {
	var logger *Logger
	logger.Info("no panic")
	if logger.With("k", "v") == nil {
		t.Fatalf("expected non-nil logger")
	}
}
