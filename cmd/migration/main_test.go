package main

import (
	"errors"
	"testing"

	"github.com/riskibarqy/match-tally/internal/platform/logging"
)

func TestRun_UsageErrors(t *testing.T) {
	for _, args := range [][]string{nil, {"sideways"}} {
		if err := run(args, logging.NewNop()); !errors.Is(err, errUsage) {
			t.Fatalf("run(%v): expected usage error, got %v", args, err)
		}
	}
}

func TestRun_RequiresDBURL(t *testing.T) {
	t.Setenv("DB_URL", "")
	if err := run([]string{"up"}, logging.NewNop()); err == nil || errors.Is(err, errUsage) {
		t.Fatalf("expected DB_URL error, got %v", err)
	}
}

func TestParseSteps(t *testing.T) {
	if got, err := parseSteps(nil); err != nil || got != 1 {
		t.Fatalf("expected default of 1 step, got %d %v", got, err)
	}
	if got, err := parseSteps([]string{" 3 "}); err != nil || got != 3 {
		t.Fatalf("expected 3 steps, got %d %v", got, err)
	}
	for _, bad := range []string{"0", "-1", "two"} {
		if _, err := parseSteps([]string{bad}); err == nil {
			t.Fatalf("expected error for steps %q", bad)
		}
	}
}

func TestParseVersionAndTarget(t *testing.T) {
	if got, err := parseVersion("1771776034"); err != nil || got != 1771776034 {
		t.Fatalf("unexpected version: %d %v", got, err)
	}
	if _, err := parseVersion("-5"); err == nil {
		t.Fatalf("expected error for negative version")
	}
	if _, err := parseTarget("abc"); err == nil {
		t.Fatalf("expected error for invalid target")
	}
}

func TestEnvBool(t *testing.T) {
	t.Setenv("DB_DISABLE_PREPARED_BINARY_RESULT", "")
	if !envBool("DB_DISABLE_PREPARED_BINARY_RESULT") {
		t.Fatalf("expected unset flag to default to true")
	}
	t.Setenv("DB_DISABLE_PREPARED_BINARY_RESULT", "off")
	if envBool("DB_DISABLE_PREPARED_BINARY_RESULT") {
		t.Fatalf("expected off to be false")
	}
}
