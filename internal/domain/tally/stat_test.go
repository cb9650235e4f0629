package tally

import (
	"errors"
	"testing"
)

func TestStatGroups_CoverCatalogExactlyOnce(t *testing.T) {
	seen := make(map[StatName]int)
	for _, group := range StatGroups() {
		if group.Split == SplitNone && len(group.Stats) != 1 {
			t.Fatalf("single group %s has %d stats", group.Key, len(group.Stats))
		}
		if group.Split != SplitNone && len(group.Stats) != 2 {
			t.Fatalf("split group %s has %d stats", group.Key, len(group.Stats))
		}
		for _, name := range group.Stats {
			seen[name]++
		}
	}

	names := StatNames()
	if len(names) != 20 {
		t.Fatalf("expected 20 stat names, got %d", len(names))
	}
	for _, name := range names {
		if seen[name] != 1 {
			t.Fatalf("stat %s appears %d times in groups", name, seen[name])
		}
	}
}

func TestStatNames_ReturnsCopy(t *testing.T) {
	names := StatNames()
	names[0] = "tampered"

	if StatNames()[0] != StatShots {
		t.Fatalf("catalog order changed through returned slice")
	}
}

func TestParseStatName(t *testing.T) {
	t.Run("accepts wire key", func(t *testing.T) {
		got, err := ParseStatName(" Build_Up_Won ")
		if err != nil {
			t.Fatalf("parse stat: %v", err)
		}
		if got != StatBuildUpWon {
			t.Fatalf("unexpected stat: %s", got)
		}
	})

	t.Run("rejects unknown key", func(t *testing.T) {
		if _, err := ParseStatName("goals"); !errors.Is(err, ErrUnknownStat) {
			t.Fatalf("expected ErrUnknownStat, got %v", err)
		}
	})
}

func TestTeam(t *testing.T) {
	if TeamHome.StorageKey() != "home-stats" || TeamOpponent.StorageKey() != "opponent-stats" {
		t.Fatalf("unexpected storage keys: %s %s", TeamHome.StorageKey(), TeamOpponent.StorageKey())
	}
	if TeamHome.Other() != TeamOpponent || TeamOpponent.Other() != TeamHome {
		t.Fatalf("Other must toggle between the two teams")
	}
	if _, err := ParseTeam("away"); !errors.Is(err, ErrUnknownTeam) {
		t.Fatalf("expected ErrUnknownTeam, got %v", err)
	}
	got, err := ParseTeam("OPPONENT")
	if err != nil || got != TeamOpponent {
		t.Fatalf("unexpected parse result: %v %v", got, err)
	}
}
