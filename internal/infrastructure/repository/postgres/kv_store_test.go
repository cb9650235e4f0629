package postgres

import (
	"database/sql"
	"fmt"
	"testing"
	"time"
)

func TestBuildGetEntryQuery(t *testing.T) {
	query, args, err := buildGetEntryQuery(" home-stats ")
	if err != nil {
		t.Fatalf("build query: %v", err)
	}

	want := "SELECT entry_value FROM tally_entries WHERE entry_key = $1 LIMIT 1"
	if query != want {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", want, query)
	}
	if len(args) != 1 || args[0] != "home-stats" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestBuildUpsertEntryQuery(t *testing.T) {
	t.Run("upserts whole value", func(t *testing.T) {
		now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
		query, args, err := buildUpsertEntryQuery(tallyEntryTableModel{Key: "opponent-stats", Value: `{"shots":1}`, UpdatedAt: now})
		if err != nil {
			t.Fatalf("build query: %v", err)
		}

		want := "INSERT INTO tally_entries (entry_key, entry_value, updated_at) VALUES ($1, $2, $3) " + upsertEntrySuffix
		if query != want {
			t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", want, query)
		}
		if len(args) != 3 || args[0] != "opponent-stats" || args[1] != `{"shots":1}` || args[2] != now {
			t.Fatalf("unexpected args: %+v", args)
		}
	})

	t.Run("rejects empty key", func(t *testing.T) {
		if _, _, err := buildUpsertEntryQuery(tallyEntryTableModel{}); err == nil {
			t.Fatalf("expected error for empty key")
		}
	})
}

func TestIsNotFound(t *testing.T) {
	if !isNotFound(fmt.Errorf("wrapped: %w", sql.ErrNoRows)) {
		t.Fatalf("expected wrapped sql.ErrNoRows to be not found")
	}
	if isNotFound(fmt.Errorf("pq: relation tally_entries does not exist")) {
		t.Fatalf("expected unrelated error to be found")
	}
}
