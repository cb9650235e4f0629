package querybuilder

import (
	"testing"
	"time"
)

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("entry_value").
		From("tally_entries").
		Where(Eq("entry_key", "home-stats")).
		Limit(1).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT entry_value FROM tally_entries WHERE entry_key = $1 LIMIT 1"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != "home-stats" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder(t *testing.T) {
	query, args, err := InsertInto("tally_entries").
		Columns("entry_key", "entry_value").
		Values("home-stats", "{}").
		Suffix("ON CONFLICT (entry_key) DO UPDATE SET entry_value = EXCLUDED.entry_value").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO tally_entries (entry_key, entry_value) VALUES ($1, $2) ON CONFLICT (entry_key) DO UPDATE SET entry_value = EXCLUDED.entry_value"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "home-stats" || args[1] != "{}" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertModel(t *testing.T) {
	type row struct {
		Key       string    `db:"entry_key"`
		Value     string    `db:"entry_value"`
		UpdatedAt time.Time `db:"updated_at"`
		internal  string
	}

	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	query, args, err := InsertModel("tally_entries", row{Key: "k", Value: "v", UpdatedAt: now, internal: "x"}, "")
	if err != nil {
		t.Fatalf("build insert model query: %v", err)
	}

	wantQuery := "INSERT INTO tally_entries (entry_key, entry_value, updated_at) VALUES ($1, $2, $3)"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 3 || args[2] != now {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertModel_OmitEmpty(t *testing.T) {
	type row struct {
		Key       string    `db:"entry_key"`
		Value     string    `db:"entry_value"`
		UpdatedAt time.Time `db:"updated_at,omitempty"`
		Skipped   string    `db:"-"`
	}

	query, args, err := InsertModel("tally_entries", &row{Key: "k", Value: "", Skipped: "x"}, "")
	if err != nil {
		t.Fatalf("build insert model query: %v", err)
	}

	wantQuery := "INSERT INTO tally_entries (entry_key, entry_value) VALUES ($1, $2)"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestBuilders_RejectIncompleteInput(t *testing.T) {
	if _, _, err := Select().From("t").ToSQL(); err == nil {
		t.Fatalf("expected error without columns")
	}
	if _, _, err := InsertInto("t").Columns("a", "b").Values(1).ToSQL(); err == nil {
		t.Fatalf("expected error for short row")
	}
	if _, _, err := InsertModel("t", nil, ""); err == nil {
		t.Fatalf("expected error for nil model")
	}
}
