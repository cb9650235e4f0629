package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/match-tally/internal/domain/tally"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS tally_entries (
	entry_key   TEXT PRIMARY KEY,
	entry_value TEXT NOT NULL,
	updated_at  TEXT NOT NULL
);`

const (
	getEntryQuery    = `SELECT entry_value FROM tally_entries WHERE entry_key = ? LIMIT 1`
	upsertEntryQuery = `INSERT INTO tally_entries (entry_key, entry_value, updated_at) VALUES (?, ?, ?)
ON CONFLICT (entry_key) DO UPDATE SET entry_value = excluded.entry_value, updated_at = excluded.updated_at`
)

// KeyValueStore is a single-file SQLite store for local durable state.
type KeyValueStore struct {
	db  *sqlx.DB
	now func() time.Time
}

// Open opens (creating if needed) the database at path and ensures the
// entries table exists.
func Open(ctx context.Context, path string) (*KeyValueStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, crerr.New("sqlite path is required")
	}

	dsn := filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, crerr.Wrap(err, "open sqlite db")
	}
	// One connection keeps every write ordered through the same handle.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, crerr.Wrap(err, "ping sqlite db")
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, crerr.Wrap(err, "create tally_entries table")
	}

	return &KeyValueStore{db: db, now: time.Now}, nil
}

func (s *KeyValueStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *KeyValueStore) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	if err := s.db.GetContext(ctx, &value, getEntryQuery, strings.TrimSpace(key)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, crerr.Wrapf(err, "get tally entry key=%s", key)
	}
	return value, true, nil
}

func (s *KeyValueStore) Set(ctx context.Context, key, value string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return crerr.New("tally entry key is required")
	}

	updatedAt := s.now().UTC().Format(time.RFC3339Nano)
	if _, err := s.db.ExecContext(ctx, upsertEntryQuery, key, value, updatedAt); err != nil {
		return crerr.Wrapf(err, "upsert tally entry key=%s", key)
	}
	return nil
}

var _ tally.KeyValueStore = (*KeyValueStore)(nil)
