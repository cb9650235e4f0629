package postgres

import (
	"context"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/match-tally/internal/domain/tally"
	qb "github.com/riskibarqy/match-tally/internal/platform/querybuilder"
)

const upsertEntrySuffix = "ON CONFLICT (entry_key) DO UPDATE SET entry_value = EXCLUDED.entry_value, updated_at = EXCLUDED.updated_at"

// KeyValueStore keeps entries in the tally_entries table created by
// the migrations under db/migrations.
type KeyValueStore struct {
	db  *sqlx.DB
	now func() time.Time
}

func NewKeyValueStore(db *sqlx.DB) *KeyValueStore {
	return &KeyValueStore{db: db, now: time.Now}
}

func (s *KeyValueStore) Get(ctx context.Context, key string) (string, bool, error) {
	query, args, err := buildGetEntryQuery(key)
	if err != nil {
		return "", false, err
	}

	var value string
	if err := s.db.GetContext(ctx, &value, query, args...); err != nil {
		if isNotFound(err) {
			return "", false, nil
		}
		return "", false, crerr.Wrapf(err, "get tally entry key=%s", key)
	}

	return value, true, nil
}

func (s *KeyValueStore) Set(ctx context.Context, key, value string) error {
	query, args, err := buildUpsertEntryQuery(tallyEntryTableModel{
		Key:       strings.TrimSpace(key),
		Value:     value,
		UpdatedAt: s.now().UTC(),
	})
	if err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return crerr.Wrapf(err, "upsert tally entry key=%s", key)
	}
	return nil
}

func buildGetEntryQuery(key string) (string, []any, error) {
	query, args, err := qb.Select("entry_value").
		From(tallyEntriesTable).
		Where(qb.Eq("entry_key", strings.TrimSpace(key))).
		Limit(1).
		ToSQL()
	if err != nil {
		return "", nil, crerr.Wrap(err, "build get tally entry query")
	}
	return query, args, nil
}

func buildUpsertEntryQuery(row tallyEntryTableModel) (string, []any, error) {
	if row.Key == "" {
		return "", nil, crerr.New("tally entry key is required")
	}
	query, args, err := qb.InsertModel(tallyEntriesTable, row, upsertEntrySuffix)
	if err != nil {
		return "", nil, crerr.Wrap(err, "build upsert tally entry query")
	}
	return query, args, nil
}

var _ tally.KeyValueStore = (*KeyValueStore)(nil)
