package postgres

import "time"

const tallyEntriesTable = "tally_entries"

type tallyEntryTableModel struct {
	Key       string    `db:"entry_key"`
	Value     string    `db:"entry_value"`
	UpdatedAt time.Time `db:"updated_at,omitempty"`
}
