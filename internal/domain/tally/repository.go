package tally

import "context"

// Repository loads and saves whole counter records by key.
type Repository interface {
	// Load reports found=false for absent keys and for stored values that
	// do not decode as a record. err is reserved for storage failures.
	Load(ctx context.Context, key string) (Record, bool, error)
	Save(ctx context.Context, key string, record Record) error
}

// KeyValueStore is the durable string storage records are kept in.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}
