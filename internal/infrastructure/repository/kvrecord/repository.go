package kvrecord

import (
	"context"
	"strings"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/match-tally/internal/domain/tally"
	"github.com/valyala/bytebufferpool"
)

// Repository stores each record as a JSON object under its key.
type Repository struct {
	store tally.KeyValueStore
}

func NewRepository(store tally.KeyValueStore) *Repository {
	return &Repository{store: store}
}

func (r *Repository) Load(ctx context.Context, key string) (tally.Record, bool, error) {
	raw, found, err := r.store.Get(ctx, key)
	if err != nil {
		return nil, false, crerr.Wrapf(err, "get record key=%s", key)
	}
	if !found {
		return nil, false, nil
	}

	record, ok := DecodeRecord(raw)
	if !ok {
		return nil, false, nil
	}
	return record, true, nil
}

func (r *Repository) Save(ctx context.Context, key string, record tally.Record) error {
	encoded, err := EncodeRecord(record)
	if err != nil {
		return crerr.Wrapf(err, "encode record key=%s", key)
	}
	if err := r.store.Set(ctx, key, encoded); err != nil {
		return crerr.Wrapf(err, "set record key=%s", key)
	}
	return nil
}

// EncodeRecord renders the record as a JSON object with sorted keys.
func EncodeRecord(record tally.Record) (string, error) {
	if record == nil {
		return "", crerr.New("record is nil")
	}

	payload := make(map[string]int64, len(record))
	for k, v := range record {
		payload[string(k)] = v
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := sonic.ConfigStd.NewEncoder(buf).Encode(payload); err != nil {
		return "", err
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}

// DecodeRecord parses stored text. Anything that is not a JSON object of
// integers reports ok=false. Keys are taken verbatim, missing or extra.
func DecodeRecord(raw string) (tally.Record, bool) {
	if strings.TrimSpace(raw) == "" {
		return nil, false
	}

	var payload map[string]int64
	if err := sonic.UnmarshalString(raw, &payload); err != nil {
		return nil, false
	}
	if payload == nil {
		return nil, false
	}

	out := make(tally.Record, len(payload))
	for k, v := range payload {
		out[tally.StatName(k)] = v
	}
	return out, true
}

var _ tally.Repository = (*Repository)(nil)
