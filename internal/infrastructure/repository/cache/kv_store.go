package cache

import (
	"context"
	"time"

	"github.com/riskibarqy/match-tally/internal/domain/tally"
	basecache "github.com/riskibarqy/match-tally/internal/platform/cache"
)

const keyPrefix = "kv:"

// KeyValueStore is a read-through, write-through cache in front of
// another store. Absent keys are cached too so repeated misses stay local.
type KeyValueStore struct {
	next  tally.KeyValueStore
	cache *basecache.Store[cachedValue]
}

type cachedValue struct {
	value  string
	exists bool
}

func NewKeyValueStore(next tally.KeyValueStore, ttl time.Duration) *KeyValueStore {
	return &KeyValueStore{next: next, cache: basecache.NewStore[cachedValue](ttl)}
}

func (s *KeyValueStore) Get(ctx context.Context, key string) (string, bool, error) {
	cached, err := s.cache.GetOrLoad(ctx, keyPrefix+key, func(ctx context.Context) (cachedValue, error) {
		value, exists, err := s.next.Get(ctx, key)
		if err != nil {
			return cachedValue{}, err
		}
		return cachedValue{value: value, exists: exists}, nil
	})
	if err != nil {
		return "", false, err
	}

	return cached.value, cached.exists, nil
}

func (s *KeyValueStore) Set(ctx context.Context, key, value string) error {
	if err := s.next.Set(ctx, key, value); err != nil {
		s.cache.Delete(ctx, keyPrefix+key)
		return err
	}

	s.cache.Set(ctx, keyPrefix+key, cachedValue{value: value, exists: true})
	return nil
}

var _ tally.KeyValueStore = (*KeyValueStore)(nil)
