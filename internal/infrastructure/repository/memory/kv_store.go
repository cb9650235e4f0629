package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/riskibarqy/match-tally/internal/domain/tally"
)

// KeyValueStore keeps values in process memory. Nothing survives a restart.
type KeyValueStore struct {
	mu    sync.RWMutex
	items map[string]string
}

func NewKeyValueStore(seed map[string]string) *KeyValueStore {
	items := make(map[string]string, len(seed))
	for k, v := range seed {
		items[k] = v
	}
	return &KeyValueStore{items: items}
}

func (s *KeyValueStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.items[strings.TrimSpace(key)]
	return value, ok, nil
}

func (s *KeyValueStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items[strings.TrimSpace(key)] = value
	return nil
}

// Len reports how many keys are stored.
func (s *KeyValueStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.items)
}

var _ tally.KeyValueStore = (*KeyValueStore)(nil)
