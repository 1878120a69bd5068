package storage

import (
	"context"
	"sync"
)

// MemoryStore keeps values in process memory. It backs tests and the
// throwaway dev substrate; data does not survive a restart.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (s *MemoryStore) Load(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	raw, ok := s.data[key]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(raw))
	copy(out, raw)
	return out, nil
}

func (s *MemoryStore) Save(_ context.Context, key string, payload []byte) error {
	in := make([]byte, len(payload))
	copy(in, payload)
	s.mu.Lock()
	s.data[key] = in
	s.mu.Unlock()
	return nil
}
