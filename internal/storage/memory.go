package storage

import (
	"strings"
	"sync"
)

// MemoryStore is the in-memory fake used by tests and by throwaway runs.
// It implements the same contract as the durable adapters.
type MemoryStore struct {
	mu   sync.Mutex
	data map[string]string

	// FailWrites, when set, makes every Write return the given error.
	// Tests use it to exercise the save-failure reporting path.
	FailWrites error

	writeCount int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]string)}
}

func (s *MemoryStore) Read(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *MemoryStore) Write(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailWrites != nil {
		return s.FailWrites
	}
	s.data[key] = value
	s.writeCount++
	return nil
}

func (s *MemoryStore) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

func (s *MemoryStore) Keys(prefix string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var keys []string
	for k := range s.data {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	return keys, nil
}

// WriteCount reports how many successful writes have landed. Tests use it to
// assert debounce coalescing.
func (s *MemoryStore) WriteCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writeCount
}
