// Package storage persists small named payloads between runs.
package storage

import (
	"errors"
	"sync"
)

// ErrNotFound is returned by Load when nothing was saved under the key
var ErrNotFound = errors.New("storage: key not found")

// Store saves opaque payloads under a key
type Store interface {
	Exists(key string) bool
	Load(key string) ([]byte, error)
	Save(key string, data []byte) error
}

// MemoryStore keeps payloads in memory only.
// It is the fallback when no persistent storage can be opened.
type MemoryStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (s *MemoryStore) Exists(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.data[key]
	return ok
}

func (s *MemoryStore) Load(key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), data...), nil
}

func (s *MemoryStore) Save(key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = append([]byte(nil), data...)
	return nil
}
