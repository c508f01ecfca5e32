package cartstore

import (
	"sync"

	"atelie-store/internal/model"
)

// memoryStore keeps partitions in a map. Used in tests and as a volatile
// fallback when no state directory is available.
type memoryStore struct {
	mu         sync.RWMutex
	partitions map[string][]model.CartItem
}

// NewMemoryStore creates an in-memory store.
func NewMemoryStore() Store {
	return &memoryStore{
		partitions: make(map[string][]model.CartItem),
	}
}

func (s *memoryStore) Read(partition string) []model.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored, ok := s.partitions[partition]
	if !ok {
		return []model.CartItem{}
	}
	// Copy so callers can mutate the returned slice freely.
	items := make([]model.CartItem, len(stored))
	copy(items, stored)
	return items
}

func (s *memoryStore) Write(partition string, items []model.CartItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]model.CartItem, len(items))
	copy(stored, items)
	s.partitions[partition] = stored
	return nil
}

func (s *memoryStore) Delete(partition string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.partitions, partition)
	return nil
}
