package cartstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"atelie-store/internal/model"

	"github.com/rs/zerolog"
)

// fileStore persists each partition as a JSON file under a state directory.
// It is the durable analogue of the storefront's per-key browser storage.
type fileStore struct {
	dir    string
	mu     sync.Mutex
	logger zerolog.Logger
}

// NewFileStore creates a file-backed store rooted at dir, creating the
// directory if needed.
func NewFileStore(dir string, logger zerolog.Logger) (Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create cart state directory: %w", err)
	}
	return &fileStore{
		dir:    dir,
		logger: logger.With().Str("store", "file").Logger(),
	}, nil
}

// Read returns the items stored for the partition. Missing or malformed
// content is treated as an empty cart and never surfaced as an error.
func (s *fileStore) Read(partition string) []model.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path(partition))
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn().Err(err).Str("partition", partition).Msg("failed to read cart partition")
		}
		return []model.CartItem{}
	}

	var items []model.CartItem
	if err := json.Unmarshal(data, &items); err != nil {
		s.logger.Warn().Err(err).Str("partition", partition).Msg("malformed cart content, treating as empty")
		return []model.CartItem{}
	}
	if items == nil {
		items = []model.CartItem{}
	}
	return items
}

// Write replaces the stored list for the partition in a single write.
func (s *fileStore) Write(partition string, items []model.CartItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if items == nil {
		items = []model.CartItem{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode cart items: %w", err)
	}

	if err := os.WriteFile(s.path(partition), data, 0o644); err != nil {
		return fmt.Errorf("failed to write cart partition: %w", err)
	}

	s.logger.Debug().
		Str("partition", partition).
		Int("items", len(items)).
		Msg("cart partition written")

	return nil
}

// Delete removes the partition entry. Deleting an absent partition is a
// no-op.
func (s *fileStore) Delete(partition string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path(partition)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete cart partition: %w", err)
	}
	return nil
}

func (s *fileStore) path(partition string) string {
	return filepath.Join(s.dir, partition+".json")
}
