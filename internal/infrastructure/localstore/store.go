// Package localstore persists small named collections as JSON files. It is a
// best-effort cache, not a system of record: absent or unreadable content
// loads as an empty collection, and saves overwrite the full value
// synchronously.
package localstore

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"

	"lumiere-backend/pkg/logger"
)

type Store struct {
	dir string
}

// NewStore creates the backing directory if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Load reads the collection stored under key. Missing or corrupt content
// degrades to an empty collection; corruption is logged, never surfaced.
func Load[T any](s *Store, key string) []T {
	raw, err := os.ReadFile(s.path(key))
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Debug().Err(err).Str("key", key).Msg("store read failed, starting empty")
		}
		return []T{}
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		logger.Debug().Err(err).Str("key", key).Msg("store content unreadable, starting empty")
		return []T{}
	}
	if items == nil {
		return []T{}
	}
	return items
}

// Save overwrites the collection stored under key. The write goes to a temp
// file first and is moved into place, so a crash mid-write leaves the prior
// value intact.
func Save[T any](s *Store, key string, items []T) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode collection %q: %w", key, err)
	}

	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("failed to write collection %q: %w", key, err)
	}
	if err := os.Rename(tmp, s.path(key)); err != nil {
		return fmt.Errorf("failed to commit collection %q: %w", key, err)
	}

	logger.StoreWrite(key, len(items), nil)
	return nil
}
