package store

import (
	"context"
	"fmt"

	"github.com/raphi011/worklog/internal/storage"
)

// JSONBackend stores tasks in a JSON file.
type JSONBackend struct {
	path string
}

// Path implements Backend.
func (b *JSONBackend) Path() string {
	return b.path
}

// Load implements Backend.
func (b *JSONBackend) Load(_ context.Context) (*Store, error) {
	var f file
	if err := storage.LoadJSON(b.path, &f); err != nil {
		return nil, fmt.Errorf("read task store: %w", err)
	}

	s, err := fromRecords(f.Tasks)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", b.path, err)
	}
	return s, nil
}

// Save implements Backend.
func (b *JSONBackend) Save(_ context.Context, s *Store) error {
	if err := storage.SaveJSON(b.path, file{Version: FileVersion, Tasks: s.All()}); err != nil {
		return fmt.Errorf("write task store: %w", err)
	}
	return nil
}
