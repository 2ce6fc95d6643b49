package store

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/raphi011/worklog/internal/storage"
)

// YAMLBackend stores tasks in a YAML file.
type YAMLBackend struct {
	path string
}

// Path implements Backend.
func (b *YAMLBackend) Path() string {
	return b.path
}

// Load implements Backend.
func (b *YAMLBackend) Load(_ context.Context) (*Store, error) {
	data, err := os.ReadFile(b.path)
	if err != nil {
		return nil, fmt.Errorf("read task store: %w", err)
	}

	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse %s: %w", b.path, err)
	}

	s, err := fromRecords(f.Tasks)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", b.path, err)
	}
	return s, nil
}

// Save implements Backend.
func (b *YAMLBackend) Save(_ context.Context, s *Store) error {
	data, err := yaml.Marshal(file{Version: FileVersion, Tasks: s.All()})
	if err != nil {
		return fmt.Errorf("marshal task store: %w", err)
	}

	if err := storage.WriteFile(b.path, data, 0o644); err != nil {
		return fmt.Errorf("write task store: %w", err)
	}
	return nil
}
