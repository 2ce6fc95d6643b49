package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/raphi011/worklog/internal/model"
)

// Backend persists a Store.
type Backend interface {
	// Load reads the store. A missing file yields an error wrapping fs.ErrNotExist.
	Load(ctx context.Context) (*Store, error)
	// Save replaces the persisted store with s.
	Save(ctx context.Context, s *Store) error
	// Path returns the file the backend reads and writes.
	Path() string
}

// Backend kinds accepted by Open.
const (
	KindYAML   = "yaml"
	KindJSON   = "json"
	KindSQLite = "sqlite"
)

// Kinds lists the valid backend kinds.
var Kinds = []string{KindYAML, KindJSON, KindSQLite}

// FileVersion is written to the YAML and JSON store files.
const FileVersion = 1

// file is the on-disk shape shared by the YAML and JSON backends.
type file struct {
	Version int          `yaml:"version" json:"version"`
	Tasks   []model.Task `yaml:"tasks" json:"tasks"`
}

// DefaultFile returns the default file name under todos/ for a backend kind.
func DefaultFile(kind string) string {
	switch kind {
	case KindJSON:
		return "tasks.json"
	case KindSQLite:
		return "tasks.db"
	default:
		return "tasks.yaml"
	}
}

// Open returns the backend of the given kind storing at path.
func Open(kind, path string) (Backend, error) {
	switch strings.ToLower(kind) {
	case "", KindYAML:
		return &YAMLBackend{path: path}, nil
	case KindJSON:
		return &JSONBackend{path: path}, nil
	case KindSQLite:
		return &SQLiteBackend{path: path}, nil
	}
	return nil, fmt.Errorf("unknown store backend %q (valid: %s)", kind, strings.Join(Kinds, ", "))
}
