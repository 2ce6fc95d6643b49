// Package workspace resolves the file layout of a worklog root.
package workspace

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/raphi011/worklog/internal/config"
	"github.com/raphi011/worklog/internal/model"
	"github.com/raphi011/worklog/internal/storage"
	"github.com/raphi011/worklog/internal/store"
)

// Layout holds the absolute paths of every worklog file.
type Layout struct {
	Root         string
	Inbox        string
	Store        string
	StoreBackend string
	TodoView     string
	Digest       string
	Logs         string
	State        string // tool state, e.g. the last run record
}

// New resolves the layout from cfg. Relative paths are relative to the root.
func New(cfg *config.Config) Layout {
	backend := cfg.Store.Backend
	if backend == "" {
		backend = store.KindYAML
	}
	storePath := cfg.Paths.Store
	if storePath == "" {
		storePath = filepath.Join("todos", store.DefaultFile(backend))
	}

	root := cfg.Root
	return Layout{
		Root:         root,
		Inbox:        ResolvePath(root, cfg.Paths.Inbox),
		Store:        ResolvePath(root, storePath),
		StoreBackend: backend,
		TodoView:     ResolvePath(root, cfg.Paths.TodoView),
		Digest:       ResolvePath(root, cfg.Paths.Digest),
		Logs:         ResolvePath(root, cfg.Paths.Logs),
		State:        filepath.Join(root, storage.StateDirName),
	}
}

// ResolvePath resolves a configured path against root.
// Supports:
//   - "inbox/current.md" or "./inbox/current.md" = inside root
//   - "../shared/tasks.yaml" = sibling to root
//   - "~/notes/inbox.md" = home-relative
//   - "/absolute/inbox.md" = absolute path
func ResolvePath(root, path string) string {
	switch {
	case strings.HasPrefix(path, "../"):
		// Sibling to root: ../shared/x → parent/shared/x
		return filepath.Join(filepath.Dir(root), path[3:])

	case strings.HasPrefix(path, "~/"):
		home, err := os.UserHomeDir()
		if err != nil || home == "" {
			// Keep the ~ prefix for error messages
			return path
		}
		return filepath.Join(home, path[2:])

	case filepath.IsAbs(path):
		return path

	default:
		path = strings.TrimPrefix(path, "./")
		return filepath.Join(root, path)
	}
}

// DayLog returns the log file for day.
func (l Layout) DayLog(day model.Date) string {
	return filepath.Join(l.Logs, day.YearString(), day.MonthString(), day.String()+".md")
}

// LastRun returns the path of the last run record.
func (l Layout) LastRun() string {
	return filepath.Join(l.State, "last_run.json")
}

// Rel returns path relative to the root when it lies inside it.
func (l Layout) Rel(path string) string {
	rel, err := filepath.Rel(l.Root, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return rel
}
