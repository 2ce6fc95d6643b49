package engine

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/raphi011/worklog/internal/config"
	"github.com/raphi011/worklog/internal/inbox"
	"github.com/raphi011/worklog/internal/model"
	"github.com/raphi011/worklog/internal/storage"
	"github.com/raphi011/worklog/internal/store"
	"github.com/raphi011/worklog/internal/workspace"
)

// Init creates the directories, an empty store and an inbox template for
// the day of now. Existing files are left alone. It returns the paths it
// created.
func Init(ctx context.Context, cfg *config.Config, now time.Time) ([]string, error) {
	if cfg == nil {
		return nil, errors.New("engine: no config")
	}
	l := workspace.New(cfg)
	var created []string

	for _, dir := range []string{l.Root, l.Logs, l.State} {
		if _, err := os.Stat(dir); err == nil {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return created, fmt.Errorf("create %s: %w", dir, err)
		}
		created = append(created, dir)
	}

	backend, err := store.Open(l.StoreBackend, l.Store)
	if err != nil {
		return created, err
	}
	s, err := backend.Load(ctx)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		s = store.New()
		if err := backend.Save(ctx, s); err != nil {
			return created, fmt.Errorf("create task store: %w", err)
		}
		created = append(created, l.Store)
	case err != nil:
		return created, fmt.Errorf("load task store: %w", err)
	}

	if _, err := os.Stat(l.Inbox); errors.Is(err, fs.ErrNotExist) {
		text := inbox.Template(s.All(), model.DateOf(now))
		if err := storage.WriteFile(l.Inbox, []byte(text), 0o644); err != nil {
			return created, fmt.Errorf("create inbox: %w", err)
		}
		created = append(created, l.Inbox)
	} else if err != nil {
		return created, fmt.Errorf("stat inbox: %w", err)
	}

	return created, nil
}
