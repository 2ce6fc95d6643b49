package doctor

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/raphi011/worklog/internal/inbox"
	"github.com/raphi011/worklog/internal/model"
	"github.com/raphi011/worklog/internal/output"
	"github.com/raphi011/worklog/internal/storage"
	"github.com/raphi011/worklog/internal/store"
	"github.com/raphi011/worklog/internal/workspace"
)

// fixAllIssues applies fixes for all detected issues.
func fixAllIssues(ctx context.Context, l workspace.Layout, issues []Issue, today model.Date) error {
	out := output.FromContext(ctx)
	backend, err := store.Open(l.StoreBackend, l.Store)
	if err != nil {
		return err
	}

	var fixed, failed int
	deduped := false
	report := func(err error, done string) {
		if err != nil {
			out.Printf("  ✗ %v\n", err)
			failed++
			return
		}
		out.Printf("  ✓ %s\n", done)
		fixed++
	}

	out.Println()
	for _, issue := range issues {
		switch issue.FixAction {
		case FixCreateDir:
			report(os.MkdirAll(issue.Key, 0o755), "Created "+l.Rel(issue.Key))

		case FixCreateStore:
			report(backend.Save(ctx, store.New()), "Created empty store "+l.Rel(issue.Key))

		case FixCreateInbox:
			var tasks []model.Task
			if s, err := backend.Load(ctx); err == nil {
				tasks = s.All()
			} else if !errors.Is(err, fs.ErrNotExist) {
				report(fmt.Errorf("create inbox: %w", err), "")
				continue
			}
			err := storage.WriteFile(issue.Key, []byte(inbox.Template(tasks, today)), 0o644)
			report(err, "Created inbox "+l.Rel(issue.Key))

		case FixDedupe:
			if deduped {
				continue
			}
			deduped = true
			s, err := backend.Load(ctx)
			if err == nil {
				err = backend.Save(ctx, s)
			}
			report(err, "Removed duplicate task ids")
		}
	}

	out.Printf("\nFixed %d issues", fixed)
	if failed > 0 {
		out.Printf(", %d failed", failed)
	}
	out.Println()

	if failed > 0 {
		return fmt.Errorf("%d fixes failed", failed)
	}
	return nil
}
