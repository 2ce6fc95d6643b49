package doctor

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/raphi011/worklog/internal/history"
	"github.com/raphi011/worklog/internal/inbox"
	"github.com/raphi011/worklog/internal/model"
	"github.com/raphi011/worklog/internal/store"
	"github.com/raphi011/worklog/internal/taskline"
	"github.com/raphi011/worklog/internal/workspace"
)

// StaleRunDays is the number of days without a sync after which doctor warns.
const StaleRunDays = 7

// checkFiles finds missing workspace files.
func checkFiles(l workspace.Layout) (issues []Issue, present int) {
	files := []struct {
		path string
		dir  bool
		fix  string
		desc string
	}{
		{l.Root, true, FixCreateDir, "root directory missing"},
		{l.Inbox, false, FixCreateInbox, "inbox missing"},
		{l.Store, false, FixCreateStore, "task store missing"},
		{l.Logs, true, FixCreateDir, "log directory missing"},
		{l.TodoView, false, "", "todo view not generated yet (run 'worklog sync')"},
		{l.Digest, false, "", "digest not generated yet (run 'worklog sync')"},
	}

	for _, f := range files {
		info, err := os.Stat(f.path)
		switch {
		case err == nil && info.IsDir() != f.dir:
			kind := "file"
			if f.dir {
				kind = "directory"
			}
			issues = append(issues, Issue{Key: f.path, Description: "expected a " + kind})
		case err == nil:
			present++
		case errors.Is(err, fs.ErrNotExist):
			issues = append(issues, Issue{Key: f.path, Description: f.desc, FixAction: f.fix})
		default:
			issues = append(issues, Issue{Key: f.path, Description: err.Error()})
		}
	}
	return issues, present
}

// checkStore loads the store and reports duplicate ids.
// The returned store is nil when it could not be loaded.
func checkStore(ctx context.Context, backend store.Backend) (*store.Store, []Issue) {
	s, err := backend.Load(ctx)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, []Issue{{Key: backend.Path(), Description: fmt.Sprintf("unreadable: %v", err)}}
	}

	var issues []Issue
	for _, id := range s.Duplicates() {
		issues = append(issues, Issue{
			Key:         id,
			Description: "duplicate task id, later copies are ignored",
			FixAction:   FixDedupe,
		})
	}
	for _, t := range s.All() {
		if t.Title == "" {
			issues = append(issues, Issue{Key: t.ID, Description: "task has no title"})
		}
	}
	return s, issues
}

// checkInbox finds problems in the inbox text. s may be nil.
func checkInbox(text string, today model.Date, s *store.Store) []Issue {
	doc := inbox.Parse(text, today)
	var issues []Issue

	if !doc.HasTodoList {
		issues = append(issues, Issue{
			Key:         "TODO LIST",
			Description: "section missing, sync will insert it",
		})
	}

	seen := make(map[string]int)
	for _, id := range doc.IDs() {
		seen[id]++
		if seen[id] == 2 {
			issues = append(issues, Issue{
				Key:         id,
				Description: "id listed more than once, the highest precedence zone wins",
			})
		}
		if seen[id] == 1 && s != nil && !s.Has(id) {
			issues = append(issues, Issue{
				Key:         id,
				Description: "id unknown to the store, sync will create a new task",
			})
		}
	}

	for _, z := range inbox.Zones {
		for _, zl := range doc.Lines(z) {
			if zl.Line.Malformed(taskline.FieldPriority) {
				issues = append(issues, Issue{
					Key:         lineKey(zl.Line),
					Description: "malformed priority, the stored value is kept",
				})
			}
			if zl.Line.Malformed(taskline.FieldDue) {
				issues = append(issues, Issue{
					Key:         lineKey(zl.Line),
					Description: "malformed due date, the stored value is kept",
				})
			}
		}
	}

	for _, d := range doc.Stale {
		issues = append(issues, Issue{
			Key:         d.String(),
			Description: "block is not from today and will not be synced",
		})
	}
	return issues
}

func lineKey(l taskline.Line) string {
	if l.ID != "" {
		return l.ID
	}
	return l.Title
}

// checkLastRun reports how many days passed since the last sync.
// Returns -1 when no sync was recorded.
func checkLastRun(l workspace.Layout, today model.Date) (int, []Issue) {
	run, err := history.Load(l.LastRun())
	if err != nil {
		return -1, []Issue{{Key: l.LastRun(), Description: fmt.Sprintf("unreadable: %v", err)}}
	}
	if run == nil {
		return -1, nil
	}

	days := run.DaysSince(today)
	if days > StaleRunDays {
		return days, []Issue{{
			Key:         run.Date.String(),
			Description: fmt.Sprintf("last sync was %d days ago", days),
		}}
	}
	return days, nil
}
