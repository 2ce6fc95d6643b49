package engine

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/raphi011/worklog/internal/config"
	"github.com/raphi011/worklog/internal/history"
	"github.com/raphi011/worklog/internal/inbox"
	"github.com/raphi011/worklog/internal/journal"
	"github.com/raphi011/worklog/internal/log"
	"github.com/raphi011/worklog/internal/model"
	"github.com/raphi011/worklog/internal/reconcile"
	"github.com/raphi011/worklog/internal/storage"
	"github.com/raphi011/worklog/internal/store"
	"github.com/raphi011/worklog/internal/taskline"
	"github.com/raphi011/worklog/internal/views"
	"github.com/raphi011/worklog/internal/workspace"
)

// ErrNotInitialized is returned when the inbox or the store does not exist.
var ErrNotInitialized = fmt.Errorf("worklog not initialized (run 'worklog init'): %w", fs.ErrNotExist)

// Options configures a run.
type Options struct {
	Config *config.Config
	// Now is the processing time. Its date selects the inbox block to process.
	Now time.Time
	// DryRun computes every result without writing any file.
	DryRun bool
}

// Result describes a completed run.
type Result struct {
	Date      model.Date
	Layout    workspace.Layout
	Notes     []model.Entry
	Reconcile reconcile.Result
	DryRun    bool

	// Rendered documents, as written (or as they would be written).
	Inbox    string
	TodoView string
	Digest   string
}

// Changed reports whether the run recorded anything.
func (r *Result) Changed() bool {
	return len(r.Notes) > 0 || r.Reconcile.Changed()
}

// Entries returns every log entry of the run: notes first, then changes.
func (r *Result) Entries() []model.Entry {
	entries := make([]model.Entry, 0, len(r.Notes)+len(r.Reconcile.Changes))
	entries = append(entries, r.Notes...)
	for _, c := range r.Reconcile.Changes {
		entries = append(entries, c.Entry())
	}
	return entries
}

// Run executes the pipeline once.
func Run(ctx context.Context, opts Options) (*Result, error) {
	if opts.Config == nil {
		return nil, errors.New("engine: no config")
	}
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	today := model.DateOf(now)
	l := workspace.New(opts.Config)
	logger := log.FromContext(ctx)

	text, err := readInbox(l.Inbox)
	if err != nil {
		return nil, err
	}
	backend, err := store.Open(l.StoreBackend, l.Store)
	if err != nil {
		return nil, err
	}
	s, err := loadStore(ctx, backend)
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded store", "path", l.Rel(l.Store), "tasks", s.Len())
	for _, id := range s.Duplicates() {
		logger.Printf("Warning: duplicate task id %s in store, later copies dropped\n", id)
	}

	doc := inbox.Parse(text, today)
	reportDocument(logger, doc)

	res := &Result{Date: today, Layout: l, DryRun: opts.DryRun}
	res.Reconcile = reconcile.Apply(doc, s, reconcile.Options{
		Now:   now,
		Match: reconcile.MatchMode(opts.Config.Match.Done),
	})
	for _, sk := range res.Reconcile.Skips {
		logger.Debug("skipped", "source", sk.Source, "line", sk.Text, "reason", sk.Reason)
	}
	res.Notes = notes(doc, now)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	jr := journal.New(l.Logs, now.Location())
	entries := res.Entries()
	var pending []model.Entry
	if opts.DryRun {
		pending = entries
	} else {
		if err := jr.Append(entries); err != nil {
			return nil, fmt.Errorf("append day log: %w", err)
		}
		logger.Debug("appended day log", "path", l.Rel(l.DayLog(today)), "entries", len(entries))

		if err := backend.Save(ctx, s); err != nil {
			return nil, fmt.Errorf("save task store: %w", err)
		}
	}

	vopts := views.Options{
		Sort:          views.SortKey(opts.Config.View.Sort),
		PriorityOrder: views.Order(opts.Config.View.PriorityOrder),
	}
	tasks := views.Sort(s.All(), vopts)

	days, err := digestDays(jr, today, pending)
	if err != nil {
		return nil, err
	}
	res.TodoView = views.TodoView(tasks, vopts)
	res.Digest = views.Digest(days...)
	res.Inbox = inbox.Rewrite(text, tasks, today)

	if opts.DryRun {
		return res, nil
	}

	writes := []struct {
		path, data, what string
	}{
		{l.TodoView, res.TodoView, "todo view"},
		{l.Digest, res.Digest, "digest"},
		{l.Inbox, res.Inbox, "inbox"},
	}
	for _, w := range writes {
		if err := storage.WriteFile(w.path, []byte(w.data), 0o644); err != nil {
			return nil, fmt.Errorf("write %s: %w", w.what, err)
		}
	}

	run := &history.Run{
		At:      now,
		Date:    today,
		Notes:   len(res.Notes),
		Changes: make(map[string]int),
		Skips:   len(res.Reconcile.Skips),
	}
	for _, c := range res.Reconcile.Changes {
		run.Changes[string(c.Verb)]++
	}
	if err := run.Save(l.LastRun()); err != nil {
		// the run itself succeeded
		logger.Printf("Warning: failed to record run: %v\n", err)
	}

	return res, nil
}

func readInbox(path string) (string, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w: inbox %s", ErrNotInitialized, path)
	}
	if err != nil {
		return "", fmt.Errorf("read inbox: %w", err)
	}
	return string(data), nil
}

func loadStore(ctx context.Context, backend store.Backend) (*store.Store, error) {
	s, err := backend.Load(ctx)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: task store %s", ErrNotInitialized, backend.Path())
	}
	if err != nil {
		return nil, fmt.Errorf("load task store: %w", err)
	}
	return s, nil
}

// reportDocument logs parse problems that the run tolerates.
func reportDocument(logger *log.Logger, doc *inbox.Document) {
	if !doc.HasTodoList {
		logger.Debug("inbox has no TODO LIST section")
	}
	for _, d := range doc.Stale {
		logger.Printf("Warning: inbox block %s is not from today and is left as is\n", d)
	}
	for _, z := range inbox.Zones {
		for _, zl := range doc.Lines(z) {
			if zl.Line.Malformed(taskline.FieldPriority) {
				logger.Debug("ignoring malformed priority", "zone", z, "title", zl.Line.Title)
			}
			if zl.Line.Malformed(taskline.FieldDue) {
				logger.Debug("ignoring malformed due date", "zone", z, "title", zl.Line.Title)
			}
		}
	}
}

// notes turns the LOG lines of today's blocks into entries. A line without
// a time takes the block header time, then now.
func notes(doc *inbox.Document, now time.Time) []model.Entry {
	var entries []model.Entry
	for _, b := range doc.Pending {
		blockAt := now
		if t, ok := clockOn(b.Date, b.Clock, now.Location()); ok {
			blockAt = t
		}
		for _, ll := range b.Log {
			at := blockAt
			if t, ok := clockOn(b.Date, ll.Clock, now.Location()); ok {
				at = t
			}
			entries = append(entries, model.Entry{At: at, Kind: model.EntryNote, Text: ll.Text})
		}
	}
	return entries
}

func clockOn(day model.Date, clock string, loc *time.Location) (time.Time, bool) {
	if clock == "" {
		return time.Time{}, false
	}
	c, err := time.Parse(model.ClockLayout, clock)
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(day.Year(), day.Month(), day.Day(), c.Hour(), c.Minute(), 0, 0, loc), true
}

// digestDays reads today and yesterday from the journal. pending entries
// not yet appended are added on top.
func digestDays(jr *journal.Journal, today model.Date, pending []model.Entry) ([]views.Day, error) {
	var days []views.Day
	for _, d := range []model.Date{today, today.AddDays(-1)} {
		entries, err := jr.ReadDay(d)
		if err != nil {
			return nil, fmt.Errorf("read day log %s: %w", d, err)
		}
		for _, e := range pending {
			if e.Day().Equal(d) {
				entries = append(entries, e)
			}
		}
		days = append(days, views.Day{Date: d, Entries: entries})
	}
	return days, nil
}
