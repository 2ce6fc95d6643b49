package doctor

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/raphi011/worklog/internal/log"
	"github.com/raphi011/worklog/internal/model"
	"github.com/raphi011/worklog/internal/output"
	"github.com/raphi011/worklog/internal/store"
	"github.com/raphi011/worklog/internal/ui/styles"
	"github.com/raphi011/worklog/internal/workspace"
)

// Check runs every diagnostic against the workspace without changing it.
func Check(ctx context.Context, l workspace.Layout, today model.Date) (Report, error) {
	logger := log.FromContext(ctx)
	var report Report

	backend, err := store.Open(l.StoreBackend, l.Store)
	if err != nil {
		return report, err
	}

	// Category 1: files
	logger.Debug("checking files", "root", l.Root)
	fileIssues, present := checkFiles(l)
	report.add(CategoryFiles, fileIssues)
	report.Stats.FilesPresent = present
	report.Stats.FilesMissing = len(fileIssues)

	// Category 2: store
	logger.Debug("checking store", "path", l.Store)
	s, storeIssues := checkStore(ctx, backend)
	report.add(CategoryStore, storeIssues)
	report.Stats.StoreIssues = len(storeIssues)
	if s != nil {
		report.Stats.Tasks = s.Len()
		report.Stats.OpenTasks = len(s.ByStatus(model.StatusOpen))
	}

	// Category 3: inbox
	logger.Debug("checking inbox", "path", l.Inbox)
	data, err := os.ReadFile(l.Inbox)
	switch {
	case err == nil:
		inboxIssues := checkInbox(string(data), today, s)
		report.add(CategoryInbox, inboxIssues)
		report.Stats.InboxIssues = len(inboxIssues)
	case !errors.Is(err, fs.ErrNotExist):
		return report, fmt.Errorf("read inbox: %w", err)
	}

	days, runIssues := checkLastRun(l, today)
	report.add(CategoryInbox, runIssues)
	report.Stats.InboxIssues += len(runIssues)
	report.Stats.DaysSinceRun = days

	return report, nil
}

func (r *Report) add(cat IssueCategory, issues []Issue) {
	for i := range issues {
		issues[i].Category = cat
	}
	r.Issues = append(r.Issues, issues...)
}

// Run checks the workspace, prints the findings and optionally fixes them.
func Run(ctx context.Context, l workspace.Layout, now time.Time, fix bool) error {
	today := model.DateOf(now)
	out := output.FromContext(ctx)

	report, err := Check(ctx, l, today)
	if err != nil {
		return err
	}

	printSummary(out, report.Stats)

	if len(report.Issues) == 0 {
		out.Printf("\n%s No issues found\n", styles.SuccessStyle.Render(styles.CurrentSymbols().Done))
		return nil
	}

	out.Printf("\nFound %d issues:\n", len(report.Issues))
	printIssuesByCategory(out, report.Issues)

	if fix {
		return fixAllIssues(ctx, l, report.Issues, today)
	}

	if report.Fixable() > 0 {
		out.Println("\nRun 'worklog doctor --fix' to repair.")
	}
	return nil
}

// printSummary prints a categorized summary.
func printSummary(out *output.Printer, stats IssueStats) {
	sym := styles.CurrentSymbols()
	ok := styles.SuccessStyle.Render(sym.Done)
	warn := styles.WarningStyle.Render(sym.Warning)

	out.Println()
	out.Printf("  %s %d files present\n", ok, stats.FilesPresent)
	if stats.FilesMissing > 0 {
		out.Printf("  %s %d files missing\n", warn, stats.FilesMissing)
	}

	out.Printf("  %s %d tasks (%d open)\n", ok, stats.Tasks, stats.OpenTasks)
	if stats.StoreIssues > 0 {
		out.Printf("  %s %d store issues\n", warn, stats.StoreIssues)
	}
	if stats.InboxIssues > 0 {
		out.Printf("  %s %d inbox issues\n", warn, stats.InboxIssues)
	}

	switch {
	case stats.DaysSinceRun < 0:
		out.Printf("  %s never synced\n", warn)
	case stats.DaysSinceRun == 0:
		out.Printf("  %s synced today\n", ok)
	default:
		out.Printf("  %s last sync %d days ago\n", ok, stats.DaysSinceRun)
	}
}

// printIssuesByCategory groups and prints issues.
func printIssuesByCategory(out *output.Printer, issues []Issue) {
	byCategory := make(map[IssueCategory][]Issue)
	for _, issue := range issues {
		byCategory[issue.Category] = append(byCategory[issue.Category], issue)
	}

	categoryNames := map[IssueCategory]string{
		CategoryFiles: "Files",
		CategoryStore: "Store",
		CategoryInbox: "Inbox",
	}

	for _, cat := range []IssueCategory{CategoryFiles, CategoryStore, CategoryInbox} {
		catIssues := byCategory[cat]
		if len(catIssues) == 0 {
			continue
		}

		out.Printf("\n%s:\n", styles.HeaderStyle.Render(categoryNames[cat]))
		for _, issue := range catIssues {
			out.Printf("  • %s: %s\n", issue.Key, issue.Description)
		}
	}
}
