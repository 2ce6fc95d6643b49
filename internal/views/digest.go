package views

import (
	"slices"
	"strings"

	"github.com/raphi011/worklog/internal/model"
)

// Day is the content of one day file.
type Day struct {
	Date    model.Date
	Entries []model.Entry // file order
}

const noEntries = "_No entries._"

// Digest renders the recent activity view for the given days, in the order
// given. Within a subsection the newest entry comes first; entries with the
// same time keep reverse file order.
func Digest(days ...Day) string {
	var b strings.Builder
	b.WriteString("# Recent activity\n")

	for _, d := range days {
		var notes, changes []model.Entry
		for _, e := range newestFirst(d.Entries) {
			if e.Kind == model.EntryChange {
				changes = append(changes, e)
			} else {
				notes = append(notes, e)
			}
		}

		b.WriteString("\n## " + d.Date.String() + "\n")
		writeSection(&b, "LOG", notes)
		writeSection(&b, "TODO", changes)
	}
	return b.String()
}

func writeSection(b *strings.Builder, title string, entries []model.Entry) {
	b.WriteString("\n### " + title + "\n\n")
	if len(entries) == 0 {
		b.WriteString(noEntries + "\n")
		return
	}
	for _, e := range entries {
		b.WriteString("- " + e.Clock() + " " + e.Text + "\n")
	}
}

func newestFirst(entries []model.Entry) []model.Entry {
	out := slices.Clone(entries)
	slices.Reverse(out)
	slices.SortStableFunc(out, func(a, b model.Entry) int {
		return b.At.Compare(a.At)
	})
	return out
}
