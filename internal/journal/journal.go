// Package journal appends to and reads the per-day log files.
//
// Day files live under <dir>/YYYY/YYYY-MM/YYYY-MM-DD.md. A new file starts
// with a "# YYYY-MM-DD" header; after that, lines are only ever appended:
//
//	# 2026-01-08
//
//	- 09:30 Reviewed the design
//	- 18:00 [todo] added: Write docs (@docs) (id:3f2a9c1e)
package journal

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/raphi011/worklog/internal/model"
)

// ChangeMarker prefixes change entries in a day file.
const ChangeMarker = "[todo] "

// Journal reads and writes day files below a directory.
type Journal struct {
	dir string
	loc *time.Location
}

// New returns a journal rooted at dir. Entry times read back are in loc
// (UTC when nil).
func New(dir string, loc *time.Location) *Journal {
	if loc == nil {
		loc = time.UTC
	}
	return &Journal{dir: dir, loc: loc}
}

// Path returns the day file for day.
func (j *Journal) Path(day model.Date) string {
	return filepath.Join(j.dir, day.YearString(), day.MonthString(), day.String()+".md")
}

// FormatEntry renders e as a day file line.
func FormatEntry(e model.Entry) string {
	text := strings.ReplaceAll(strings.TrimSpace(e.Text), "\n", " ")
	if e.Kind == model.EntryChange {
		text = ChangeMarker + text
	}
	return "- " + e.Clock() + " " + text
}

// Append adds entries to their day files in order. Days without entries
// are not touched.
func (j *Journal) Append(entries []model.Entry) error {
	var (
		days  []model.Date
		byDay = make(map[string][]model.Entry)
	)
	for _, e := range entries {
		d := e.Day()
		if _, ok := byDay[d.String()]; !ok {
			days = append(days, d)
		}
		byDay[d.String()] = append(byDay[d.String()], e)
	}

	for _, d := range days {
		if err := j.appendDay(d, byDay[d.String()]); err != nil {
			return err
		}
	}
	return nil
}

func (j *Journal) appendDay(day model.Date, entries []model.Entry) error {
	path := j.Path(day)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open day log: %w", err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return fmt.Errorf("stat day log: %w", err)
	}

	var b strings.Builder
	if info.Size() == 0 {
		fmt.Fprintf(&b, "# %s\n\n", day)
	}
	for _, e := range entries {
		b.WriteString(FormatEntry(e))
		b.WriteString("\n")
	}

	if _, err := f.WriteString(b.String()); err != nil {
		f.Close()
		return fmt.Errorf("append to %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

var entryRe = regexp.MustCompile(`^- (\d{2}):(\d{2}) (.*)$`)

// ReadDay returns the entries of day in file order. A missing file yields
// no entries; lines that are not entries are ignored.
func (j *Journal) ReadDay(day model.Date) ([]model.Entry, error) {
	f, err := os.Open(j.Path(day))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read day log: %w", err)
	}
	defer f.Close()

	var entries []model.Entry
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if e, ok := j.parseEntry(day, scanner.Text()); ok {
			entries = append(entries, e)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read day log: %w", err)
	}
	return entries, nil
}

func (j *Journal) parseEntry(day model.Date, line string) (model.Entry, bool) {
	m := entryRe.FindStringSubmatch(strings.TrimRight(line, " \t\r"))
	if m == nil {
		return model.Entry{}, false
	}
	clock, err := time.Parse(model.ClockLayout, m[1]+":"+m[2])
	if err != nil {
		return model.Entry{}, false
	}
	y, mo, d := day.Date()
	e := model.Entry{
		At:   time.Date(y, mo, d, clock.Hour(), clock.Minute(), 0, 0, j.loc),
		Kind: model.EntryNote,
		Text: m[3],
	}
	if text, ok := strings.CutPrefix(m[3], ChangeMarker); ok {
		e.Kind = model.EntryChange
		e.Text = text
	}
	return e, true
}
