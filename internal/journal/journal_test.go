package journal

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/raphi011/worklog/internal/model"
)

func at(h, m int) time.Time {
	return time.Date(2026, 1, 8, h, m, 0, 0, time.UTC)
}

func TestJournal_Path(t *testing.T) {
	t.Parallel()

	j := New("/logs", nil)
	got := j.Path(model.NewDate(2026, 1, 8))
	want := filepath.Join("/logs", "2026", "2026-01", "2026-01-08.md")
	if got != want {
		t.Errorf("Path() = %q, want %q", got, want)
	}
}

func TestJournal_AppendCreatesHeader(t *testing.T) {
	t.Parallel()

	j := New(t.TempDir(), nil)
	err := j.Append([]model.Entry{
		{At: at(9, 30), Kind: model.EntryNote, Text: "Reviewed the design"},
		{At: at(18, 0), Kind: model.EntryChange, Text: "added: Write docs (id:abc)"},
	})
	if err != nil {
		t.Fatal(err)
	}

	got, err := os.ReadFile(j.Path(model.NewDate(2026, 1, 8)))
	if err != nil {
		t.Fatal(err)
	}
	want := "# 2026-01-08\n\n- 09:30 Reviewed the design\n- 18:00 [todo] added: Write docs (id:abc)\n"
	if string(got) != want {
		t.Errorf("file = %q, want %q", got, want)
	}
}

func TestJournal_AppendOnly(t *testing.T) {
	t.Parallel()

	j := New(t.TempDir(), nil)
	path := j.Path(model.NewDate(2026, 1, 8))

	if err := j.Append([]model.Entry{{At: at(9, 0), Kind: model.EntryNote, Text: "first"}}); err != nil {
		t.Fatal(err)
	}
	before, _ := os.ReadFile(path)

	if err := j.Append([]model.Entry{{At: at(8, 0), Kind: model.EntryNote, Text: "earlier but later"}}); err != nil {
		t.Fatal(err)
	}
	after, _ := os.ReadFile(path)

	if !strings.HasPrefix(string(after), string(before)) {
		t.Errorf("existing content was rewritten:\nbefore %q\nafter  %q", before, after)
	}
	if strings.Count(string(after), "# 2026-01-08") != 1 {
		t.Errorf("header written twice: %q", after)
	}
	if !strings.HasSuffix(string(after), "- 08:00 earlier but later\n") {
		t.Errorf("entry not appended at the end: %q", after)
	}
}

func TestJournal_AppendNothing(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	j := New(dir, nil)
	if err := j.Append(nil); err != nil {
		t.Fatal(err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("empty append created files: %v", entries)
	}
}

func TestJournal_ReadDay(t *testing.T) {
	t.Parallel()

	j := New(t.TempDir(), nil)
	day := model.NewDate(2026, 1, 8)
	path := j.Path(day)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	content := "# 2026-01-08\n\n- 09:00 note one\nfree text\n- 10:00 [todo] completed: Ship (id:x)\n- 7:00 bad clock\n- 25:00 impossible\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	entries, err := j.ReadDay(day)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2: %+v", len(entries), entries)
	}
	if entries[0].Kind != model.EntryNote || entries[0].Text != "note one" || !entries[0].At.Equal(at(9, 0)) {
		t.Errorf("entries[0] = %+v", entries[0])
	}
	if entries[1].Kind != model.EntryChange || entries[1].Text != "completed: Ship (id:x)" {
		t.Errorf("entries[1] = %+v", entries[1])
	}

	missing, err := j.ReadDay(day.AddDays(-1))
	if err != nil || missing != nil {
		t.Errorf("ReadDay(missing) = %v, %v", missing, err)
	}
}

func TestJournal_RoundTrip(t *testing.T) {
	t.Parallel()

	j := New(t.TempDir(), nil)
	in := []model.Entry{
		{At: at(9, 15), Kind: model.EntryNote, Text: "standup"},
		{At: at(11, 0), Kind: model.EntryChange, Text: "added: Write docs (@docs) (id:1)"},
	}
	if err := j.Append(in); err != nil {
		t.Fatal(err)
	}
	out, err := j.ReadDay(model.NewDate(2026, 1, 8))
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != len(in) {
		t.Fatalf("got %d entries", len(out))
	}
	for i := range in {
		if out[i].Kind != in[i].Kind || out[i].Text != in[i].Text || !out[i].At.Equal(in[i].At) {
			t.Errorf("entry %d = %+v, want %+v", i, out[i], in[i])
		}
	}
}
