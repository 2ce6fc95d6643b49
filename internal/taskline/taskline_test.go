package taskline

import (
	"slices"
	"testing"

	"github.com/raphi011/worklog/internal/model"
)

func date(t *testing.T, s string) *model.Date {
	t.Helper()
	d, err := model.ParseDate(s)
	if err != nil {
		t.Fatalf("ParseDate(%q): %v", s, err)
	}
	return &d
}

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		raw      string
		checkbox Checkbox
		priority int
		title    string
		tags     []string
		due      string
		id       string
	}{
		{
			name:     "full line",
			raw:      "- [ ] {3} Write tests (@core) (id:abc123)",
			checkbox: CheckboxOpen,
			priority: 3,
			title:    "Write tests",
			tags:     []string{"core"},
			id:       "abc123",
		},
		{
			name:  "bare intent with tag and due",
			raw:   "- 完成登录模块 @auth due:2026-02-01",
			title: "完成登录模块",
			tags:  []string{"auth"},
			due:   "2026-02-01",
		},
		{
			name:     "meta group with several tags",
			raw:      "- [v] Ship release (@ops,@release, due:2026-03-01) (id:x1)",
			checkbox: CheckboxDone,
			title:    "Ship release",
			tags:     []string{"ops", "release"},
			due:      "2026-03-01",
			id:       "x1",
		},
		{
			name:     "uppercase checkbox",
			raw:      "* [X] Old thing",
			checkbox: CheckboxCanceled,
			title:    "Old thing",
		},
		{
			name:  "no bullet",
			raw:   "Write docs @docs",
			title: "Write docs",
			tags:  []string{"docs"},
		},
		{
			name:  "comma separated bare tags",
			raw:   "- Review PR @a,@b",
			title: "Review PR",
			tags:  []string{"a", "b"},
		},
		{
			name:  "non-meta parentheses stay in title",
			raw:   "- Call (Bob) about it",
			title: "Call (Bob) about it",
		},
		{
			name:  "email is not a tag",
			raw:   "- Mail bob@example.com",
			title: "Mail bob@example.com",
		},
		{
			name:     "second priority group stays in title",
			raw:      "- {1} Fix {2} things",
			priority: 1,
			title:    "Fix {2} things",
		},
		{
			name:  "id in the middle",
			raw:   "- Task (id:mid) tail",
			title: "Task tail",
			id:    "mid",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Parse(tt.raw)
			if got.Checkbox != tt.checkbox {
				t.Errorf("Checkbox = %q, want %q", got.Checkbox, tt.checkbox)
			}
			if got.Priority != tt.priority {
				t.Errorf("Priority = %d, want %d", got.Priority, tt.priority)
			}
			if got.Title != tt.title {
				t.Errorf("Title = %q, want %q", got.Title, tt.title)
			}
			if !slices.Equal(got.Tags, tt.tags) {
				t.Errorf("Tags = %v, want %v", got.Tags, tt.tags)
			}
			gotDue := ""
			if got.Due != nil {
				gotDue = got.Due.String()
			}
			if gotDue != tt.due {
				t.Errorf("Due = %q, want %q", gotDue, tt.due)
			}
			if got.ID != tt.id {
				t.Errorf("ID = %q, want %q", got.ID, tt.id)
			}
		})
	}
}

func TestParse_MalformedFields(t *testing.T) {
	t.Parallel()

	t.Run("bad priority keeps token in title", func(t *testing.T) {
		t.Parallel()
		l := Parse("- {high} Deploy @ops")
		if !l.Malformed(FieldPriority) {
			t.Error("expected malformed priority")
		}
		if l.Priority != 0 {
			t.Errorf("Priority = %d, want 0", l.Priority)
		}
		if l.Title != "{high} Deploy" {
			t.Errorf("Title = %q, want %q", l.Title, "{high} Deploy")
		}
		if !slices.Equal(l.Tags, []string{"ops"}) {
			t.Errorf("Tags = %v, want [ops]", l.Tags)
		}
	})

	t.Run("bad due keeps token in title", func(t *testing.T) {
		t.Parallel()
		l := Parse("- [ ] {2} Deploy (due:2026-13-45) (id:d1)")
		if !l.Malformed(FieldDue) {
			t.Error("expected malformed due")
		}
		if l.Due != nil {
			t.Errorf("Due = %v, want nil", l.Due)
		}
		if l.Priority != 2 {
			t.Errorf("Priority = %d, want 2", l.Priority)
		}
		if l.Title != "Deploy due:2026-13-45" {
			t.Errorf("Title = %q", l.Title)
		}
		if l.ID != "d1" {
			t.Errorf("ID = %q, want d1", l.ID)
		}
	})

	t.Run("well formed line reports nothing", func(t *testing.T) {
		t.Parallel()
		l := Parse("- [ ] {2} Deploy (due:2026-01-05)")
		if l.Malformed(FieldDue) || l.Malformed(FieldPriority) {
			t.Error("unexpected malformed field")
		}
	})
}

func TestParse_StableAcrossFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		raw      string
		priority int
		title    string
		id       string
	}{
		{
			name:  "trailing id wins",
			raw:   "- [ ] see (id:zzz) notes (id:abc)",
			title: "see (id:zzz) notes",
			id:    "abc",
		},
		{
			name:  "zero priority is text",
			raw:   "- [ ] {0} foo",
			title: "{0} foo",
		},
		{
			name:     "zero priority does not block a later one",
			raw:      "- [ ] {0} {7} foo",
			priority: 7,
			title:    "{0} foo",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			first := Parse(tt.raw)
			if first.Priority != tt.priority || first.Title != tt.title || first.ID != tt.id {
				t.Fatalf("Parse(%q) = {%d %q %q}, want {%d %q %q}",
					tt.raw, first.Priority, first.Title, first.ID, tt.priority, tt.title, tt.id)
			}
			second := Parse(Format(first))
			if second.Priority != first.Priority || second.Title != first.Title || second.ID != first.ID {
				t.Errorf("reparse of %q = %+v, want %+v", Format(first), second, first)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line Line
		want string
	}{
		{
			name: "title only",
			line: Line{Title: "Plain"},
			want: "- [ ] Plain",
		},
		{
			name: "everything",
			line: Line{Checkbox: CheckboxDone, Priority: 3, Title: "Write tests", Tags: []string{"b", "a"}, Due: date(t, "2026-02-01"), ID: "abc123"},
			want: "- [v] {3} Write tests (@a,@b, due:2026-02-01) (id:abc123)",
		},
		{
			name: "due only",
			line: Line{Checkbox: CheckboxCanceled, Title: "Skip", Due: date(t, "2026-02-01")},
			want: "- [x] Skip (due:2026-02-01)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Format(tt.line); got != tt.want {
				t.Errorf("Format() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	tasks := []model.Task{
		{ID: "a1", Title: "Write tests", Status: model.StatusOpen, Priority: 3, Tags: []string{"core"}},
		{ID: "b2", Title: "完成登录模块", Status: model.StatusDone, Tags: []string{"auth", "web"}, Due: date(t, "2026-02-01")},
		{ID: "c3", Title: "Call (Bob) later", Status: model.StatusCanceled, Priority: -1},
		{ID: "d4", Title: "No meta", Status: model.StatusOpen},
	}

	for _, task := range tasks {
		t.Run(task.ID, func(t *testing.T) {
			t.Parallel()
			want := FromTask(task)
			got := Parse(Format(want))
			if got.Checkbox != want.Checkbox || got.Priority != want.Priority ||
				got.Title != want.Title || got.ID != want.ID ||
				!slices.Equal(got.Tags, want.Tags) || !model.SameDate(got.Due, want.Due) {
				t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, want)
			}
		})
	}
}

func TestIsListItem(t *testing.T) {
	t.Parallel()

	tests := map[string]bool{
		"- item":        true,
		"* item":        true,
		"-[ ] item":     true,
		"  - indented":  true,
		"-flag":         false,
		"plain text":    false,
		"<!-- note -->": false,
		"":              false,
	}
	for raw, want := range tests {
		if got := IsListItem(raw); got != want {
			t.Errorf("IsListItem(%q) = %v, want %v", raw, got, want)
		}
	}
}
