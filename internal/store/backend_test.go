package store

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/raphi011/worklog/internal/model"
)

func sampleTasks() []model.Task {
	created := time.Date(2026, 1, 1, 8, 30, 0, 0, time.UTC)
	updated := created.Add(26 * time.Hour)
	due := model.NewDate(2026, 2, 1)
	return []model.Task{
		{ID: "aaaa1111", Title: "完成登录模块", Status: model.StatusOpen, Tags: []string{"auth"}, Due: &due, CreatedAt: created, UpdatedAt: created},
		{ID: "bbbb2222", Title: "Ship v1", Status: model.StatusDone, Priority: 2, CreatedAt: created, UpdatedAt: updated},
		{ID: "cccc3333", Title: "Old idea", Status: model.StatusCanceled, Tags: []string{"a", "b"}, CreatedAt: created, UpdatedAt: updated},
	}
}

func TestBackends_SaveLoad(t *testing.T) {
	t.Parallel()

	for _, kind := range Kinds {
		t.Run(kind, func(t *testing.T) {
			t.Parallel()
			ctx := context.Background()
			path := filepath.Join(t.TempDir(), "todos", DefaultFile(kind))

			b, err := Open(kind, path)
			if err != nil {
				t.Fatal(err)
			}
			if b.Path() != path {
				t.Errorf("Path() = %q", b.Path())
			}

			if err := b.Save(ctx, New(sampleTasks()...)); err != nil {
				t.Fatalf("Save: %v", err)
			}
			loaded, err := b.Load(ctx)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}

			want := sampleTasks()
			got := loaded.All()
			if len(got) != len(want) {
				t.Fatalf("loaded %d tasks, want %d", len(got), len(want))
			}
			for i := range want {
				g, w := got[i], want[i]
				if g.ID != w.ID || g.Title != w.Title || g.Status != w.Status || g.Priority != w.Priority {
					t.Errorf("task %d = %+v, want %+v", i, g, w)
				}
				if !model.SameTags(g.Tags, w.Tags) || !model.SameDate(g.Due, w.Due) {
					t.Errorf("task %d meta = %v %v, want %v %v", i, g.Tags, g.Due, w.Tags, w.Due)
				}
				if !g.CreatedAt.Equal(w.CreatedAt) || !g.UpdatedAt.Equal(w.UpdatedAt) {
					t.Errorf("task %d timestamps = %v %v", i, g.CreatedAt, g.UpdatedAt)
				}
			}

			// Saving again replaces the previous content.
			if err := b.Save(ctx, New(sampleTasks()[1])); err != nil {
				t.Fatal(err)
			}
			loaded, err = b.Load(ctx)
			if err != nil {
				t.Fatal(err)
			}
			if loaded.Len() != 1 {
				t.Errorf("after resave Len() = %d, want 1", loaded.Len())
			}
		})
	}
}

func TestBackends_MissingFile(t *testing.T) {
	t.Parallel()

	for _, kind := range Kinds {
		t.Run(kind, func(t *testing.T) {
			t.Parallel()
			b, err := Open(kind, filepath.Join(t.TempDir(), DefaultFile(kind)))
			if err != nil {
				t.Fatal(err)
			}
			_, err = b.Load(context.Background())
			if !errors.Is(err, fs.ErrNotExist) {
				t.Errorf("Load() error = %v, want fs.ErrNotExist", err)
			}
		})
	}
}

func TestBackends_EmptyStore(t *testing.T) {
	t.Parallel()

	for _, kind := range Kinds {
		t.Run(kind, func(t *testing.T) {
			t.Parallel()
			ctx := context.Background()
			b, _ := Open(kind, filepath.Join(t.TempDir(), DefaultFile(kind)))
			if err := b.Save(ctx, New()); err != nil {
				t.Fatal(err)
			}
			s, err := b.Load(ctx)
			if err != nil {
				t.Fatal(err)
			}
			if s.Len() != 0 {
				t.Errorf("Len() = %d, want 0", s.Len())
			}
		})
	}
}

func TestOpen_UnknownKind(t *testing.T) {
	t.Parallel()

	if _, err := Open("csv", "tasks.csv"); err == nil {
		t.Error("Open(csv) should fail")
	}
	b, err := Open("", "tasks.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := b.(*YAMLBackend); !ok {
		t.Errorf("default backend = %T, want *YAMLBackend", b)
	}
}

func TestYAMLBackend_DuplicateIDs(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "tasks.yaml")
	content := `version: 1
tasks:
  - id: aaaa1111
    title: first
    status: open
    created_at: 2026-01-01T08:00:00Z
    updated_at: 2026-01-01T08:00:00Z
  - id: aaaa1111
    title: second
    status: done
    created_at: 2026-01-01T08:00:00Z
    updated_at: 2026-01-01T08:00:00Z
`
	if err := writeTestFile(path, content); err != nil {
		t.Fatal(err)
	}

	s, err := (&YAMLBackend{path: path}).Load(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if s.Len() != 1 || len(s.Duplicates()) != 1 {
		t.Errorf("Len() = %d, Duplicates() = %v", s.Len(), s.Duplicates())
	}
}

func writeTestFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o644)
}
