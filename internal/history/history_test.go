package history

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/raphi011/worklog/internal/model"
)

func TestSaveLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), ".worklog", "last_run.json")
	run := &Run{
		At:      time.Date(2026, 1, 8, 18, 0, 0, 0, time.UTC),
		Date:    model.NewDate(2026, 1, 8),
		Notes:   2,
		Changes: map[string]int{"added": 1, "completed": 2},
		Skips:   1,
	}

	if err := run.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got == nil {
		t.Fatal("Load returned nil record")
	}
	if !got.At.Equal(run.At) || !got.Date.Equal(run.Date) || got.Notes != 2 || got.Skips != 1 {
		t.Errorf("Load() = %+v, want %+v", got, run)
	}
	if got.Total() != 3 {
		t.Errorf("Total() = %d, want 3", got.Total())
	}
}

func TestLoad_Missing(t *testing.T) {
	t.Parallel()

	got, err := Load(filepath.Join(t.TempDir(), "none.json"))
	if err != nil || got != nil {
		t.Errorf("Load() = %v, %v; want nil, nil", got, err)
	}
}

func TestLoad_Corrupted(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "last_run.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := Load(path)
	if err != nil || got != nil {
		t.Errorf("Load() = %v, %v; want nil, nil for a corrupted record", got, err)
	}
}

func TestDaysSince(t *testing.T) {
	t.Parallel()

	r := &Run{Date: model.NewDate(2026, 1, 1)}
	if got := r.DaysSince(model.NewDate(2026, 1, 8)); got != 7 {
		t.Errorf("DaysSince() = %d, want 7", got)
	}
	if got := r.DaysSince(model.NewDate(2026, 1, 1)); got != 0 {
		t.Errorf("DaysSince(same day) = %d, want 0", got)
	}
}
