package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSaveLoadJSON_Roundtrip(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "last_run.json")

	type Data struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	original := Data{Name: "sync", Count: 3}

	if err := SaveJSON(path, original); err != nil {
		t.Fatalf("SaveJSON failed: %v", err)
	}

	var loaded Data
	if err := LoadJSON(path, &loaded); err != nil {
		t.Fatalf("LoadJSON failed: %v", err)
	}

	if loaded != original {
		t.Errorf("roundtrip mismatch: got %+v, want %+v", loaded, original)
	}
}

func TestLoadJSON_NotFound(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nonexistent.json")

	var data map[string]any
	err := LoadJSON(path, &data)
	if err == nil {
		t.Fatal("expected error for non-existent file, got nil")
	}
	if !os.IsNotExist(err) {
		t.Errorf("expected os.IsNotExist error, got %v", err)
	}
}

func TestLoadJSON_InvalidJSON(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "invalid.json")
	if err := os.WriteFile(path, []byte(`{not valid json}`), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	var data map[string]any
	if err := LoadJSON(path, &data); err == nil {
		t.Fatal("expected error for invalid JSON, got nil")
	}
}

func TestSaveJSON_MarshalError(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bad.json")

	// Channels can't be marshaled to JSON
	if err := SaveJSON(path, make(chan int)); err == nil {
		t.Fatal("expected error for unmarshalable data, got nil")
	}
	if _, err := os.Stat(path); err == nil {
		t.Error("no file should be written on marshal error")
	}
}

func TestWriteFile_CreatesDirectory(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "todos", "nested", "todo.md")

	if err := WriteFile(path, []byte("# Open tasks\n"), 0o644); err != nil {
		t.Fatalf("WriteFile failed to create directories: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "# Open tasks\n" {
		t.Errorf("content = %q", got)
	}
}

func TestWriteFile_Atomic(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "latest.md")

	if err := WriteFile(path, []byte("one"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := WriteFile(path, []byte("two"), 0o644); err != nil {
		t.Fatal(err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("temp files left behind: %v", names)
	}

	got, _ := os.ReadFile(path)
	if string(got) != "two" {
		t.Errorf("content = %q, want two", got)
	}
}

func TestStateDir(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	dir, err := StateDir(root)
	if err != nil {
		t.Fatalf("StateDir() error: %v", err)
	}
	if dir != filepath.Join(root, ".worklog") {
		t.Errorf("StateDir() = %q", dir)
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		t.Errorf("StateDir did not create a directory: %v", err)
	}
}
