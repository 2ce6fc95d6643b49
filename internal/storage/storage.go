// Package storage provides atomic file writes for the worklog files.
package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// StateDirName is the directory under the worklog root holding tool state.
const StateDirName = ".worklog"

// StateDir returns <root>/.worklog, creating it if needed
func StateDir(root string) (string, error) {
	dir := filepath.Join(root, StateDirName)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	return dir, nil
}

// WriteFile atomically replaces path with data.
// It ensures the parent directory exists, writes to a temp file in the same
// directory, then renames to the final path.
func WriteFile(path string, data []byte, perm os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tempPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tempPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tempPath)
		return err
	}
	if err := os.Chmod(tempPath, perm); err != nil {
		os.Remove(tempPath)
		return err
	}

	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return err
	}
	return nil
}

// SaveJSON atomically writes data as indented JSON to the specified path.
func SaveJSON(path string, data any) error {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}

	return WriteFile(path, append(jsonData, '\n'), 0o644)
}

// LoadJSON reads JSON from the specified path into dest.
// Returns os.ErrNotExist if file doesn't exist (caller should handle).
func LoadJSON(path string, dest any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	return json.Unmarshal(data, dest)
}
