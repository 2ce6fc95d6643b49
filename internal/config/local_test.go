package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadLocal(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	content := `
theme = "mono"

[view]
sort = "created"

[match]
done = "substring"

[hooks.push]
command = "git push"
on = ["sync"]

[hooks.commit]
enabled = false
`
	if err := os.WriteFile(filepath.Join(root, LocalConfigFileName), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	local, err := LoadLocal(root)
	if err != nil {
		t.Fatalf("LoadLocal() error = %v", err)
	}
	if local.Theme != "mono" || local.View.Sort != "created" || local.Match.Done != "substring" {
		t.Errorf("local = %+v", local)
	}
	if len(local.Hooks.Hooks) != 2 || local.Hooks.Hooks["commit"].IsEnabled() {
		t.Errorf("hooks = %+v", local.Hooks)
	}
}

func TestLoadLocal_Missing(t *testing.T) {
	t.Parallel()

	local, err := LoadLocal(t.TempDir())
	if err != nil || local != nil {
		t.Errorf("LoadLocal() = %v, %v; want nil, nil", local, err)
	}
}

func TestLoadLocal_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"bad sort", "[view]\nsort = \"x\"", "invalid view.sort"},
		{"bad match", "[match]\ndone = \"x\"", "invalid match.done"},
		{"bad hook", "[hooks.h]\ndescription = \"no command\"", `hook "h" has no command`},
		{"bad toml", "[view", "failed to parse local config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			root := t.TempDir()
			if err := os.WriteFile(filepath.Join(root, LocalConfigFileName), []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}
			_, err := LoadLocal(root)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("LoadLocal() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}
