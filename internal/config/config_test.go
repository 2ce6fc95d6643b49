package config

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	if cfg.Root != DefaultRoot || cfg.Store.Backend != "yaml" || cfg.View.Sort != "priority" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.Paths.Inbox != "inbox/current.md" || cfg.Paths.Digest != "latest.md" {
		t.Errorf("unexpected default paths: %+v", cfg.Paths)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadFile_Missing(t *testing.T) {
	root := t.TempDir()
	t.Setenv(EnvRoot, root)

	cfg, err := LoadFile(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if cfg.Root != root {
		t.Errorf("Root = %q, want %q from %s", cfg.Root, root, EnvRoot)
	}
}

func TestLoadFile(t *testing.T) {
	t.Setenv(EnvRoot, "")

	root := t.TempDir()
	path := writeConfig(t, t.TempDir(), `
root = "`+root+`"
theme = "mono"

[paths]
inbox = "in.md"

[store]
backend = "sqlite"

[view]
sort = "due"

[match]
done = "fuzzy"

[hooks.commit]
command = "git commit -am {date}"
description = "Commit"
on = ["sync"]
`)

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}

	if cfg.Root != root {
		t.Errorf("Root = %q, want %q", cfg.Root, root)
	}
	if cfg.Paths.Inbox != "in.md" || cfg.Paths.TodoView != DefaultTodoView {
		t.Errorf("Paths = %+v", cfg.Paths)
	}
	if cfg.Store.Backend != "sqlite" || cfg.View.Sort != "due" || cfg.View.PriorityOrder != "asc" {
		t.Errorf("Store/View = %+v %+v", cfg.Store, cfg.View)
	}
	if cfg.Match.Done != "fuzzy" || cfg.Theme != "mono" {
		t.Errorf("Match/Theme = %+v %q", cfg.Match, cfg.Theme)
	}
	hook, ok := cfg.Hooks.Hooks["commit"]
	if !ok || hook.Command != "git commit -am {date}" || !reflect.DeepEqual(hook.On, []string{"sync"}) {
		t.Errorf("hooks = %+v", cfg.Hooks)
	}
}

func TestLoadFile_Invalid(t *testing.T) {
	t.Setenv(EnvRoot, "")

	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"relative root", `root = "worklog"`, "root must be absolute"},
		{"bad backend", "[store]\nbackend = \"csv\"", `invalid store.backend "csv"`},
		{"bad sort", "[view]\nsort = \"alpha\"", `invalid view.sort "alpha"`},
		{"bad order", "[view]\npriority_order = \"up\"", `must be "asc" or "desc"`},
		{"bad match", "[match]\ndone = \"regex\"", `"exact", "substring", or "fuzzy"`},
		{"bad theme", `theme = "neon"`, `invalid theme`},
		{"hook without command", "[hooks.x]\non = [\"sync\"]", `hook "x" has no command`},
		{"hook bad trigger", "[hooks.x]\ncommand = \"true\"\non = [\"add\"]", `invalid hooks.x.on "add"`},
		{"bad toml", `root = `, "failed to parse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), tt.content)
			_, err := LoadFile(path)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("LoadFile() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestPath_EnvOverride(t *testing.T) {
	want := filepath.Join(t.TempDir(), "custom.toml")
	t.Setenv(EnvConfig, want)

	got, err := Path()
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("Path() = %q, want %q", got, want)
	}
}

func TestInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.toml")
	t.Setenv(EnvConfig, path)

	got, err := Init(false)
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if got != path {
		t.Errorf("Init() = %q, want %q", got, path)
	}
	if _, err := Init(false); err == nil {
		t.Error("second Init without force should fail")
	}
	if _, err := Init(true); err != nil {
		t.Errorf("Init(force) error = %v", err)
	}

	// The template must load cleanly.
	t.Setenv(EnvRoot, t.TempDir())
	if _, err := LoadFile(path); err != nil {
		t.Errorf("default config does not load: %v", err)
	}
}

func TestDefaultConfigTemplates_ParseAsTOML(t *testing.T) {
	t.Parallel()

	for name, content := range map[string]string{
		"global": DefaultConfig(),
		"local":  DefaultLocalConfig(),
	} {
		var raw map[string]any
		if _, err := toml.Decode(content, &raw); err != nil {
			t.Errorf("%s template is not valid TOML: %v", name, err)
		}
	}
}

func TestParseHooksConfig(t *testing.T) {
	t.Parallel()

	disabled := false
	tests := []struct {
		name     string
		raw      map[string]any
		expected HooksConfig
	}{
		{
			name: "full hooks config",
			raw: map[string]any{
				"commit": map[string]any{
					"command":     "git commit -am {date}",
					"description": "Commit",
					"on":          []any{"sync", "init"},
				},
				"edit": map[string]any{
					"command": "$EDITOR {inbox}",
				},
			},
			expected: HooksConfig{Hooks: map[string]Hook{
				"commit": {Command: "git commit -am {date}", Description: "Commit", On: []string{"sync", "init"}},
				"edit":   {Command: "$EDITOR {inbox}"},
			}},
		},
		{
			name:     "disabled hook",
			raw:      map[string]any{"commit": map[string]any{"enabled": false}},
			expected: HooksConfig{Hooks: map[string]Hook{"commit": {Enabled: &disabled}}},
		},
		{
			name:     "non-table values ignored",
			raw:      map[string]any{"stray": "value"},
			expected: HooksConfig{Hooks: map[string]Hook{}},
		},
		{
			name:     "nil input",
			raw:      nil,
			expected: HooksConfig{Hooks: map[string]Hook{}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := parseHooksConfig(tt.raw)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("parseHooksConfig() = %+v, want %+v", got, tt.expected)
			}
		})
	}
}

func TestFormatOptions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   []string
		want string
	}{
		{[]string{"a"}, `"a"`},
		{[]string{"a", "b"}, `"a" or "b"`},
		{[]string{"a", "b", "c"}, `"a", "b", or "c"`},
	}
	for _, tt := range tests {
		if got := formatOptions(tt.in); got != tt.want {
			t.Errorf("formatOptions(%v) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestContext(t *testing.T) {
	t.Parallel()

	if got := FromContext(context.Background()); got.Root != DefaultRoot {
		t.Errorf("FromContext(empty) = %+v, want defaults", got)
	}
	cfg := &Config{Root: "/tmp/x"}
	if got := FromContext(WithConfig(context.Background(), cfg)); got != cfg {
		t.Errorf("FromContext() = %p, want %p", got, cfg)
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	tests := []struct{ in, want string }{
		{"", ""},
		{"~", home},
		{"~/worklog", filepath.Join(home, "worklog")},
		{"/abs/path", "/abs/path"},
	}
	for _, tt := range tests {
		got, err := ExpandPath(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ExpandPath(%q) = %q, %v; want %q", tt.in, got, err, tt.want)
		}
	}
}
