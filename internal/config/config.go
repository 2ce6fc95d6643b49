package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Environment variables that override config file settings.
const (
	EnvConfig = "WORKLOG_CONFIG"
	EnvRoot   = "WORKLOG_ROOT"
)

// Hook defines a command run after worklog commands
type Hook struct {
	Command     string   `toml:"command"`
	Description string   `toml:"description"`
	On          []string `toml:"on"`      // commands this hook runs on (empty = only via "worklog hook")
	Enabled     *bool    `toml:"enabled"` // local config may set false to disable a global hook
}

// IsEnabled reports whether the hook is enabled (default true).
func (h Hook) IsEnabled() bool {
	return h.Enabled == nil || *h.Enabled
}

// HooksConfig holds hook-related configuration
type HooksConfig struct {
	Hooks map[string]Hook `toml:"-"` // parsed from [hooks.NAME] sections
}

// PathsConfig holds file locations relative to the root directory
type PathsConfig struct {
	Inbox    string `toml:"inbox"`
	Store    string `toml:"store"` // empty = todos/tasks.<ext> for the backend
	TodoView string `toml:"todo_view"`
	Digest   string `toml:"digest"`
	Logs     string `toml:"logs"`
}

// StoreConfig holds task store settings
type StoreConfig struct {
	Backend string `toml:"backend"` // "yaml", "json" or "sqlite"
}

// ViewConfig holds todo view ordering
type ViewConfig struct {
	Sort          string `toml:"sort"`           // "priority", "due" or "created"
	PriorityOrder string `toml:"priority_order"` // "asc" or "desc"
}

// MatchConfig holds TODO_DONE title matching settings
type MatchConfig struct {
	Done string `toml:"done"` // "exact", "substring" or "fuzzy"
}

// Config holds the worklog configuration
type Config struct {
	Root  string      `toml:"root"`
	Paths PathsConfig `toml:"paths"`
	Store StoreConfig `toml:"store"`
	View  ViewConfig  `toml:"view"`
	Match MatchConfig `toml:"match"`
	Theme string      `toml:"theme"`
	Hooks HooksConfig `toml:"-"` // custom parsing needed
}

// Defaults
const (
	DefaultRoot          = "~/worklog"
	DefaultInbox         = "inbox/current.md"
	DefaultTodoView      = "todos/todo.md"
	DefaultDigest        = "latest.md"
	DefaultLogs          = "logs"
	DefaultStoreBackend  = "yaml"
	DefaultSort          = "priority"
	DefaultPriorityOrder = "asc"
	DefaultMatchDone     = "exact"
	DefaultTheme         = "default"
)

// Default returns the default configuration
func Default() Config {
	return Config{
		Root: DefaultRoot,
		Paths: PathsConfig{
			Inbox:    DefaultInbox,
			TodoView: DefaultTodoView,
			Digest:   DefaultDigest,
			Logs:     DefaultLogs,
		},
		Store: StoreConfig{Backend: DefaultStoreBackend},
		View:  ViewConfig{Sort: DefaultSort, PriorityOrder: DefaultPriorityOrder},
		Match: MatchConfig{Done: DefaultMatchDone},
		Theme: DefaultTheme,
		Hooks: HooksConfig{Hooks: make(map[string]Hook)},
	}
}

// ValidatePath checks that the path is absolute or starts with ~
// Returns error if path is relative (like "." or "..")
func ValidatePath(path, fieldName string) error {
	if path == "" {
		return nil // Empty is allowed (means default)
	}
	// Allow ~ paths
	if path[0] == '~' {
		return nil
	}
	// Must be absolute
	if !filepath.IsAbs(path) {
		return fmt.Errorf("%s must be absolute or start with ~, got: %q", fieldName, path)
	}
	return nil
}

// ExpandPath expands ~ to the user's home directory
func ExpandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	if len(path) >= 2 && path[:2] == "~/" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand ~: %w", err)
		}
		return filepath.Join(home, path[2:]), nil
	}
	if path == "~" {
		return os.UserHomeDir()
	}
	return path, nil
}

// Path returns the path to the global config file.
// WORKLOG_CONFIG overrides ~/.config/worklog/config.toml.
func Path() (string, error) {
	if p := os.Getenv(EnvConfig); p != "" {
		return ExpandPath(p)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "worklog", "config.toml"), nil
}

// rawConfig is used for initial TOML parsing before processing hooks
type rawConfig struct {
	Root  string         `toml:"root"`
	Paths PathsConfig    `toml:"paths"`
	Store StoreConfig    `toml:"store"`
	View  ViewConfig     `toml:"view"`
	Match MatchConfig    `toml:"match"`
	Theme string         `toml:"theme"`
	Hooks map[string]any `toml:"hooks"`
}

// Load reads the global config file and applies environment overrides.
// Returns Default() if the file doesn't exist (no error).
// Returns error only if file exists but is invalid.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return finalize(Default())
	}
	return LoadFile(path)
}

// LoadFile reads config from path, see Load.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return finalize(Default())
		}
		return Default(), fmt.Errorf("failed to read config file: %w", err)
	}

	var raw rawConfig
	if err := toml.Unmarshal(data, &raw); err != nil {
		return Default(), fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	cfg := Default()
	cfg.Hooks = parseHooksConfig(raw.Hooks)
	if raw.Root != "" {
		cfg.Root = raw.Root
	}
	if raw.Theme != "" {
		cfg.Theme = raw.Theme
	}
	setIfEmpty(&cfg.Paths.Inbox, raw.Paths.Inbox)
	setIfEmpty(&cfg.Paths.Store, raw.Paths.Store)
	setIfEmpty(&cfg.Paths.TodoView, raw.Paths.TodoView)
	setIfEmpty(&cfg.Paths.Digest, raw.Paths.Digest)
	setIfEmpty(&cfg.Paths.Logs, raw.Paths.Logs)
	setIfEmpty(&cfg.Store.Backend, raw.Store.Backend)
	setIfEmpty(&cfg.View.Sort, raw.View.Sort)
	setIfEmpty(&cfg.View.PriorityOrder, raw.View.PriorityOrder)
	setIfEmpty(&cfg.Match.Done, raw.Match.Done)

	// Validate root (must be absolute or start with ~)
	if err := ValidatePath(cfg.Root, "root"); err != nil {
		return Default(), err
	}

	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("%s: %w", path, err)
	}

	return finalize(cfg)
}

// setIfEmpty overwrites *dst with v unless v is empty.
func setIfEmpty(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

// finalize applies WORKLOG_ROOT and expands ~ in root
func finalize(cfg Config) (Config, error) {
	if root := os.Getenv(EnvRoot); root != "" {
		cfg.Root = root
	}

	// Expand ~ in root (shell doesn't expand in config files)
	expanded, err := ExpandPath(cfg.Root)
	if err != nil {
		return cfg, fmt.Errorf("expand root: %w", err)
	}
	abs, err := filepath.Abs(expanded)
	if err != nil {
		return cfg, fmt.Errorf("resolve root: %w", err)
	}
	cfg.Root = abs
	return cfg, nil
}

// parseHooksConfig extracts HooksConfig from raw TOML map
// Handles [hooks.NAME] sections
func parseHooksConfig(raw map[string]any) HooksConfig {
	hc := HooksConfig{
		Hooks: make(map[string]Hook),
	}

	for key, value := range raw {
		// Hook definitions are tables
		if hookMap, ok := value.(map[string]any); ok {
			hook := Hook{}
			if cmd, ok := hookMap["command"].(string); ok {
				hook.Command = cmd
			}
			if desc, ok := hookMap["description"].(string); ok {
				hook.Description = desc
			}
			if on, ok := hookMap["on"].([]any); ok {
				for _, v := range on {
					if s, ok := v.(string); ok {
						hook.On = append(hook.On, s)
					}
				}
			}
			if enabled, ok := hookMap["enabled"].(bool); ok {
				hook.Enabled = &enabled
			}
			hc.Hooks[key] = hook
		}
	}

	return hc
}

const defaultConfig = `# worklog configuration

# Directory holding the inbox, task store, logs and views
# Must be an absolute path or start with ~ (no relative paths like "." or "..")
# WORKLOG_ROOT overrides this setting.
root = "~/worklog"

# File locations, relative to root
# [paths]
# inbox = "inbox/current.md"
# store = "todos/tasks.yaml"   # default depends on [store] backend
# todo_view = "todos/todo.md"
# digest = "latest.md"
# logs = "logs"

# Task store backend: "yaml" (default), "json" or "sqlite"
# [store]
# backend = "yaml"

# Ordering of the open task view
# [view]
# sort = "priority"        # priority, due or created
# priority_order = "asc"   # asc: {1} before {5}; desc: {5} before {1}

# How TODO_DONE titles find an open task when no title matches exactly
# [match]
# done = "exact"   # exact, substring or fuzzy

# Output colors: "default" or "mono"
# theme = "default"

# Hooks - run commands after worklog commands
# Use --no-hook to skip them for a run.
#
# Hooks with "on" run automatically for matching commands.
# Hooks without "on" only run via "worklog hook NAME".
#
# [hooks.commit]
# command = "cd {root} && git add -A && git commit -qm 'worklog {date}'"
# description = "Commit the worklog directory"
# on = ["sync"]
#
# [hooks.edit]
# command = "$EDITOR {inbox}"
# description = "Open the inbox"
#
# Available "on" values: "sync", "init", "all"
#
# Hooks run with working directory set to root.
#
# Available placeholders:
#   {root}     - worklog root directory
#   {inbox}    - inbox file
#   {todo}     - todo view file
#   {digest}   - digest file
#   {date}     - processing date (YYYY-MM-DD)
#   {trigger}  - command that triggered the hook
#   {key}      - custom variable passed via --arg key=value
#   {key:-def} - custom variable with default value if not provided
`

// DefaultConfig returns the default global configuration template content.
func DefaultConfig() string {
	return defaultConfig
}

// Init creates a default config file at Path().
// If force is true, overwrites existing file
// Returns the path to the created file
func Init(force bool) (string, error) {
	path, err := Path()
	if err != nil {
		return "", err
	}

	// Check if file already exists (skip if force)
	if !force {
		if _, err := os.Stat(path); err == nil {
			return "", fmt.Errorf("config file already exists: %s (use -f to overwrite)", path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", err
	}

	if err := os.WriteFile(path, []byte(defaultConfig), 0o644); err != nil {
		return "", err
	}

	return path, nil
}
