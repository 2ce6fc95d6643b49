package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// LocalConfigFileName is the per-root override file.
const LocalConfigFileName = ".worklog.toml"

// LocalConfig holds per-root configuration overrides from .worklog.toml.
// Zero-value strings indicate "not set" (inherit from global).
type LocalConfig struct {
	Hooks HooksConfig `toml:"-"` // merge by name into global
	View  ViewConfig  `toml:"view"`
	Match MatchConfig `toml:"match"`
	Theme string      `toml:"theme"`
}

// rawLocalConfig is used for initial TOML parsing before processing hooks
type rawLocalConfig struct {
	Hooks map[string]any `toml:"hooks"`
	View  ViewConfig     `toml:"view"`
	Match MatchConfig    `toml:"match"`
	Theme string         `toml:"theme"`
}

// LoadLocal reads the .worklog.toml config from the given root.
// Returns nil (no error) if the file doesn't exist.
// Returns an error only on parse or validation failure.
func LoadLocal(root string) (*LocalConfig, error) {
	configFile := filepath.Join(root, LocalConfigFileName)

	data, err := os.ReadFile(configFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read local config %s: %w", configFile, err)
	}

	var raw rawLocalConfig
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse local config %s: %w", configFile, err)
	}

	local := &LocalConfig{
		Hooks: parseHooksConfig(raw.Hooks),
		View:  raw.View,
		Match: raw.Match,
		Theme: raw.Theme,
	}

	for _, err := range []error{
		validateEnum(local.View.Sort, "view.sort", ValidSortModes),
		validateEnum(local.View.PriorityOrder, "view.priority_order", ValidPriorityOrders),
		validateEnum(local.Match.Done, "match.done", ValidMatchModes),
		validateEnum(local.Theme, "theme", ValidThemes),
	} {
		if err != nil {
			return nil, fmt.Errorf("%w in %s", err, configFile)
		}
	}
	if err := validateHooks(local.Hooks, configFile); err != nil {
		return nil, err
	}

	return local, nil
}

// defaultLocalConfig is the template for worklog config init --local
const defaultLocalConfig = `# worklog local config (per-root overrides)
# Place this file at the worklog root.
# Settings here override the global config for this root only.

# [view]
# sort = "due"
# priority_order = "desc"

# [match]
# done = "fuzzy"

# theme = "mono"

# Hooks - add root-specific hooks or override global hooks
# Set enabled = false to disable a global hook for this root
#
# [hooks.push]
# command = "cd {root} && git push -q"
# description = "Push the worklog repository"
# on = ["sync"]
#
# [hooks.global-hook-name]
# enabled = false  # Disable this global hook for this root
`

// DefaultLocalConfig returns the default local configuration template content.
func DefaultLocalConfig() string {
	return defaultLocalConfig
}
