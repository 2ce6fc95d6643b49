package config

import "maps"

// MergeLocal merges a local per-root config into a global config,
// returning a new Config without mutating the global.
// Returns global unchanged if local is nil.
func MergeLocal(global *Config, local *LocalConfig) *Config {
	if local == nil {
		return global
	}

	// Shallow copy global: root, paths and store are global-only settings.
	merged := *global

	// Merge hooks by name: local overrides/adds, enabled=false removes
	merged.Hooks = mergeHooks(global.Hooks, local.Hooks)

	if local.View.Sort != "" {
		merged.View.Sort = local.View.Sort
	}
	if local.View.PriorityOrder != "" {
		merged.View.PriorityOrder = local.View.PriorityOrder
	}
	if local.Match.Done != "" {
		merged.Match.Done = local.Match.Done
	}
	if local.Theme != "" {
		merged.Theme = local.Theme
	}

	return &merged
}

// mergeHooks merges local hooks into global hooks.
// Local hooks with the same name override global hooks.
// Local hooks with enabled=false remove the global hook.
func mergeHooks(global, local HooksConfig) HooksConfig {
	merged := HooksConfig{
		Hooks: make(map[string]Hook, len(global.Hooks)),
	}

	// Copy global hooks
	maps.Copy(merged.Hooks, global.Hooks)

	// Overlay local hooks
	for name, hook := range local.Hooks {
		if !hook.IsEnabled() {
			// Disable: remove from merged
			delete(merged.Hooks, name)
			continue
		}
		merged.Hooks[name] = hook
	}

	return merged
}
