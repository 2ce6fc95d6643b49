// Package config handles loading and validation of worklog configuration.
//
// Configuration is read from ~/.config/worklog/config.toml with environment
// variable overrides, then merged with an optional .worklog.toml at the root.
//
// # Configuration Sources (highest priority first)
//
//   - WORKLOG_ROOT env var: root directory
//   - <root>/.worklog.toml: view, match, theme and hooks overrides
//   - Global config file (WORKLOG_CONFIG overrides its location)
//   - Default values
//
// # Key Settings
//
//   - root: directory holding all worklog files (must be absolute or ~/...)
//   - [paths]: inbox, store, todo_view, digest, logs relative to root
//   - [store] backend: "yaml" (default), "json" or "sqlite"
//   - [view] sort, priority_order: ordering of the open task view
//   - [match] done: TODO_DONE title fallback ("exact", "substring", "fuzzy")
//
// # Hooks Configuration
//
// Hooks are defined in [hooks.NAME] sections:
//
//	[hooks.commit]
//	command = "cd {root} && git commit -qam 'worklog {date}'"
//	description = "Commit the worklog"
//	on = ["sync"]  # auto-run after sync
//
// Hooks with "on" run automatically for matching commands (sync, init).
// Hooks without "on" only run via "worklog hook NAME".
package config
