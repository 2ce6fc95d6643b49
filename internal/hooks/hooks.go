package hooks

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/raphi011/worklog/internal/config"
	"github.com/raphi011/worklog/internal/log"
	"github.com/raphi011/worklog/internal/output"
)

// shellQuote escapes a string for safe use in shell commands.
// It wraps the value in single quotes and escapes any embedded single quotes.
func shellQuote(s string) string {
	// e.g., "it's" becomes 'it'\''s'
	return "'" + strings.ReplaceAll(s, "'", "'\\''") + "'"
}

// CommandType identifies which command is triggering the hook
type CommandType string

const (
	CommandSync   CommandType = "sync"
	CommandInit   CommandType = "init"
	CommandManual CommandType = "manual"
)

// Context holds the values for placeholder substitution
type Context struct {
	Root    string            // worklog root, also the working directory
	Inbox   string            // inbox file
	Todo    string            // todo view file
	Digest  string            // digest file
	Date    string            // processing date (YYYY-MM-DD)
	Trigger string            // command that triggered the hook
	Env     map[string]string // custom variables from --arg key=value flags
	DryRun  bool              // if true, print command instead of executing
}

// HookMatch represents a hook that matched the current command
type HookMatch struct {
	Hook *config.Hook
	Name string
}

// SelectHooks determines which hooks to run based on config and CLI flags.
// If hookName is specified, only that hook runs. Otherwise, all hooks with
// matching "on" conditions run, sorted by name.
// Returns nil slice if no hooks should run, error if specified hook doesn't exist.
func SelectHooks(cfg config.HooksConfig, hookName string, noHook bool, cmdType CommandType) ([]HookMatch, error) {
	if noHook {
		return nil, nil
	}

	// If explicit hook specified, use it directly (ignores "on" condition)
	if hookName != "" {
		hook, exists := cfg.Hooks[hookName]
		if !exists {
			return nil, fmt.Errorf("unknown hook %q", hookName)
		}
		return []HookMatch{{Hook: &hook, Name: hookName}}, nil
	}

	return findMatchingHooks(cfg, cmdType), nil
}

// findMatchingHooks returns all enabled hooks that have the command type in their "on" list.
// Hooks without "on" are skipped (they only run via "worklog hook NAME").
func findMatchingHooks(cfg config.HooksConfig, cmdType CommandType) []HookMatch {
	var matches []HookMatch

	for name, hook := range cfg.Hooks {
		if hook.IsEnabled() && len(hook.On) > 0 && hookMatchesCommand(hook, cmdType) {
			hookCopy := hook
			matches = append(matches, HookMatch{Hook: &hookCopy, Name: name})
		}
	}

	slices.SortFunc(matches, func(a, b HookMatch) int {
		return strings.Compare(a.Name, b.Name)
	})
	return matches
}

// hookMatchesCommand returns true if cmdType is in the hook's "on" list.
// Special value "all" matches all command types.
func hookMatchesCommand(hook config.Hook, cmdType CommandType) bool {
	for _, cmd := range hook.On {
		if cmd == "all" || cmd == string(cmdType) {
			return true
		}
	}
	return false
}

// RunAll runs all matched hooks in the root directory.
// Returns on first error.
func RunAll(ctx context.Context, matches []HookMatch, hctx Context) error {
	for _, match := range matches {
		if err := runHook(ctx, match.Name, match.Hook, hctx); err != nil {
			return fmt.Errorf("hook %q failed: %w", match.Name, err)
		}
	}
	return nil
}

// RunAllNonFatal runs all matched hooks, logging failures as warnings instead of returning errors.
func RunAllNonFatal(ctx context.Context, matches []HookMatch, hctx Context) {
	l := log.FromContext(ctx)
	for _, match := range matches {
		if err := runHook(ctx, match.Name, match.Hook, hctx); err != nil {
			l.Printf("Warning: hook %q failed: %v\n", match.Name, err)
		}
	}
}

// runHook executes a single hook with variable substitution.
func runHook(ctx context.Context, name string, hook *config.Hook, hctx Context) error {
	l := log.FromContext(ctx)
	out := output.FromContext(ctx)
	cmd := SubstitutePlaceholders(hook.Command, hctx)

	if hctx.DryRun {
		out.Printf("[dry-run] %s: %s\n", name, cmd)
		return nil
	}

	l.Printf("Running hook '%s'...\n", name)

	shellCmd := exec.CommandContext(ctx, "sh", "-c", cmd)
	shellCmd.Dir = hctx.Root
	shellCmd.Stdout = out.Writer()
	shellCmd.Stderr = l.Writer()
	shellCmd.Stdin = os.Stdin

	done := l.Command(hctx.Root, "sh", "-c", cmd)
	start := time.Now()
	err := shellCmd.Run()
	done(time.Since(start))
	if err != nil {
		return err
	}

	if hook.Description != "" {
		l.Printf("  ✓ %s\n", hook.Description)
	}
	return nil
}

// readStdinIfPiped reads all content from stdin if it's piped (not a TTY).
// Returns empty string and nil if stdin is a TTY (interactive).
func readStdinIfPiped() (string, error) {
	if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return "", nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}

// ParseEnv parses a slice of "key=value" strings into a map.
// If any value is "-", reads stdin content and assigns it to all such keys.
// Returns an error if stdin is requested but not piped or empty.
func ParseEnv(envSlice []string) (map[string]string, error) {
	return parseEnv(envSlice, readStdinIfPiped)
}

func parseEnv(envSlice []string, stdin func() (string, error)) (map[string]string, error) {
	result := make(map[string]string)
	var stdinKeys []string

	// First pass: parse all entries and identify stdin keys
	for _, e := range envSlice {
		key, value, ok := strings.Cut(e, "=")
		if !ok {
			return nil, fmt.Errorf("invalid arg format %q: expected KEY=VALUE", e)
		}
		if key == "" {
			return nil, fmt.Errorf("invalid arg format %q: key cannot be empty", e)
		}
		if value == "-" {
			stdinKeys = append(stdinKeys, key)
		} else {
			result[key] = value
		}
	}

	// If any keys need stdin, read it once
	if len(stdinKeys) > 0 {
		content, err := stdin()
		if err != nil {
			return nil, err
		}
		if content == "" {
			return nil, fmt.Errorf("stdin not piped: KEY=- requires piped input")
		}
		for _, key := range stdinKeys {
			result[key] = content
		}
	}

	return result, nil
}

// envPlaceholderRegex matches {key}, {key:raw}, or {key:-default} patterns for env variables.
// Supported formats:
//   - {key}           - value is shell-quoted
//   - {key:raw}       - value is used as-is (no quoting)
//   - {key:-default}  - value is shell-quoted, uses default if key not set
var envPlaceholderRegex = regexp.MustCompile(`\{([a-zA-Z_][a-zA-Z0-9_]*)(?:(:raw)|:-([^}]*))?\}`)

// SubstitutePlaceholders replaces {placeholder} with shell-quoted values from Context.
//
// Static placeholders: {root}, {inbox}, {todo}, {digest}, {date}, {trigger}
// Env placeholders (from Context.Env):
//   - {key}         - shell-quoted value
//   - {key:raw}     - unquoted value (for embedding in existing quotes)
//   - {key:-default} - shell-quoted value with default if key missing
func SubstitutePlaceholders(command string, hctx Context) string {
	replacements := map[string]string{
		"{root}":    shellQuote(hctx.Root),
		"{inbox}":   shellQuote(hctx.Inbox),
		"{todo}":    shellQuote(hctx.Todo),
		"{digest}":  shellQuote(hctx.Digest),
		"{date}":    shellQuote(hctx.Date),
		"{trigger}": shellQuote(hctx.Trigger),
	}

	result := command
	for placeholder, value := range replacements {
		result = strings.ReplaceAll(result, placeholder, value)
	}

	result = envPlaceholderRegex.ReplaceAllStringFunc(result, func(match string) string {
		submatch := envPlaceholderRegex.FindStringSubmatch(match)
		if submatch == nil {
			return match
		}
		key := submatch[1]
		isRaw := submatch[2] == ":raw"
		defaultVal := submatch[3] // empty string if no default specified

		if val, ok := hctx.Env[key]; ok {
			if isRaw {
				return val
			}
			return shellQuote(val)
		}

		if isRaw {
			return defaultVal
		}
		return shellQuote(defaultVal)
	})

	return result
}
