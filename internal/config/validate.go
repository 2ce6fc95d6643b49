package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Valid enum values for configuration fields.
var (
	ValidStoreBackends  = []string{"yaml", "json", "sqlite"}
	ValidSortModes      = []string{"priority", "due", "created"}
	ValidPriorityOrders = []string{"asc", "desc"}
	ValidMatchModes     = []string{"exact", "substring", "fuzzy"}
	ValidThemes         = []string{"default", "mono"}
	ValidHookTriggers   = []string{"sync", "init", "all"}
)

// Validate checks all enum fields and hook definitions.
func (c *Config) Validate() error {
	var errs []error
	errs = append(errs,
		validateEnum(c.Store.Backend, "store.backend", ValidStoreBackends),
		validateEnum(c.View.Sort, "view.sort", ValidSortModes),
		validateEnum(c.View.PriorityOrder, "view.priority_order", ValidPriorityOrders),
		validateEnum(c.Match.Done, "match.done", ValidMatchModes),
		validateEnum(c.Theme, "theme", ValidThemes),
		validateHooks(c.Hooks, ""),
	)
	return errors.Join(errs...)
}

// validateHooks checks that hooks have a command and known triggers.
func validateHooks(hc HooksConfig, contextInfo string) error {
	names := make([]string, 0, len(hc.Hooks))
	for name := range hc.Hooks {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		hook := hc.Hooks[name]
		if !hook.IsEnabled() {
			continue
		}
		if strings.TrimSpace(hook.Command) == "" {
			return withContext(fmt.Errorf("hook %q has no command", name), contextInfo)
		}
		for _, on := range hook.On {
			if err := validateEnum(on, "hooks."+name+".on", ValidHookTriggers); err != nil {
				return withContext(err, contextInfo)
			}
		}
	}
	return nil
}

func withContext(err error, contextInfo string) error {
	if contextInfo == "" {
		return err
	}
	return fmt.Errorf("%w in %s", err, contextInfo)
}

// validateEnum checks that value (if non-empty) is one of the allowed values.
// Returns a formatted error mentioning the field name and allowed options.
func validateEnum(value, field string, allowed []string) error {
	if value == "" {
		return nil
	}
	if !slices.Contains(allowed, value) {
		return fmt.Errorf("invalid %s %q: must be %s", field, value, formatOptions(allowed))
	}
	return nil
}

// formatOptions formats a list of allowed values for error messages.
// E.g., ["a", "b", "c"] -> `"a", "b", or "c"`
func formatOptions(opts []string) string {
	quoted := make([]string, len(opts))
	for i, o := range opts {
		quoted[i] = fmt.Sprintf("%q", o)
	}
	if len(quoted) <= 2 {
		return strings.Join(quoted, " or ")
	}
	return strings.Join(quoted[:len(quoted)-1], ", ") + ", or " + quoted[len(quoted)-1]
}
