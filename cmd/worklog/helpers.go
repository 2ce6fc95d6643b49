package main

import (
	"fmt"
	"slices"
	"strings"
)

// validateFlag checks an enum flag value against its allowed values.
func validateFlag(value, flag string, allowed []string) error {
	if slices.Contains(allowed, value) {
		return nil
	}
	return fmt.Errorf("invalid --%s %q (valid: %s)", flag, value, strings.Join(allowed, ", "))
}
