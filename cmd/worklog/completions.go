package main

import (
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/raphi011/worklog/internal/config"
)

// completeHookNames completes configured hook names.
func completeHookNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	cfg := config.FromContext(cmd.Context())

	var names []string
	for name, hook := range cfg.Hooks.Hooks {
		if strings.HasPrefix(name, toComplete) && !slices.Contains(args, name) {
			desc := name
			if hook.Description != "" {
				desc += "\t" + hook.Description
			}
			names = append(names, desc)
		}
	}
	slices.Sort(names)
	return names, cobra.ShellCompDirectiveNoFileComp
}
