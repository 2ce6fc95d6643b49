package main

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/raphi011/worklog/internal/config"
	"github.com/raphi011/worklog/internal/hooks"
	"github.com/raphi011/worklog/internal/log"
	"github.com/raphi011/worklog/internal/model"
	"github.com/raphi011/worklog/internal/workspace"
)

func newHookCmd() *cobra.Command {
	var (
		env    []string
		dryRun bool
	)

	cmd := &cobra.Command{
		Use:               "hook <name>...",
		Short:             "Run configured hook",
		Aliases:           []string{"h"},
		GroupID:           GroupUtility,
		Args:              cobra.MinimumNArgs(1),
		ValidArgsFunction: completeHookNames,
		Long: `Run one or more configured hooks in the worklog root.

Hooks are defined in config.toml and can use placeholders such as
{root}, {inbox}, {todo}, {digest} and {date}.`,
		Example: `  worklog hook commit                 # Run 'commit' hook
  worklog hook commit push            # Run multiple hooks
  worklog hook note -a text=hello     # Pass a variable
  echo hi | worklog hook note -a text=-  # Read a variable from stdin
  worklog hook commit -d              # Dry-run: print command without executing`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.FromContext(ctx)
			l := log.FromContext(ctx)

			hookEnv, err := hooks.ParseEnv(env)
			if err != nil {
				return err
			}

			// Validate all hooks exist before running any
			var matches []hooks.HookMatch
			for _, name := range args {
				m, err := hooks.SelectHooks(cfg.Hooks, name, false, hooks.CommandManual)
				if err != nil {
					return fmt.Errorf("%w (available: %s)", err, availableHooks(cfg.Hooks))
				}
				matches = append(matches, m...)
			}

			l.Debug("running hooks", "hooks", args, "dryRun", dryRun)

			hctx := hooks.ContextFromLayout(workspace.New(cfg), model.DateOf(time.Now()), hooks.CommandManual, hookEnv)
			hctx.DryRun = dryRun
			return hooks.RunAll(ctx, matches, hctx)
		},
	}

	cmd.Flags().StringSliceVarP(&env, "arg", "a", nil, "Set hook variable KEY=VALUE")
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "d", false, "Print command without executing")
	cmd.RegisterFlagCompletionFunc("arg", cobra.NoFileCompletions)

	return cmd
}

func availableHooks(hc config.HooksConfig) string {
	if len(hc.Hooks) == 0 {
		return "none configured"
	}
	names := slices.Sorted(maps.Keys(hc.Hooks))
	return strings.Join(names, ", ")
}
