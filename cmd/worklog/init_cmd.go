package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/raphi011/worklog/internal/config"
	"github.com/raphi011/worklog/internal/engine"
	"github.com/raphi011/worklog/internal/hooks"
	"github.com/raphi011/worklog/internal/model"
	"github.com/raphi011/worklog/internal/output"
	"github.com/raphi011/worklog/internal/workspace"
)

func newInitCmd() *cobra.Command {
	var (
		noHook bool
		env    []string
	)

	cmd := &cobra.Command{
		Use:     "init",
		Short:   "Create the worklog root",
		GroupID: GroupConfig,
		Args:    cobra.NoArgs,
		Long: `Create the worklog root with an empty task store and an inbox template.

Existing files are left untouched, so running init again is safe.
Hooks with on = ["init"] run afterwards.`,
		Example: `  worklog init                        # Create ~/worklog
  WORKLOG_ROOT=~/notes/work worklog init  # Create a different root`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.FromContext(ctx)
			out := output.FromContext(ctx)

			hookEnv, err := hooks.ParseEnv(env)
			if err != nil {
				return err
			}
			matches, err := hooks.SelectHooks(cfg.Hooks, "", noHook, hooks.CommandInit)
			if err != nil {
				return err
			}

			now := time.Now()
			created, err := engine.Init(ctx, cfg, now)
			if err != nil {
				return err
			}

			layout := workspace.New(cfg)
			if len(created) == 0 {
				out.Printf("Already initialized: %s\n", layout.Root)
				return nil
			}
			out.Printf("Initialized %s\n", layout.Root)
			for _, p := range created {
				out.Printf("  created %s\n", layout.Rel(p))
			}

			if len(matches) > 0 {
				hctx := hooks.ContextFromLayout(layout, model.DateOf(now), hooks.CommandInit, hookEnv)
				hooks.RunAllNonFatal(ctx, matches, hctx)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&noHook, "no-hook", false, "Skip init hooks")
	cmd.Flags().StringSliceVarP(&env, "arg", "a", nil, "Set hook variable KEY=VALUE")
	cmd.RegisterFlagCompletionFunc("arg", cobra.NoFileCompletions)

	return cmd
}
