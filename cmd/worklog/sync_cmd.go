package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/raphi011/worklog/internal/config"
	"github.com/raphi011/worklog/internal/engine"
	"github.com/raphi011/worklog/internal/hooks"
	"github.com/raphi011/worklog/internal/log"
	"github.com/raphi011/worklog/internal/output"
)

type syncOptions struct {
	dryRun bool
	noHook bool
	hook   string
	env    []string
}

func newSyncCmd() *cobra.Command {
	var opts syncOptions

	cmd := &cobra.Command{
		Use:     "sync",
		Short:   "Process the inbox",
		Aliases: []string{"s"},
		GroupID: GroupCore,
		Args:    cobra.NoArgs,
		Long: `Process today's inbox block and the TODO LIST.

Notes from the LOG subsection and every task change are appended to the
day log. The task store, the todo view and the digest are updated, and the
inbox is rewritten with the current tasks and an empty block for today.

Hooks with on = ["sync"] run afterwards.`,
		Example: `  worklog sync              # Process the inbox
  worklog sync --dry-run    # Show what would change without writing
  worklog sync --no-hook    # Skip post-sync hooks
  worklog sync --hook push  # Run only the 'push' hook afterwards`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSync(cmd.Context(), opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.dryRun, "dry-run", "d", false, "Show changes without writing any file")
	cmd.Flags().BoolVar(&opts.noHook, "no-hook", false, "Skip post-sync hooks")
	cmd.Flags().StringVar(&opts.hook, "hook", "", "Run only this hook after syncing")
	cmd.Flags().StringSliceVarP(&opts.env, "arg", "a", nil, "Set hook variable KEY=VALUE")
	cmd.MarkFlagsMutuallyExclusive("no-hook", "hook")
	cmd.RegisterFlagCompletionFunc("hook", completeHookNames)
	cmd.RegisterFlagCompletionFunc("arg", cobra.NoFileCompletions)

	return cmd
}

func runSync(ctx context.Context, opts syncOptions) error {
	cfg := config.FromContext(ctx)
	l := log.FromContext(ctx)
	out := output.FromContext(ctx)

	env, err := hooks.ParseEnv(opts.env)
	if err != nil {
		return err
	}
	matches, err := hooks.SelectHooks(cfg.Hooks, opts.hook, opts.noHook, hooks.CommandSync)
	if err != nil {
		return err
	}

	l.Debug("syncing", "root", cfg.Root, "dryRun", opts.dryRun)
	res, err := engine.Run(ctx, engine.Options{Config: cfg, Now: time.Now(), DryRun: opts.dryRun})
	if err != nil {
		return err
	}

	out.Print(renderSummary(res))

	if len(matches) > 0 {
		hctx := hooks.ContextFromLayout(res.Layout, res.Date, hooks.CommandSync, env)
		hctx.DryRun = opts.dryRun
		hooks.RunAllNonFatal(ctx, matches, hctx)
	}
	return nil
}
