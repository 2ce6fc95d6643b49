package main

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/raphi011/worklog/internal/config"
	"github.com/raphi011/worklog/internal/journal"
	"github.com/raphi011/worklog/internal/log"
	"github.com/raphi011/worklog/internal/model"
	"github.com/raphi011/worklog/internal/output"
	"github.com/raphi011/worklog/internal/views"
	"github.com/raphi011/worklog/internal/workspace"
)

func newDigestCmd() *cobra.Command {
	var (
		days            int
		copyToClipboard bool
	)

	cmd := &cobra.Command{
		Use:     "digest",
		Short:   "Show recent activity",
		GroupID: GroupCore,
		Args:    cobra.NoArgs,
		Long: `Show notes and task changes from the day logs, newest first.

Renders the same view as the digest file, read fresh from the day logs.`,
		Example: `  worklog digest            # Today and yesterday
  worklog digest -n 7       # The last week
  worklog digest --copy     # Also copy to the clipboard`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.FromContext(ctx)
			out := output.FromContext(ctx)
			l := log.FromContext(ctx)

			if days < 1 {
				return fmt.Errorf("--days must be at least 1")
			}

			layout := workspace.New(cfg)
			now := time.Now()
			jr := journal.New(layout.Logs, now.Location())
			today := model.DateOf(now)

			var list []views.Day
			for i := range days {
				d := today.AddDays(-i)
				entries, err := jr.ReadDay(d)
				if err != nil {
					return fmt.Errorf("read day log %s: %w", d, err)
				}
				list = append(list, views.Day{Date: d, Entries: entries})
			}

			text := views.Digest(list...)
			out.Print(text)

			if copyToClipboard {
				if err := clipboard.WriteAll(text); err != nil {
					l.Printf("Warning: failed to copy to clipboard: %v\n", err)
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&days, "days", "n", 2, "Number of days to show")
	cmd.Flags().BoolVarP(&copyToClipboard, "copy", "c", false, "Copy the digest to the clipboard")

	return cmd
}
