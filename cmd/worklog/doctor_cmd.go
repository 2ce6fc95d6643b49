package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/raphi011/worklog/internal/config"
	"github.com/raphi011/worklog/internal/doctor"
	"github.com/raphi011/worklog/internal/workspace"
)

func newDoctorCmd() *cobra.Command {
	var fix bool

	cmd := &cobra.Command{
		Use:     "doctor",
		Short:   "Diagnose and repair issues",
		GroupID: GroupUtility,
		Args:    cobra.NoArgs,
		Long: `Diagnose and repair workspace issues.

Checks:
- Root, inbox, store, log directory and views exist
- Task store loads and has no duplicate ids
- Inbox has a TODO LIST and only references known ids
- Priority and due tokens in the inbox parse
- No blocks from earlier days are left unprocessed
- The inbox was synced recently`,
		Example: `  worklog doctor          # Check for issues
  worklog doctor --fix    # Create missing files and drop duplicate ids`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.FromContext(ctx)
			return doctor.Run(ctx, workspace.New(cfg), time.Now(), fix)
		},
	}

	cmd.Flags().BoolVar(&fix, "fix", false, "Auto-fix recoverable issues")

	return cmd
}
