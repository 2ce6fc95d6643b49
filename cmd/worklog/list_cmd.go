package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/raphi011/worklog/internal/config"
	"github.com/raphi011/worklog/internal/model"
	"github.com/raphi011/worklog/internal/output"
	"github.com/raphi011/worklog/internal/store"
	"github.com/raphi011/worklog/internal/ui/static"
	"github.com/raphi011/worklog/internal/views"
	"github.com/raphi011/worklog/internal/workspace"
)

func newListCmd() *cobra.Command {
	var (
		all        bool
		tags       []string
		sortBy     string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List tasks",
		Aliases: []string{"ls"},
		GroupID: GroupCore,
		Args:    cobra.NoArgs,
		Long: `List tasks from the task store.

Shows open tasks by default, sorted like the todo view.
Reads the store only; run 'worklog sync' first to apply pending inbox edits.`,
		Example: `  worklog list               # Open tasks
  worklog list --all         # Include done and canceled tasks
  worklog list -t auth       # Only tasks tagged @auth
  worklog list -s due        # Sort by due date
  worklog list --json        # Output as JSON`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.FromContext(ctx)
			out := output.FromContext(ctx)

			if sortBy != "" {
				if err := validateFlag(sortBy, "sort", views.SortKeys); err != nil {
					return err
				}
			} else {
				sortBy = cfg.View.Sort
			}

			l := workspace.New(cfg)
			backend, err := store.Open(l.StoreBackend, l.Store)
			if err != nil {
				return err
			}
			s, err := backend.Load(ctx)
			if err != nil {
				return fmt.Errorf("load task store: %w", err)
			}

			var tasks []model.Task
			for _, t := range s.All() {
				if !all && t.Status != model.StatusOpen {
					continue
				}
				if !hasAllTags(t, tags) {
					continue
				}
				tasks = append(tasks, t)
			}
			tasks = views.Sort(tasks, views.Options{
				Sort:          views.SortKey(sortBy),
				PriorityOrder: views.Order(cfg.View.PriorityOrder),
			})

			if jsonOutput {
				if tasks == nil {
					tasks = []model.Task{}
				}
				enc := json.NewEncoder(out.Writer())
				enc.SetIndent("", "  ")
				return enc.Encode(tasks)
			}

			if len(tasks) == 0 {
				out.Println("No tasks")
				return nil
			}

			today := model.DateOf(time.Now())
			rows := make([][]string, 0, len(tasks))
			for _, t := range tasks {
				rows = append(rows, static.TaskTableRow(t, today))
			}
			out.Print(static.RenderTable(static.TaskTableHeaders, rows))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "A", false, "Include done and canceled tasks")
	cmd.Flags().StringSliceVarP(&tags, "tag", "t", nil, "Only tasks with this tag (repeatable)")
	cmd.Flags().StringVarP(&sortBy, "sort", "s", "", "Sort by: priority, due, created")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.RegisterFlagCompletionFunc("sort", cobra.FixedCompletions(views.SortKeys, cobra.ShellCompDirectiveNoFileComp))
	cmd.RegisterFlagCompletionFunc("tag", cobra.NoFileCompletions)

	return cmd
}

// hasAllTags reports whether t carries every tag, ignoring a leading "@".
func hasAllTags(t model.Task, tags []string) bool {
	for _, tag := range model.NormalizeTags(tags) {
		if !t.HasTag(strings.TrimPrefix(tag, "@")) {
			return false
		}
	}
	return true
}
