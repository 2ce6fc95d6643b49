package main

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/spf13/cobra"

	"github.com/raphi011/worklog/internal/config"
	"github.com/raphi011/worklog/internal/log"
	"github.com/raphi011/worklog/internal/output"
	"github.com/raphi011/worklog/internal/storage"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Manage configuration",
		Aliases: []string{"cfg"},
		GroupID: GroupConfig,
		Long: `Manage worklog configuration.

Global config: ~/.config/worklog/config.toml (or $WORKLOG_CONFIG)
Local config:  .worklog.toml (in the worklog root)`,
		Example: `  worklog config init          # Create default global config
  worklog config init --local  # Create local root config
  worklog config show          # Show effective config
  worklog config path          # Print the global config path`,
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd())
	cmd.AddCommand(newConfigPathCmd())

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var (
		force  bool
		stdout bool
		local  bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create default config file",
		Args:  cobra.NoArgs,
		Long: `Create default config file.

Without flags, creates the global config.
With --local, creates .worklog.toml in the worklog root.`,
		Example: `  worklog config init           # Create global config
  worklog config init --local   # Create local root config
  worklog config init -f        # Overwrite existing config
  worklog config init -s        # Print config to stdout`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			if local {
				return initLocalConfig(cmd, force, stdout)
			}

			if stdout {
				out.Print(config.DefaultConfig())
				return nil
			}

			path, err := config.Init(force)
			if err != nil {
				return err
			}
			out.Printf("Created config file: %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config")
	cmd.Flags().BoolVarP(&stdout, "stdout", "s", false, "Print config to stdout")
	cmd.Flags().BoolVar(&local, "local", false, "Create .worklog.toml in the root instead of global config")

	return cmd
}

func initLocalConfig(cmd *cobra.Command, force, stdout bool) error {
	ctx := cmd.Context()
	cfg := config.FromContext(ctx)
	out := output.FromContext(ctx)

	content := config.DefaultLocalConfig()
	if stdout {
		out.Print(content)
		return nil
	}

	root, err := config.ExpandPath(cfg.Root)
	if err != nil {
		return err
	}
	configPath := filepath.Join(root, config.LocalConfigFileName)

	if !force {
		if _, err := os.Stat(configPath); err == nil {
			return fmt.Errorf("local config already exists: %s (use -f to overwrite)", configPath)
		}
	}

	if err := storage.WriteFile(configPath, []byte(content), 0o644); err != nil {
		return err
	}

	out.Printf("Created local config: %s\n", configPath)
	return nil
}

func newConfigShowCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show effective configuration",
		Args:  cobra.NoArgs,
		Long: `Show effective configuration.

Values overridden by the root's .worklog.toml are annotated with (local).`,
		Example: `  worklog config show         # Show config
  worklog config show --json  # Output as JSON`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.FromContext(ctx)
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)

			if jsonOutput {
				enc := json.NewEncoder(out.Writer())
				enc.SetIndent("", "  ")
				return enc.Encode(cfg)
			}

			globalPath, err := config.Path()
			if err != nil {
				return err
			}

			root, err := config.ExpandPath(cfg.Root)
			if err != nil {
				return err
			}
			local, err := config.LoadLocal(root)
			if err != nil {
				l.Printf("Warning: failed to load local config: %v\n", err)
			}

			out.Printf("Global config: %s\n", globalPath)
			if local != nil {
				out.Printf("Local config:  %s\n", filepath.Join(root, config.LocalConfigFileName))
			} else {
				out.Printf("Local config:  (none)\n")
			}
			out.Println()

			source := func(isLocal bool) string {
				if isLocal {
					return " (local)"
				}
				return ""
			}

			out.Printf("root: %s\n", cfg.Root)
			out.Printf("paths.inbox: %s\n", cfg.Paths.Inbox)
			out.Printf("paths.store: %s\n", cfg.Paths.Store)
			out.Printf("paths.todo_view: %s\n", cfg.Paths.TodoView)
			out.Printf("paths.digest: %s\n", cfg.Paths.Digest)
			out.Printf("paths.logs: %s\n", cfg.Paths.Logs)
			out.Printf("store.backend: %s\n", cfg.Store.Backend)
			out.Printf("view.sort: %s%s\n", cfg.View.Sort, source(local != nil && local.View.Sort != ""))
			out.Printf("view.priority_order: %s%s\n", cfg.View.PriorityOrder, source(local != nil && local.View.PriorityOrder != ""))
			out.Printf("match.done: %s%s\n", cfg.Match.Done, source(local != nil && local.Match.Done != ""))
			out.Printf("theme: %s%s\n", cfg.Theme, source(local != nil && local.Theme != ""))

			if len(cfg.Hooks.Hooks) == 0 {
				out.Printf("hooks: none\n")
				return nil
			}
			out.Printf("hooks:\n")
			for _, name := range slices.Sorted(maps.Keys(cfg.Hooks.Hooks)) {
				hook := cfg.Hooks.Hooks[name]
				inLocal := false
				if local != nil {
					_, inLocal = local.Hooks.Hooks[name]
				}
				state := ""
				if !hook.IsEnabled() {
					state = " [disabled]"
				}
				out.Printf("  %s: %s%s%s\n", name, hook.Command, state, source(inLocal))
				if len(hook.On) > 0 {
					out.Printf("    on: %v\n", hook.On)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the global config path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.Path()
			if err != nil {
				return err
			}
			output.FromContext(cmd.Context()).Println(path)
			return nil
		},
	}
}
