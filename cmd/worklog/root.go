package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/raphi011/worklog/internal/config"
	"github.com/raphi011/worklog/internal/log"
	"github.com/raphi011/worklog/internal/output"
	"github.com/raphi011/worklog/internal/ui/styles"
)

var (
	// Global flags
	verbose bool
	quiet   bool

	// configErr is reported by commands that need a valid config
	configErr error
)

// Command group IDs for organizing help output
const (
	GroupCore    = "core"
	GroupUtility = "utility"
	GroupConfig  = "config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "worklog",
		Short: "Sync a markdown inbox with a task store and work log",
		Long: `worklog reconciles a hand-edited markdown inbox with a structured task store.

Each run records the day's notes and task changes in an append-only day log,
regenerates the todo list and the recent activity digest, and hands the inbox
back with a fresh TODO LIST and an empty block for today.

Running worklog without a subcommand performs a sync.`,
		SilenceUsage:               true,
		SilenceErrors:              true,
		SuggestionsMinimumDistance: 2, // Enable typo suggestions
		Args:                       cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Create logger (stderr for diagnostics) now that flags are parsed
			logger := log.New(os.Stderr, verbose, quiet)
			cmd.SetContext(log.WithLogger(cmd.Context(), logger))

			// Config problems must not block fixing the config
			switch cmd.Name() {
			case "completion", "__complete", "help", "path":
				return nil
			}
			if cmd.Parent() != nil && cmd.Parent().Name() == "config" {
				return nil
			}
			return configErr
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSync(cmd.Context(), syncOptions{})
		},
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	cfg, err := config.Resolve()
	if err != nil {
		configErr = fmt.Errorf("invalid config: %w", err)
		def := config.Default()
		cfg = &def
	}
	styles.Init(cfg.Theme)

	// Create context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	ctx = config.WithConfig(ctx, cfg)

	// Add output printer (stdout for primary data)
	ctx = output.WithStyledPrinter(ctx, os.Stdout, os.Environ(), cfg.Theme == "mono")

	// Store context for commands to use
	rootCmd.SetContext(ctx)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Run 'worklog -h' for help")
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show debug output and hook commands")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all log output")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	// Version flag
	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	registerCommands(rootCmd)
}

// registerCommands adds the command groups and subcommands to root.
func registerCommands(root *cobra.Command) {
	root.AddGroup(
		&cobra.Group{ID: GroupCore, Title: "Core Commands:"},
		&cobra.Group{ID: GroupUtility, Title: "Utility Commands:"},
		&cobra.Group{ID: GroupConfig, Title: "Configuration Commands:"},
	)

	// Core commands
	root.AddCommand(newSyncCmd())
	root.AddCommand(newListCmd())
	root.AddCommand(newDigestCmd())

	// Utility commands
	root.AddCommand(newDoctorCmd())
	root.AddCommand(newHookCmd())

	// Config commands
	root.AddCommand(newInitCmd())
	root.AddCommand(newConfigCmd())
	root.AddCommand(newCompletionCmd())
}
