package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mirakui/gj/internal/git"
	"github.com/mirakui/gj/internal/log"
	"github.com/mirakui/gj/internal/output"
)

var (
	// Global flags
	verbose bool
	quiet   bool
)

// Command group IDs for organizing help output
const (
	GroupWorktree = "worktree"
	GroupNav      = "navigation"
	GroupSetup    = "setup"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "gj",
	Short: "Git worktree lifecycle manager",
	Long: `gj manages the full lifecycle of git worktrees: create one per
task (a PR review, a new feature, an existing branch), work in it, and
tear it down when done.

Every command that produces a target directory prints exactly that
path to stdout, so a shell wrapper can cd into it:

  gj() { local dir; dir=$(command gj "$@") && [ -n "$dir" ] && cd "$dir"; }

Run 'gj shell-init <shell>' to generate the wrapper for your shell.`,
	SilenceUsage:               true,
	SilenceErrors:              true,
	SuggestionsMinimumDistance: 2,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Flags are parsed by now; the logger has to be built here,
		// not in Execute, or --verbose and --quiet never take effect.
		cmd.SetContext(log.WithLogger(cmd.Context(), log.New(os.Stderr, verbose, quiet)))

		// Skip git check for completion and help commands
		if cmd.Name() == "completion" || cmd.Name() == "__complete" || cmd.Name() == "help" {
			return nil
		}
		return git.CheckGit()
	},
	// Run is not set - shows help when no subcommand provided
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	// Create context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// The target path contract owns stdout; diagnostics go to stderr
	// via the logger installed once flags are parsed.
	ctx = output.WithPrinter(ctx, os.Stdout)

	rootCmd.SetContext(ctx)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show external commands being executed")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all log output")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.AddGroup(
		&cobra.Group{ID: GroupWorktree, Title: "Worktree Commands:"},
		&cobra.Group{ID: GroupNav, Title: "Navigation Commands:"},
		&cobra.Group{ID: GroupSetup, Title: "Setup Commands:"},
	)

	rootCmd.AddCommand(
		newPrCmd(),
		newNewCmd(),
		newCheckoutCmd(),
		newExitCmd(),
		newListCmd(),
		newCdCmd(),
		newInitCmd(),
		newShellInitCmd(),
	)
}
