package main

import (
	"context"
	"io"
	"testing"

	"github.com/spf13/cobra"

	"github.com/mirakui/gj/internal/log"
)

// runRootWith executes the real root command with a throwaway
// subcommand attached and returns the logger that subcommand saw in
// its context.
func runRootWith(t *testing.T, args ...string) *log.Logger {
	t.Helper()

	var got *log.Logger
	diag := &cobra.Command{
		Use:    "diag",
		Hidden: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			got = log.FromContext(cmd.Context())
			return nil
		},
	}
	rootCmd.AddCommand(diag)
	defer rootCmd.RemoveCommand(diag)
	defer func() {
		verbose = false
		quiet = false
		// pflag keeps Changed across Execute calls, which would trip
		// the verbose/quiet mutual exclusion on the next run.
		rootCmd.PersistentFlags().Lookup("verbose").Changed = false
		rootCmd.PersistentFlags().Lookup("quiet").Changed = false
		rootCmd.SetArgs(nil)
	}()

	rootCmd.SetContext(context.Background())
	rootCmd.SetArgs(append(args, "diag"))
	rootCmd.SetOut(io.Discard)
	rootCmd.SetErr(io.Discard)

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("root command failed: %v", err)
	}
	if got == nil {
		t.Fatal("subcommand did not run")
	}
	return got
}

func TestGlobalFlagsReachContextLogger(t *testing.T) {
	if l := runRootWith(t, "--verbose"); !l.Verbose() {
		t.Error("--verbose did not enable verbose logging")
	}
	if l := runRootWith(t, "--quiet"); !l.Quiet() {
		t.Error("--quiet did not enable quiet logging")
	}
	if l := runRootWith(t); l.Verbose() || l.Quiet() {
		t.Error("logger should default to non-verbose, non-quiet")
	}
}
