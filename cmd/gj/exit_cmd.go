package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mirakui/gj/internal/git"
	"github.com/mirakui/gj/internal/log"
	"github.com/mirakui/gj/internal/output"
	"github.com/mirakui/gj/internal/ui/prompt"
	"github.com/mirakui/gj/internal/worktree"
)

func newExitCmd() *cobra.Command {
	var force bool
	var merge bool
	var noCD bool

	cmd := &cobra.Command{
		Use:     "exit",
		Short:   "Remove the current worktree and return to the origin repo",
		GroupID: GroupWorktree,
		Args:    cobra.NoArgs,
		Long: `Remove the worktree the current directory is in.

The worktree must be clean unless --force is given. With --merge the
branch is first merged into the origin repository's default branch; a
merge conflict aborts the merge and leaves the worktree untouched.

On success the origin repository path is printed to stdout so the
shell wrapper can cd out of the removed directory.`,
		Example: `  gj exit           # remove a clean worktree
  gj exit --merge   # merge into the default branch, then remove
  gj exit --force   # discard uncommitted changes and remove`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)

			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("get working directory: %w", err)
			}

			// --force discards uncommitted work; when run from a
			// terminal, ask before doing so.
			if force && prompt.Interactive() {
				if root, rerr := git.RepoRoot(ctx, cwd); rerr == nil {
					if dirty, derr := git.IsDirty(ctx, root); derr == nil && dirty {
						res, err := prompt.Confirm("Discard uncommitted changes?")
						if err != nil {
							return err
						}
						if !res.Confirmed {
							return fmt.Errorf("aborted")
						}
					}
				}
			}

			engine, err := newEngine(ctx)
			if err != nil {
				return err
			}

			result, err := engine.Exit(ctx, worktree.ExitRequest{
				Dir:   cwd,
				Force: force,
				Merge: merge,
			})
			if err != nil {
				return err
			}

			l.Printf("Removed worktree for branch %s\n", result.Branch)
			if result.BranchDeleteErr != nil {
				l.Warnf("branch %s was not deleted: %v", result.Branch, result.BranchDeleteErr)
			}

			if !noCD {
				output.FromContext(ctx).Println(result.OriginRepo)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Remove even with uncommitted changes")
	cmd.Flags().BoolVarP(&merge, "merge", "m", false, "Merge the branch into the default branch first")
	cmd.Flags().BoolVar(&noCD, "no-cd", false, "Don't print the origin repo path to stdout")

	return cmd
}
