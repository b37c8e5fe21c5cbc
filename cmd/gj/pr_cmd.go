package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mirakui/gj/internal/github"
	"github.com/mirakui/gj/internal/worktree"
)

func newPrCmd() *cobra.Command {
	var noCD bool

	cmd := &cobra.Command{
		Use:     "pr <number>",
		Short:   "Create a worktree for reviewing a pull request",
		GroupID: GroupWorktree,
		Args:    cobra.ExactArgs(1),
		Long: `Create a worktree checked out at a pull request's head branch.

The PR number is resolved to its branch via the gh CLI, the branch is
fetched from origin, and a worktree named pr-<number> is created with
the local branch tracking the remote one.`,
		Example: `  gj pr 123          # review PR #123 in a fresh worktree
  gj pr 123 --no-cd  # create it but stay in the current directory`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			number, err := strconv.Atoi(args[0])
			if err != nil || number <= 0 {
				return &invalidArgError{arg: args[0], want: "a positive PR number"}
			}

			rc, err := resolveRepo(ctx)
			if err != nil {
				return err
			}

			if err := github.CheckGH(); err != nil {
				return err
			}

			branch, err := github.PRBranch(ctx, rc.origin, number)
			if err != nil {
				return err
			}

			return createWorktree(ctx, worktree.CreateRequest{
				OriginRepo:  rc.origin,
				RepoName:    rc.alias,
				BaseDir:     rc.cfg.BaseDir(rc.repo),
				Branch:      branch,
				Slug:        worktree.PRSlug(number),
				TrackRef:    "origin/" + branch,
				SetUpstream: true,
				Hooks:       rc.cfg.MergedHooks(rc.repo),
			}, noCD)
		},
	}

	cmd.Flags().BoolVar(&noCD, "no-cd", false, "Don't print the worktree path to stdout")

	return cmd
}
