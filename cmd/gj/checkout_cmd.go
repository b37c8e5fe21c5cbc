package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/mirakui/gj/internal/worktree"
)

func newCheckoutCmd() *cobra.Command {
	var noCD bool

	cmd := &cobra.Command{
		Use:     "checkout <branch>",
		Aliases: []string{"co"},
		Short:   "Create a worktree for an existing branch",
		GroupID: GroupWorktree,
		Args:    cobra.ExactArgs(1),
		Long: `Create a worktree checked out at an existing branch.

If the branch exists locally it is used as-is; otherwise it is fetched
from origin and a tracking local branch is created. A leading origin/
on the branch name is stripped.`,
		Example: `  gj checkout feature/login
  gj checkout origin/hotfix-42  # same as gj checkout hotfix-42`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			branch := strings.TrimPrefix(args[0], "origin/")
			if branch == "" {
				return &invalidArgError{arg: args[0], want: "a branch name"}
			}

			rc, err := resolveRepo(ctx)
			if err != nil {
				return err
			}

			return createWorktree(ctx, worktree.CreateRequest{
				OriginRepo: rc.origin,
				RepoName:   rc.alias,
				BaseDir:    rc.cfg.BaseDir(rc.repo),
				Branch:     branch,
				Slug:       worktree.Slugify(branch),
				TrackRef:   "origin/" + branch,
				Hooks:      rc.cfg.MergedHooks(rc.repo),
			}, noCD)
		},
	}

	cmd.Flags().BoolVar(&noCD, "no-cd", false, "Don't print the worktree path to stdout")

	return cmd
}
