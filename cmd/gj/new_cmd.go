package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mirakui/gj/internal/ui/prompt"
	"github.com/mirakui/gj/internal/worktree"
)

func newNewCmd() *cobra.Command {
	var noCD bool
	var randomSuffix bool

	cmd := &cobra.Command{
		Use:     "new [name]",
		Short:   "Create a worktree on a fresh feature branch",
		GroupID: GroupWorktree,
		Args:    cobra.MaximumNArgs(1),
		Long: `Create a worktree on a new branch named <prefix>/<YYYYMMDD>_<name>.

The prefix comes from config (repo setting, then [default], then "gj").
Characters outside [A-Za-z0-9_-] in the name are replaced with hyphens.

With no name, an interactive prompt asks for one. With --random-suffix
a short random name is generated instead, useful for scratch work.`,
		Example: `  gj new login-flow       # branch gj/20260825_login-flow
  gj new                  # prompt for a name
  gj new --random-suffix  # e.g. branch gj/20260825_3f8a91c2`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			rc, err := resolveRepo(ctx)
			if err != nil {
				return err
			}

			var name string
			switch {
			case len(args) == 1:
				name = args[0]
			case randomSuffix:
				name = worktree.RandomSlug()
			default:
				if !prompt.Interactive() {
					return fmt.Errorf("no name given\n\nPass a name, or use --random-suffix")
				}
				result, err := prompt.Text("Worktree name", "login-flow", nil)
				if err != nil {
					return err
				}
				if result.Cancelled {
					return fmt.Errorf("cancelled")
				}
				name = result.Value
			}

			slug := worktree.Slugify(name)
			if slug == "" {
				return &invalidArgError{arg: name, want: "a non-empty name"}
			}

			return createWorktree(ctx, worktree.CreateRequest{
				OriginRepo: rc.origin,
				RepoName:   rc.alias,
				BaseDir:    rc.cfg.BaseDir(rc.repo),
				Branch:     worktree.BranchName(rc.cfg.Prefix(rc.repo), time.Now(), slug),
				Slug:       slug,
				Hooks:      rc.cfg.MergedHooks(rc.repo),
			}, noCD)
		},
	}

	cmd.Flags().BoolVar(&noCD, "no-cd", false, "Don't print the worktree path to stdout")
	cmd.Flags().BoolVar(&randomSuffix, "random-suffix", false, "Generate a random name")

	return cmd
}
