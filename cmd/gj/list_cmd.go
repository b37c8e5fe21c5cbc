package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/mirakui/gj/internal/log"
	"github.com/mirakui/gj/internal/output"
	"github.com/mirakui/gj/internal/state"
	"github.com/mirakui/gj/internal/worktree"
)

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List all managed worktrees",
		GroupID: GroupNav,
		Args:    cobra.NoArgs,
		Long: `List every worktree gj is tracking, newest first.

Worktrees whose directory no longer exists on disk are marked
(missing); 'gj exit' run inside them would have cleaned them up, a
manual rm did not.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)

			store, err := state.FromContext(ctx)
			if err != nil {
				return err
			}

			worktrees, err := store.ListAll(func(path string, err error) {
				l.Warnf("skipping unreadable state file %s: %v", path, err)
			})
			if err != nil {
				return err
			}

			if len(worktrees) == 0 {
				l.Println("No worktrees. Create one with 'gj new' or 'gj pr'.")
				return nil
			}

			w := tabwriter.NewWriter(output.FromContext(ctx).Writer(), 0, 0, 2, ' ', 0)
			for _, wt := range worktrees {
				missing := ""
				if _, err := os.Stat(wt.WorktreePath); err != nil {
					missing = "  (missing)"
				}
				fmt.Fprintf(w, "%s\t%s\t%s%s\n",
					worktree.DisplayName(wt.WorktreePath),
					wt.Branch,
					formatAge(time.Since(wt.CreatedAt)),
					missing)
			}
			return w.Flush()
		},
	}

	return cmd
}

// formatAge renders a duration in the largest sensible unit.
func formatAge(d time.Duration) string {
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	}
}
