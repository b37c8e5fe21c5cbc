package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"

	"github.com/mirakui/gj/internal/log"
	"github.com/mirakui/gj/internal/output"
	"github.com/mirakui/gj/internal/state"
	"github.com/mirakui/gj/internal/ui/prompt"
	"github.com/mirakui/gj/internal/worktree"
)

func newCdCmd() *cobra.Command {
	var copyToClipboard bool

	cmd := &cobra.Command{
		Use:     "cd [name]",
		Short:   "Print a worktree path for shell navigation",
		GroupID: GroupNav,
		Args:    cobra.MaximumNArgs(1),
		Long: `Print the path of a managed worktree to stdout.

The name matches a worktree's display name, its last path segment, or
its branch. The special name @ resolves to the origin repository of
the worktree the current directory is in. With no argument an
interactive picker is shown.

Use with the shell wrapper (gj shell-init) or command substitution:
cd $(gj cd my-feature).`,
		Example: `  gj cd                 # pick interactively
  gj cd login-flow      # by worktree name
  gj cd @               # the current worktree's origin repo
  gj cd --copy pr-123   # also copy the path to the clipboard`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)

			var targetPath string
			var err error

			if len(args) == 1 && args[0] == "@" {
				targetPath, err = resolveOrigin(ctx)
			} else if len(args) == 1 {
				targetPath, err = matchWorktree(ctx, args[0])
			} else {
				targetPath, err = pickWorktree(ctx)
			}
			if err != nil {
				return err
			}

			if _, err := os.Stat(targetPath); err != nil {
				return fmt.Errorf("worktree directory is missing: %s\n\nRemove its record with 'gj exit' from the origin repo, or recreate it", targetPath)
			}

			if copyToClipboard {
				if err := clipboard.WriteAll(targetPath); err != nil {
					l.Warnf("failed to copy to clipboard: %v", err)
				}
			}

			output.FromContext(ctx).Println(targetPath)
			return nil
		},
	}

	cmd.Flags().BoolVar(&copyToClipboard, "copy", false, "Copy the path to the clipboard")

	return cmd
}

// resolveOrigin returns the origin repository of the worktree the
// current directory is in.
func resolveOrigin(ctx context.Context) (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	engine, err := newEngine(ctx)
	if err != nil {
		return "", err
	}
	record, err := engine.Resolve(ctx, cwd)
	if err != nil {
		return "", err
	}
	return record.OriginRepo, nil
}

// matchWorktree finds the single worktree whose display name, last
// path segment or branch equals name. No match produces fuzzy
// suggestions; several matches list the candidates.
func matchWorktree(ctx context.Context, name string) (string, error) {
	worktrees, err := listWorktrees(ctx)
	if err != nil {
		return "", err
	}

	var matches []state.Worktree
	for _, wt := range worktrees {
		display := worktree.DisplayName(wt.WorktreePath)
		if display == name || filepath.Base(wt.WorktreePath) == name || wt.Branch == name {
			matches = append(matches, wt)
		}
	}

	switch len(matches) {
	case 1:
		return matches[0].WorktreePath, nil
	case 0:
		names := make([]string, len(worktrees))
		for i, wt := range worktrees {
			names[i] = worktree.DisplayName(wt.WorktreePath)
		}
		msg := fmt.Sprintf("no worktree named %q", name)
		if ranked := fuzzy.Find(name, names); len(ranked) > 0 {
			suggestions := make([]string, 0, min(3, len(ranked)))
			for _, m := range ranked[:min(3, len(ranked))] {
				suggestions = append(suggestions, m.Str)
			}
			msg += "\n\nDid you mean: " + strings.Join(suggestions, ", ")
		}
		return "", fmt.Errorf("%s", msg)
	default:
		names := make([]string, len(matches))
		for i, wt := range matches {
			names[i] = worktree.DisplayName(wt.WorktreePath)
		}
		return "", fmt.Errorf("%q matches multiple worktrees: %s\n\nUse the full name", name, strings.Join(names, ", "))
	}
}

// pickWorktree shows an interactive picker over all managed worktrees.
func pickWorktree(ctx context.Context) (string, error) {
	if !prompt.Interactive() {
		return "", fmt.Errorf("no name given and not a terminal\n\nPass a worktree name")
	}

	worktrees, err := listWorktrees(ctx)
	if err != nil {
		return "", err
	}
	if len(worktrees) == 0 {
		return "", fmt.Errorf("no worktrees. Create one with 'gj new' or 'gj pr'")
	}

	options := make([]prompt.Option, len(worktrees))
	for i, wt := range worktrees {
		options[i] = prompt.Option{
			Label:  worktree.DisplayName(wt.WorktreePath),
			Detail: fmt.Sprintf("%s, created %s", wt.Branch, formatAge(time.Since(wt.CreatedAt))),
		}
	}

	result, err := prompt.Select("Switch to worktree", options)
	if err != nil {
		return "", err
	}
	if result.Cancelled {
		return "", fmt.Errorf("cancelled")
	}
	return worktrees[result.Index].WorktreePath, nil
}

func listWorktrees(ctx context.Context) ([]state.Worktree, error) {
	l := log.FromContext(ctx)
	store, err := state.FromContext(ctx)
	if err != nil {
		return nil, err
	}
	return store.ListAll(func(path string, err error) {
		l.Warnf("skipping unreadable state file %s: %v", path, err)
	})
}
