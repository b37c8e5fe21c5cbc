package main

import (
	"context"
	"fmt"

	"github.com/mirakui/gj/internal/log"
	"github.com/mirakui/gj/internal/output"
	"github.com/mirakui/gj/internal/worktree"
)

// createWorktree runs the shared creation flow for pr, new and
// checkout. On success the worktree path is printed to stdout (unless
// noCD) so the shell wrapper can cd into it. A failed post-create hook
// fails the invocation without emitting a path; the worktree and its
// record stay behind for inspection.
func createWorktree(ctx context.Context, req worktree.CreateRequest, noCD bool) error {
	l := log.FromContext(ctx)

	engine, err := newEngine(ctx)
	if err != nil {
		return err
	}

	result, err := engine.Create(ctx, req)
	if err != nil {
		return err
	}

	l.Printf("Created worktree %s on branch %s\n", result.Path, req.Branch)

	if result.HookErr != nil {
		return fmt.Errorf("post-create hook failed: %w\n\nThe worktree at %s was kept; fix the issue and re-run the hook manually, or remove it with 'gj exit'", result.HookErr, result.Path)
	}

	if !noCD {
		output.FromContext(ctx).Println(result.Path)
	}
	return nil
}
