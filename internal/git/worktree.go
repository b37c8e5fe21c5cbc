package git

import (
	"context"
	"fmt"
)

// AddWorktreeNewBranch creates a worktree at path with a new branch
// starting from the current HEAD of repoPath.
func AddWorktreeNewBranch(ctx context.Context, repoPath, path, branch string) error {
	if err := runGit(ctx, repoPath, "worktree", "add", "-b", branch, path); err != nil {
		return fmt.Errorf("create worktree: %v", err)
	}
	return nil
}

// AddWorktreeTracking creates a worktree at path with a new local
// branch starting from ref (typically a remote-tracking ref).
func AddWorktreeTracking(ctx context.Context, repoPath, path, branch, ref string) error {
	if err := runGit(ctx, repoPath, "worktree", "add", "-b", branch, path, ref); err != nil {
		return fmt.Errorf("create worktree: %v", err)
	}
	return nil
}

// AddWorktreeAtBranch creates a worktree at path checking out an
// existing local branch.
func AddWorktreeAtBranch(ctx context.Context, repoPath, path, branch string) error {
	if err := runGit(ctx, repoPath, "worktree", "add", path, branch); err != nil {
		return fmt.Errorf("create worktree: %v", err)
	}
	return nil
}

// RemoveWorktree removes the worktree at path. With force, uncommitted
// changes are discarded.
func RemoveWorktree(ctx context.Context, repoPath, path string, force bool) error {
	args := []string{"worktree", "remove"}
	if force {
		args = append(args, "--force")
	}
	args = append(args, path)

	if err := runGit(ctx, repoPath, args...); err != nil {
		return fmt.Errorf("remove worktree: %v", err)
	}
	return nil
}
