package git

import (
	"context"
	"fmt"
	"strings"
)

// RepoRoot returns the toplevel directory of the repository containing
// dir (or the current directory if dir is empty).
// Returns ErrNotARepo when dir is not inside a git repository.
func RepoRoot(ctx context.Context, dir string) (string, error) {
	output, err := outputGit(ctx, dir, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNotARepo, err)
	}
	return strings.TrimSpace(string(output)), nil
}

// DefaultBranch returns the default branch name for the remote
// (e.g. "main" or "master").
func DefaultBranch(ctx context.Context, repoPath string) string {
	output, err := outputGit(ctx, repoPath, "symbolic-ref", "refs/remotes/origin/HEAD")
	if err == nil {
		// Output is like "refs/remotes/origin/main"
		ref := strings.TrimSpace(string(output))
		if branch, ok := strings.CutPrefix(ref, "refs/remotes/origin/"); ok {
			return branch
		}
	}

	if runGit(ctx, repoPath, "rev-parse", "--verify", "refs/heads/main") == nil {
		return "main"
	}
	if runGit(ctx, repoPath, "rev-parse", "--verify", "refs/heads/master") == nil {
		return "master"
	}

	return "main"
}

// FetchBranch fetches a specific branch from origin.
func FetchBranch(ctx context.Context, repoPath, branch string) error {
	if err := runGit(ctx, repoPath, "fetch", "origin", branch, "--quiet"); err != nil {
		return fmt.Errorf("fetch origin/%s: %v", branch, err)
	}
	return nil
}

// BranchExists reports whether a local branch exists.
func BranchExists(ctx context.Context, repoPath, branch string) bool {
	return runGit(ctx, repoPath, "rev-parse", "--verify", "refs/heads/"+branch) == nil
}

// IsDirty reports whether the working tree at path has uncommitted
// changes or untracked files.
func IsDirty(ctx context.Context, path string) (bool, error) {
	output, err := outputGit(ctx, path, "status", "--porcelain")
	if err != nil {
		return false, fmt.Errorf("check git status: %v", err)
	}
	return strings.TrimSpace(string(output)) != "", nil
}

// Checkout switches the repository at repoPath to the given branch.
func Checkout(ctx context.Context, repoPath, branch string) error {
	if err := runGit(ctx, repoPath, "checkout", branch); err != nil {
		return fmt.Errorf("checkout %s: %v", branch, err)
	}
	return nil
}

// Merge merges branch into the current branch of repoPath without
// opening an editor.
func Merge(ctx context.Context, repoPath, branch string) error {
	return runGit(ctx, repoPath, "merge", branch, "--no-edit")
}

// MergeAbort aborts an in-progress merge in repoPath.
func MergeAbort(ctx context.Context, repoPath string) error {
	return runGit(ctx, repoPath, "merge", "--abort")
}

// SetUpstream sets the upstream tracking ref for a branch in a worktree.
func SetUpstream(ctx context.Context, worktreePath, branch, upstream string) error {
	if err := runGit(ctx, worktreePath, "branch", "--set-upstream-to", upstream, branch); err != nil {
		return fmt.Errorf("set upstream of %s to %s: %v", branch, upstream, err)
	}
	return nil
}

// DeleteBranch deletes a local branch. Remote branches are never touched.
func DeleteBranch(ctx context.Context, repoPath, branch string, force bool) error {
	flag := "-d"
	if force {
		flag = "-D"
	}
	if err := runGit(ctx, repoPath, "branch", flag, branch); err != nil {
		return fmt.Errorf("delete branch %s: %v", branch, err)
	}
	return nil
}
