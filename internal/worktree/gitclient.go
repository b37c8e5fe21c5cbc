package worktree

import (
	"context"

	"github.com/mirakui/gj/internal/git"
)

// CLI is the production Git implementation, backed by the git binary.
type CLI struct{}

var _ Git = CLI{}

func (CLI) RepoRoot(ctx context.Context, dir string) (string, error) {
	return git.RepoRoot(ctx, dir)
}

func (CLI) DefaultBranch(ctx context.Context, repoPath string) string {
	return git.DefaultBranch(ctx, repoPath)
}

func (CLI) FetchBranch(ctx context.Context, repoPath, branch string) error {
	return git.FetchBranch(ctx, repoPath, branch)
}

func (CLI) BranchExists(ctx context.Context, repoPath, branch string) bool {
	return git.BranchExists(ctx, repoPath, branch)
}

func (CLI) AddWorktreeNewBranch(ctx context.Context, repoPath, path, branch string) error {
	return git.AddWorktreeNewBranch(ctx, repoPath, path, branch)
}

func (CLI) AddWorktreeTracking(ctx context.Context, repoPath, path, branch, ref string) error {
	return git.AddWorktreeTracking(ctx, repoPath, path, branch, ref)
}

func (CLI) AddWorktreeAtBranch(ctx context.Context, repoPath, path, branch string) error {
	return git.AddWorktreeAtBranch(ctx, repoPath, path, branch)
}

func (CLI) RemoveWorktree(ctx context.Context, repoPath, path string, force bool) error {
	return git.RemoveWorktree(ctx, repoPath, path, force)
}

func (CLI) DeleteBranch(ctx context.Context, repoPath, branch string, force bool) error {
	return git.DeleteBranch(ctx, repoPath, branch, force)
}

func (CLI) IsDirty(ctx context.Context, path string) (bool, error) {
	return git.IsDirty(ctx, path)
}

func (CLI) Checkout(ctx context.Context, repoPath, branch string) error {
	return git.Checkout(ctx, repoPath, branch)
}

func (CLI) Merge(ctx context.Context, repoPath, branch string) error {
	return git.Merge(ctx, repoPath, branch)
}

func (CLI) MergeAbort(ctx context.Context, repoPath string) error {
	return git.MergeAbort(ctx, repoPath)
}

func (CLI) SetUpstream(ctx context.Context, worktreePath, branch, upstream string) error {
	return git.SetUpstream(ctx, worktreePath, branch, upstream)
}
