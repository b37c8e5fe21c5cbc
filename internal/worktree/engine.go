package worktree

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/mirakui/gj/internal/config"
	"github.com/mirakui/gj/internal/hooks"
	"github.com/mirakui/gj/internal/state"
)

// Sentinel errors for the lifecycle protocols.
var (
	// ErrWorktreeExists indicates a directory already occupies the
	// computed worktree path.
	ErrWorktreeExists = errors.New("worktree already exists")

	// ErrDirtyWorktree indicates the worktree has uncommitted changes
	// and --force was not given.
	ErrDirtyWorktree = errors.New("worktree has uncommitted changes")

	// ErrNotAWorktree indicates the current directory is not inside a
	// gj-managed worktree.
	ErrNotAWorktree = errors.New("not in a gj-managed worktree")

	// ErrMergeConflict indicates the pre-exit merge failed; the
	// worktree is left intact.
	ErrMergeConflict = errors.New("merge failed")
)

// Git is the subset of version-control operations the engine needs.
// It is an interface so the creation and exit protocols can be tested
// without real subprocesses.
type Git interface {
	RepoRoot(ctx context.Context, dir string) (string, error)
	DefaultBranch(ctx context.Context, repoPath string) string
	FetchBranch(ctx context.Context, repoPath, branch string) error
	BranchExists(ctx context.Context, repoPath, branch string) bool
	AddWorktreeNewBranch(ctx context.Context, repoPath, path, branch string) error
	AddWorktreeTracking(ctx context.Context, repoPath, path, branch, ref string) error
	AddWorktreeAtBranch(ctx context.Context, repoPath, path, branch string) error
	RemoveWorktree(ctx context.Context, repoPath, path string, force bool) error
	DeleteBranch(ctx context.Context, repoPath, branch string, force bool) error
	IsDirty(ctx context.Context, path string) (bool, error)
	Checkout(ctx context.Context, repoPath, branch string) error
	Merge(ctx context.Context, repoPath, branch string) error
	MergeAbort(ctx context.Context, repoPath string) error
	SetUpstream(ctx context.Context, worktreePath, branch, upstream string) error
}

// HookRunner executes a merged hook list against a new worktree.
type HookRunner func(ctx context.Context, hookList []config.Hook, hctx hooks.Context) error

// Engine orchestrates the worktree lifecycle: creation (branch naming,
// git invocation, state write, hooks) and teardown (dirty guard,
// optional merge, removal, state delete).
type Engine struct {
	git    Git
	states *state.Store
	hooks  HookRunner
	now    func() time.Time
}

// NewEngine creates an engine with the given collaborators.
func NewEngine(git Git, states *state.Store, hookRunner HookRunner) *Engine {
	return &Engine{
		git:    git,
		states: states,
		hooks:  hookRunner,
		now:    time.Now,
	}
}

// CreateRequest describes one worktree creation. The pr, new and
// checkout commands all funnel through Create; they differ only in how
// Branch, Slug and TrackRef are resolved.
type CreateRequest struct {
	OriginRepo  string // canonical repository root
	RepoName    string // config alias, second path segment under BaseDir
	BaseDir     string
	Branch      string // full branch name to create or check out
	Slug        string // final path segment
	TrackRef    string // remote ref to fetch and track; empty = new local branch from HEAD
	SetUpstream bool
	Hooks       []config.Hook
}

// CreateResult reports a completed creation. HookErr is non-nil when a
// post-create hook failed: the worktree and its state record remain
// (no rollback), but callers must still fail the invocation.
type CreateResult struct {
	Path    string
	State   state.Worktree
	HookErr error
}

// Create runs the creation protocol. The state record is written
// before hooks run, so an interrupted or failing hook still leaves a
// trackable worktree rather than an orphan.
func (e *Engine) Create(ctx context.Context, req CreateRequest) (CreateResult, error) {
	path := PathFor(req.BaseDir, req.RepoName, req.Slug)

	if _, err := os.Stat(path); err == nil {
		return CreateResult{}, fmt.Errorf("%w at %s\n\nUse 'gj cd %s' to switch to it", ErrWorktreeExists, path, req.Slug)
	}

	if req.TrackRef == "" {
		if err := e.git.AddWorktreeNewBranch(ctx, req.OriginRepo, path, req.Branch); err != nil {
			return CreateResult{}, err
		}
	} else if e.git.BranchExists(ctx, req.OriginRepo, req.Branch) {
		// The branch is already local (e.g. a second look at the same
		// PR after an exit); no fetch needed.
		if err := e.git.AddWorktreeAtBranch(ctx, req.OriginRepo, path, req.Branch); err != nil {
			return CreateResult{}, err
		}
	} else {
		if err := e.git.FetchBranch(ctx, req.OriginRepo, req.Branch); err != nil {
			return CreateResult{}, err
		}
		if err := e.git.AddWorktreeTracking(ctx, req.OriginRepo, path, req.Branch, req.TrackRef); err != nil {
			return CreateResult{}, err
		}
		if req.SetUpstream {
			if err := e.git.SetUpstream(ctx, path, req.Branch, req.TrackRef); err != nil {
				return CreateResult{}, err
			}
		}
	}

	record := state.Worktree{
		WorktreePath: path,
		OriginRepo:   req.OriginRepo,
		Branch:       req.Branch,
		CreatedAt:    e.now().UTC(),
	}
	if err := e.states.Put(record); err != nil {
		return CreateResult{}, err
	}

	result := CreateResult{Path: path, State: record}

	if len(req.Hooks) > 0 {
		result.HookErr = e.hooks(ctx, req.Hooks, hooks.Context{
			OriginRepo:   req.OriginRepo,
			WorktreePath: path,
			Branch:       req.Branch,
		})
	}

	return result, nil
}

// ExitRequest describes one worktree teardown.
type ExitRequest struct {
	Dir   string // any directory inside the worktree
	Force bool   // discard uncommitted changes
	Merge bool   // merge the branch into the origin's default branch first
}

// ExitResult reports a completed teardown. BranchDeleteErr is non-nil
// when the local branch could not be deleted; that is a warning, not a
// failure, since the worktree itself is gone.
type ExitResult struct {
	OriginRepo      string
	Branch          string
	BranchDeleteErr error
}

// Exit runs the exit protocol. The worktree is never removed without a
// confirmed exit-safe precondition: a clean tree or an explicit force,
// and a successful merge when one was requested.
func (e *Engine) Exit(ctx context.Context, req ExitRequest) (ExitResult, error) {
	root, err := e.git.RepoRoot(ctx, req.Dir)
	if err != nil {
		return ExitResult{}, fmt.Errorf("%w: %v", ErrNotAWorktree, err)
	}

	record, err := e.states.Get(root)
	if err != nil {
		if errors.Is(err, state.ErrNotFound) {
			return ExitResult{}, fmt.Errorf("%w: %s", ErrNotAWorktree, root)
		}
		return ExitResult{}, err
	}

	if !req.Force {
		dirty, err := e.git.IsDirty(ctx, root)
		if err != nil {
			return ExitResult{}, err
		}
		if dirty {
			return ExitResult{}, fmt.Errorf("%w\n\nCommit or stash them, or use --force to discard", ErrDirtyWorktree)
		}
	}

	if req.Merge {
		if err := e.mergeIntoDefault(ctx, record); err != nil {
			return ExitResult{}, err
		}
	}

	if err := e.git.RemoveWorktree(ctx, record.OriginRepo, record.WorktreePath, req.Force); err != nil {
		return ExitResult{}, err
	}

	result := ExitResult{OriginRepo: record.OriginRepo, Branch: record.Branch}
	result.BranchDeleteErr = e.git.DeleteBranch(ctx, record.OriginRepo, record.Branch, req.Force || req.Merge)

	if err := e.states.Delete(record.WorktreePath); err != nil {
		return result, err
	}

	return result, nil
}

// mergeIntoDefault merges the worktree's branch into the origin
// repository's default branch. Any failure aborts the in-progress
// merge and the whole exit, leaving the worktree intact.
func (e *Engine) mergeIntoDefault(ctx context.Context, record state.Worktree) error {
	defaultBranch := e.git.DefaultBranch(ctx, record.OriginRepo)

	if err := e.git.Checkout(ctx, record.OriginRepo, defaultBranch); err != nil {
		return fmt.Errorf("%w: cannot check out %s in origin repo: %v", ErrMergeConflict, defaultBranch, err)
	}

	if err := e.git.Merge(ctx, record.OriginRepo, record.Branch); err != nil {
		if abortErr := e.git.MergeAbort(ctx, record.OriginRepo); abortErr != nil {
			return fmt.Errorf("%w: %s into %s: %v (merge --abort also failed: %v)", ErrMergeConflict, record.Branch, defaultBranch, err, abortErr)
		}
		return fmt.Errorf("%w: %s into %s: %v\n\nThe worktree was left intact; resolve the conflict manually", ErrMergeConflict, record.Branch, defaultBranch, err)
	}

	return nil
}

// Resolve returns the state record for the worktree containing dir.
func (e *Engine) Resolve(ctx context.Context, dir string) (state.Worktree, error) {
	root, err := e.git.RepoRoot(ctx, dir)
	if err != nil {
		return state.Worktree{}, fmt.Errorf("%w: %v", ErrNotAWorktree, err)
	}
	record, err := e.states.Get(root)
	if err != nil {
		if errors.Is(err, state.ErrNotFound) {
			return state.Worktree{}, fmt.Errorf("%w: %s", ErrNotAWorktree, root)
		}
		return state.Worktree{}, err
	}
	return record, nil
}
