package main

import (
	"context"
	"fmt"
	"os"

	"github.com/mirakui/gj/internal/config"
	"github.com/mirakui/gj/internal/git"
	"github.com/mirakui/gj/internal/hooks"
	"github.com/mirakui/gj/internal/state"
	"github.com/mirakui/gj/internal/worktree"
)

// requireConfig returns the config from context (tests inject one) or
// loads it from disk, failing if the file doesn't exist yet.
func requireConfig(ctx context.Context) (*config.Config, error) {
	if cfg := config.FromContext(ctx); cfg != nil {
		return cfg, nil
	}
	return config.LoadRequired()
}

// repoContext resolves the repository the current directory belongs to
// and its config entry. Creation commands refuse to run in an
// unregistered repository.
type repoContext struct {
	cfg    *config.Config
	alias  string
	repo   *config.RepoConfig
	origin string // canonical repo root
}

func resolveRepo(ctx context.Context) (*repoContext, error) {
	cfg, err := requireConfig(ctx)
	if err != nil {
		return nil, err
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	root, err := git.RepoRoot(ctx, cwd)
	if err != nil {
		return nil, err
	}

	alias, repo, err := cfg.FindRepo(root)
	if err != nil {
		return nil, err
	}

	// Worktrees are created from the registered origin path, not from
	// whatever worktree the user happens to be standing in.
	return &repoContext{cfg: cfg, alias: alias, repo: repo, origin: config.CanonicalPath(repo.Path)}, nil
}

// invalidArgError reports a positional argument that failed to parse.
type invalidArgError struct {
	arg  string
	want string
}

func (e *invalidArgError) Error() string {
	return fmt.Sprintf("invalid argument %q: expected %s", e.arg, e.want)
}

// newEngine builds the production worktree engine.
func newEngine(ctx context.Context) (*worktree.Engine, error) {
	store, err := state.FromContext(ctx)
	if err != nil {
		return nil, err
	}
	return worktree.NewEngine(worktree.CLI{}, store, hooks.Run), nil
}
