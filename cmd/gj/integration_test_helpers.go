//go:build integration

package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"github.com/mirakui/gj/internal/config"
	"github.com/mirakui/gj/internal/log"
	"github.com/mirakui/gj/internal/output"
	"github.com/mirakui/gj/internal/state"
)

// resolvePath resolves symlinks in a path.
// This is needed on macOS where /var is a symlink to /private/var.
func resolvePath(t *testing.T, path string) string {
	t.Helper()
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		t.Fatalf("failed to resolve path %s: %v", path, err)
	}
	return resolved
}

func runGit(t *testing.T, dir string, args ...string) string {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("git %v failed: %v\n%s", args, err, out)
	}
	return string(out)
}

// setupTestRepo creates a git repo with an initial commit in dir/name
// and a bare "origin" remote next to it.
func setupTestRepo(t *testing.T, dir, name string) string {
	t.Helper()

	dir = resolvePath(t, dir)
	repoPath := filepath.Join(dir, name)
	if err := os.MkdirAll(repoPath, 0o755); err != nil {
		t.Fatalf("failed to create repo dir: %v", err)
	}

	runGit(t, repoPath, "init", "-b", "main")
	runGit(t, repoPath, "config", "user.email", "test@test.com")
	runGit(t, repoPath, "config", "user.name", "Test User")
	runGit(t, repoPath, "config", "commit.gpgsign", "false")

	readme := filepath.Join(repoPath, "README.md")
	if err := os.WriteFile(readme, []byte("# "+name+"\n"), 0o644); err != nil {
		t.Fatalf("failed to write README: %v", err)
	}
	runGit(t, repoPath, "add", "README.md")
	runGit(t, repoPath, "commit", "-m", "Initial commit")

	// Bare repo as a file:// style origin so fetch works offline.
	barePath := filepath.Join(dir, name+".git")
	runGit(t, dir, "clone", "--bare", repoPath, barePath)
	runGit(t, repoPath, "remote", "add", "origin", barePath)
	runGit(t, repoPath, "fetch", "origin")

	return repoPath
}

// pushRemoteBranch creates a branch with one commit in the origin
// remote without leaving a local branch behind.
func pushRemoteBranch(t *testing.T, repoPath, branch, file string) {
	t.Helper()

	runGit(t, repoPath, "switch", "-c", branch)
	path := filepath.Join(repoPath, file)
	if err := os.WriteFile(path, []byte(branch+"\n"), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", file, err)
	}
	runGit(t, repoPath, "add", file)
	runGit(t, repoPath, "commit", "-m", "Add "+file)
	runGit(t, repoPath, "push", "origin", branch)
	runGit(t, repoPath, "switch", "main")
	runGit(t, repoPath, "branch", "-D", branch)
	runGit(t, repoPath, "fetch", "origin")
}

// testEnv bundles the injected collaborators for one scenario.
type testEnv struct {
	cfg      *config.Config
	store    *state.Store
	stateDir string
	baseDir  string
	repoPath string
}

// setupEnv creates a registered repo, a worktree base dir, and a state
// store in temp directories.
func setupEnv(t *testing.T) *testEnv {
	t.Helper()

	repoPath := setupTestRepo(t, t.TempDir(), "myrepo")
	baseDir := filepath.Join(resolvePath(t, t.TempDir()), "worktrees")

	cfg := &config.Config{
		Default: config.DefaultConfig{BaseDir: baseDir},
		Repos: map[string]config.RepoConfig{
			"myrepo": {Path: repoPath},
		},
	}

	stateDir := t.TempDir()

	return &testEnv{
		cfg:      cfg,
		store:    state.NewStore(stateDir),
		stateDir: stateDir,
		baseDir:  baseDir,
		repoPath: repoPath,
	}
}

// runCommand executes a freshly built subcommand with the scenario's
// config and store injected, capturing stdout.
func (env *testEnv) runCommand(t *testing.T, build func() *cobra.Command, args ...string) (string, error) {
	t.Helper()

	var stdout bytes.Buffer
	ctx := context.Background()
	ctx = log.WithLogger(ctx, log.New(io.Discard, false, false))
	ctx = output.WithPrinter(ctx, &stdout)
	ctx = config.WithConfig(ctx, env.cfg)
	ctx = state.WithStore(ctx, env.store)

	cmd := build()
	cmd.SetContext(ctx)
	cmd.SetArgs(args)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)

	err := cmd.Execute()
	return stdout.String(), err
}
