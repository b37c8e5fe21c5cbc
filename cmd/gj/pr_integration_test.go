//go:build integration

package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mirakui/gj/internal/github"
)

// stubGH puts a fake gh executable at the front of PATH so PR lookup
// works offline.
func stubGH(t *testing.T, script string) {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "gh"), []byte("#!/bin/sh\n"+script+"\n"), 0o755); err != nil {
		t.Fatalf("write gh stub: %v", err)
	}
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))
}

func TestPr_InvalidNumber(t *testing.T) {
	// Scenario: gj pr with a non-numeric argument.
	// Expected: an argument error before anything touches gh or git.
	env := setupEnv(t)

	t.Chdir(env.repoPath)
	_, err := env.runCommand(t, newPrCmd, "notanumber")
	if err == nil {
		t.Fatal("expected error for invalid PR number")
	}
	if !strings.Contains(err.Error(), "positive PR number") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestPr_NotFoundCreatesNothing(t *testing.T) {
	// Scenario: gj pr 999 when the lookup finds no such pull request.
	// Expected: the error surfaces and no worktree or state record is
	// left behind.
	env := setupEnv(t)
	stubGH(t, `echo "no pull requests found for #999" >&2; exit 1`)

	t.Chdir(env.repoPath)
	stdout, err := env.runCommand(t, newPrCmd, "999")
	if !errors.Is(err, github.ErrPRNotFound) {
		t.Fatalf("expected ErrPRNotFound, got %v", err)
	}
	if stdout != "" {
		t.Errorf("no path should be printed, got %q", stdout)
	}

	if entries, err := os.ReadDir(env.baseDir); err == nil && len(entries) > 0 {
		t.Errorf("no worktree should have been created, found %v", entries)
	}
	records, err := env.store.ListAll(nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 0 {
		t.Errorf("no state record should have been written, found %d", len(records))
	}
}

func TestPr_CreatesWorktree(t *testing.T) {
	// Scenario: gj pr 123 for a PR whose head branch exists on origin.
	// Expected: a pr-123 worktree tracking the remote branch, with its
	// path on stdout.
	env := setupEnv(t)
	pushRemoteBranch(t, env.repoPath, "fix/login", "fix.txt")
	stubGH(t, `echo "fix/login"`)

	t.Chdir(env.repoPath)
	stdout, err := env.runCommand(t, newPrCmd, "123")
	if err != nil {
		t.Fatalf("gj pr failed: %v", err)
	}

	wtPath := strings.TrimSpace(stdout)
	if filepath.Base(wtPath) != "pr-123" {
		t.Errorf("worktree path = %q, want a pr-123 directory", wtPath)
	}
	if _, err := os.Stat(filepath.Join(wtPath, "fix.txt")); err != nil {
		t.Errorf("worktree missing the PR branch's file: %v", err)
	}

	record, err := env.store.Get(wtPath)
	if err != nil {
		t.Fatalf("state record: %v", err)
	}
	if record.Branch != "fix/login" {
		t.Errorf("record branch = %q, want %q", record.Branch, "fix/login")
	}

	upstream := strings.TrimSpace(runGit(t, wtPath, "rev-parse", "--abbrev-ref", "@{upstream}"))
	if upstream != "origin/fix/login" {
		t.Errorf("upstream = %q, want origin/fix/login", upstream)
	}
}
