package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadFromMissingFile(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if len(cfg.Repos) != 0 {
		t.Errorf("expected empty config, got %+v", cfg)
	}
}

func TestLoadFromFull(t *testing.T) {
	path := writeConfig(t, `
[default]
base_dir = "~/worktrees"
prefix = "feature"

[[default.hooks.post_create]]
type = "run"
command = "echo hi"

[repos.myapp]
path = "/home/user/src/myapp"
prefix = "app"

[[repos.myapp.hooks.post_create]]
type = "copy"
from = ".env"
required = true
`)

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}

	if cfg.Default.Prefix != "feature" {
		t.Errorf("default.prefix = %q, want feature", cfg.Default.Prefix)
	}
	repo, ok := cfg.Repos["myapp"]
	if !ok {
		t.Fatal("repos.myapp missing")
	}
	if repo.Path != "/home/user/src/myapp" {
		t.Errorf("repos.myapp.path = %q", repo.Path)
	}
	if len(repo.Hooks.PostCreate) != 1 || repo.Hooks.PostCreate[0].Type != HookCopy {
		t.Errorf("unexpected repo hooks: %+v", repo.Hooks.PostCreate)
	}
	if !repo.Hooks.PostCreate[0].Required {
		t.Error("expected required copy hook")
	}
}

func TestLoadFromInvalidHook(t *testing.T) {
	path := writeConfig(t, `
[repos.myapp]
path = "/home/user/src/myapp"

[[repos.myapp.hooks.post_create]]
type = "copy"
`)

	_, err := LoadFrom(path)
	if err == nil || !strings.Contains(err.Error(), "requires 'from'") {
		t.Errorf("expected copy hook validation error, got %v", err)
	}
}

func TestLoadFromDuplicateRepoPaths(t *testing.T) {
	path := writeConfig(t, `
[repos.first]
path = "/home/user/src/app"

[repos.second]
path = "/home/user/src/app"
`)

	_, err := LoadFrom(path)
	if err == nil || !strings.Contains(err.Error(), "share the same path") {
		t.Errorf("expected duplicate path error, got %v", err)
	}
}

func TestLoadFromMissingRepoPath(t *testing.T) {
	path := writeConfig(t, `
[repos.broken]
prefix = "x"
`)

	_, err := LoadFrom(path)
	if err == nil || !strings.Contains(err.Error(), "path is required") {
		t.Errorf("expected missing path error, got %v", err)
	}
}

func TestFindRepo(t *testing.T) {
	repoPath := t.TempDir()
	cfg := &Config{Repos: map[string]RepoConfig{
		"myapp": {Path: repoPath},
	}}

	alias, repo, err := cfg.FindRepo(repoPath)
	if err != nil {
		t.Fatalf("FindRepo: %v", err)
	}
	if alias != "myapp" || repo == nil {
		t.Errorf("alias = %q, repo = %v", alias, repo)
	}
}

func TestFindRepoNotRegistered(t *testing.T) {
	cfg := &Config{Repos: map[string]RepoConfig{
		"myapp": {Path: "/home/user/src/myapp"},
	}}

	_, _, err := cfg.FindRepo(t.TempDir())
	if !errors.Is(err, ErrNotRegistered) {
		t.Errorf("expected ErrNotRegistered, got %v", err)
	}
	// The message shows how to register the repo.
	if !strings.Contains(err.Error(), "[repos.") {
		t.Errorf("expected config snippet in error, got %v", err)
	}
}

func TestBaseDirPrecedence(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		repo    *RepoConfig
		want    string
	}{
		{
			name: "repo overrides default",
			cfg:  Config{Default: DefaultConfig{BaseDir: "/default"}},
			repo: &RepoConfig{BaseDir: "/repo"},
			want: "/repo",
		},
		{
			name: "default when repo unset",
			cfg:  Config{Default: DefaultConfig{BaseDir: "/default"}},
			repo: &RepoConfig{},
			want: "/default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.BaseDir(tt.repo); got != tt.want {
				t.Errorf("BaseDir() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBaseDirFallbackExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg := Config{}
	got := cfg.BaseDir(nil)
	want := filepath.Join(home, ".gj", "worktrees")
	if got != want {
		t.Errorf("BaseDir() = %q, want %q", got, want)
	}
}

func TestPrefixPrecedence(t *testing.T) {
	cfg := Config{Default: DefaultConfig{Prefix: "team"}}

	if got := cfg.Prefix(&RepoConfig{Prefix: "app"}); got != "app" {
		t.Errorf("repo prefix: got %q", got)
	}
	if got := cfg.Prefix(&RepoConfig{}); got != "team" {
		t.Errorf("default prefix: got %q", got)
	}
	if got := (&Config{}).Prefix(nil); got != FallbackPrefix {
		t.Errorf("fallback prefix: got %q", got)
	}
}

func TestMergedHooksOrder(t *testing.T) {
	cfg := Config{
		Default: DefaultConfig{Hooks: HooksConfig{PostCreate: []Hook{
			{Type: HookRun, Command: "first"},
		}}},
	}
	repo := &RepoConfig{Hooks: HooksConfig{PostCreate: []Hook{
		{Type: HookRun, Command: "second"},
	}}}

	merged := cfg.MergedHooks(repo)
	if len(merged) != 2 {
		t.Fatalf("expected 2 hooks, got %d", len(merged))
	}
	if merged[0].Command != "first" || merged[1].Command != "second" {
		t.Errorf("wrong order: %+v", merged)
	}
}

func TestInit(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path, err := Init(false)
	if err != nil {
		t.Fatalf("Init: %v", err)
	}

	// The generated file must itself be a valid config.
	if _, err := LoadFrom(path); err != nil {
		t.Errorf("generated config does not parse: %v", err)
	}

	// A second init without force must refuse.
	if _, err := Init(false); err == nil {
		t.Error("expected error on second init without force")
	}
	if _, err := Init(true); err != nil {
		t.Errorf("init --force: %v", err)
	}
}
