package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/mirakui/gj/internal/storage"
)

// ErrNotRegistered indicates the current repository has no entry in
// the config file. Creation commands require a registered repo.
var ErrNotRegistered = errors.New("repository not registered")

// DefaultConfig holds settings applied to all repositories.
type DefaultConfig struct {
	BaseDir string      `toml:"base_dir"`
	Prefix  string      `toml:"prefix"`
	Hooks   HooksConfig `toml:"hooks"`
}

// RepoConfig holds settings for one registered repository.
type RepoConfig struct {
	Path    string      `toml:"path"`
	BaseDir string      `toml:"base_dir"`
	Prefix  string      `toml:"prefix"`
	Hooks   HooksConfig `toml:"hooks"`
}

// HooksConfig holds ordered hook lists.
type HooksConfig struct {
	PostCreate []Hook `toml:"post_create"`
}

// Config is the parsed ~/.gj/config.toml.
type Config struct {
	Default DefaultConfig         `toml:"default"`
	Repos   map[string]RepoConfig `toml:"repos"`
}

// Built-in fallbacks when neither [default] nor the repo sets a value.
const (
	FallbackBaseDir = "~/.gj/worktrees"
	FallbackPrefix  = "gj"
)

// Dir returns the configuration directory (~/.gj).
func Dir() (string, error) {
	return storage.GjDir()
}

// Path returns the configuration file path (~/.gj/config.toml).
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads and validates the config file.
// Returns an empty config if the file doesn't exist.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadRequired reads the config file, returning an error telling the
// user to run `gj init` if it doesn't exist yet.
func LoadRequired() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("configuration file not found at %s\n\nRun 'gj init' to create one", path)
	}
	return LoadFrom(path)
}

// LoadFrom reads and validates a config file at an explicit path.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}

	if err := cfg.validate(path); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate(path string) error {
	for i, h := range c.Default.Hooks.PostCreate {
		if err := h.Validate(); err != nil {
			return fmt.Errorf("%s: default.hooks.post_create[%d]: %w", path, i, err)
		}
	}

	// Duplicate repo paths are a configuration error, not something to
	// resolve silently by picking one.
	seen := make(map[string]string)
	for alias, repo := range c.Repos {
		if repo.Path == "" {
			return fmt.Errorf("%s: repos.%s: path is required", path, alias)
		}
		canon := CanonicalPath(repo.Path)
		if other, ok := seen[canon]; ok {
			return fmt.Errorf("%s: repos.%s and repos.%s share the same path %s", path, min(alias, other), max(alias, other), repo.Path)
		}
		seen[canon] = alias

		for i, h := range repo.Hooks.PostCreate {
			if err := h.Validate(); err != nil {
				return fmt.Errorf("%s: repos.%s.hooks.post_create[%d]: %w", path, alias, i, err)
			}
		}
	}
	return nil
}

// FindRepo matches the canonicalized repository root against every
// registered repo path. Returns ErrNotRegistered if no entry matches.
func (c *Config) FindRepo(gitRoot string) (string, *RepoConfig, error) {
	root := CanonicalPath(gitRoot)

	for alias, repo := range c.Repos {
		if CanonicalPath(repo.Path) == root {
			repoCopy := repo
			return alias, &repoCopy, nil
		}
	}

	path, _ := Path()
	return "", nil, fmt.Errorf("%w: %s\n\nAdd it to %s:\n\n  [repos.myrepo]\n  path = %q", ErrNotRegistered, gitRoot, path, gitRoot)
}

// BaseDir returns the worktree base directory for a repo,
// falling back to [default] and then the built-in default.
func (c *Config) BaseDir(repo *RepoConfig) string {
	dir := FallbackBaseDir
	if c.Default.BaseDir != "" {
		dir = c.Default.BaseDir
	}
	if repo != nil && repo.BaseDir != "" {
		dir = repo.BaseDir
	}
	return expandPath(dir)
}

// Prefix returns the branch name prefix for a repo,
// falling back to [default] and then the built-in default.
func (c *Config) Prefix(repo *RepoConfig) string {
	prefix := FallbackPrefix
	if c.Default.Prefix != "" {
		prefix = c.Default.Prefix
	}
	if repo != nil && repo.Prefix != "" {
		prefix = repo.Prefix
	}
	return prefix
}

// MergedHooks returns the post-create hooks for a repo: default hooks
// first, then repo-specific hooks, order preserved, never deduplicated.
func (c *Config) MergedHooks(repo *RepoConfig) []Hook {
	hooks := make([]Hook, 0, len(c.Default.Hooks.PostCreate))
	hooks = append(hooks, c.Default.Hooks.PostCreate...)
	if repo != nil {
		hooks = append(hooks, repo.Hooks.PostCreate...)
	}
	return hooks
}

// CanonicalPath expands ~, makes the path absolute, and resolves
// symlinks when the path exists. Repo paths are always compared in
// this form.
func CanonicalPath(path string) string {
	expanded := expandPath(path)
	abs, err := filepath.Abs(expanded)
	if err != nil {
		return filepath.Clean(expanded)
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved
	}
	return abs
}

// expandPath expands a leading ~ to the user's home directory.
// Shells don't expand ~ inside config files.
func expandPath(path string) string {
	if path == "~" {
		if home, err := os.UserHomeDir(); err == nil {
			return home
		}
		return path
	}
	if len(path) >= 2 && path[:2] == "~/" {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

type ctxKey struct{}

// WithConfig attaches a config to the context.
func WithConfig(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, ctxKey{}, cfg)
}

// FromContext retrieves the config from context, or nil if none is
// attached. Commands fall back to LoadRequired.
func FromContext(ctx context.Context) *Config {
	if cfg, ok := ctx.Value(ctxKey{}).(*Config); ok {
		return cfg
	}
	return nil
}
