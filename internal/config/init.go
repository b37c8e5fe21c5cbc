package config

import (
	"errors"
	"fmt"
	"os"
)

const defaultConfig = `# gj configuration

[default]
# Base directory for worktrees (default: ~/.gj/worktrees)
# base_dir = "~/.gj/worktrees"

# Branch name prefix for 'gj new' (default: gj)
# prefix = "gj"

# Hooks applied after every worktree creation, before repo-specific hooks.
# [[default.hooks.post_create]]
# type = "run"
# command = "echo 'worktree ready: {worktree}'"

# Registered repositories. gj commands must run inside one of these.
# [repos.my-app]
# path = "~/dev/my-app"
# prefix = "feature"
#
# [[repos.my-app.hooks.post_create]]
# type = "copy"
# from = ".env"
# required = true
#
# [[repos.my-app.hooks.post_create]]
# type = "run"
# command = "npm install"
#
# Run hooks execute with the worktree as working directory and support
# {worktree}, {origin} and {branch} placeholders (shell-quoted).
`

// Init creates the default config file, returning its path.
// Refuses to overwrite an existing file unless force is set.
func Init(force bool) (string, error) {
	path, err := Path()
	if err != nil {
		return "", err
	}

	if !force {
		if _, err := os.Stat(path); err == nil {
			return "", errors.New("config file already exists: " + path + " (use --force to overwrite)")
		}
	}

	if err := os.WriteFile(path, []byte(defaultConfig), 0o644); err != nil {
		return "", fmt.Errorf("write config file: %w", err)
	}

	return path, nil
}
