package config

import "fmt"

// HookType discriminates hook variants.
type HookType string

const (
	// HookCopy copies a file from the origin repo into the worktree.
	HookCopy HookType = "copy"
	// HookRun executes a shell command inside the worktree.
	HookRun HookType = "run"
)

// Hook is one post-create action, declared as a TOML table with a
// "type" field:
//
//	[[repos.myapp.hooks.post_create]]
//	type = "copy"
//	from = ".env"
//	required = true
//
//	[[repos.myapp.hooks.post_create]]
//	type = "run"
//	command = "npm install"
type Hook struct {
	Type HookType `toml:"type"`

	// Copy fields
	From     string `toml:"from"` // relative to origin repo
	To       string `toml:"to"`   // relative to worktree, defaults to From
	Required bool   `toml:"required"`

	// Run fields
	Command string `toml:"command"`
}

// Validate checks that the hook declares a known type and the fields
// that type needs.
func (h Hook) Validate() error {
	switch h.Type {
	case HookCopy:
		if h.From == "" {
			return fmt.Errorf("copy hook requires 'from'")
		}
		if h.Command != "" {
			return fmt.Errorf("copy hook cannot set 'command'")
		}
	case HookRun:
		if h.Command == "" {
			return fmt.Errorf("run hook requires 'command'")
		}
		if h.From != "" || h.To != "" {
			return fmt.Errorf("run hook cannot set 'from' or 'to'")
		}
	case "":
		return fmt.Errorf("hook requires a 'type' (copy or run)")
	default:
		return fmt.Errorf("unknown hook type %q (expected copy or run)", h.Type)
	}
	return nil
}

// Dest returns the copy destination, defaulting to the source path.
func (h Hook) Dest() string {
	if h.To != "" {
		return h.To
	}
	return h.From
}

// Description returns a short display string for error messages.
func (h Hook) Description() string {
	switch h.Type {
	case HookCopy:
		return fmt.Sprintf("copy %s", h.From)
	case HookRun:
		return fmt.Sprintf("run %s", h.Command)
	default:
		return string(h.Type)
	}
}
