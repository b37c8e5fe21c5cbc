package hooks

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/mirakui/gj/internal/config"
	"github.com/mirakui/gj/internal/log"
)

// ErrMissingRequiredFile indicates a copy hook's source file was
// marked required but does not exist in the origin repo.
var ErrMissingRequiredFile = errors.New("required file not found")

// Error identifies which hook in the merged list failed and why.
type Error struct {
	Index int
	Desc  string
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("hook %d (%s): %v", e.Index+1, e.Desc, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Context holds the paths a hook list runs against.
type Context struct {
	OriginRepo   string
	WorktreePath string
	Branch       string
}

// Run executes hooks strictly in order, stopping at the first failure.
// Hook execution is untrusted and side-effecting: it writes files into
// the worktree and runs arbitrary shell commands there. Failures are
// returned as *Error so callers can report them distinctly from git
// failures.
func Run(ctx context.Context, hooks []config.Hook, hctx Context) error {
	l := log.FromContext(ctx)

	for i, hook := range hooks {
		var err error
		switch hook.Type {
		case config.HookCopy:
			err = runCopy(l, hook, hctx)
		case config.HookRun:
			err = runShell(ctx, l, hook, hctx)
		default:
			// Unknown types are rejected at config load time.
			err = fmt.Errorf("unknown hook type %q", hook.Type)
		}
		if err != nil {
			return &Error{Index: i, Desc: hook.Description(), Err: err}
		}
	}
	return nil
}

// runCopy copies hook.From (relative to the origin repo) to hook.Dest()
// (relative to the worktree). A missing optional source is skipped; a
// missing required source is an error.
func runCopy(l *log.Logger, hook config.Hook, hctx Context) error {
	source := filepath.Join(hctx.OriginRepo, hook.From)
	dest := filepath.Join(hctx.WorktreePath, hook.Dest())

	info, err := os.Stat(source)
	if err != nil {
		if os.IsNotExist(err) {
			if hook.Required {
				return fmt.Errorf("%w: %s", ErrMissingRequiredFile, hook.From)
			}
			l.Printf("Skipped: %s (not found)\n", hook.From)
			return nil
		}
		return fmt.Errorf("stat %s: %w", source, err)
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return fmt.Errorf("create directory %s: %w", filepath.Dir(dest), err)
	}

	if err := copyFile(source, dest, info.Mode()); err != nil {
		return fmt.Errorf("copy %s to %s: %w", source, dest, err)
	}

	l.Printf("Copied: %s -> %s\n", hook.From, hook.Dest())
	return nil
}

// runShell executes hook.Command via sh -c with the worktree as
// working directory. Any non-zero exit is a hook failure.
func runShell(ctx context.Context, l *log.Logger, hook config.Hook, hctx Context) error {
	command := substitute(hook.Command, hctx)
	l.Printf("Running: %s\n", command)

	c := exec.CommandContext(ctx, "sh", "-c", command)
	c.Dir = hctx.WorktreePath
	c.Stdout = l.Writer()
	c.Stderr = l.Writer()

	if err := c.Run(); err != nil {
		return fmt.Errorf("command failed: %w", err)
	}
	return nil
}

func copyFile(source, dest string, mode os.FileMode) error {
	in, err := os.Open(source)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode.Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// substitute replaces {worktree}, {origin} and {branch} placeholders
// with shell-quoted values.
func substitute(command string, hctx Context) string {
	replacements := map[string]string{
		"{worktree}": shellQuote(hctx.WorktreePath),
		"{origin}":   shellQuote(hctx.OriginRepo),
		"{branch}":   shellQuote(hctx.Branch),
	}

	result := command
	for placeholder, value := range replacements {
		result = strings.ReplaceAll(result, placeholder, value)
	}
	return result
}

// shellQuote escapes a string for safe use in shell commands.
// It wraps the value in single quotes and escapes any embedded single
// quotes, e.g. "it's" becomes 'it'\''s'.
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "'\\''") + "'"
}
