// Package prompt implements the interactive prompts gj shows when an
// argument is omitted. All prompts render to stderr so that stdout
// stays reserved for the target path contract, and every prompt is
// guarded by Interactive so scripted invocations fail fast instead of
// hanging on a TTY read.
package prompt

import (
	"os"

	"github.com/mattn/go-isatty"
)

// Interactive reports whether prompts can be shown: stdin and stderr
// must both be terminals.
func Interactive() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) &&
		(isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()))
}
