// Package git wraps the git executable for the operations gj needs:
// repository discovery, worktree add/remove, branch create/delete,
// fetch, status, and merge.
//
// git is treated as a black box: non-zero exit is failure (with stderr
// surfaced in the error), stdout is the only structured output.
package git
