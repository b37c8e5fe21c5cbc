// Package hooks executes post-create actions against a new worktree.
//
// A hook list is an ordered sequence of copy and run actions from
// config, merged default-then-repo. Execution is fail-fast: the first
// failing hook stops the run and its position and description are
// reported. A failed hook never rolls the worktree back; the user is
// left with an inspectable worktree and can fix up or re-run by hand.
//
// Run hooks execute via sh -c with the worktree as working directory
// and support {worktree}, {origin} and {branch} placeholders. Values
// are shell-quoted before substitution.
package hooks
