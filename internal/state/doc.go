// Package state persists per-worktree metadata under ~/.gj/state/.
//
// Each live worktree has exactly one JSON record linking its path to
// the origin repository and branch it was created from. The record
// file name is a deterministic hash of the worktree's absolute path,
// which keeps lookups path-independent and avoids filesystem length
// and character issues.
//
// Records are created when a worktree is created and deleted when it
// is removed; the store is the sole reader and writer of these files.
// Writes are atomic (temp file + rename) so concurrent invocations
// never observe a torn record.
package state
