// Package worktree implements the worktree lifecycle engine.
//
// Creation and teardown are expressed as protocols over a small Git
// interface so they can be tested with fakes. The invariants:
//
//   - A worktree's state record is written before post-create hooks
//     run, so a failed hook never produces an untracked worktree.
//   - Teardown never removes a dirty worktree without --force.
//   - A requested pre-exit merge that fails is aborted and the
//     worktree, branch and state record all survive.
//
// Naming helpers compose branch names (<prefix>/<YYYYMMDD>_<slug>)
// and worktree paths (<base_dir>/<repo>/<slug>).
package worktree
