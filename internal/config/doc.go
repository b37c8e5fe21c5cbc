// Package config loads and resolves the gj configuration at
// ~/.gj/config.toml.
//
// The file has a [default] section (base_dir, prefix, hooks) and a
// [repos.<alias>] table per registered repository. A repository is
// matched by comparing its canonicalized root path against every
// registered path; creation commands refuse to run in unregistered
// repositories.
//
// Hook lists merge as default-then-repo, order preserved. Hooks are a
// closed set of variants (copy, run) discriminated by a "type" field
// and validated at load time, so execution can switch exhaustively.
package config
