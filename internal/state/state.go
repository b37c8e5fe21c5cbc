package state

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/mirakui/gj/internal/storage"
)

// ErrNotFound indicates no state record exists for a worktree path.
var ErrNotFound = errors.New("worktree state not found")

// Worktree is one persisted record per live worktree.
type Worktree struct {
	WorktreePath string    `json:"worktree_path"`
	OriginRepo   string    `json:"origin_repo"`
	Branch       string    `json:"branch"`
	CreatedAt    time.Time `json:"created_at"`
}

// Store persists worktree records as one JSON file per worktree,
// keyed by a hash of the worktree's absolute path.
type Store struct {
	dir string
}

// NewStore creates a store backed by the given directory.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// DefaultDir returns the default state directory (~/.gj/state).
func DefaultDir() (string, error) {
	dir, err := storage.GjDir()
	if err != nil {
		return "", fmt.Errorf("get state directory: %w", err)
	}
	return filepath.Join(dir, "state"), nil
}

// Key derives the record file name from a worktree path. The hash
// keeps record names short and free of path separator issues while
// remaining deterministic for the same canonical path.
func Key(worktreePath string) string {
	sum := sha256.Sum256([]byte(canonical(worktreePath)))
	return hex.EncodeToString(sum[:8])
}

// canonical normalizes a path to its symlink-resolved absolute form.
// Worktree paths reach the store both as configured base_dir joins and
// as `git rev-parse --show-toplevel` output; git resolves symlinks, so
// the key must be derived from the resolved path or the two sides
// would disagree on a symlinked base_dir.
//
// The path is not required to exist: missing trailing components are
// re-joined onto the nearest existing ancestor, so Delete still works
// after the directory is gone.
func canonical(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	var tail []string
	for p := abs; ; {
		if resolved, err := filepath.EvalSymlinks(p); err == nil {
			for i := len(tail) - 1; i >= 0; i-- {
				resolved = filepath.Join(resolved, tail[i])
			}
			return resolved
		}
		parent := filepath.Dir(p)
		if parent == p {
			return abs
		}
		tail = append(tail, filepath.Base(p))
		p = parent
	}
}

func (s *Store) recordPath(worktreePath string) string {
	return filepath.Join(s.dir, Key(worktreePath)+".json")
}

// Put atomically writes a worktree record.
func (s *Store) Put(w Worktree) error {
	if err := storage.SaveJSON(s.recordPath(w.WorktreePath), w); err != nil {
		return fmt.Errorf("write state for %s: %w", w.WorktreePath, err)
	}
	return nil
}

// Get loads the record for a worktree path.
// Returns ErrNotFound if no record exists.
func (s *Store) Get(worktreePath string) (Worktree, error) {
	var w Worktree
	err := storage.LoadJSON(s.recordPath(worktreePath), &w)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Worktree{}, ErrNotFound
		}
		return Worktree{}, fmt.Errorf("read state for %s: %w", worktreePath, err)
	}
	return w, nil
}

// Delete removes the record for a worktree path.
// Deleting a missing record is not an error.
func (s *Store) Delete(worktreePath string) error {
	err := os.Remove(s.recordPath(worktreePath))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("delete state for %s: %w", worktreePath, err)
	}
	return nil
}

// ListAll reads every record under the state directory, newest first.
// Corrupt or unreadable record files are reported through warn and
// skipped rather than failing the whole listing.
func (s *Store) ListAll(warn func(path string, err error)) ([]Worktree, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read state directory %s: %w", s.dir, err)
	}

	var records []Worktree
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		path := filepath.Join(s.dir, entry.Name())
		var w Worktree
		if err := storage.LoadJSON(path, &w); err != nil {
			if warn != nil {
				warn(path, err)
			}
			continue
		}
		records = append(records, w)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})

	return records, nil
}

type ctxKey struct{}

// WithStore attaches a store to the context. Used by tests to
// substitute a store in a temporary directory.
func WithStore(ctx context.Context, s *Store) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext retrieves the store from context, falling back to the
// default state directory.
func FromContext(ctx context.Context) (*Store, error) {
	if s, ok := ctx.Value(ctxKey{}).(*Store); ok {
		return s, nil
	}
	dir, err := DefaultDir()
	if err != nil {
		return nil, err
	}
	return NewStore(dir), nil
}
