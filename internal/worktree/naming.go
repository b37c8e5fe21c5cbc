package worktree

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Slugify makes a name filesystem- and ref-safe: any rune outside
// [A-Za-z0-9_-] becomes a hyphen.
func Slugify(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}
	return b.String()
}

// RandomSlug returns a short random suffix for --random-suffix.
func RandomSlug() string {
	return uuid.NewString()[:8]
}

// BranchName composes a feature branch name: <prefix>/<YYYYMMDD>_<slug>.
func BranchName(prefix string, now time.Time, slug string) string {
	return fmt.Sprintf("%s/%s_%s", prefix, now.Format("20060102"), slug)
}

// PRSlug returns the directory slug for a PR review worktree.
func PRSlug(number int) string {
	return fmt.Sprintf("pr-%d", number)
}

// PathFor computes the worktree path: <base_dir>/<repo-name>/<slug>.
// Slashes in the slug are flattened so branch names like feature/foo
// stay a single directory level.
func PathFor(baseDir, repoName, slug string) string {
	return filepath.Join(baseDir, repoName, strings.ReplaceAll(slug, "/", "-"))
}

// DisplayName derives a short name for a worktree path: everything
// after the "worktrees/" segment, falling back to the last two path
// components.
func DisplayName(path string) string {
	const marker = "worktrees" + string(filepath.Separator)
	if idx := strings.Index(path, marker); idx != -1 {
		return filepath.ToSlash(path[idx+len(marker):])
	}

	dir, last := filepath.Split(filepath.Clean(path))
	parent := filepath.Base(filepath.Clean(dir))
	if parent == "." || parent == string(filepath.Separator) {
		return last
	}
	return parent + "/" + last
}
